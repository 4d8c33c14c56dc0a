package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// GameController owns the board and the turn marker for a single game.
type GameController struct {
	board *entity.Board
	turn  entity.Mark
}

func NewGameController(first entity.Mark) *GameController {
	if !first.IsPlayer() {
		panic(fmt.Sprintf("invalid first player: %d", first))
	}

	return &GameController{
		board: entity.NewBoard(),
		turn:  first,
	}
}

// MakeTurn - places the current player's mark and passes the turn on success.
func (that *GameController) MakeTurn(row, col int) error {
	if that.board.Evaluate().IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.board.ApplyMove(row, col, that.turn); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.turn = entity.NextTurn(that.turn)

	return nil
}

func (that *GameController) Outcome() entity.Outcome {
	return that.board.Evaluate()
}

func (that *GameController) Turn() entity.Mark {
	return that.turn
}

func (that *GameController) Board() *entity.Board {
	return that.board
}
