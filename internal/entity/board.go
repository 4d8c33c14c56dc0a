package entity

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Size - number of rows and columns on the board.
const Size = 3

// Position - a cell address, zero based.
type Position struct {
	Row int
	Col int
}

// WinLines - every three-in-a-row, ordered rows, columns, main diagonal, anti-diagonal.
var WinLines = [8][Size]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board - the 3x3 grid. ApplyMove is its only mutator.
type Board struct {
	grid [Size][Size]Mark
}

// NewBoard - returns a board with every cell Empty.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromGrid - builds a board with arbitrary contents, legal or not.
func NewBoardFromGrid(grid [Size][Size]Mark) *Board {
	return &Board{grid: grid}
}

// Cell - returns the mark at (row, col). The coordinates must be on the board.
func (that *Board) Cell(row, col int) Mark {
	return that.grid[row][col]
}

func (that *Board) Grid() [Size][Size]Mark {
	return that.grid
}

// ApplyMove - places mark at (row, col). The board is left untouched on error.
func (that *Board) ApplyMove(row, col int, mark Mark) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that.grid[row][col] != Empty {
		return apperror.ErrCellOccupied
	}

	that.grid[row][col] = mark

	return nil
}

// Evaluate - classifies the position. X is checked before O.
func (that *Board) Evaluate() Outcome {
	for _, mark := range [...]Mark{PlayerX, PlayerO} {
		if that.hasLine(mark) {
			return Winner(mark)
		}
	}

	// the game will continue until all the squares are full
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == Empty {
				return InProgress()
			}
		}
	}

	return Draw()
}

func (that *Board) hasLine(mark Mark) bool {
	for _, line := range WinLines {
		full := true
		for _, pos := range line {
			if that.grid[pos.Row][pos.Col] != mark {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	return false
}

// Render - writes the board with a column header and row indices.
func (that *Board) Render(w io.Writer) error {
	return that.RenderWith(w, Mark.String)
}

// RenderWith - same as Render, with symbol deciding how each cell is printed.
func (that *Board) RenderWith(w io.Writer, symbol func(Mark) string) error {
	if _, err := fmt.Fprint(w, "  0 1 2\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range that.grid {
		line := fmt.Sprintf("%d ", i)
		for _, cell := range row {
			line += symbol(cell) + " "
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	return nil
}

func (that *Board) String() string {
	var sb strings.Builder
	if err := that.Render(&sb); err != nil {
		// strings.Builder never fails a write
		panic(err)
	}
	return sb.String()
}
