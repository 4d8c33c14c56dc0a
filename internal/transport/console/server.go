package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type Server struct {
	logger  *slog.Logger
	game    *tictactoe.GameController
	reader  *bufio.Reader
	out     io.Writer
	palette *palette
}

type Option func(*Server)

// WithColor - paints marks when out is a terminal.
func WithColor(enabled bool) Option {
	return func(s *Server) {
		s.palette = newPalette(s.out, enabled)
	}
}

func New(logger *slog.Logger, game *tictactoe.GameController, in io.Reader, out io.Writer, opts ...Option) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		game:    game,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	server.palette = newPalette(out, false)

	for _, opt := range opts {
		opt(server)
	}

	return server
}

// Start - plays the game to the end and prints the final board and result.
func (that *Server) Start(ctx context.Context) (entity.Outcome, error) {
	var outcome entity.Outcome

	for {
		if err := ctx.Err(); err != nil {
			return outcome, fmt.Errorf("console session stopped: %w", err)
		}

		outcome = that.game.Outcome()
		if outcome.IsFinished() {
			break
		}

		if err := that.render(); err != nil {
			return outcome, err
		}
		that.println(promptMessage(that.game.Turn()))

		row, col, err := that.readMove()
		if err != nil {
			return outcome, err
		}

		if err = that.makeTurn(row, col); err != nil {
			return outcome, err
		}
	}

	if err := that.render(); err != nil {
		return outcome, err
	}
	that.println(summaryMessage(outcome))

	that.logger.Info("game finished", "outcome", outcome.String())

	return outcome, nil
}

// readMove - reads lines until one parses as coordinates.
func (that *Server) readMove() (int, int, error) {
	for {
		line, err := that.readLine()
		if err != nil {
			return 0, 0, err
		}

		row, col, err := tictactoe.ParseCoordinates(line)
		if err == nil {
			return row, col, nil
		}

		msg, ok := userMessage(err)
		if !ok {
			return 0, 0, fmt.Errorf("failed to parse input: %w", err)
		}

		that.logger.Debug("input rejected", "input", line, "error", err)
		that.println(msg)
	}
}

// readLine - returns the next line of any length without its line ending.
// A final line without a newline is still returned.
func (that *Server) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", apperror.ErrInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Server) makeTurn(row, col int) error {
	mark := that.game.Turn()

	err := that.game.MakeTurn(row, col)
	if err == nil {
		that.logger.Debug("move accepted", "mark", mark.String(), "row", row, "col", col)
		return nil
	}

	msg, ok := userMessage(err)
	if !ok {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("move rejected", "mark", mark.String(), "row", row, "col", col, "error", err)
	that.println(msg)

	return nil
}

func (that *Server) render() error {
	if err := that.game.Board().RenderWith(that.out, that.palette.Paint); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

func (that *Server) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
