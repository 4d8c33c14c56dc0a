package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs one game on standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	_, err := RunGame(context.Background(), logger, conf, os.Stdin, os.Stdout)
	return err
}

// RunGame - plays a single game over in and out and returns its outcome.
func RunGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.Outcome, error) {
	log := logger.With("component", "app")

	first, err := conf.FirstMark()
	if err != nil {
		return entity.InProgress(), fmt.Errorf("invalid config: %w", err)
	}

	log.Debug("Starting game", "first_player", first.String())

	game := tictactoe.NewGameController(first)
	server := console.New(logger, game, in, out, console.WithColor(conf.Color))

	outcome, err := server.Start(ctx)
	if err != nil {
		return outcome, fmt.Errorf("console session failed: %w", err)
	}

	return outcome, nil
}
