package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/logging"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Output collects everything a console session prints.
	Output *bytes.Buffer
	// Logs collects the JSON log records.
	Logs *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := logging.New(logs, "debug", logging.FormatJSON)

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Output: &bytes.Buffer{},
		Logs:   logs,
	}
}

// Input - returns a reader that yields each line followed by a newline.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
