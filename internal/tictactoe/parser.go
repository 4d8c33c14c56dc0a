package tictactoe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// ParseCoordinates - parses "<row>,<col>". Bounds are checked by the board, not here.
func ParseCoordinates(text string) (int, int, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d fields", apperror.ErrMalformedInput, len(parts))
	}

	row, err := parseIndex(parts[0])
	if err != nil {
		return 0, 0, err
	}

	col, err := parseIndex(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

// parseIndex - accepts any non-negative integer with an optional leading '+'.
// Values above math.MaxInt are clamped to it so the board rejects them as out of bounds.
func parseIndex(field string) (int, error) {
	field = strings.TrimSpace(field)

	value, err := strconv.ParseUint(strings.TrimPrefix(field, "+"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, field)
	}

	if value > math.MaxInt {
		return math.MaxInt, nil
	}

	return int(value), nil
}
