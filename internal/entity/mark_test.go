package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTurn(t *testing.T) {
	assert.Equal(t, PlayerO, NextTurn(PlayerX))
	assert.Equal(t, PlayerX, NextTurn(PlayerO))

	t.Run("Panics on empty mark", func(t *testing.T) {
		assert.PanicsWithValue(t, "invalid turn: 0", func() {
			NextTurn(Empty)
		})
	})
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "X", PlayerX.String())
	assert.Equal(t, "O", PlayerO.String())
	assert.Equal(t, ".", Empty.String())
}

func TestParseMark(t *testing.T) {
	t.Run("Accepts player marks in any case", func(t *testing.T) {
		for input, expected := range map[string]Mark{"X": PlayerX, "x": PlayerX, "O": PlayerO, "o": PlayerO} {
			mark, err := ParseMark(input)
			require.NoError(t, err)
			assert.Equal(t, expected, mark)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParseMark(".")
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestOutcome(t *testing.T) {
	t.Run("Exactly one variant is active", func(t *testing.T) {
		// Given: every possible outcome
		outcomes := []Outcome{InProgress(), Draw(), Winner(PlayerX), Winner(PlayerO)}

		for _, outcome := range outcomes {
			// Then: the winner is reported only for StateWinner
			_, hasWinner := outcome.Winner()
			assert.Equal(t, outcome.State() == StateWinner, hasWinner)
			assert.Equal(t, outcome.State() != StateInProgress, outcome.IsFinished())
		}
	})

	t.Run("Zero value is in progress", func(t *testing.T) {
		var outcome Outcome
		assert.Equal(t, InProgress(), outcome)
		assert.Equal(t, "in progress", outcome.String())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "draw", Draw().String())
		assert.Equal(t, "winner O", Winner(PlayerO).String())
	})
}
