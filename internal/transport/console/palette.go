package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// palette paints marks for the board render. With color off, or when the
// writer is not a terminal, it prints the plain symbols.
type palette struct {
	enabled bool
	x       lipgloss.Style
	o       lipgloss.Style
	empty   lipgloss.Style
}

func newPalette(w io.Writer, enabled bool) *palette {
	renderer := lipgloss.NewRenderer(w)

	return &palette{
		enabled: enabled,
		x:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		o:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		empty:   renderer.NewStyle().Faint(true),
	}
}

func (that *palette) Paint(mark entity.Mark) string {
	symbol := mark.String()
	if !that.enabled {
		return symbol
	}

	switch mark {
	case entity.PlayerX:
		return that.x.Render(symbol)
	case entity.PlayerO:
		return that.o.Render(symbol)
	default:
		return that.empty.Render(symbol)
	}
}
