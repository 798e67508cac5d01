// Package ttestutils holds helpers for tests that draw to a tcell
// simulation screen.
package ttestutils

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	return ReadRange(screen, 0, y, width)
}

// ReadRange reads width cells of row y starting at column x.
func ReadRange(screen tcell.Screen, x, y, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		str, _, _ := screen.Get(x+i, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen returns every row of the screen.
func ReadScreen(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = ReadLine(screen, y, width)
	}
	return lines
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
