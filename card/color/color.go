package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color identifies a card color. Wild is the nominal color a wild-rank card
// carries before a color has been chosen for it; it is never a playable color.
type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Standard lists the four playable colors in tie-break order.
var Standard = []Color{Red, Yellow, Green, Blue}

// Stdout is the writer terminal output should go through so painting
// degrades gracefully when the terminal cannot render ANSI sequences.
var Stdout io.Writer = color.Output

var names = map[Color]string{
	Wild:   "WILD",
	Red:    "RED",
	Yellow: "YELLOW",
	Green:  "GREEN",
	Blue:   "BLUE",
}

var paints = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

func (c Color) Name() string {
	name, ok := names[c]
	if !ok {
		return fmt.Sprintf("COLOR(%d)", int(c))
	}
	return name
}

// Paint styles text in this color and suffixes the color name so cards stay
// readable on terminals that strip ANSI sequences. Wild paints nothing.
func (c Color) Paint(text string) string {
	paint := paints[c]
	if paint == nil {
		return text
	}
	return paint(text) + fmt.Sprintf("(%s)", c.Name())
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c Color) String() string {
	paint := paints[c]
	if paint == nil {
		return c.Name()
	}
	return paint(c.Name())
}

// ByName resolves a player-typed color name. Only standard colors resolve.
func ByName(name string) (Color, error) {
	for _, c := range Standard {
		if strings.EqualFold(name, c.Name()) {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
