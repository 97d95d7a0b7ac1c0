package keypad

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Renderer draws a layout. Implementations own presentation only; button
// presses come back through an Emitter.
type Renderer interface {
	Render(w io.Writer, l *Layout) error
}

// TextRenderer draws the keypad as a grid of bracketed labels:
//
//	[ 7 ] [ 8 ] [ 9 ] [ / ]
//	[ 0 ] [ = ] [ + ]
type TextRenderer struct{}

// Render writes one line per layout row. All cells share the width of the
// widest label.
func (TextRenderer) Render(w io.Writer, l *Layout) error {
	width := 1
	for _, b := range l.Buttons() {
		if n := utf8.RuneCountInString(b.Label); n > width {
			width = n
		}
	}

	for _, row := range l.Rows {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			pad := width - utf8.RuneCountInString(b.Label)
			cells = append(cells, "[ "+b.Label+strings.Repeat(" ", pad)+" ]")
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return fmt.Errorf("failed to render keypad: %w", err)
		}
	}
	return nil
}
