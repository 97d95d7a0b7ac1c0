package calculator

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/linecalc/internal/model"
)

// MismatchMessage is the error message recorded when the value does not
// match the expected line.
const MismatchMessage = "Error: Value did not match the expected line."

// Calculator is the state holder for one keypad session.
type Calculator struct {
	value        int64
	currentInput int64
	errorMessage *string
}

// New returns a fresh Calculator with value 0, input 0 and no error.
func New() *Calculator {
	return &Calculator{}
}

// Value returns the running value.
func (c *Calculator) Value() int64 {
	return c.value
}

// CurrentInput returns the most recently selected number.
func (c *Calculator) CurrentInput() int64 {
	return c.currentInput
}

// Update applies ev and then checks the resulting value against line.
//
// SelectLine sets the value to line. SelectNumber(n) sets both the
// current input and the value to n. SelectEquals and operator selections
// leave the state unchanged. If the value then differs from line, the
// mismatch error is recorded; the event's effect is not rolled back.
func (c *Calculator) Update(line int64, ev model.Event) {
	switch ev.Kind {
	case model.KindLine:
		c.value = line
	case model.KindNumber:
		c.currentInput = ev.Number
		c.value = ev.Number
	case model.KindEquals:
		// Handled by Output.
	default:
		// Operator selections are ignored here.
	}

	if c.value != line {
		c.Error()
	}
}

// Output writes line to w when ev is SelectEquals. Other events write
// nothing.
func (c *Calculator) Output(w io.Writer, line int64, ev model.Event) error {
	if ev.Kind != model.KindEquals {
		return nil
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Error records the mismatch message unconditionally.
func (c *Calculator) Error() {
	msg := MismatchMessage
	c.errorMessage = &msg
}

// ErrorMessage returns the standing error message and whether one is set.
func (c *Calculator) ErrorMessage() (string, bool) {
	if c.errorMessage == nil {
		return "", false
	}
	return *c.errorMessage, true
}
