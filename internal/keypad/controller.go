package keypad

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/linecalc/internal/calculator"
	"github.com/shinji-kodama/linecalc/internal/model"
)

// Emitter receives the events produced by button presses.
type Emitter interface {
	Dispatch(line int64, ev model.Event) error
}

// Controller owns a Calculator and feeds it keypad events. It is the single
// owner of the calculator state and is not safe for concurrent use.
type Controller struct {
	layout *Layout
	calc   *calculator.Calculator
	out    io.Writer
}

// NewController returns a Controller with a fresh calculator. Output
// produced by "=" is written to out.
func NewController(layout *Layout, out io.Writer) *Controller {
	return &Controller{
		layout: layout,
		calc:   calculator.New(),
		out:    out,
	}
}

// Calculator returns the calculator owned by the controller.
func (c *Controller) Calculator() *calculator.Calculator {
	return c.calc
}

// Press resolves label to its button and dispatches the button's event.
// The resolved event is returned so callers can report it.
func (c *Controller) Press(line int64, label string) (model.Event, error) {
	b, ok := c.layout.Lookup(label)
	if !ok {
		return model.Event{}, fmt.Errorf("no button labelled %q on keypad %q", label, c.layout.Name)
	}
	return b.Event, c.Dispatch(line, b.Event)
}

// Dispatch updates the calculator with ev against the expected line and
// then emits output for "=".
func (c *Controller) Dispatch(line int64, ev model.Event) error {
	c.calc.Update(line, ev)
	return c.calc.Output(c.out, line, ev)
}
