package keypad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shinji-kodama/linecalc/internal/model"
)

// EqualsLabel is the label of the "=" button.
const EqualsLabel = "="

// Button is a single keypad key: the text shown on it and the event it
// emits.
type Button struct {
	Label string      `json:"label"`
	Event model.Event `json:"event"`
}

// Layout is a named grid of buttons, top row first.
type Layout struct {
	Name string     `json:"name"`
	Rows [][]Button `json:"rows"`
}

// DefaultLayout returns the standard four-row keypad: ten digits, the four
// operators and "=".
//
//	7 8 9 /
//	4 5 6 *
//	1 2 3 -
//	0 = +
func DefaultLayout() *Layout {
	rows := [][]string{
		{"7", "8", "9", "/"},
		{"4", "5", "6", "*"},
		{"1", "2", "3", "-"},
		{"0", EqualsLabel, "+"},
	}

	l := &Layout{Name: "default"}
	for _, labels := range rows {
		row := make([]Button, 0, len(labels))
		for _, label := range labels {
			// Labels above are fixed and always parse.
			b, _ := NewButton(label)
			row = append(row, b)
		}
		l.Rows = append(l.Rows, row)
	}
	return l
}

// NewButton builds a Button from its label, resolving the emitted event
// with model.ParseEvent.
func NewButton(label string) (Button, error) {
	label = strings.TrimSpace(label)
	ev, err := model.ParseEvent(label)
	if err != nil {
		return Button{}, fmt.Errorf("invalid button %q: %w", label, err)
	}
	return Button{Label: label, Event: ev}, nil
}

// Buttons returns every button in row order.
func (l *Layout) Buttons() []Button {
	var buttons []Button
	for _, row := range l.Rows {
		buttons = append(buttons, row...)
	}
	return buttons
}

// Lookup finds the button with the given label.
func (l *Layout) Lookup(label string) (Button, bool) {
	label = strings.TrimSpace(label)
	for _, row := range l.Rows {
		for _, b := range row {
			if b.Label == label {
				return b, true
			}
		}
	}
	return Button{}, false
}

// Validate checks that the layout emits every digit 0-9, every operator
// and "=" exactly once, and that no label is used twice. Extra buttons
// such as "line" are allowed.
func (l *Layout) Validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("layout %q has no rows", l.Name)
	}

	labels := make(map[string]bool)
	events := make(map[string]int)
	for _, b := range l.Buttons() {
		if labels[b.Label] {
			return fmt.Errorf("layout %q has duplicate button %q", l.Name, b.Label)
		}
		labels[b.Label] = true
		events[b.Event.String()]++
	}

	var required []model.Event
	for d := int64(0); d <= 9; d++ {
		required = append(required, model.SelectNumber(d))
	}
	for _, op := range model.Operators() {
		required = append(required, model.SelectOperator(op))
	}
	required = append(required, model.SelectEquals())

	var missing []string
	for _, ev := range required {
		switch events[ev.String()] {
		case 0:
			missing = append(missing, strconv.Quote(ev.String()))
		case 1:
		default:
			return fmt.Errorf("layout %q has more than one %q button", l.Name, ev.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("layout %q is missing buttons: %s", l.Name, strings.Join(missing, ", "))
	}
	return nil
}
