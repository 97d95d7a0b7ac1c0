package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind tags the variant carried by an Event.
type EventKind string

const (
	// KindLine selects the expected line as the new value.
	KindLine EventKind = "line"

	// KindNumber selects a digit. The digit is carried in Event.Number.
	KindNumber EventKind = "number"

	// KindEquals requests output of the current line.
	KindEquals EventKind = "equals"

	// KindOperator selects an operator. The calculator state ignores it;
	// it exists so every keypad button maps to an event.
	KindOperator EventKind = "operator"
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Event is a single user action on the keypad. Only the field matching
// Kind is meaningful; use the Select* constructors rather than building
// the struct by hand.
type Event struct {
	Kind     EventKind `json:"kind"`
	Number   int64     `json:"number"`
	Operator Operator  `json:"operator,omitempty"`
}

// SelectLine returns the event that sets the value to the expected line.
func SelectLine() Event {
	return Event{Kind: KindLine}
}

// SelectNumber returns the event for pressing the digit n.
func SelectNumber(n int64) Event {
	return Event{Kind: KindNumber, Number: n}
}

// SelectEquals returns the event for pressing "=".
func SelectEquals() Event {
	return Event{Kind: KindEquals}
}

// SelectOperator returns the event for pressing an operator button.
func SelectOperator(op Operator) Event {
	return Event{Kind: KindOperator, Operator: op}
}

// String renders the event in the same text form ParseEvent accepts.
func (e Event) String() string {
	switch e.Kind {
	case KindLine:
		return "line"
	case KindNumber:
		return "num " + strconv.FormatInt(e.Number, 10)
	case KindEquals:
		return "="
	case KindOperator:
		return "op " + e.Operator.Symbol()
	default:
		return "unknown"
	}
}

// ParseEvent parses the text form of an event:
//
//	line            SelectLine
//	num 7 | 7       SelectNumber(7)
//	=               SelectEquals
//	op + | +        SelectOperator(+)
//
// A bare integer is accepted as a number event so keypad labels ("0".."9")
// resolve directly. "num" accepts any int64, not just single digits.
func ParseEvent(s string) (Event, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}

	switch strings.ToLower(fields[0]) {
	case "line":
		if len(fields) != 1 {
			return Event{}, fmt.Errorf("invalid event %q: line takes no argument", s)
		}
		return SelectLine(), nil
	case "=", "equals":
		if len(fields) != 1 {
			return Event{}, fmt.Errorf("invalid event %q: = takes no argument", s)
		}
		return SelectEquals(), nil
	case "num", "number":
		if len(fields) != 2 {
			return Event{}, fmt.Errorf("invalid event %q: expected \"num <n>\"", s)
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return Event{}, fmt.Errorf("invalid event %q: %w", s, err)
		}
		return SelectNumber(n), nil
	case "op", "operator":
		if len(fields) != 2 {
			return Event{}, fmt.Errorf("invalid event %q: expected \"op <symbol>\"", s)
		}
		op, err := ParseOperator(fields[1])
		if err != nil {
			return Event{}, fmt.Errorf("invalid event %q: %w", s, err)
		}
		return SelectOperator(op), nil
	}

	if len(fields) != 1 {
		return Event{}, fmt.Errorf("invalid event %q", s)
	}
	if n, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
		return SelectNumber(n), nil
	}
	if op, err := ParseOperator(fields[0]); err == nil {
		return SelectOperator(op), nil
	}
	return Event{}, fmt.Errorf("invalid event %q (valid: line, num <n>, =, op <symbol>)", s)
}
