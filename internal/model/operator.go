package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero reports that a division was not performed because the
// divisor was zero. Operator.Apply never returns it; callers that need an
// error value (such as the CLI) translate the absent result into this.
var ErrDivisionByZero = errors.New("division by zero")

// Operator is one of the four binary arithmetic functions on the keypad.
// The underlying string is the symbol printed on the button.
type Operator string

const (
	// OpAdd computes a + b.
	OpAdd Operator = "+"

	// OpSubtract computes a - b.
	OpSubtract Operator = "-"

	// OpMultiply computes a * b.
	OpMultiply Operator = "*"

	// OpDivide computes a / b and is undefined when b is zero.
	OpDivide Operator = "/"
)

// Operators returns every operator in keypad order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// String returns the button symbol of the operator.
func (o Operator) String() string {
	return string(o)
}

// Symbol returns the button symbol ("+", "-", "*", "/").
func (o Operator) Symbol() string {
	return string(o)
}

// Name returns the lowercase English name of the operator, used in JSON
// output and accepted by ParseOperator.
func (o Operator) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return ""
	}
}

// IsValid checks whether the Operator value is one of the four
// predefined operators.
func (o Operator) IsValid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// Apply applies the operator to a and b.
//
// Add, Subtract and Multiply are always defined. Divide returns ok=false
// when b is zero instead of producing an infinity or NaN; the caller must
// treat that as "operation not performed". An invalid operator also
// returns ok=false.
func (o Operator) Apply(a, b float64) (result float64, ok bool) {
	switch o {
	case OpAdd:
		return a + b, true
	case OpSubtract:
		return a - b, true
	case OpMultiply:
		return a * b, true
	case OpDivide:
		if b == 0.0 {
			return 0, false
		}
		return a / b, true
	default:
		return 0, false
	}
}

// operatorAliases maps accepted spellings to operators. Keys are lowercase.
var operatorAliases = map[string]Operator{
	"+":        OpAdd,
	"add":      OpAdd,
	"plus":     OpAdd,
	"-":        OpSubtract,
	"subtract": OpSubtract,
	"minus":    OpSubtract,
	"*":        OpMultiply,
	"x":        OpMultiply,
	"×":        OpMultiply,
	"multiply": OpMultiply,
	"/":        OpDivide,
	"÷":        OpDivide,
	"divide":   OpDivide,
}

// ParseOperator converts a symbol or name to an Operator.
// Matching is case-insensitive. Returns an error for unknown input.
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return "", fmt.Errorf("invalid operator: %q (valid: +, -, *, /)", s)
}
