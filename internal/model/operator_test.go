package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOperator_Apply covers the defined result of each operator.
func TestOperator_Apply(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		a, b float64
		want float64
	}{
		{"addition", OpAdd, 2, 3, 5},
		{"subtraction", OpSubtract, 5, 3, 2},
		{"multiplication", OpMultiply, 2, 3, 6},
		{"division", OpDivide, 6, 3, 2},
		{"negative operands", OpAdd, -1.5, -2.25, -3.75},
		{"zero dividend", OpDivide, 0, 4, 0},
		{"multiply by zero", OpMultiply, 7, 0, 0},
		{"subtract to negative", OpSubtract, 3, 5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op.Apply(tt.a, tt.b)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestOperator_Apply_MatchesArithmetic checks the operators against Go's
// own arithmetic on a spread of finite values, including extremes.
func TestOperator_Apply_MatchesArithmetic(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 3.5, -1e300, 1e300, math.SmallestNonzeroFloat64, math.MaxFloat64}

	for _, a := range values {
		for _, b := range values {
			got, ok := OpAdd.Apply(a, b)
			require.True(t, ok)
			assert.Equal(t, a+b, got)

			got, ok = OpSubtract.Apply(a, b)
			require.True(t, ok)
			assert.Equal(t, a-b, got)

			got, ok = OpMultiply.Apply(a, b)
			require.True(t, ok)
			assert.Equal(t, a*b, got)

			got, ok = OpDivide.Apply(a, b)
			if b == 0 {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.Equal(t, a/b, got)
		}
	}
}

// TestOperator_Apply_DivisionByZero verifies that a zero divisor yields no
// result rather than an infinity or NaN.
func TestOperator_Apply_DivisionByZero(t *testing.T) {
	for _, b := range []float64{0.0, math.Copysign(0, -1)} {
		got, ok := OpDivide.Apply(10, b)
		assert.False(t, ok)
		assert.Zero(t, got)
		assert.False(t, math.IsNaN(got))
	}
}

func TestOperator_Apply_Pure(t *testing.T) {
	for _, op := range Operators() {
		first, ok1 := op.Apply(9, 4)
		second, ok2 := op.Apply(9, 4)
		assert.Equal(t, ok1, ok2, op.Name())
		assert.Equal(t, first, second, op.Name())
	}
}

func TestOperator_Apply_Invalid(t *testing.T) {
	_, ok := Operator("%").Apply(1, 2)
	assert.False(t, ok)
}

func TestOperator_SymbolAndName(t *testing.T) {
	tests := []struct {
		op     Operator
		symbol string
		name   string
	}{
		{OpAdd, "+", "add"},
		{OpSubtract, "-", "subtract"},
		{OpMultiply, "*", "multiply"},
		{OpDivide, "/", "divide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.op.Symbol())
			assert.Equal(t, tt.symbol, tt.op.String())
			assert.Equal(t, tt.name, tt.op.Name())
			assert.True(t, tt.op.IsValid())
		})
	}
	assert.False(t, Operator("%").IsValid())
	assert.Empty(t, Operator("%").Name())
}

func TestOperators_KeypadOrder(t *testing.T) {
	assert.Equal(t, []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}, Operators())
}

// TestParseOperator verifies symbol and name parsing, including case
// normalization and error cases.
func TestParseOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected Operator
		hasError bool
	}{
		{"+", OpAdd, false},
		{"-", OpSubtract, false},
		{"*", OpMultiply, false},
		{"/", OpDivide, false},
		{"add", OpAdd, false},
		{"Divide", OpDivide, false}, // case insensitive
		{"x", OpMultiply, false},
		{"÷", OpDivide, false},
		{" minus ", OpSubtract, false},
		{"%", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOperator(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
