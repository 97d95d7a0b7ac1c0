// Package cli — apply.go implements the "linecalc apply" command.
//
// The apply command applies one operator to two operands. Division by zero
// is reported as "operation not performed" with ExitDivisionByZero; no
// infinity or NaN is ever printed.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/linecalc/internal/model"
)

// NewApplyCommand creates the "apply" cobra command.
func NewApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <a> <operator> <b>",
		Short: "Apply an operator to two operands",
		Long: `Apply one of the four operators (+, -, *, /) to two operands.

Operators may also be given by name (add, subtract, multiply, divide).
Negative operands must follow "--" so they are not read as flags.

Examples:
  linecalc apply 2 + 3
  linecalc apply 6 divide 3
  linecalc apply --json -- -4 x 2.5`,

		Args: cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.OutOrStdout(), args[0], args[1], args[2])
		},
	}

	return cmd
}

// applyResultJSON is the JSON output structure of the apply command.
type applyResultJSON struct {
	A        float64 `json:"a"`
	Operator string  `json:"operator"`
	B        float64 `json:"b"`
	Result   float64 `json:"result"`
}

func runApply(w io.Writer, aArg, opArg, bArg string) error {
	a, err := parseOperand(aArg)
	if err != nil {
		return err
	}
	op, err := model.ParseOperator(opArg)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid operator", err)
	}
	b, err := parseOperand(bArg)
	if err != nil {
		return err
	}

	VerboseLog("Applying %s to %v and %v", op.Name(), a, b)

	result, ok := op.Apply(a, b)
	if !ok {
		return model.WrapCLIError(model.ExitDivisionByZero,
			fmt.Sprintf("operation not performed: %s %s %s", aArg, op.Symbol(), bArg),
			model.ErrDivisionByZero)
	}

	if IsJSONOutput() {
		// encoding/json rejects infinities, which overflowing
		// multiplication can still produce.
		data, err := json.MarshalIndent(applyResultJSON{
			A:        a,
			Operator: op.Name(),
			B:        b,
			Result:   result,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, FormatNumber(result))
	return nil
}

// parseOperand parses a finite float64 operand.
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidInput, fmt.Sprintf("invalid operand %q", s), err)
	}
	if !isFinite(v) {
		return 0, model.NewCLIError(model.ExitInvalidInput, fmt.Sprintf("operand %q must be finite", s))
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FormatNumber renders a result with the fewest digits that round-trip.
//
// Example:
//
//	5    → "5"
//	0.5  → "0.5"
//	1e21 → "1e+21"
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
