// Package cli — run.go implements the "linecalc run" command.
//
// The run command replays a keypad session script against a fresh
// calculator. Each non-blank, non-comment line holds the expected line
// value followed by one event:
//
//	# expected  event
//	1 line
//	4 num 4
//	4 op +
//	4 =
//
// With --layout, the event column is a button label on that keypad
// instead (e.g. "4 x" on a layout with an "x" button).
//
// "=" events print the expected line. When the session ends with a
// standing mismatch error, the command exits with ExitLineMismatch unless
// --allow-mismatch is given.
package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/linecalc/internal/calculator"
	"github.com/shinji-kodama/linecalc/internal/keypad"
	"github.com/shinji-kodama/linecalc/internal/model"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	// layout is an optional keypad layout file. When set, events are
	// button labels pressed on that keypad.
	layout string

	// allowMismatch reports a standing mismatch without failing.
	allowMismatch bool
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Replay a keypad session script",
		Long: `Replay a keypad session against a fresh calculator.

Each script line is "<expected-line> <event>", where event is one of
"line", "num <n>", "=", "op <operator>" or a bare digit/operator.
Blank lines and lines starting with # are ignored. The script is read
from stdin when no file (or "-") is given.

Examples:
  linecalc run session.txt
  printf '1 line\n2 line\n2 =\n' | linecalc run
  linecalc run --layout .linecalc/keypad.yaml --json session.txt`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRun(cmd.InOrStdin(), cmd.OutOrStdout(), path, flags)
		},
	}

	cmd.Flags().StringVar(&flags.layout, "layout", "", "Keypad layout file; events are button labels on it")
	cmd.Flags().BoolVar(&flags.allowMismatch, "allow-mismatch", false, "Do not fail when the session ends with a mismatch error")

	return cmd
}

// ScriptStep is one parsed line of a session script.
type ScriptStep struct {
	// LineNo is the 1-based line number in the script.
	LineNo int

	// Expected is the expected line value passed to Update.
	Expected int64

	// Input is the event text (or button label with --layout).
	Input string
}

// ParseScript reads a session script into steps. Blank lines and #
// comments are skipped.
func ParseScript(r io.Reader) ([]ScriptStep, error) {
	var steps []ScriptStep

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, model.NewCLIError(model.ExitInvalidInput,
				fmt.Sprintf("script line %d: expected \"<expected-line> <event>\", got %q", lineNo, text))
		}

		expected, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidInput,
				fmt.Sprintf("script line %d: invalid expected line %q", lineNo, fields[0]), err)
		}

		steps = append(steps, ScriptStep{
			LineNo:   lineNo,
			Expected: expected,
			Input:    strings.Join(fields[1:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return steps, nil
}

// sessionResultJSON is the JSON output structure of the run command.
type sessionResultJSON struct {
	Value        int64    `json:"value"`
	CurrentInput int64    `json:"currentInput"`
	Error        *string  `json:"error"`
	Outputs      []string `json:"outputs"`
}

func runRun(stdin io.Reader, w io.Writer, path string, flags *runFlags) error {
	// Step 1: Open the script.
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, fmt.Sprintf("cannot open script %s", path), err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	steps, err := ParseScript(in)
	if err != nil {
		return err
	}
	VerboseLog("Parsed %d script steps", len(steps))

	// Step 2: Resolve the keypad.
	layout := keypad.DefaultLayout()
	if flags.layout != "" {
		layout, err = keypad.LoadLayout(flags.layout)
		if err != nil {
			return err
		}
		VerboseLog("Using keypad layout %q from %s", layout.Name, flags.layout)
	}

	// Step 3: Replay. "=" output goes straight to w in text mode and is
	// collected for the JSON document otherwise.
	var collected bytes.Buffer
	out := w
	if IsJSONOutput() {
		out = &collected
	}
	ctrl := keypad.NewController(layout, out)

	for _, step := range steps {
		if err := replayStep(ctrl, step, flags.layout != ""); err != nil {
			return err
		}
	}

	// Step 4: Report the final state.
	calc := ctrl.Calculator()
	msg, hasErr := calc.ErrorMessage()

	if IsJSONOutput() {
		result := sessionResultJSON{
			Value:        calc.Value(),
			CurrentInput: calc.CurrentInput(),
			Outputs:      make([]string, 0),
		}
		if hasErr {
			result.Error = &msg
		}
		for _, line := range strings.Split(collected.String(), "\n") {
			if line != "" {
				result.Outputs = append(result.Outputs, line)
			}
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		printSessionText(w, calc)
	}

	if hasErr && !flags.allowMismatch {
		return model.NewCLIError(model.ExitLineMismatch, msg)
	}
	return nil
}

// replayStep feeds one script step to the controller, either as parsed
// event text or as a button label.
func replayStep(ctrl *keypad.Controller, step ScriptStep, byLabel bool) error {
	if byLabel {
		ev, err := ctrl.Press(step.Expected, step.Input)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, fmt.Sprintf("script line %d", step.LineNo), err)
		}
		VerboseLog("line %d: pressed %q (%s) expecting %d", step.LineNo, step.Input, ev, step.Expected)
		return nil
	}

	ev, err := model.ParseEvent(step.Input)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, fmt.Sprintf("script line %d", step.LineNo), err)
	}
	VerboseLog("line %d: %s expecting %d", step.LineNo, ev, step.Expected)
	return ctrl.Dispatch(step.Expected, ev)
}

// printSessionText prints the final calculator state.
//
//	value: 4
//	input: 4
//	error: Error: Value did not match the expected line.
func printSessionText(w io.Writer, calc *calculator.Calculator) {
	fmt.Fprintf(w, "value: %d\n", calc.Value())
	fmt.Fprintf(w, "input: %d\n", calc.CurrentInput())
	if msg, ok := calc.ErrorMessage(); ok {
		fmt.Fprintf(w, "error: %s\n", msg)
	}
}
