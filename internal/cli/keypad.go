// Package cli — keypad.go implements the "linecalc keypad" command.
//
// The keypad command renders the button layout: a text grid by default,
// a JSON list of buttons with --json, or the layout file itself (YAML)
// with --export. Without --layout, the current directory is searched for
// a layout file and the default keypad is used when none exists.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/linecalc/internal/keypad"
	"github.com/shinji-kodama/linecalc/internal/model"
)

// keypadFlags holds the flag values for the keypad command.
type keypadFlags struct {
	layout string
	export bool
}

// NewKeypadCommand creates the "keypad" cobra command.
func NewKeypadCommand() *cobra.Command {
	flags := &keypadFlags{}

	cmd := &cobra.Command{
		Use:   "keypad",
		Short: "Show the keypad layout",
		Long: `Render the keypad layout.

The layout is read from --layout, else from .linecalc/keypad.yaml,
.linecalc/keypad.yml, .linecalc/keypad.jsonc or .linecalc.json in the
current directory, else the built-in default keypad is used.

Examples:
  linecalc keypad
  linecalc keypad --layout phone.yaml
  linecalc keypad --export > .linecalc/keypad.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeypad(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.layout, "layout", "", "Keypad layout file (YAML or JSONC)")
	cmd.Flags().BoolVar(&flags.export, "export", false, "Print the layout as YAML")

	return cmd
}

func runKeypad(w io.Writer, flags *keypadFlags) error {
	layout, err := resolveLayout(flags.layout)
	if err != nil {
		return err
	}

	if flags.export {
		data, err := keypad.MarshalLayoutYAML(layout)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if IsJSONOutput() {
		printKeypadJSON(w, layout)
		return nil
	}
	return keypad.TextRenderer{}.Render(w, layout)
}

// resolveLayout loads the layout at path, or searches the working
// directory when path is empty. A missing search result falls back to the
// default layout; a missing explicit path is an error.
func resolveLayout(path string) (*keypad.Layout, error) {
	if path != "" {
		return keypad.LoadLayout(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	found, err := keypad.FindLayout(cwd)
	if err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) && cliErr.Code == model.ExitLayoutNotFound {
			VerboseLog("No layout file in %s, using default keypad", cwd)
			return keypad.DefaultLayout(), nil
		}
		return nil, err
	}

	VerboseLog("Loading keypad layout from %s", found)
	return keypad.LoadLayout(found)
}

// keypadButtonJSON is the JSON output structure for a single button.
type keypadButtonJSON struct {
	Row   int         `json:"row"`
	Label string      `json:"label"`
	Event model.Event `json:"event"`
}

func printKeypadJSON(w io.Writer, l *keypad.Layout) {
	type resultJSON struct {
		Name    string             `json:"name"`
		Buttons []keypadButtonJSON `json:"buttons"`
	}

	result := resultJSON{
		Name:    l.Name,
		Buttons: make([]keypadButtonJSON, 0, len(l.Buttons())),
	}
	for i, row := range l.Rows {
		for _, b := range row {
			result.Buttons = append(result.Buttons, keypadButtonJSON{
				Row:   i + 1,
				Label: b.Label,
				Event: b.Event,
			})
		}
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(w, string(data))
}
