// config.go loads keypad layouts from disk and writes them back out.
//
// Layout files may be YAML (.yaml, .yml) or JSON with comments (.json,
// .jsonc). JSONC input is stripped with github.com/tidwall/jsonc before
// parsing with encoding/json, so hand-edited layouts can carry comments and
// trailing commas.
package keypad

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/linecalc/internal/model"
)

// layoutFile is the on-disk form of a Layout. Rows hold button labels;
// events are resolved from the labels on load.
type layoutFile struct {
	Name string     `json:"name" yaml:"name"`
	Rows [][]string `json:"rows" yaml:"rows"`
}

// LoadLayout reads a layout file, resolves every label to its event and
// validates the result.
//
// Returns a CLIError with ExitLayoutNotFound if the file does not exist.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitLayoutNotFound,
				fmt.Sprintf("keypad layout not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read keypad layout: %w", err)
	}

	layout, err := ParseLayout(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load keypad layout at %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes layout data. ext selects the format: ".yaml" and
// ".yml" are YAML, anything else is treated as JSONC.
func ParseLayout(data []byte, ext string) (*Layout, error) {
	var raw layoutFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if raw.Name == "" {
		raw.Name = "custom"
	}

	layout := &Layout{Name: raw.Name}
	for i, labels := range raw.Rows {
		row := make([]Button, 0, len(labels))
		for _, label := range labels {
			b, err := NewButton(label)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			row = append(row, b)
		}
		layout.Rows = append(layout.Rows, row)
	}

	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

// FindLayout searches dir for a layout file in the standard locations:
//  1. <dir>/.linecalc/keypad.yaml
//  2. <dir>/.linecalc/keypad.yml
//  3. <dir>/.linecalc/keypad.jsonc
//  4. <dir>/.linecalc.json
//
// Returns the first path found, or a CLIError with ExitLayoutNotFound.
func FindLayout(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, ".linecalc", "keypad.yaml"),
		filepath.Join(dir, ".linecalc", "keypad.yml"),
		filepath.Join(dir, ".linecalc", "keypad.jsonc"),
		filepath.Join(dir, ".linecalc.json"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", model.NewCLIError(
		model.ExitLayoutNotFound,
		fmt.Sprintf("keypad layout not found in %s (searched .linecalc/keypad.{yaml,yml,jsonc} and .linecalc.json)", dir),
	)
}

// MarshalLayoutYAML serializes a layout to YAML in the same form
// LoadLayout reads, prefixed with a header comment.
func MarshalLayoutYAML(l *Layout) ([]byte, error) {
	raw := layoutFile{Name: l.Name}
	for _, row := range l.Rows {
		labels := make([]string, 0, len(row))
		for _, b := range row {
			labels = append(labels, b.Label)
		}
		raw.Rows = append(raw.Rows, labels)
	}

	yamlBytes, err := yaml.Marshal(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keypad layout: %w", err)
	}

	header := "# Generated by linecalc. Labels are digits, operators (+ - * /), \"=\" or \"line\".\n"
	return []byte(header + string(yamlBytes)), nil
}
