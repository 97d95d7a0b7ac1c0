package keypad

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/linecalc/internal/model"
)

const yamlLayout = `name: phone
rows:
  - ["1", "2", "3", "+"]
  - ["4", "5", "6", "-"]
  - ["7", "8", "9", "*"]
  - ["line", "0", "=", "/"]
`

const jsoncLayout = `{
  // Calculator-style keypad with a multiply alias.
  "name": "desk",
  "rows": [
    ["7", "8", "9", "÷"],
    ["4", "5", "6", "x"],
    ["1", "2", "3", "-"],
    ["0", "=", "+"], /* trailing comma below */
  ],
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestLoadLayout_YAML verifies that a YAML layout is parsed and its labels
// resolved to events.
func TestLoadLayout_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypad.yaml")
	writeFile(t, path, yamlLayout)

	l, err := LoadLayout(path)
	require.NoError(t, err)

	assert.Equal(t, "phone", l.Name)
	require.Len(t, l.Rows, 4)
	assert.Equal(t, "1", l.Rows[0][0].Label)

	b, ok := l.Lookup("line")
	require.True(t, ok)
	assert.Equal(t, model.SelectLine(), b.Event)
}

// TestLoadLayout_JSONC verifies that comments and trailing commas are
// stripped before parsing.
func TestLoadLayout_JSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypad.jsonc")
	writeFile(t, path, jsoncLayout)

	l, err := LoadLayout(path)
	require.NoError(t, err)

	assert.Equal(t, "desk", l.Name)
	b, ok := l.Lookup("÷")
	require.True(t, ok)
	assert.Equal(t, model.SelectOperator(model.OpDivide), b.Event)

	b, ok = l.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, model.SelectOperator(model.OpMultiply), b.Event)
}

func TestLoadLayout_NotFound(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitLayoutNotFound, cliErr.Code)
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"invalid yaml", "rows: [[", ".yaml"},
		{"invalid json", "{\"rows\": ", ".json"},
		{"unknown label", `{"rows": [["?"]]}`, ".json"},
		{"incomplete keypad", `{"rows": [["1", "2", "="]]}`, ".jsonc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tt.data), tt.ext)
			assert.Error(t, err)
		})
	}
}

func TestParseLayout_DefaultName(t *testing.T) {
	data := `{"rows": [["0","1","2","3","4","5","6","7","8","9","+","-","*","/","="]]}`
	l, err := ParseLayout([]byte(data), ".json")
	require.NoError(t, err)
	assert.Equal(t, "custom", l.Name)
}

// TestMarshalLayoutYAML_RoundTrip verifies that an exported layout loads
// back to the same buttons.
func TestMarshalLayoutYAML_RoundTrip(t *testing.T) {
	data, err := MarshalLayoutYAML(DefaultLayout())
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Generated by linecalc.")

	l, err := ParseLayout(data, ".yml")
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), l)
}

func TestFindLayout(t *testing.T) {
	t.Run("none found", func(t *testing.T) {
		_, err := FindLayout(t.TempDir())
		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitLayoutNotFound, cliErr.Code)
	})

	t.Run("root json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".linecalc.json"), jsoncLayout)

		path, err := FindLayout(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".linecalc.json"), path)
	})

	t.Run("yaml preferred over jsonc", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".linecalc", "keypad.jsonc"), jsoncLayout)
		writeFile(t, filepath.Join(dir, ".linecalc", "keypad.yaml"), yamlLayout)

		path, err := FindLayout(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".linecalc", "keypad.yaml"), path)
	})
}
