package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const healthCondition = `{
  "logic": "all",
  "rules": [
    {"id": "r1", "sheet": "mc.jaime", "variable": "health", "operator": "greater_than", "value": 50}
  ]
}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCondition(t *testing.T, format string, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewConditionCommand(&RootOptions{Format: format})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	return out, errOut, cmd.Execute()
}

func TestConditionText(t *testing.T) {
	path := writeFixture(t, "cond.json", healthCondition)

	out, _, err := runCondition(t, "text", path, "--engine", "ink")
	require.NoError(t, err)
	assert.Equal(t, "mc_jaime_health > 50\n", out.String())
}

func TestConditionJSON(t *testing.T) {
	path := writeFixture(t, "cond.json", healthCondition)

	out, _, err := runCondition(t, "json", path, "--engine", "unity")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.JobID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "unity", data["engine"])
	assert.Equal(t, `Variable["mc.jaime.health"] > 50`, data["text"])
}

func TestConditionFromStdin(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewConditionCommand(&RootOptions{Format: "text"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(healthCondition))
	cmd.SetArgs([]string{"-", "--engine", "godot"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "mc_jaime_health > 50\n", out.String())
}

func TestConditionYAMLFixture(t *testing.T) {
	path := writeFixture(t, "cond.yaml", `
logic: any
rules:
  - sheet: flags
    variable: met-elder
    operator: equals
    value: true
  - sheet: mc.jaime
    variable: health
    operator: less_than
    value: 20
`)

	out, _, err := runCondition(t, "text", path, "--engine", "yarn")
	require.NoError(t, err)
	assert.Equal(t, "$flags_met_elder == true or $mc_jaime_health < 20\n", out.String())
}

func TestConditionCUEFixture(t *testing.T) {
	path := writeFixture(t, "cond.cue", `
logic: "all"
rules: [{
	sheet:    "mc.jaime"
	variable: "health"
	operator: "less_than"
	value:    100
}]
`)

	out, _, err := runCondition(t, "text", path, "--engine", "native")
	require.NoError(t, err)
	assert.Equal(t, "mc.jaime.health < 100\n", out.String())
}

func TestConditionWarningsOnStderr(t *testing.T) {
	path := writeFixture(t, "cond.json", `{
	  "logic": "all",
	  "rules": [
	    {"sheet": "mc.jaime", "variable": "inventory", "operator": "contains", "value": "ring"}
	  ]
	}`)

	out, errOut, err := runCondition(t, "text", path, "--engine", "ink")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "/* unsupported contains: mc_jaime_inventory */")
	assert.Contains(t, errOut.String(), "no ink equivalent")
}

func TestConditionWarningsInJSONEnvelope(t *testing.T) {
	path := writeFixture(t, "cond.json", `{
	  "logic": "all",
	  "rules": [
	    {"sheet": "mc.jaime", "variable": "inventory", "operator": "contains", "value": "ring"}
	  ]
	}`)

	out, _, err := runCondition(t, "json", path, "--engine", "ink")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)

	warnings, ok := data["warnings"].([]interface{})
	require.True(t, ok)
	require.Len(t, warnings, 1)
	warning := warnings[0].(map[string]interface{})
	assert.Equal(t, "unsupported_operator", warning["type"])
}

func TestConditionUnknownEngine(t *testing.T) {
	path := writeFixture(t, "cond.json", healthCondition)

	out, _, err := runCondition(t, "text", path, "--engine", "rpgmaker")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "E101")
	assert.Contains(t, out.String(), "rpgmaker")
}

func TestConditionLegacyString(t *testing.T) {
	// A bare expression string from the pre-visual editor era.
	path := writeFixture(t, "cond.json", `"health > 50"`)

	out, _, err := runCondition(t, "text", path, "--engine", "ink")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "E102")
	assert.Contains(t, out.String(), "legacy")
}

func TestConditionFileNotFound(t *testing.T) {
	out, _, err := runCondition(t, "text", "/nonexistent/cond.json", "--engine", "ink")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out.String(), "E002")
}

func TestConditionEmptyCompilesToNothing(t *testing.T) {
	path := writeFixture(t, "cond.json", `null`)

	out, _, err := runCondition(t, "text", path, "--engine", "articy")
	require.NoError(t, err)
	assert.Equal(t, "\n", out.String())
}
