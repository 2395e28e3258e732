package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func gateScenario() *Scenario {
	return &Scenario{
		Name:    "gate",
		Engines: []string{"ink", "native"},
		Condition: map[string]interface{}{
			"logic": "all",
			"rules": []interface{}{
				map[string]interface{}{
					"sheet":    "mc.jaime",
					"variable": "health",
					"operator": "greater_than",
					"value":    50,
				},
			},
		},
		Instruction: []map[string]interface{}{
			{"sheet": "mc.jaime", "variable": "gold", "operator": "add", "value": 5},
		},
	}
}

func TestRunCompilesEveryTarget(t *testing.T) {
	result, err := Run(gateScenario())
	require.NoError(t, err)
	assert.True(t, result.Pass)
	require.Len(t, result.Exports, 2)

	ink := result.ExportFor("ink")
	require.NotNil(t, ink)
	assert.Equal(t, "mc_jaime_health > 50", ink.Condition)
	assert.Equal(t, "~ mc_jaime_gold = mc_jaime_gold + 5", ink.Instruction)
	assert.Empty(t, ink.Warnings)

	native := result.ExportFor("native")
	require.NotNil(t, native)
	assert.Equal(t, "mc.jaime.health > 50", native.Condition)
	assert.Equal(t, "mc.jaime.gold += 5", native.Instruction)
}

func TestRunExpectationPass(t *testing.T) {
	s := gateScenario()
	s.Expect = []Expectation{
		{
			Engine:      "ink",
			Condition:   strptr("mc_jaime_health > 50"),
			Instruction: strptr("~ mc_jaime_gold = mc_jaime_gold + 5"),
			Warnings:    intptr(0),
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
}

func TestRunExpectationMismatch(t *testing.T) {
	s := gateScenario()
	s.Expect = []Expectation{
		{Engine: "ink", Condition: strptr("something else")},
		{Engine: "native", Warnings: intptr(3)},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "ink condition")
	assert.Contains(t, result.Errors[1], "native warnings")
}

func TestRunExpectationUntargetedEngine(t *testing.T) {
	s := gateScenario()
	s.Expect = []Expectation{{Engine: "godot", Condition: strptr("x")}}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no export")
}

func TestRunConditionOnly(t *testing.T) {
	s := gateScenario()
	s.Instruction = nil

	result, err := Run(s)
	require.NoError(t, err)
	ink := result.ExportFor("ink")
	require.NotNil(t, ink)
	assert.Equal(t, "mc_jaime_health > 50", ink.Condition)
	assert.Empty(t, ink.Instruction)
}

func TestRunCollectsWarningsFromBothCompiles(t *testing.T) {
	s := &Scenario{
		Name:    "warn",
		Engines: []string{"ink"},
		Condition: map[string]interface{}{
			"logic": "all",
			"rules": []interface{}{
				map[string]interface{}{
					"sheet":    "mc.jaime",
					"variable": "inventory",
					"operator": "contains",
					"value":    "ring",
				},
			},
		},
		Instruction: []map[string]interface{}{
			{"sheet": "flags", "variable": "searched", "operator": "set_if_unset", "value": true},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	ink := result.ExportFor("ink")
	require.NotNil(t, ink)
	assert.Len(t, ink.Warnings, 2)
}

func TestSnapshotFormat(t *testing.T) {
	exports := []Export{
		{Engine: "ink", Condition: "flags_done", Instruction: "~ a = 1\n~ b = 2"},
	}

	got := string(Snapshot("demo", exports))
	want := "scenario: demo\n" +
		"---\n" +
		"engine: ink\n" +
		"condition: flags_done\n" +
		"instruction[0]: ~ a = 1\n" +
		"instruction[1]: ~ b = 2\n"
	assert.Equal(t, want, got)
}
