package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talefold/talefold/internal/dialect"
)

func assignment(sheet, variable, operator string, value any) map[string]any {
	m := map[string]any{
		"sheet":    sheet,
		"variable": variable,
		"operator": operator,
	}
	if value != nil {
		m["value"] = value
	}
	return m
}

func TestInstruction_AbsentInputs(t *testing.T) {
	for _, input := range []any{nil, "not a list", map[string]any{}, 3.0} {
		text, warnings, err := Instruction(input, "ink")
		require.NoError(t, err)
		assert.Empty(t, text)
		assert.Empty(t, warnings)
	}
}

func TestInstruction_UnknownEngine(t *testing.T) {
	_, _, err := Instruction([]any{}, "renpy")

	var unknownErr *dialect.UnknownEngineError
	require.ErrorAs(t, err, &unknownErr)
}

func TestInstruction_OneStatementPerLine(t *testing.T) {
	list := []any{
		assignment("mc.jaime", "health", "set", "100"),
		assignment("mc.jaime", "gold", "add", "25"),
		assignment("flags", "met_elder", "set_true", nil),
	}

	testCases := []struct {
		engine string
		want   string
	}{
		{
			engine: "native",
			want:   "mc.jaime.health = 100\nmc.jaime.gold += 25\nflags.met_elder = true",
		},
		{
			engine: "ink",
			want:   "~ mc_jaime_health = 100\n~ mc_jaime_gold = mc_jaime_gold + 25\n~ flags_met_elder = true",
		},
		{
			engine: "yarn",
			want:   "<<set $mc_jaime_health to 100>>\n<<set $mc_jaime_gold to $mc_jaime_gold + 25>>\n<<set $flags_met_elder to true>>",
		},
		{
			engine: "unity",
			want:   `Variable["mc.jaime.health"] = 100` + "\n" + `Variable["mc.jaime.gold"] = Variable["mc.jaime.gold"] + 25` + "\n" + `Variable["flags.met_elder"] = true`,
		},
		{
			engine: "godot",
			want:   "mc_jaime_health = 100\nmc_jaime_gold += 25\nflags_met_elder = true",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.engine, func(t *testing.T) {
			text, warnings, err := Instruction(list, tc.engine)
			require.NoError(t, err)
			assert.Equal(t, tc.want, text)
			assert.Empty(t, warnings)
		})
	}
}

func TestInstruction_OrderPreserved(t *testing.T) {
	list := []any{
		assignment("a", "x", "set", "1"),
		assignment("b", "y", "set", "2"),
		assignment("c", "z", "set", "3"),
	}

	text, _, err := Instruction(list, "godot")
	require.NoError(t, err)
	assert.Equal(t, "a_x = 1\nb_y = 2\nc_z = 3", text)
}

func TestInstruction_InvalidEntriesDropped(t *testing.T) {
	list := []any{
		assignment("mc", "hp", "set", "1"),
		assignment("", "hp", "set", "2"), // no sheet
		"stray string",
		assignment("mc", "", "set", "3"), // no variable
		assignment("mc", "mp", "set", "4"),
	}

	text, warnings, err := Instruction(list, "godot")
	require.NoError(t, err)
	assert.Equal(t, "mc_hp = 1\nmc_mp = 4", text)
	assert.Empty(t, warnings)
}

func TestInstruction_MissingValueDefaultsToZero(t *testing.T) {
	list := []any{assignment("mc", "hp", "set", nil)}

	text, _, err := Instruction(list, "ink")
	require.NoError(t, err)
	assert.Equal(t, "~ mc_hp = 0", text)
}

func TestInstruction_SetIfUnset(t *testing.T) {
	list := []any{assignment("mc.jaime", "health", "set_if_unset", "10")}

	t.Run("godot expands", func(t *testing.T) {
		text, warnings, err := Instruction(list, "godot")
		require.NoError(t, err)
		assert.Equal(t, "if mc_jaime_health == null: mc_jaime_health = 10", text)
		assert.Empty(t, warnings)
	})

	t.Run("unity expands", func(t *testing.T) {
		text, warnings, err := Instruction(list, "unity")
		require.NoError(t, err)
		assert.Equal(t, `if Variable["mc.jaime.health"] == nil then Variable["mc.jaime.health"] = 10 end`, text)
		assert.Empty(t, warnings)
	})

	t.Run("articy degrades with warning", func(t *testing.T) {
		text, warnings, err := Instruction(list, "articy")
		require.NoError(t, err)
		assert.Equal(t, "mc.jaime.health = 10", text)
		require.Len(t, warnings, 1)
		assert.Equal(t, "set_if_unset", warnings[0].Details.Operator)
	})
}

func TestInstruction_VariableRefValue(t *testing.T) {
	list := []any{
		map[string]any{
			"sheet":       "mc.jaime",
			"variable":    "health",
			"operator":    "set",
			"value":       "max_health",
			"value_type":  "variable_ref",
			"value_sheet": "mc.jaime",
		},
	}

	text, _, err := Instruction(list, "yarn")
	require.NoError(t, err)
	assert.Equal(t, "<<set $mc_jaime_health to $mc_jaime_max_health>>", text)
}

func TestInstruction_TypedSliceInput(t *testing.T) {
	list := []map[string]any{
		assignment("mc", "hp", "set", "5"),
	}

	text, _, err := Instruction(list, "native")
	require.NoError(t, err)
	assert.Equal(t, "mc.hp = 5", text)
}

func TestInstruction_WarningCountMatchesUnsupportedUses(t *testing.T) {
	list := []any{
		assignment("a", "x", "set_if_unset", "1"),
		assignment("b", "y", "set", "2"),
		assignment("c", "z", "set_if_unset", "3"),
	}

	_, warnings, err := Instruction(list, "ink")
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
}
