package htoprc

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsKeepInsertionOrder(t *testing.T) {
	var opts Options
	opts.Set("b", "1")
	opts.Set("a", "2")
	opts.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, opts.Keys())
	v, ok := opts.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	opts.Delete("b")
	assert.Equal(t, []string{"a"}, opts.Keys())
	_, ok = opts.Get("b")
	assert.False(t, ok)
}

func TestSetUnknownRejectsNativeKeys(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.SetUnknown("color_scheme", "3"))
	assert.False(t, cfg.SetUnknown("column_meters_1", "CPU"))
	assert.False(t, cfg.SetUnknown("screen:Main", "PID"))
	assert.True(t, cfg.SetUnknown("future_option", "x"))
	assert.Equal(t, Options{{Key: "future_option", Value: "x"}}, cfg.UnknownOptions)
}

func TestCloneIsDeep(t *testing.T) {
	cfg := ParseConfig(sampleRC)
	clone := cfg.Clone()

	clone.Columns[0] = 1000
	clone.LeftMeters[0].Type = "Changed"
	clone.Screens[0].Columns[0] = "Changed"
	clone.Screens[0].UnknownOptions[0].Value = "Changed"
	clone.UnknownOptions[0].Value = "Changed"

	assert.Equal(t, 0, cfg.Columns[0])
	assert.Equal(t, "LeftCPUs2", cfg.LeftMeters[0].Type)
	assert.Equal(t, "PID", cfg.Screens[0].Columns[0])
	assert.Equal(t, "PID", cfg.Screens[0].UnknownOptions[0].Value)
	assert.Equal(t, "some_value", cfg.UnknownOptions[0].Value)
	assert.False(t, cfg.Equal(clone))
}

func TestEqualTreatsNilAndEmptyAlike(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	a.Screens = nil
	a.UnknownOptions = nil

	assert.True(t, a.Equal(b))

	b.Screens = append(b.Screens, ScreenDefinition{Name: "x"})
	assert.False(t, a.Equal(b))
}

func TestOptional(t *testing.T) {
	none := None[bool]()
	falsy := Some(false)

	assert.False(t, none.IsSet())
	assert.True(t, falsy.IsSet())
	assert.NotEqual(t, none, falsy)
	assert.False(t, none.Equal(falsy))
	assert.True(t, none.OrElse(true))
	assert.False(t, falsy.OrElse(true))
}

func TestConfigJSON(t *testing.T) {
	cfg := ParseConfig("screen:Main=PID\n.tree_view=0")

	data, err := sonic.Marshal(cfg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, sonic.Unmarshal(data, &raw))
	assert.Nil(t, raw["htopVersion"])
	assert.Equal(t, float64(15), raw["delay"])
	screens := raw["screens"].([]any)
	screen := screens[0].(map[string]any)
	assert.Nil(t, screen["sortKey"])
	assert.Equal(t, false, screen["treeView"])

	var decoded Config
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.True(t, cfg.Equal(decoded))
}

func TestConfigJSONMissingKeysUseDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, sonic.Unmarshal([]byte(`{"colorScheme":5,"htopVersion":"3.3.0"}`), &cfg))

	assert.Equal(t, 5, cfg.ColorScheme)
	assert.Equal(t, 15, cfg.Delay)
	assert.Equal(t, Some("3.3.0"), cfg.HtopVersion)
	assert.Equal(t, DefaultConfig().Columns, cfg.Columns)
}
