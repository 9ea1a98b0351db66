package whisparg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortArgument(t *testing.T) {
	arg := NewShort[int]('n', "number")

	assert.Equal(t, "number", arg.Name())
	assert.Equal(t, "n", arg.ShortName())
	assert.False(t, arg.IsRequired())

	_, ok := arg.DefaultValue()
	assert.False(t, ok)
	_, ok = arg.Value()
	assert.False(t, ok)
}

func TestNewArgumentWithoutShortName(t *testing.T) {
	arg := New[string]("message")

	assert.Equal(t, "message", arg.Name())
	assert.Equal(t, "", arg.ShortName())
}

func TestBuilderReturnsCopy(t *testing.T) {
	base := New[int]("number")
	described := base.Description("An integer number argument")
	defaulted := described.Default(42)
	required := defaulted.Required(true)

	assert.Equal(t, "", base.Info().Description)
	assert.Equal(t, "An integer number argument", described.Info().Description)

	_, ok := described.DefaultValue()
	assert.False(t, ok)
	v, ok := defaulted.DefaultValue()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	assert.False(t, defaulted.IsRequired())
	assert.True(t, required.IsRequired())
}

func TestValueFallsBackToDefault(t *testing.T) {
	arg := NewShort[int]('n', "number").Default(42)

	v, ok := arg.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestResolvedValueOverridesDefault(t *testing.T) {
	arg := NewShort[int]('n', "number").Default(10)

	resolved, err := Resolve([]string{"prog", "--number", "99"}, arg)
	require.NoError(t, err)

	v, ok := resolved.Value()
	require.True(t, ok)
	assert.Equal(t, 99, v)

	// The default is untouched on the resolved snapshot, and the original
	// declaration carries no value at all.
	d, ok := resolved.DefaultValue()
	require.True(t, ok)
	assert.Equal(t, 10, d)
	v, _ = arg.Value()
	assert.Equal(t, 10, v)
}

func TestHelpStringNonFlag(t *testing.T) {
	s := NewShort[int]('n', "number").
		Description("An integer argument").
		Default(42).
		HelpString()

	assert.Contains(t, s, "-n, --number <NUMBER>")
	assert.Contains(t, s, "An integer argument")
	assert.Contains(t, s, "(Default: 42)")
}

func TestHelpStringFlag(t *testing.T) {
	s := NewShort[Flag]('f', "force").
		Description("Forces an action").
		Default(FlagFalse).
		HelpString()

	assert.Contains(t, s, "-f, --force")
	assert.NotContains(t, s, "<FORCE>")
	assert.Contains(t, s, "Forces an action")
	assert.Contains(t, s, "(Default: false)")
}

func TestInfoKey(t *testing.T) {
	assert.Equal(t, "--length (-l) <LENGTH>", NewShort[uint8]('l', "length").Info().Key())
	assert.Equal(t, "--message <MESSAGE>", New[string]("message").Info().Key())
	assert.Equal(t, "--force (-f)", NewShort[Flag]('f', "force").Info().Key())
	assert.Equal(t, "--quiet", New[Flag]("quiet").Info().Key())
}

func TestHelpPreset(t *testing.T) {
	info := Help.Info()
	assert.Equal(t, "help", info.Name)
	assert.Equal(t, "h", info.ShortName)
	assert.True(t, info.IsFlag)
	assert.False(t, info.IsRequired)

	v, ok := Help.Value()
	require.True(t, ok)
	assert.False(t, v.Bool())
}
