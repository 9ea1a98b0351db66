package whisparg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBase64String(t *testing.T) {
	v, err := ParseBase64String("SGVsbG8sIHdvcmxkIQ==")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", string(v))
}

func TestParseBase64StringRejectsInvalidInput(t *testing.T) {
	_, err := ParseBase64String("not base64!!!")
	assert.Error(t, err)
}

func TestResolveFuncWithBase64Converter(t *testing.T) {
	resolved, err := ResolveFunc(
		[]string{"prog", "--secret", "SGVsbG8sIHdvcmxkIQ=="},
		New[Base64String]("secret"),
		ParseBase64String,
	)
	require.NoError(t, err)

	v, ok := resolved.Value()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", string(v))
}
