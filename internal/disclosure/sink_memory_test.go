package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()

	v, err := s.Read()
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Write("secret"))
	v, _ = s.Read()
	assert.Equal(t, "secret", v)

	require.NoError(t, s.Clear())
	v, _ = s.Read()
	assert.Empty(t, v)
}
