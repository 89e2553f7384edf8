package cssvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetVariable(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.SetVariable("colors-Blue-500", "0 0 255"))

	v, ok := m.Get("colors-Blue-500")
	assert.True(t, ok)
	assert.Equal(t, "0 0 255", v)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryEmptyValueSuppressed(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.SetVariable("colors-Blue-500", ""))

	_, ok := m.Get("colors-Blue-500")
	assert.False(t, ok, "empty value must not create a property")
	assert.Equal(t, 0, m.Len())
}

func TestMemoryLastWriteWins(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.SetVariable("colors-Blue-500", "0 0 255"))
	require.NoError(t, m.SetVariable("colors-Blue-500", "0 0 200"))

	v, _ := m.Get("colors-Blue-500")
	assert.Equal(t, "0 0 200", v)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryNamesSorted(t *testing.T) {
	m := NewMemory()
	m.SetVariable("b", "2")
	m.SetVariable("a", "1")
	m.SetVariable("c", "3")

	assert.Equal(t, []string{"a", "b", "c"}, m.Names())
}

func TestMemoryVariablesIsACopy(t *testing.T) {
	m := NewMemory()
	m.SetVariable("a", "1")

	vars := m.Variables()
	vars["a"] = "changed"

	v, _ := m.Get("a")
	assert.Equal(t, "1", v)
}
