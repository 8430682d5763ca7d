package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleByName_KnownPresets(t *testing.T) {
	for _, name := range StyleNames() {
		s, err := StyleByName(name)
		require.NoError(t, err, "preset %q", name)

		// 每个预设必须定义全部四个字形。
		assert.NotZero(t, s.FilledLow, "preset %q FilledLow", name)
		assert.NotZero(t, s.FilledMid, "preset %q FilledMid", name)
		assert.NotZero(t, s.FilledHigh, "preset %q FilledHigh", name)
		assert.NotZero(t, s.Empty, "preset %q Empty", name)
	}
}

func TestStyleByName_CaseInsensitive(t *testing.T) {
	want, err := StyleByName("SimpleThick1")
	require.NoError(t, err)

	got, err := StyleByName("  simplethick1 ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStyleByName_Unknown_ReturnsError(t *testing.T) {
	_, err := StyleByName("Fancy")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), `unknown style "Fancy"`)
}

func TestStyleNames_SixPresetsDefaultFirst(t *testing.T) {
	names := StyleNames()
	require.Len(t, names, 6)
	assert.Equal(t, DefaultStyleName, names[0])
}

func TestDefaultStyle_MatchesNamedLookup(t *testing.T) {
	byName, err := StyleByName(DefaultStyleName)
	require.NoError(t, err)
	assert.Equal(t, byName, DefaultStyle())
}

func TestStyleNames_ReturnsCopy(t *testing.T) {
	names := StyleNames()
	names[0] = "mutated"
	assert.Equal(t, DefaultStyleName, StyleNames()[0])
}
