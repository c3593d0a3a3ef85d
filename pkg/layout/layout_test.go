package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	circlex "github.com/gucio321/circlex/pkg"
)

func TestDefaultLayout(t *testing.T) {
	l, err := Get(Default)
	require.NoError(t, err)
	assert.Equal(t, circlex.DefaultStride, l.Stride)
	assert.Equal(t, circlex.DefaultSkip, l.Skip)
	assert.Equal(t, 4, l.DataLines())
}

func TestEmbeddedLayoutsAreValid(t *testing.T) {
	all, err := List()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	names := map[string]bool{}
	for _, l := range all {
		assert.NoError(t, l.Validate(), l.Name)
		assert.False(t, names[l.Name], "duplicate layout %s", l.Name)
		names[l.Name] = true
	}
}

func TestUnknownLayout(t *testing.T) {
	l, err := Get("nope")
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestValidate(t *testing.T) {
	err := Layout{Name: "broken", Stride: 2, Skip: 2}.Validate()
	require.ErrorIs(t, err, circlex.ErrInvalidStride)
	assert.Contains(t, err.Error(), `"broken"`)
}
