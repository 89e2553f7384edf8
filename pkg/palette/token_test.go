package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-theme-sync/pkg/figma"
)

func TestTriplet(t *testing.T) {
	tests := []struct {
		name   string
		fills  []figma.Paint
		want   string
		wantOK bool
	}{
		{
			name:   "full red",
			fills:  solid(1, 0, 0),
			want:   "255 0 0",
			wantOK: true,
		},
		{
			name: "half channel rounds away from zero",
			// 0.5*255 = 127.5 -> 128
			fills:  solid(1, 0, 0.5),
			want:   "255 0 128",
			wantOK: true,
		},
		{
			name:   "pure blue",
			fills:  solid(0, 0, 1),
			want:   "0 0 255",
			wantOK: true,
		},
		{
			name:   "only the first fill is read",
			fills:  append(solid(0, 0, 1), solid(1, 0, 0)...),
			want:   "0 0 255",
			wantOK: true,
		},
		{
			name: "nil fills",
		},
		{
			name:  "empty fills",
			fills: []figma.Paint{},
		},
		{
			name:  "fill without color",
			fills: []figma.Paint{{Type: "GRADIENT_LINEAR"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Triplet(tt.fills)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariableName(t *testing.T) {
	assert.Equal(t, "colors-Blue-500", VariableName("Colors", "Blue-500"))
	assert.Equal(t, "brand-colors-Primary", VariableName("Brand Colors", "Primary"))
	assert.Equal(t, "status-Error_Dark", VariableName("STATUS", "Error_Dark"))
	assert.Equal(t, "colors-Blue-500", VariableName("Colors", "Blue 500"))
}

func TestResolve(t *testing.T) {
	swatches := []Swatch{
		{Group: "Colors", Node: &figma.Node{Name: "Blue-500", Type: "RECTANGLE", Fills: solid(0, 0, 1)}},
		{Group: "Colors", Node: &figma.Node{Name: "Empty", Type: "RECTANGLE"}},
		{Group: "Neutral", Node: &figma.Node{Name: "White", Type: "RECTANGLE", Fills: solid(1, 1, 1)}},
	}

	tokens, err := Resolve(swatches, nil)
	require.NoError(t, err)
	require.Len(t, tokens, 2, "swatch without a color contributes no token")

	assert.Equal(t, "colors-Blue-500", tokens[0].Name)
	assert.Equal(t, "0 0 255", tokens[0].Value)
	assert.Equal(t, "#0000ff", tokens[0].Hex)

	assert.Equal(t, "neutral-White", tokens[1].Name)
	assert.Equal(t, "255 255 255", tokens[1].Value)
}

func TestResolveDuplicateLastWins(t *testing.T) {
	swatches := []Swatch{
		{Group: "Colors", Node: &figma.Node{Name: "Blue-500", Type: "RECTANGLE", Fills: solid(0, 0, 1)}},
		{Group: "Colors", Node: &figma.Node{Name: "Blue-500", Type: "RECTANGLE", Fills: solid(1, 0, 0)}},
	}

	tokens, err := Resolve(swatches, nil)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "255 0 0", tokens[0].Value)
}

func TestResolveOverrides(t *testing.T) {
	swatches := []Swatch{
		{Group: "Colors", Node: &figma.Node{Name: "Blue-500", Type: "RECTANGLE", Fills: solid(0, 0, 1)}},
	}

	tokens, err := Resolve(swatches, map[string]string{
		"colors-Blue-500": "#ff0000",     // replaces the tree value
		"extra-Accent":    "rgb(0,128,0)", // appended as a new token
	})
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, "255 0 0", tokens[0].Value)
	assert.Equal(t, "#ff0000", tokens[0].Hex)

	assert.Equal(t, "extra-Accent", tokens[1].Name)
	assert.Equal(t, "0 128 0", tokens[1].Value)
}

func TestResolveInvalidOverride(t *testing.T) {
	_, err := Resolve(nil, map[string]string{"colors-Bad": "not-a-color"})
	assert.Error(t, err)
}

func TestResolveEmptyInput(t *testing.T) {
	tokens, err := Resolve(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
