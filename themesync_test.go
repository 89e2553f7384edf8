package themesync_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themesync "github.com/hellenic-development/figma-theme-sync"
	"github.com/hellenic-development/figma-theme-sync/pkg/cssvar"
	"github.com/hellenic-development/figma-theme-sync/pkg/figma"
)

// writeSnapshot saves a minimal design document with a single content
// group "Colors" holding a Palette of the given swatches.
func writeSnapshot(t *testing.T, swatches []figma.Node) string {
	t.Helper()

	resp := &figma.FileResponse{
		Name: "Design System",
		Document: figma.Node{
			ID:   "0:0",
			Name: "Document",
			Type: "DOCUMENT",
			Children: []figma.Node{
				{Name: "Content", Type: "CANVAS", Children: []figma.Node{
					{Name: "Colors", Type: "FRAME", Children: []figma.Node{
						{Name: "Palette", Type: "FRAME", Children: swatches},
					}},
				}},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, figma.SaveSnapshot(path, resp))
	return path
}

func blueSwatch() figma.Node {
	return figma.Node{
		Name:  "Blue-500",
		Type:  "RECTANGLE",
		Fills: []figma.Paint{{Type: "SOLID", Color: &figma.Color{B: 1, A: 1}}},
	}
}

func TestRunWritesStylesheet(t *testing.T) {
	snapshot := writeSnapshot(t, []figma.Node{blueSwatch()})
	stylesheet := filepath.Join(t.TempDir(), "theme.css")

	sink, err := cssvar.OpenStylesheet(stylesheet)
	require.NoError(t, err)

	result, err := themesync.Run(themesync.Options{
		SnapshotPath: snapshot,
		Sink:         sink,
	})
	require.NoError(t, err)

	assert.Equal(t, "Design System", result.FileName)
	require.Len(t, result.Tokens, 1)
	assert.Equal(t, "colors-Blue-500", result.Tokens[0].Name)
	assert.Equal(t, "0 0 255", result.Tokens[0].Value)
	assert.Equal(t, map[string]int{"Colors": 1}, result.GroupCounts)

	data, err := os.ReadFile(stylesheet)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--colors-Blue-500: 0 0 255;")
}

func TestRunEmptyFillsWritesNothing(t *testing.T) {
	snapshot := writeSnapshot(t, []figma.Node{
		{Name: "Hollow", Type: "RECTANGLE", Fills: []figma.Paint{}},
	})

	sink := cssvar.NewMemory()
	result, err := themesync.Run(themesync.Options{
		SnapshotPath: snapshot,
		Sink:         sink,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Tokens)
	assert.Equal(t, 0, sink.Len())
}

func TestRunMissingContentIsNotAnError(t *testing.T) {
	resp := &figma.FileResponse{
		Name:     "No Palette Here",
		Document: figma.Node{Name: "Document", Type: "DOCUMENT"},
	}
	snapshot := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, figma.SaveSnapshot(snapshot, resp))

	sink := cssvar.NewMemory()
	result, err := themesync.Run(themesync.Options{
		SnapshotPath: snapshot,
		Sink:         sink,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Tokens)
	assert.Equal(t, 0, sink.Len())
}

func TestRunHexCompanions(t *testing.T) {
	snapshot := writeSnapshot(t, []figma.Node{blueSwatch()})

	sink := cssvar.NewMemory()
	_, err := themesync.Run(themesync.Options{
		SnapshotPath: snapshot,
		Hex:          true,
		Sink:         sink,
	})
	require.NoError(t, err)

	v, ok := sink.Get("colors-Blue-500-hex")
	require.True(t, ok)
	assert.Equal(t, "#0000ff", v)
}

func TestRunIdempotent(t *testing.T) {
	snapshot := writeSnapshot(t, []figma.Node{blueSwatch()})
	stylesheet := filepath.Join(t.TempDir(), "theme.css")

	apply := func() string {
		sink, err := cssvar.OpenStylesheet(stylesheet)
		require.NoError(t, err)
		_, err = themesync.Run(themesync.Options{
			SnapshotPath: snapshot,
			Sink:         sink,
		})
		require.NoError(t, err)

		data, err := os.ReadFile(stylesheet)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, apply(), apply())
}

func TestRunOverrides(t *testing.T) {
	snapshot := writeSnapshot(t, []figma.Node{blueSwatch()})

	sink := cssvar.NewMemory()
	_, err := themesync.Run(themesync.Options{
		SnapshotPath: snapshot,
		Overrides:    map[string]string{"colors-Blue-500": "#102030"},
		Sink:         sink,
	})
	require.NoError(t, err)

	v, _ := sink.Get("colors-Blue-500")
	assert.Equal(t, "16 32 48", v)
}

func TestRunRequiresASource(t *testing.T) {
	_, err := themesync.Run(themesync.Options{})
	assert.Error(t, err)
}

func TestRunRequiresATokenForURLs(t *testing.T) {
	_, err := themesync.Run(themesync.Options{
		FileURL: "https://www.figma.com/design/ABC123/Theme",
	})
	assert.Error(t, err)
}
