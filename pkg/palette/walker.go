// Package palette locates color swatches inside a Figma document tree and
// resolves them into CSS custom property tokens.
//
// The walk follows a fixed path of child-name matches: the document root
// must have a child named "Content" (configurable), each of its children is
// a content group, and each group contributes the RECTANGLE children of its
// "Palette" child as swatches. A missing named child at any level simply
// yields an empty branch; structure lookups never fail.
package palette

import "github.com/hellenic-development/figma-theme-sync/pkg/figma"

const (
	// DefaultContentName is the expected name of the document child that
	// holds the content groups.
	DefaultContentName = "Content"

	// DefaultPaletteName is the expected name of the per-group child whose
	// rectangles are the color swatches.
	DefaultPaletteName = "Palette"

	swatchType = "RECTANGLE"
)

// Swatch is a single palette entry: a rectangle node together with the
// name of the content group it belongs to.
type Swatch struct {
	Group string
	Node  *figma.Node
}

// ChildNamed returns the first direct child with exactly the given name,
// or nil when no such child exists. A nil node has no children.
func ChildNamed(node *figma.Node, name string) *figma.Node {
	if node == nil {
		return nil
	}
	for i := range node.Children {
		if node.Children[i].Name == name {
			return &node.Children[i]
		}
	}
	return nil
}

// CollectSwatches walks root -> contentName -> group -> paletteName and
// returns every rectangle swatch found, in input order. Empty contentName
// and paletteName fall back to the defaults. A nil root or any missing
// named child along the path produces an empty result, never an error.
func CollectSwatches(root *figma.Node, contentName, paletteName string) []Swatch {
	if contentName == "" {
		contentName = DefaultContentName
	}
	return CollectFromContent(ChildNamed(root, contentName), paletteName)
}

// CollectFromContent collects swatches from a content container whose
// children are the content groups. Used directly for node-scoped fetches,
// where the fetched node is the content frame itself.
func CollectFromContent(content *figma.Node, paletteName string) []Swatch {
	if content == nil {
		return nil
	}
	if paletteName == "" {
		paletteName = DefaultPaletteName
	}

	var swatches []Swatch
	for i := range content.Children {
		group := &content.Children[i]
		pal := ChildNamed(group, paletteName)
		if pal == nil {
			continue
		}
		for j := range pal.Children {
			if pal.Children[j].Type != swatchType {
				continue
			}
			swatches = append(swatches, Swatch{
				Group: group.Name,
				Node:  &pal.Children[j],
			})
		}
	}
	return swatches
}
