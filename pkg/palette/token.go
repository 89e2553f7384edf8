package palette

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/hellenic-development/figma-theme-sync/pkg/figma"
)

// Token is one resolved color token, ready to be written as a CSS custom
// property. Value is the space-separated "R G B" triplet consumable via
// rgb(var(--name)); Hex is the #rrggbb companion form.
type Token struct {
	Name  string
	Value string
	Hex   string
}

// Triplet converts a swatch's first fill color to a "R G B" string with
// each channel independently rounded half away from zero (math.Round),
// so {r:1, g:0, b:0.5} becomes "255 0 128". Missing fills, empty fills, or
// a fill without a color yield ok=false: the swatch contributes no token.
func Triplet(fills []figma.Paint) (value string, ok bool) {
	if len(fills) == 0 || fills[0].Color == nil {
		return "", false
	}
	c := fills[0].Color
	return fmt.Sprintf("%d %d %d", channel(c.R), channel(c.G), channel(c.B)), true
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

// Resolve turns collected swatches into tokens, named
// "<group-lowercased>-<swatch-name>". Swatches without a resolvable color
// are skipped silently. Overrides map token names to any CSS color string
// (hex, rgb(), named); they replace matching tokens and append unknown
// names as extra tokens. An unparsable override color is a fatal error.
func Resolve(swatches []Swatch, overrides map[string]string) ([]Token, error) {
	tokens := make([]Token, 0, len(swatches))
	index := make(map[string]int, len(swatches))

	for _, sw := range swatches {
		value, ok := Triplet(sw.Node.Fills)
		if !ok {
			continue
		}
		name := VariableName(sw.Group, sw.Node.Name)
		tok := Token{
			Name:  name,
			Value: value,
			Hex:   hexOf(sw.Node.Fills[0].Color),
		}
		if i, exists := index[name]; exists {
			// Same group/swatch pair appearing twice: last write wins.
			tokens[i] = tok
			continue
		}
		index[name] = len(tokens)
		tokens = append(tokens, tok)
	}

	// Apply overrides in sorted order for deterministic output.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c, err := csscolorparser.Parse(overrides[name])
		if err != nil {
			return nil, fmt.Errorf("invalid override color for %q: %w", name, err)
		}
		tok := Token{
			Name:  name,
			Value: fmt.Sprintf("%d %d %d", channel(c.R), channel(c.G), channel(c.B)),
			Hex:   colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(),
		}
		if i, exists := index[name]; exists {
			tokens[i] = tok
		} else {
			index[name] = len(tokens)
			tokens = append(tokens, tok)
		}
	}

	return tokens, nil
}

// VariableName derives the custom property name (without the -- prefix)
// from a content group and swatch name. The group is lowercased and
// sanitized; the swatch name keeps its case so "Blue-500" under "Colors"
// becomes "colors-Blue-500".
func VariableName(group, swatch string) string {
	return sanitizeGroup(group) + "-" + sanitizeSwatch(swatch)
}

func hexOf(c *figma.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// sanitizeGroup converts a group name to kebab-case: lowercase, spaces and
// underscores become hyphens, everything else non-alphanumeric is dropped.
func sanitizeGroup(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// sanitizeSwatch keeps the swatch name's case but replaces whitespace with
// hyphens and drops characters that are not valid in a custom property name.
func sanitizeSwatch(s string) string {
	s = strings.ReplaceAll(s, " ", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
