package cssvar

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// declRegex matches one custom property declaration inside a :root block.
var declRegex = regexp.MustCompile(`--([A-Za-z0-9_-]+)\s*:\s*([^;{}]+);`)

// Stylesheet is a Sink backed by a CSS file holding a single :root block.
//
// Opening an existing file loads its declarations, so syncs are accretive:
// variables from swatches that were removed from the design file are kept
// until the stylesheet itself is deleted. Re-applying the same document
// tree produces byte-identical output.
type Stylesheet struct {
	path string
	vars map[string]string
}

// OpenStylesheet loads the stylesheet at path, or starts an empty one when
// the file does not exist yet. Any other read failure is returned, so an
// unusable style root fails fast instead of silently dropping writes.
func OpenStylesheet(path string) (*Stylesheet, error) {
	s := &Stylesheet{
		path: path,
		vars: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open stylesheet %q: %w", path, err)
	}

	for _, m := range declRegex.FindAllStringSubmatch(string(data), -1) {
		s.vars[m[1]] = strings.TrimSpace(m[2])
	}
	return s, nil
}

// SetVariable stages a property. Empty values suppress the write entirely.
func (s *Stylesheet) SetVariable(name, value string) error {
	if value == "" {
		return nil
	}
	s.vars[name] = value
	return nil
}

// Variables returns a copy of the staged property set, including any
// declarations loaded from a pre-existing file.
func (s *Stylesheet) Variables() map[string]string {
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Flush renders the :root block and writes it to disk.
func (s *Stylesheet) Flush() error {
	if err := os.WriteFile(s.path, []byte(Render(s.vars)), 0644); err != nil {
		return fmt.Errorf("failed to write stylesheet %q: %w", s.path, err)
	}
	return nil
}

// Render produces a :root block with declarations in sorted name order.
// Values are emitted bare ("0 0 255") so stylesheets can consume them via
// rgb(var(--token)).
func Render(vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  --%s: %s;\n", name, vars[name]))
	}
	sb.WriteString("}\n")
	return sb.String()
}
