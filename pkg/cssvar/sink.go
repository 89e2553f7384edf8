// Package cssvar persists resolved color tokens as CSS custom properties.
//
// The document style root of a browser has no equivalent here, so the
// global-state write is modeled as the Sink capability: callers inject a
// Sink and the pipeline writes through it. The Stylesheet sink maintains a
// :root block on disk; the Memory sink backs tests and dry runs.
package cssvar

import "sort"

// Sink receives resolved custom properties. Implementations must treat an
// empty value as a no-op: an empty-string property is never written.
type Sink interface {
	SetVariable(name, value string) error
}

// Memory is an in-memory Sink. Writes are last-write-wins per name, the
// same consistency model a cascading style root provides.
type Memory struct {
	vars map[string]string
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{vars: make(map[string]string)}
}

// SetVariable records the property. Empty values suppress the write.
func (m *Memory) SetVariable(name, value string) error {
	if value == "" {
		return nil
	}
	m.vars[name] = value
	return nil
}

// Get returns the current value of a property and whether it is set.
func (m *Memory) Get(name string) (string, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Len returns the number of properties held.
func (m *Memory) Len() int {
	return len(m.vars)
}

// Variables returns a copy of the current property set.
func (m *Memory) Variables() map[string]string {
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// Names returns the property names in sorted order.
func (m *Memory) Names() []string {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
