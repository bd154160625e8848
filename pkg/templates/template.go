package templates

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-poline/pkg/document"
)

const (
	metaDescription = "_description"
	metaVersion     = "_template_version"
)

// Template is a named baseline order line.
type Template struct {
	Name        string
	Description string
	Version     any
	Path        string

	doc map[string]any
}

// New wraps a decoded document. The document is copied.
func New(name string, doc map[string]any) Template {
	tpl := Template{Name: name, doc: document.Clone(doc)}
	if desc, ok := doc[metaDescription].(string); ok {
		tpl.Description = desc
	}
	tpl.Version = document.CloneValue(doc[metaVersion])
	return tpl
}

// Doc returns a deep copy of the template document, metadata included.
func (t Template) Doc() map[string]any {
	return document.Clone(t.doc)
}

// MaterialType reads material_type.value, "Unknown" when unset.
func (t Template) MaterialType() string {
	return valueOr(t.doc, "material_type.value", "Unknown")
}

// Vendor reads vendor.value, "Unknown" when unset.
func (t Template) Vendor() string {
	return valueOr(t.doc, "vendor.value", "Unknown")
}

// Label is the one-line menu entry for the template.
func (t Template) Label() string {
	desc := t.Description
	if desc == "" {
		desc = "No description"
	}
	return fmt.Sprintf("%s - %s (%s, %s)", t.Name, desc, t.MaterialType(), t.Vendor())
}

func valueOr(doc map[string]any, path, fallback string) string {
	v, ok := document.Get(doc, path)
	if !ok || v == nil {
		return fallback
	}
	return fmt.Sprint(v)
}

// Set is the loaded collection of templates keyed by name.
type Set struct {
	byName map[string]Template
}

// NewSet builds a Set; later templates with a duplicate name win.
func NewSet(templates ...Template) Set {
	s := Set{byName: make(map[string]Template, len(templates))}
	for _, tpl := range templates {
		s.byName[tpl.Name] = tpl
	}
	return s
}

// Len reports the number of templates.
func (s Set) Len() int {
	return len(s.byName)
}

// Get looks a template up by name.
func (s Set) Get(name string) (Template, bool) {
	tpl, ok := s.byName[name]
	return tpl, ok
}

// Names lists template names sorted alphabetically.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All lists templates sorted by name.
func (s Set) All() []Template {
	names := s.Names()
	out := make([]Template, len(names))
	for i, name := range names {
		out[i] = s.byName[name]
	}
	return out
}
