package merge

import (
	"encoding/json"

	"github.com/goliatone/go-poline/pkg/document"
)

// Record is a merged PO line. It owns its document; accessors hand out
// copies so a Record cannot be changed after Merge returns.
type Record struct {
	doc map[string]any
}

// Doc returns a deep copy of the merged document.
func (r Record) Doc() map[string]any {
	return document.Clone(r.doc)
}

// Get resolves a dotted path, returning a copy of the value.
func (r Record) Get(path string) (any, bool) {
	v, ok := document.Get(r.doc, path)
	if !ok {
		return nil, false
	}
	return document.CloneValue(v), true
}

// String resolves a dotted path holding a string.
func (r Record) String(path string) (string, bool) {
	return document.String(r.doc, path)
}

// Has reports whether path resolves.
func (r Record) Has(path string) bool {
	_, ok := document.Get(r.doc, path)
	return ok
}

// MarshalJSON encodes the merged document.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.doc)
}
