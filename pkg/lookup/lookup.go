// Package lookup defines the optional bibliographic metadata collaborator
// used to pre-fill interview answers, and an Open Library backed
// implementation keyed by OCLC number.
package lookup

import (
	"context"
	"errors"
)

// ErrNotFound may be returned by implementations that distinguish "no data"
// from transport failures. Callers treat it like an empty Metadata.
var ErrNotFound = errors.New("lookup: record not found")

// Metadata is the partial bibliographic record returned by a lookup. Empty
// fields were not found.
type Metadata struct {
	Title           string
	Author          string
	ISBN            string
	Publisher       string
	PublicationYear string
	OCLCNumber      string
}

// Empty reports whether the lookup found nothing usable.
func (m Metadata) Empty() bool {
	return m.Title == "" && m.Author == "" && m.ISBN == "" &&
		m.Publisher == "" && m.PublicationYear == ""
}

// Fields lists the populated fields, OCLC number excluded, in display order.
func (m Metadata) Fields() [][2]string {
	var out [][2]string
	add := func(name, value string) {
		if value != "" {
			out = append(out, [2]string{name, value})
		}
	}
	add("title", m.Title)
	add("author", m.Author)
	add("isbn", m.ISBN)
	add("publisher", m.Publisher)
	add("publication_year", m.PublicationYear)
	return out
}

// Lookup resolves an identifier into bibliographic metadata. A zero
// Metadata with a nil error means "no data found".
type Lookup interface {
	Lookup(ctx context.Context, id string) (Metadata, error)
}

// Func adapts a function to Lookup.
type Func func(ctx context.Context, id string) (Metadata, error)

// Lookup calls f.
func (f Func) Lookup(ctx context.Context, id string) (Metadata, error) {
	return f(ctx, id)
}
