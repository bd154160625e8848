package order

import (
	"strings"
)

// Category is a receiving-note category. The set is closed; use
// ParseCategory to turn user-facing labels into values.
type Category string

const (
	CategoryNone           Category = "None"
	CategoryNote           Category = "Note"
	CategoryInterestedUser Category = "Interested User"
	CategoryReserve        Category = "Reserve"
	CategoryDisplay        Category = "Display"
	CategoryReplacement    Category = "Replacement"
)

// ReceivingNoteSeparator joins selected category labels in the receiving
// note field.
const ReceivingNoteSeparator = " | "

var categories = []Category{
	CategoryNone,
	CategoryNote,
	CategoryInterestedUser,
	CategoryReserve,
	CategoryDisplay,
	CategoryReplacement,
}

// Categories lists every category in menu order, "None" first.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory matches a label exactly.
func ParseCategory(label string) (Category, bool) {
	for _, c := range categories {
		if string(c) == label {
			return c, true
		}
	}
	return "", false
}

// Selection is the receiving-note category choice for one order line. It is
// either the "None" sentinel or a non-empty ordered set of other categories;
// NewSelection is the only way to build a non-sentinel value. The zero value
// is the sentinel.
type Selection struct {
	categories []Category
}

// NoneSelection returns the sentinel selection.
func NoneSelection() Selection {
	return Selection{}
}

// NewSelection validates a multi-select answer. At least one category is
// required and "None" cannot be combined with anything else. Duplicates are
// dropped while keeping the order of first appearance.
func NewSelection(selected ...Category) (Selection, error) {
	if len(selected) == 0 {
		return Selection{}, invalid("receiving_note", "Please select at least one category")
	}
	seen := make(map[Category]struct{}, len(selected))
	out := make([]Category, 0, len(selected))
	hasNone := false
	for _, c := range selected {
		if _, ok := ParseCategory(string(c)); !ok {
			return Selection{}, invalid("receiving_note", "Unknown category "+string(c))
		}
		if c == CategoryNone {
			hasNone = true
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if hasNone {
		if len(out) > 1 {
			return Selection{}, invalid("receiving_note", "Cannot select 'None' with other categories")
		}
		return NoneSelection(), nil
	}
	return Selection{categories: out}, nil
}

// ParseSelection builds a Selection from raw labels.
func ParseSelection(labels []string) (Selection, error) {
	cats := make([]Category, 0, len(labels))
	for _, label := range labels {
		c, ok := ParseCategory(label)
		if !ok {
			return Selection{}, invalid("receiving_note", "Unknown category "+label)
		}
		cats = append(cats, c)
	}
	return NewSelection(cats...)
}

// IsNone reports whether the sentinel was selected.
func (s Selection) IsNone() bool {
	return len(s.categories) == 0
}

// Categories returns the selected categories in selection order; nil for the
// sentinel.
func (s Selection) Categories() []Category {
	if s.IsNone() {
		return nil
	}
	return append([]Category(nil), s.categories...)
}

// Has reports whether c was selected.
func (s Selection) Has(c Category) bool {
	for _, sel := range s.categories {
		if sel == c {
			return true
		}
	}
	return false
}

// ReceivingNote renders the value stored in the order line: empty for the
// sentinel, otherwise the labels joined by ReceivingNoteSeparator.
func (s Selection) ReceivingNote() string {
	if s.IsNone() {
		return ""
	}
	labels := make([]string, len(s.categories))
	for i, c := range s.categories {
		labels[i] = string(c)
	}
	return strings.Join(labels, ReceivingNoteSeparator)
}

func (s Selection) String() string {
	if s.IsNone() {
		return string(CategoryNone)
	}
	return s.ReceivingNote()
}
