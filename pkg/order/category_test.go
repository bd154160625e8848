package order

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSelection_NoneIsExclusive(t *testing.T) {
	_, err := NewSelection(CategoryNone, CategoryNote)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if err.Error() != "Cannot select 'None' with other categories" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestNewSelection_RequiresOne(t *testing.T) {
	if _, err := NewSelection(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for empty selection, got %v", err)
	}
}

func TestNewSelection_NoneAlone(t *testing.T) {
	sel, err := NewSelection(CategoryNone)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !sel.IsNone() {
		t.Fatalf("expected sentinel selection")
	}
	if sel.ReceivingNote() != "" {
		t.Fatalf("sentinel receiving note = %q, want empty", sel.ReceivingNote())
	}
	if sel.String() != "None" {
		t.Fatalf("sentinel String() = %q", sel.String())
	}
}

func TestNewSelection_KeepsOrderAndDropsDuplicates(t *testing.T) {
	sel, err := NewSelection(CategoryReserve, CategoryNote, CategoryReserve, CategoryDisplay)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []Category{CategoryReserve, CategoryNote, CategoryDisplay}
	if diff := cmp.Diff(want, sel.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if got := sel.ReceivingNote(); got != "Reserve | Note | Display" {
		t.Fatalf("ReceivingNote = %q", got)
	}
	if !sel.Has(CategoryNote) || sel.Has(CategoryInterestedUser) {
		t.Fatalf("Has reported wrong membership")
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection([]string{"Interested User", "Replacement"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sel.ReceivingNote() != "Interested User | Replacement" {
		t.Fatalf("ReceivingNote = %q", sel.ReceivingNote())
	}
	if _, err := ParseSelection([]string{"Urgent"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected unknown label to be rejected, got %v", err)
	}
}

func TestZeroSelectionIsNone(t *testing.T) {
	var sel Selection
	if !sel.IsNone() || sel.Categories() != nil {
		t.Fatalf("zero selection should behave as None")
	}
}
