package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"vendor": map[string]any{"value": "acme"},
		"location": []any{
			map[string]any{"quantity": float64(1), "library": map[string]any{"value": "MAIN"}},
			map[string]any{"quantity": float64(2)},
		},
		"tags": []any{"a", "b"},
	}
}

func TestClone_IsDeep(t *testing.T) {
	src := sampleDoc()
	clone := Clone(src)

	if diff := cmp.Diff(src, clone); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}

	clone["vendor"].(map[string]any)["value"] = "changed"
	clone["location"].([]any)[0].(map[string]any)["quantity"] = float64(9)
	clone["tags"].([]any)[1] = "z"

	if diff := cmp.Diff(sampleDoc(), src); diff != "" {
		t.Fatalf("source mutated through clone (-want +got):\n%s", diff)
	}
}

func TestClone_NilYieldsEmptyMap(t *testing.T) {
	got := Clone(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil map, got %#v", got)
	}
}

func TestGet(t *testing.T) {
	doc := sampleDoc()
	cases := []struct {
		path string
		want any
		ok   bool
	}{
		{path: "vendor.value", want: "acme", ok: true},
		{path: "location.1.quantity", want: float64(2), ok: true},
		{path: "location.0.library.value", want: "MAIN", ok: true},
		{path: "location.5.quantity", ok: false},
		{path: "vendor.missing", ok: false},
		{path: "tags.x", ok: false},
		{path: "", ok: false},
	}
	for _, tc := range cases {
		got, ok := Get(doc, tc.path)
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.path, ok, tc.ok)
		}
		if tc.ok && !cmp.Equal(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestSet_CreatesIntermediateObjects(t *testing.T) {
	doc := map[string]any{"vendor": "not-an-object"}
	if err := Set(doc, "vendor.value", "acme"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := Set(doc, "resource_metadata.title", "Go"); err != nil {
		t.Fatalf("set: %v", err)
	}
	want := map[string]any{
		"vendor":            map[string]any{"value": "acme"},
		"resource_metadata": map[string]any{"title": "Go"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("unexpected doc (-want +got):\n%s", diff)
	}
}

func TestSet_SliceElements(t *testing.T) {
	doc := sampleDoc()
	if err := Set(doc, "location.0.quantity", 3); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := Get(doc, "location.0.quantity"); got != 3 {
		t.Fatalf("quantity = %v, want 3", got)
	}
	if got, _ := Get(doc, "location.1.quantity"); got != float64(2) {
		t.Fatalf("second location touched: %v", got)
	}

	err := Set(doc, "location.7.quantity", 1)
	if !errors.Is(err, ErrPath) {
		t.Fatalf("expected ErrPath for out of range index, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	doc := sampleDoc()
	if !Delete(doc, "vendor.value") {
		t.Fatalf("expected nested delete to report removal")
	}
	if Delete(doc, "vendor.value") {
		t.Fatalf("second delete should be a no-op")
	}
	if !Delete(doc, "tags") {
		t.Fatalf("expected top-level delete")
	}
	if _, ok := doc["tags"]; ok {
		t.Fatalf("tags still present")
	}
}
