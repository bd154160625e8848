package templates

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const printBook = `{
    "_description": "Print monograph",
    "_template_version": 3,
    "vendor": {"value": "acme"},
    "material_type": {"value": "BOOK"},
    "location": [{"quantity": 1}],
    "fund_distribution": [{"amount": {"sum": "0.00"}}]
}`

func TestLoader_LoadsValidAndSkipsBroken(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "print_book.json", printBook)
	writeFile(t, dir, "ebook.json", `{"material_type": {"value": "EBOOK"}}`)
	writeFile(t, dir, "broken.json", `{"vendor": `)
	writeFile(t, dir, "wrong_shape.json", `{"location": {"quantity": 1}}`)
	writeFile(t, dir, "array.json", `[1, 2, 3]`)
	writeFile(t, dir, "readme.txt", `not a template`)

	core, logs := observer.New(zap.WarnLevel)
	loader := NewLoader(WithLogger(zap.New(core)))

	set, warnings, err := loader.Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"ebook", "print_book"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	var skipped []string
	for _, w := range warnings {
		skipped = append(skipped, filepath.Base(w.Path))
	}
	if diff := cmp.Diff([]string{"array.json", "broken.json", "wrong_shape.json"}, skipped); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
	if logs.Len() != 3 {
		t.Fatalf("expected 3 warning logs, got %d", logs.Len())
	}

	tpl, ok := set.Get("print_book")
	if !ok {
		t.Fatalf("print_book missing")
	}
	if tpl.Description != "Print monograph" {
		t.Fatalf("description = %q", tpl.Description)
	}
	if tpl.Version != json.Number("3") {
		t.Fatalf("version = %#v", tpl.Version)
	}
	if tpl.Label() != "print_book - Print monograph (BOOK, acme)" {
		t.Fatalf("label = %q", tpl.Label())
	}

	ebook, _ := set.Get("ebook")
	if ebook.Label() != "ebook - No description (EBOOK, Unknown)" {
		t.Fatalf("label = %q", ebook.Label())
	}
}

func TestLoader_NoTemplates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `nope`)

	_, warnings, err := NewLoader().Load(context.Background(), dir)
	if !errors.Is(err, ErrNoTemplates) {
		t.Fatalf("expected ErrNoTemplates, got %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}

	_, _, err = NewLoader().Load(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNoTemplates) {
		t.Fatalf("expected ErrNoTemplates for empty dir, got %v", err)
	}
}

func TestLoader_AcceptsLegacyFieldShapes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "single_user.json", `{"interested_user": {"primary_id": "1"}}`)
	writeFile(t, dir, "string_note.json", `{"note": "legacy note"}`)
	writeFile(t, dir, "null_description.json", `{"_description": null, "material_type": {"value": "DVD"}}`)

	set, warnings, err := NewLoader().Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if diff := cmp.Diff([]string{"null_description", "single_user", "string_note"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	tpl, _ := set.Get("null_description")
	if tpl.Label() != "null_description - No description (DVD, Unknown)" {
		t.Fatalf("label = %q", tpl.Label())
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewLoader().Load(ctx, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTemplate_DocIsACopy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "print_book.json", printBook)
	set, _, err := NewLoader().Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tpl, _ := set.Get("print_book")

	doc := tpl.Doc()
	doc["vendor"].(map[string]any)["value"] = "changed"
	doc["location"].([]any)[0].(map[string]any)["quantity"] = 9

	again := tpl.Doc()
	if again["vendor"].(map[string]any)["value"] != "acme" {
		t.Fatalf("template mutated through Doc")
	}
	if again["location"].([]any)[0].(map[string]any)["quantity"] != json.Number("1") {
		t.Fatalf("template location mutated through Doc")
	}
}

func TestSearchPath_Order(t *testing.T) {
	opts := SearchOptions{
		ConfiguredDir: "/etc/poline/templates",
		ExecutableDir: "/opt/poline/bin",
		WorkingDir:    "/home/staff",
		EnvDir:        "/srv/templates",
	}
	want := []string{
		"/etc/poline/templates",
		"/opt/poline/bin/templates",
		"/home/staff/templates",
		"/opt/poline/templates",
		"/opt/src/libraryacquisitions/templates",
		"/srv/templates",
	}
	if diff := cmp.Diff(want, SearchPath(opts)); diff != "" {
		t.Fatalf("search path mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_FirstExistingWins(t *testing.T) {
	root := t.TempDir()
	exeDir := filepath.Join(root, "bin")
	wd := filepath.Join(root, "work")
	env := filepath.Join(root, "env")
	for _, dir := range []string{exeDir, filepath.Join(wd, "templates"), env} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	dir, searched, err := Discover(SearchOptions{ExecutableDir: exeDir, WorkingDir: wd, EnvDir: env})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if dir != filepath.Join(wd, "templates") {
		t.Fatalf("dir = %s", dir)
	}
	if len(searched) != 5 {
		t.Fatalf("expected 5 candidates, got %v", searched)
	}
}

func TestDiscover_EnvFallbackAndMissing(t *testing.T) {
	root := t.TempDir()
	env := filepath.Join(root, "env")
	if err := os.MkdirAll(env, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, root, "templates", "a file, not a directory")

	dir, _, err := Discover(SearchOptions{WorkingDir: root, EnvDir: env})
	if err != nil || dir != env {
		t.Fatalf("expected env dir, got %q, %v", dir, err)
	}

	_, _, err = Discover(SearchOptions{WorkingDir: filepath.Join(root, "nowhere")})
	if !errors.Is(err, ErrNoTemplateDir) {
		t.Fatalf("expected ErrNoTemplateDir, got %v", err)
	}
}

func TestLoader_ShippedTemplates(t *testing.T) {
	set, warnings, err := NewLoader().Load(context.Background(), filepath.Join("..", "..", "templates"))
	if err != nil {
		t.Fatalf("load shipped templates: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if diff := cmp.Diff([]string{"dvd", "ebook", "print_book"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
