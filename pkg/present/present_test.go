package present

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-poline/pkg/merge"
	"github.com/goliatone/go-poline/pkg/order"
)

func fixedClock() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }

func template() map[string]any {
	return map[string]any{
		"vendor":        map[string]any{"value": "old"},
		"material_type": map[string]any{"value": "BOOK"},
		"location":      []any{map[string]any{"quantity": 1}},
	}
}

func TestSummary_RequiredRowsAndFallbacks(t *testing.T) {
	in := order.UserInput{
		VendorCode:    "hacky-m",
		VendorAccount: "ACC-1",
		Title:         "Learning Go",
		Price:         "25.00",
		Quantity:      3,
		ReportingCode: "Computer Science",
	}
	po := merge.Merge(template(), in, order.NoneSelection(), order.ConditionalData{}, merge.WithClock(fixedClock))

	got := Summary(po, "generic_Learning_Go_noref_20240315_000000.json", order.ConditionalData{})
	want := []Row{
		{"Title", "Learning Go"},
		{"Author", "Not specified"},
		{"Price", "$25.00"},
		{"Vendor", "hacky-m"},
		{"Vendor Account", "ACC-1"},
		{"Material Type", "BOOK"},
		{"Vendor Reference", "Not specified"},
		{"Quantity", "3"},
		{"Subject", "Computer Science"},
		{"Receiving Note", ""},
		{"File", "generic_Learning_Go_noref_20240315_000000.json"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary_OptionalRows(t *testing.T) {
	in := order.UserInput{
		VendorCode:          "v",
		VendorAccount:       "a",
		VendorReference:     "INV-9",
		Title:               "T",
		Author:              "A. Writer",
		ISBN:                "0306406152",
		Publisher:           "Pub",
		Price:               "10.00",
		Quantity:            1,
		ReportingCode:       "Art",
		SystemControlNumber: "915131548",
	}
	note := "Rush"
	reserve := "HIST 101"
	cond := order.ConditionalData{
		InterestedUser: &order.InterestedUser{UserID: "123456789", Notify: true},
		Note:           &note,
		ReserveNote:    &reserve,
	}
	sel, err := order.NewSelection(order.CategoryInterestedUser, order.CategoryNote, order.CategoryReserve)
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	po := merge.Merge(template(), in, sel, cond, merge.WithClock(fixedClock))

	got := Summary(po, "out.json", cond)
	want := []Row{
		{"Title", "T"},
		{"Author", "A. Writer"},
		{"Price", "$10.00"},
		{"Vendor", "v"},
		{"Vendor Account", "a"},
		{"Material Type", "BOOK"},
		{"Vendor Reference", "INV-9"},
		{"Quantity", "1"},
		{"Subject", "Art"},
		{"Receiving Note", "Interested User | Note | Reserve"},
		{"ISBN", "0306406152"},
		{"Publisher", "Pub"},
		{"OCLC Number", "915131548"},
		{"Interested User", "123456789 (notify: true, hold: false)"},
		{"Additional Notes", "Rush"},
		{"Reserve Note", "HIST 101"},
		{"File", "out.json"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary_MissingPaths(t *testing.T) {
	got := Summary(merge.Record{}, "f.json", order.ConditionalData{})
	if got[0] != (Row{"Title", "N/A"}) {
		t.Fatalf("unexpected title row %+v", got[0])
	}
	if got[2] != (Row{"Price", "$N/A"}) {
		t.Fatalf("unexpected price row %+v", got[2])
	}
	if got[7] != (Row{"Quantity", "N/A"}) {
		t.Fatalf("unexpected quantity row %+v", got[7])
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{"Title", "Learning Go"}, {"File", "out.json"}}
	if err := Render(&buf, rows); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Order Summary", "Field", "Value", "Title", "Learning Go", "out.json"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
