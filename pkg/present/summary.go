package present

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-poline/pkg/merge"
	"github.com/goliatone/go-poline/pkg/order"
)

const (
	notAvailable = "N/A"
	notSpecified = "Not specified"
)

// Row is one line of the summary table.
type Row struct {
	Field string
	Value string
}

// Summary lists the fields of a merged record in display order. Optional
// rows appear only when the record or the conditional data carries them.
func Summary(po merge.Record, filename string, cond order.ConditionalData) []Row {
	rows := []Row{
		{"Title", text(po, merge.FieldTitle, notAvailable)},
		{"Author", text(po, merge.FieldAuthor, notSpecified)},
		{"Price", "$" + text(po, merge.FieldPriceSum, notAvailable)},
		{"Vendor", text(po, merge.FieldVendor, notAvailable)},
		{"Vendor Account", text(po, merge.FieldVendorAccount, notAvailable)},
		{"Material Type", text(po, merge.FieldMaterialType, notAvailable)},
		{"Vendor Reference", text(po, merge.FieldVendorReference, notSpecified)},
		{"Quantity", text(po, merge.FieldLocation+".0.quantity", notAvailable)},
		{"Subject", text(po, merge.FieldReportingCode, notAvailable)},
		{"Receiving Note", text(po, merge.FieldReceivingNote, notSpecified)},
	}

	if isbn := text(po, merge.FieldISBN, ""); isbn != "" {
		rows = append(rows, Row{"ISBN", isbn})
	}
	if publisher := text(po, merge.FieldPublisher, ""); publisher != "" {
		rows = append(rows, Row{"Publisher", publisher})
	}
	if ids := controlNumbers(po); len(ids) > 0 {
		rows = append(rows, Row{"OCLC Number", strings.Join(ids, ", ")})
	}

	if u := cond.InterestedUser; u != nil {
		rows = append(rows, Row{"Interested User", fmt.Sprintf("%s (notify: %t, hold: %t)", u.UserID, u.Notify, u.Hold)})
	}
	if note := cond.NoteText(); note != "" {
		rows = append(rows, Row{"Additional Notes", note})
	}
	if reserve := cond.ReserveNoteText(); reserve != "" {
		rows = append(rows, Row{"Reserve Note", reserve})
	}

	return append(rows, Row{"File", filename})
}

// text renders the scalar at path, or fallback when the path is missing.
func text(po merge.Record, path, fallback string) string {
	v, ok := po.Get(path)
	if !ok || v == nil {
		return fallback
	}
	switch v.(type) {
	case map[string]any, []any:
		return fallback
	}
	return fmt.Sprint(v)
}

func controlNumbers(po merge.Record) []string {
	v, ok := po.Get(merge.FieldSystemControl)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := fmt.Sprint(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
