package merge

import (
	"github.com/goliatone/go-poline/pkg/document"
	"github.com/goliatone/go-poline/pkg/order"
)

// Merge applies the collected answers to a copy of tpl. Every write replaces
// whatever the template held at that path, except where noted below.
func Merge(tpl map[string]any, in order.UserInput, sel order.Selection, cond order.ConditionalData, options ...Option) Record {
	cfg := newConfig(options)

	po := document.Clone(tpl)
	document.Delete(po, FieldDescription)
	document.Delete(po, FieldTemplateVersion)

	set(po, FieldVendor, in.VendorCode)
	set(po, FieldVendorAccount, in.VendorAccount)

	mergeResourceMetadata(po, in)
	mergePrice(po, in.Price, cfg.currency)

	// vendor reference and quantity leave the template alone when unset
	if in.VendorReference != "" {
		set(po, FieldVendorReference, in.VendorReference)
	}
	if locations, ok := document.List(po, FieldLocation); ok && len(locations) > 0 {
		set(po, FieldLocation+".0.quantity", in.Quantity)
	}

	set(po, FieldReceivingNote, sel.ReceivingNote())

	if notes := buildNotes(cond); len(notes) > 0 {
		set(po, FieldNote, notes)
	}

	if cond.InterestedUser != nil {
		set(po, FieldInterestedUser, []any{interestedUser(*cond.InterestedUser)})
	} else {
		document.Delete(po, FieldInterestedUser)
	}

	expected := cfg.now().AddDate(0, 0, cfg.receiptLeadDays)
	set(po, FieldExpectedReceipt, expected.Format(ExpectedReceiptLayout))

	if in.ReportingCode != "" {
		set(po, FieldReportingCode, string(in.ReportingCode))
	}

	return Record{doc: po}
}

func mergeResourceMetadata(po map[string]any, in order.UserInput) {
	set(po, FieldTitle, in.Title)

	optional := []struct {
		path  string
		value string
	}{
		{FieldAuthor, in.Author},
		{FieldISBN, in.ISBN},
		{FieldPublisher, in.Publisher},
		{FieldPublicationYear, in.PublicationYear},
	}
	for _, field := range optional {
		if field.value != "" {
			set(po, field.path, field.value)
		}
	}

	if in.SystemControlNumber != "" {
		set(po, FieldSystemControl, []any{in.SystemControlNumber})
	}
}

func mergePrice(po map[string]any, raw, currency string) {
	sum := order.FormatPrice(raw)
	set(po, FieldPrice, amount(sum, currency))

	funds, ok := document.List(po, FieldFundDistribution)
	if !ok || len(funds) == 0 {
		return
	}
	set(po, FieldFundDistribution+".0.amount", amount(sum, currency))
}

func amount(sum, currency string) map[string]any {
	return map[string]any{
		"sum":      sum,
		"currency": map[string]any{"value": currency},
	}
}

func buildNotes(cond order.ConditionalData) []any {
	var notes []any
	if text := cond.NoteText(); text != "" {
		notes = append(notes, map[string]any{"note_text": text})
	}
	if text := cond.ReserveNoteText(); text != "" {
		notes = append(notes, map[string]any{"note_text": ReserveNotePrefix + text})
	}
	return notes
}

func interestedUser(u order.InterestedUser) map[string]any {
	return map[string]any{
		"primary_id":                  u.UserID,
		"notify_receiving_activation": u.Notify,
		"hold_item":                   u.Hold,
		"notify_renewal":              false,
		"notify_cancel":               false,
	}
}

// set only fails on slice indexes, which Merge checks before writing.
func set(po map[string]any, path string, value any) {
	_ = document.Set(po, path, value)
}
