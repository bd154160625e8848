package order

// UserInput is the flat set of answers collected for one order line. Empty
// strings mean the optional field was not supplied.
type UserInput struct {
	VendorCode      string
	VendorAccount   string
	VendorReference string

	Title           string
	Author          string
	ISBN            string
	Publisher       string
	PublicationYear string

	// Price holds the two-decimal rendering produced by FormatPrice.
	Price    string
	Quantity int

	ReportingCode ReportingCode

	// SystemControlNumber is the identifier retained from a successful
	// metadata lookup, empty otherwise.
	SystemControlNumber string
}

// InterestedUser is collected when the Interested User category is selected.
type InterestedUser struct {
	UserID string
	Notify bool
	Hold   bool
}

// ConditionalData holds the per-category extras. A nil field means the
// category that triggers it was not selected.
type ConditionalData struct {
	InterestedUser *InterestedUser
	Note           *string
	ReserveNote    *string
}

// NoteText returns the free-text note, empty when absent.
func (c ConditionalData) NoteText() string {
	if c.Note == nil {
		return ""
	}
	return *c.Note
}

// ReserveNoteText returns the reserve note, empty when absent.
func (c ConditionalData) ReserveNoteText() string {
	if c.ReserveNote == nil {
		return ""
	}
	return *c.ReserveNote
}
