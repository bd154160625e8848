package order

// ReportingCode is a subject classification from the closed reporting code
// list.
type ReportingCode string

var reportingCodes = []ReportingCode{
	"Archives", "Architecture", "Art", "Biology", "Book Art", "Business",
	"Chemistry", "Communications", "Computer Science", "Cooking", "Dance",
	"Data Science", "Economics", "Education", "English Language Studies",
	"Entrepreneurship", "Environmental Science", "Ethnic Studies", "Fiction",
	"Game Design", "General", "General Science", "Graphic Novels",
	"Health Sciences", "History", "Juvenile", "Library Science", "Mathematics",
	"Music", "Philosophy", "Poetry", "Political Science", "Psychology",
	"Public Policy", "Religion", "Sociology", "Theatre", "WGSS",
}

// ReportingCodes lists the accepted codes in display order.
func ReportingCodes() []ReportingCode {
	return append([]ReportingCode(nil), reportingCodes...)
}

// ReportingCodeLabels is ReportingCodes as plain strings, for prompt
// suggestions.
func ReportingCodeLabels() []string {
	out := make([]string, len(reportingCodes))
	for i, c := range reportingCodes {
		out[i] = string(c)
	}
	return out
}

// ParseReportingCode accepts exact matches only.
func ParseReportingCode(label string) (ReportingCode, error) {
	for _, c := range reportingCodes {
		if string(c) == label {
			return c, nil
		}
	}
	return "", invalid("reporting_code", "Please select a valid subject from the list")
}
