package order

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	MinPublicationYear = 1400
	MaxPublicationYear = 2030
	userIDLength       = 9
	maxOCLCDigits      = 12
)

// ValidateRequired returns a validator rejecting blank answers.
func ValidateRequired(field, label string) func(string) error {
	return func(text string) error {
		if strings.TrimSpace(text) == "" {
			return invalid(field, label+" is required")
		}
		return nil
	}
}

// ValidatePrice accepts positive decimal numbers.
func ValidatePrice(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return invalid("price", "Price is required")
	}
	f, err := parseDecimal(trimmed)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return invalid("price", "Please enter a valid price (e.g., 25.99)")
	}
	if f <= 0 {
		return invalid("price", "Price must be greater than 0")
	}
	return nil
}

// FormatPrice renders a price with exactly two decimals. Input that does not
// parse as a number is returned unchanged.
func FormatPrice(raw string) string {
	f, err := parseDecimal(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// parseDecimal is strconv.ParseFloat restricted to base-10 input. ParseFloat
// also accepts hexadecimal mantissas such as "0x1p4".
func parseDecimal(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

// NormalizeISBN drops every non-alphanumeric character.
func NormalizeISBN(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateISBN accepts blank input or a value with 10 or 13 alphanumeric
// characters once separators are removed.
func ValidateISBN(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	switch len([]rune(NormalizeISBN(text))) {
	case 10, 13:
		return nil
	default:
		return invalid("isbn", "ISBN should be 10 or 13 digits")
	}
}

// ValidateYear accepts blank input or an integer year in
// [MinPublicationYear, MaxPublicationYear].
func ValidateYear(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return invalid("publication_year", "Please enter a valid year")
	}
	if year < MinPublicationYear || year > MaxPublicationYear {
		return invalid("publication_year", "Year should be between 1400 and 2030")
	}
	return nil
}

// ValidateUserID requires exactly nine decimal digits.
func ValidateUserID(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == userIDLength && isASCIIDigits(trimmed) {
		return nil
	}
	return invalid("user_id", "User ID must be exactly 9 digits")
}

// ParseQuantity accepts positive integers.
func ParseQuantity(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if !isASCIIDigits(trimmed) {
		return 0, invalid("quantity", "Must be a positive number")
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, invalid("quantity", "Must be a positive number")
	}
	return n, nil
}

// ValidateQuantity is ParseQuantity shaped as a prompt validator.
func ValidateQuantity(text string) error {
	_, err := ParseQuantity(text)
	return err
}

// ValidateReportingCode accepts exact matches from the reporting code list.
func ValidateReportingCode(text string) error {
	_, err := ParseReportingCode(text)
	return err
}

var oclcPrefixes = []string{"(ocolc)", "ocm", "ocn", "on"}

// NormalizeOCLCNumber strips the usual OCLC prefixes ("(OCoLC)", "ocm",
// "ocn", "on") and surrounding whitespace, returning the bare number.
func NormalizeOCLCNumber(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", invalid("oclc_number", "OCLC number is required")
	}
	lower := strings.ToLower(trimmed)
	for _, prefix := range oclcPrefixes {
		if strings.HasPrefix(lower, prefix) {
			trimmed = strings.TrimSpace(trimmed[len(prefix):])
			break
		}
	}
	if !isASCIIDigits(trimmed) || len(trimmed) > maxOCLCDigits {
		return "", invalid("oclc_number", "OCLC number must be 1 to 12 digits")
	}
	return trimmed, nil
}

// ValidateOCLCNumber is NormalizeOCLCNumber shaped as a prompt validator.
func ValidateOCLCNumber(text string) error {
	_, err := NormalizeOCLCNumber(text)
	return err
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
