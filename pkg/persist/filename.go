package persist

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-poline/pkg/order"
)

const (
	// DefaultPattern renders generic_<title>_<ref>_<timestamp>.json.
	DefaultPattern = "generic_{{ title }}_{{ ref }}_{{ timestamp }}.json"
	// NoReference stands in for a missing vendor reference.
	NoReference = "noref"
	// TimestampLayout is the timestamp format used in file names.
	TimestampLayout = "20060102_150405"

	maxTitleRunes = 30
	maxRefRunes   = 15
)

// whitespace matches Unicode spaces as well as the ASCII set \s covers.
const whitespace = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`

var (
	titleStrip = regexp.MustCompile(`[^\p{L}\p{N}_` + whitespace + `-]`)
	spaceRun   = regexp.MustCompile(`[` + whitespace + `]+`)
	refStrip   = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
)

var (
	patternSetOnce sync.Once
	patternSet     *pongo2.TemplateSet
)

func templateSet() *pongo2.TemplateSet {
	patternSetOnce.Do(func() {
		patternSet = pongo2.NewSet("poline-filenames", pongo2.DefaultLoader)
	})
	return patternSet
}

// Namer renders file names from a pongo2 pattern. The pattern sees title,
// ref, timestamp, vendor and reporting_code.
type Namer struct {
	tpl *pongo2.Template
}

// NewNamer compiles pattern, falling back to DefaultPattern when blank.
func NewNamer(pattern string) (*Namer, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultPattern
	}
	// File names are not HTML.
	tpl, err := templateSet().FromString("{% autoescape off %}" + pattern + "{% endautoescape %}")
	if err != nil {
		return nil, fmt.Errorf("persist: parse filename pattern: %w", err)
	}
	return &Namer{tpl: tpl}, nil
}

// Name renders the file name for in at now.
func (n *Namer) Name(in order.UserInput, now time.Time) (string, error) {
	out, err := n.tpl.Execute(pongo2.Context{
		"title":          CleanTitle(in.Title),
		"ref":            CleanReference(in.VendorReference),
		"timestamp":      now.Format(TimestampLayout),
		"vendor":         CleanReference(in.VendorCode),
		"reporting_code": CleanTitle(string(in.ReportingCode)),
	})
	if err != nil {
		return "", fmt.Errorf("persist: render filename: %w", err)
	}
	name := strings.TrimSpace(out)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("persist: filename pattern produced %q", name)
	}
	return name, nil
}

// Filename renders the default pattern.
func Filename(in order.UserInput, now time.Time) string {
	n, err := NewNamer(DefaultPattern)
	if err == nil {
		if name, err := n.Name(in, now); err == nil {
			return name
		}
	}
	return fmt.Sprintf("generic_%s_%s_%s.json", CleanTitle(in.Title), CleanReference(in.VendorReference), now.Format(TimestampLayout))
}

// CleanTitle keeps letters, digits, underscores, hyphens and spaces, turns
// whitespace runs into underscores and truncates to 30 characters.
func CleanTitle(title string) string {
	clean := titleStrip.ReplaceAllString(title, "")
	clean = spaceRun.ReplaceAllString(strings.TrimSpace(clean), "_")
	return truncate(clean, maxTitleRunes)
}

// CleanReference keeps letters, digits, underscores and hyphens and truncates
// to 15 characters. An empty result becomes NoReference.
func CleanReference(ref string) string {
	clean := truncate(refStrip.ReplaceAllString(ref, ""), maxRefRunes)
	if clean == "" {
		return NoReference
	}
	return clean
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
