package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultOpenLibraryURL is the Open Library books API endpoint.
	DefaultOpenLibraryURL = "https://openlibrary.org/api/books"
	defaultTimeout        = 10 * time.Second
	maxResponseBytes      = 1 << 20
)

// OpenLibraryOption configures an OpenLibrary client.
type OpenLibraryOption func(*OpenLibrary)

// WithBaseURL points the client at a different books endpoint.
func WithBaseURL(raw string) OpenLibraryOption {
	return func(c *OpenLibrary) {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) OpenLibraryOption {
	return func(c *OpenLibrary) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) OpenLibraryOption {
	return func(c *OpenLibrary) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// OpenLibrary looks records up through the Open Library books API using
// "OCLC:<number>" bibkeys.
type OpenLibrary struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

var _ Lookup = (*OpenLibrary)(nil)

// NewOpenLibrary constructs a client with defaults applied.
func NewOpenLibrary(options ...OpenLibraryOption) *OpenLibrary {
	c := &OpenLibrary{
		baseURL: DefaultOpenLibraryURL,
		http:    http.DefaultClient,
		timeout: defaultTimeout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

type olNamed struct {
	Name string `json:"name"`
}

type olRecord struct {
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle"`
	Authors     []olNamed           `json:"authors"`
	Publishers  []olNamed           `json:"publishers"`
	PublishDate string              `json:"publish_date"`
	Identifiers map[string][]string `json:"identifiers"`
}

// Lookup fetches the record for an OCLC number.
func (c *OpenLibrary) Lookup(ctx context.Context, id string) (Metadata, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Metadata{}, errors.New("lookup: identifier is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	bibkey := "OCLC:" + id
	query := url.Values{}
	query.Set("bibkeys", bibkey)
	query.Set("format", "json")
	query.Set("jscmd", "data")

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("lookup: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("lookup: request %s: %w", bibkey, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Metadata{}, fmt.Errorf("lookup: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Metadata{}, fmt.Errorf("lookup: read response: %w", err)
	}

	var payload map[string]olRecord
	if err := json.Unmarshal(body, &payload); err != nil {
		return Metadata{}, fmt.Errorf("lookup: decode response: %w", err)
	}
	record, ok := payload[bibkey]
	if !ok {
		return Metadata{}, nil
	}
	return record.metadata(id), nil
}

var yearPattern = regexp.MustCompile(`\b(1[4-9]\d\d|20\d\d)\b`)

func (r olRecord) metadata(id string) Metadata {
	m := Metadata{
		Title:      strings.TrimSpace(r.Title),
		OCLCNumber: id,
	}
	if sub := strings.TrimSpace(r.Subtitle); sub != "" && m.Title != "" {
		m.Title += ": " + sub
	}
	if len(r.Authors) > 0 {
		names := make([]string, 0, len(r.Authors))
		for _, a := range r.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				names = append(names, name)
			}
		}
		m.Author = strings.Join(names, "; ")
	}
	if len(r.Publishers) > 0 {
		m.Publisher = strings.TrimSpace(r.Publishers[0].Name)
	}
	m.PublicationYear = yearPattern.FindString(r.PublishDate)

	for _, key := range []string{"isbn_13", "isbn_10"} {
		if values := r.Identifiers[key]; len(values) > 0 {
			m.ISBN = values[0]
			break
		}
	}
	if values := r.Identifiers["oclc"]; len(values) > 0 && values[0] != "" {
		m.OCLCNumber = values[0]
	}
	return m
}
