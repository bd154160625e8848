package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-poline/pkg/merge"
	"go.uber.org/zap"
)

// Option customises the Writer.
type Option func(*Writer)

// WithOutputDir sets the directory files are written to. Defaults to the
// working directory.
func WithOutputDir(dir string) Option {
	return func(w *Writer) {
		w.dir = dir
	}
}

// WithLogger sets the logger used for write diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Writer saves merged records as JSON files.
type Writer struct {
	dir    string
	logger *zap.Logger
}

// NewWriter constructs a Writer.
func NewWriter(options ...Option) *Writer {
	w := &Writer{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Encode renders po as UTF-8 JSON with four-space indentation. Non-ASCII and
// HTML-significant characters are written literally.
func Encode(po merge.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(po.Doc()); err != nil {
		return nil, fmt.Errorf("persist: encode record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Save writes po to filename inside the output directory and returns the
// path written.
func (w *Writer) Save(po merge.Record, filename string) (string, error) {
	data, err := Encode(po)
	if err != nil {
		return "", err
	}

	path := filename
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("persist: create output dir: %w", err)
		}
		path = filepath.Join(w.dir, filename)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		w.logger.Error("write record failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("persist: write %s: %w", path, err)
	}
	w.logger.Debug("record written", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}
