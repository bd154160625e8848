package templates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Extension is the template file extension.
const Extension = ".json"

// Option configures a Loader.
type Option func(*Loader)

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader reads template files from a directory.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a Loader.
func NewLoader(options ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads every *.json file in dir. Files that cannot be read, decoded or
// do not have the expected shape are reported as warnings and skipped. When
// nothing loads, ErrNoTemplates is returned alongside the warnings.
func (l *Loader) Load(ctx context.Context, dir string) (Set, []LoadWarning, error) {
	if strings.TrimSpace(dir) == "" {
		return Set{}, nil, ErrNoTemplateDir
	}
	if err := ctx.Err(); err != nil {
		return Set{}, nil, err
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
	if err != nil {
		return Set{}, nil, fmt.Errorf("templates: list %s: %w", dir, err)
	}
	sort.Strings(files)

	var (
		loaded   []Template
		warnings []LoadWarning
	)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return Set{}, warnings, err
		}
		tpl, err := loadFile(path)
		if err != nil {
			warnings = append(warnings, LoadWarning{Path: path, Err: err})
			l.logger.Warn("skipping template", zap.String("path", path), zap.Error(err))
			continue
		}
		l.logger.Debug("loaded template", zap.String("name", tpl.Name), zap.String("path", path))
		loaded = append(loaded, tpl)
	}

	if len(loaded) == 0 {
		return Set{}, warnings, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}
	return NewSet(loaded...), warnings, nil
}

func loadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return Template{}, fmt.Errorf("decode: %w", err)
	}
	if err := validateShape(generic); err != nil {
		return Template{}, fmt.Errorf("unexpected template shape: %w", err)
	}

	// numbers are kept as json.Number so they are written back verbatim
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return Template{}, fmt.Errorf("decode: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tpl := New(name, doc)
	tpl.Path = path
	return tpl, nil
}
