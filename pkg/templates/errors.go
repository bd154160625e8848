package templates

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTemplateDir is returned when no candidate directory exists.
	ErrNoTemplateDir = errors.New("templates: template directory not found")
	// ErrNoTemplates is returned when a directory holds no loadable template.
	ErrNoTemplates = errors.New("templates: no valid templates")
)

// LoadWarning records a template file that was skipped.
type LoadWarning struct {
	Path string
	Err  error
}

func (w LoadWarning) Error() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

func (w LoadWarning) Unwrap() error {
	return w.Err
}
