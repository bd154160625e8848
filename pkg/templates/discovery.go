package templates

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvTemplatesDir names the environment variable consulted last when
// searching for the template directory.
const EnvTemplatesDir = "TEMPLATES_DIR"

const (
	dirName        = "templates"
	projectSubpath = "src/libraryacquisitions/templates"
)

// SearchOptions describes the anchors used to build the search path. Empty
// fields are skipped.
type SearchOptions struct {
	// ConfiguredDir comes from the config file and is tried first.
	ConfiguredDir string
	ExecutableDir string
	WorkingDir    string
	EnvDir        string
}

// DefaultSearchOptions resolves anchors from the running process.
func DefaultSearchOptions() SearchOptions {
	opts := SearchOptions{EnvDir: strings.TrimSpace(os.Getenv(EnvTemplatesDir))}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		opts.ExecutableDir = filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		opts.WorkingDir = wd
	}
	return opts
}

// SearchPath lists candidate directories in priority order: configured dir,
// next to the executable, the working directory, the executable's parent,
// the project layout relative to the executable, then the environment
// override.
func SearchPath(opts SearchOptions) []string {
	var out []string
	add := func(path string) {
		if strings.TrimSpace(path) == "" {
			return
		}
		out = append(out, filepath.Clean(path))
	}

	add(opts.ConfiguredDir)
	if opts.ExecutableDir != "" {
		add(filepath.Join(opts.ExecutableDir, dirName))
	}
	if opts.WorkingDir != "" {
		add(filepath.Join(opts.WorkingDir, dirName))
	}
	if opts.ExecutableDir != "" {
		add(filepath.Join(filepath.Dir(opts.ExecutableDir), dirName))
		add(filepath.Join(opts.ExecutableDir, "..", "..", projectSubpath))
	}
	add(opts.EnvDir)
	return out
}

// Discover returns the first existing directory of the search path together
// with the full list of candidates, or ErrNoTemplateDir.
func Discover(opts SearchOptions) (string, []string, error) {
	candidates := SearchPath(opts)
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, candidates, nil
		}
	}
	return "", candidates, ErrNoTemplateDir
}
