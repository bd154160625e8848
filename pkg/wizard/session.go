package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-poline/pkg/interview"
	"github.com/goliatone/go-poline/pkg/merge"
	"github.com/goliatone/go-poline/pkg/persist"
	"github.com/goliatone/go-poline/pkg/present"
	"github.com/goliatone/go-poline/pkg/templates"
)

// Session owns the collaborators of one wizard run.
type Session struct {
	interview    *interview.Controller
	loader       *templates.Loader
	search       templates.SearchOptions
	writer       *persist.Writer
	namer        *persist.Namer
	mergeOptions []merge.Option
	out          io.Writer
	logger       *zap.Logger
	now          func() time.Time
}

// Catalog is the result of discovering and loading templates.
type Catalog struct {
	Dir      string
	Searched []string
	Set      templates.Set
	Warnings []templates.LoadWarning
}

// New builds a Session. Unset collaborators get their defaults.
func New(options ...Option) (*Session, error) {
	s := &Session{
		search: templates.DefaultSearchOptions(),
		out:    os.Stdout,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.interview == nil {
		s.interview = interview.New(interview.WithLogger(s.logger))
	}
	if s.loader == nil {
		s.loader = templates.NewLoader(templates.WithLogger(s.logger))
	}
	if s.writer == nil {
		s.writer = persist.NewWriter(persist.WithLogger(s.logger))
	}
	if s.namer == nil {
		namer, err := persist.NewNamer(persist.DefaultPattern)
		if err != nil {
			return nil, err
		}
		s.namer = namer
	}
	return s, nil
}

// Templates discovers the template directory and loads it.
func (s *Session) Templates(ctx context.Context) (Catalog, error) {
	dir, searched, err := templates.Discover(s.search)
	cat := Catalog{Dir: dir, Searched: searched}
	if err != nil {
		return cat, err
	}
	cat.Set, cat.Warnings, err = s.loader.Load(ctx, dir)
	return cat, err
}

// Run loads templates and loops over records until the operator stops.
// Configuration errors are returned; per-record failures are reported and
// the loop continues.
func (s *Session) Run(ctx context.Context) error {
	cat, err := s.Templates(ctx)
	for _, w := range cat.Warnings {
		s.info(ctx, fmt.Sprintf("Error loading %s: %v", w.Path, w.Err))
	}
	if err != nil {
		if errors.Is(err, templates.ErrNoTemplateDir) {
			s.info(ctx, "Templates directory not found! Searched in:\n  - "+strings.Join(cat.Searched, "\n  - ")+
				"\nYou can also set the "+templates.EnvTemplatesDir+" environment variable to specify the location.")
		}
		return fmt.Errorf("wizard: load templates: %w", err)
	}
	s.logger.Info("templates loaded", zap.String("dir", cat.Dir), zap.Int("count", cat.Set.Len()))
	s.info(ctx, fmt.Sprintf("Found templates directory: %s (%d templates)", cat.Dir, cat.Set.Len()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tpl, err := s.interview.SelectTemplate(ctx, cat.Set.All())
		if errors.Is(err, interview.ErrAborted) {
			s.info(ctx, "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		log := s.logger.With(zap.String("record_id", uuid.NewString()), zap.String("template", tpl.Name))
		s.info(ctx, "Selected template: "+tpl.Name)

		if err := s.record(ctx, tpl, log); err != nil {
			if !errors.Is(err, interview.ErrAborted) {
				return err
			}
			log.Info("record abandoned")
			s.info(ctx, "Record abandoned, no file written")
		}

		another, err := s.interview.ConfirmAnother(ctx)
		if err != nil && !errors.Is(err, interview.ErrAborted) {
			return err
		}
		if !another {
			s.info(ctx, "Goodbye!")
			return nil
		}
	}
}

// record runs one interview and, when confirmed, writes the result. Save
// failures are reported, not returned.
func (s *Session) record(ctx context.Context, tpl templates.Template, log *zap.Logger) error {
	in, err := s.interview.Collect(ctx)
	if err != nil {
		return err
	}
	sel, cond, err := s.interview.CollectReceiving(ctx)
	if err != nil {
		return err
	}

	po := merge.Merge(tpl.Doc(), in, sel, cond, s.mergeOptions...)

	filename, err := s.namer.Name(in, s.now())
	if err != nil {
		log.Warn("filename pattern failed, using default", zap.Error(err))
		filename = persist.Filename(in, s.now())
	}

	if err := present.Render(s.out, present.Summary(po, filename, cond)); err != nil {
		log.Warn("render summary", zap.Error(err))
	}

	save, err := s.interview.ConfirmSave(ctx, filename)
	if err != nil {
		return err
	}
	if !save {
		log.Info("record not saved")
		s.info(ctx, "File not saved")
		return nil
	}

	path, err := s.writer.Save(po, filename)
	if err != nil {
		s.info(ctx, fmt.Sprintf("Error saving file: %v", err))
		s.info(ctx, "Failed to save file")
		return nil
	}
	log.Info("record saved", zap.String("path", path))
	s.info(ctx, "Successfully created: "+path)
	return nil
}

func (s *Session) info(ctx context.Context, msg string) {
	if err := s.interview.Info(ctx, msg); err != nil {
		s.logger.Debug("info message dropped", zap.Error(err))
	}
}
