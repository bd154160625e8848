package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-poline/internal/config"
	"github.com/goliatone/go-poline/internal/logging"
	"github.com/goliatone/go-poline/pkg/interview"
	"github.com/goliatone/go-poline/pkg/lookup"
	"github.com/goliatone/go-poline/pkg/merge"
	"github.com/goliatone/go-poline/pkg/persist"
	"github.com/goliatone/go-poline/pkg/templates"
	"github.com/goliatone/go-poline/pkg/wizard"
)

var (
	// Global flags
	verbose    bool
	configPath string
	outputDir  string
	noLookup   bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "poline",
	Short: "Create purchase order line JSON files from templates",
	Long: `poline walks through an interview for one purchase order line at a
time: pick a template, answer the prompts, review the summary and save the
result as a JSON file ready for the acquisitions system.

Templates are read from ./templates, from the directory next to the binary,
or from $TEMPLATES_DIR.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		explicit := path != ""
		if !explicit {
			path = config.DefaultPath()
		}

		var err error
		cfg, err = config.Load(path, explicit)
		if err != nil {
			return err
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		logger, err = logging.New(cfg.Log.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWizard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config dir poline/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for saved PO files (default: current)")
	rootCmd.PersistentFlags().BoolVar(&noLookup, "no-lookup", false, "Skip the bibliographic lookup step")

	rootCmd.AddCommand(templatesCmd, versionCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := newSession()
	if err != nil {
		return err
	}
	return sess.Run(ctx)
}

func newSession() (*wizard.Session, error) {
	timeout, err := cfg.LookupTimeout()
	if err != nil {
		return nil, err
	}

	interviewOpts := []interview.Option{interview.WithLogger(logger)}
	if cfg.LookupEnabled() && !noLookup {
		client := lookup.NewOpenLibrary(
			lookup.WithBaseURL(cfg.Lookup.BaseURL),
			lookup.WithTimeout(timeout),
		)
		interviewOpts = append(interviewOpts, interview.WithLookup(client))
	}

	namer, err := persist.NewNamer(cfg.FilenamePattern)
	if err != nil {
		return nil, err
	}

	search := templates.DefaultSearchOptions()
	search.ConfiguredDir = cfg.TemplatesDir

	return wizard.New(
		wizard.WithLogger(logger),
		wizard.WithInterview(interview.New(interviewOpts...)),
		wizard.WithSearchOptions(search),
		wizard.WithLoader(templates.NewLoader(templates.WithLogger(logger))),
		wizard.WithWriter(persist.NewWriter(
			persist.WithOutputDir(cfg.OutputDir),
			persist.WithLogger(logger),
		)),
		wizard.WithNamer(namer),
		wizard.WithMergeOptions(
			merge.WithCurrency(cfg.Currency),
			merge.WithReceiptLeadDays(cfg.ReceiptLeadDays),
		),
	)
}
