package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toolboard/internal/client"
	"toolboard/internal/config"
	"toolboard/internal/drafts"
	"toolboard/internal/essay"
	"toolboard/internal/logger"
	"toolboard/internal/ui"
)

// env is what every subcommand gets after config and logging are set up.
type env struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	log     *zap.Logger
	restore func()
}

// execute runs the command line and flushes the logger even when the
// command fails.
func execute(args []string, out io.Writer) error {
	e := &env{}
	defer e.close()

	root := newRootCmd(e)
	root.SetArgs(args)
	if out != nil {
		root.SetOut(out)
		root.SetErr(out)
	}
	return root.Execute()
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "toolboard",
		Short: "A terminal dashboard for the recipe, essay, toxicity and chat tools",
		Long: `toolboard is a terminal client for a small AI tools backend:
generate a recipe from ingredients, score an essay, check a message for
toxicity, or chat with SweetBot.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runTUI()
		},
	}

	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "config file (default is "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newStubCmd(e),
		newPingCmd(e),
		newConfigCmd(e),
		newDraftsCmd(e),
	)
	return root
}

// setup loads the config and installs the logger. Interactive runs log to
// the configured file; the other commands log to stderr.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	e.cfg = cfg

	opts := logger.Options{Level: cfg.Logging.Level, Verbose: e.verbose}
	if cmd.Parent() == nil {
		opts.File = cfg.Logging.File
	}
	log, err := logger.New(opts)
	if err != nil {
		return err
	}
	e.log = log
	e.restore = logger.Install(log)
	return nil
}

func (e *env) close() {
	if e.restore != nil {
		e.restore()
		e.restore = nil
	}
}

func (e *env) runTUI() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("toolboard needs an interactive terminal; try 'toolboard ping'")
	}

	deps := ui.Deps{
		Backend:   client.New(e.cfg.Backend.URL),
		Scorer:    essay.NewLocalScorer(e.cfg.Essay.ScoringDelay, uint64(time.Now().UnixNano())),
		Logger:    e.log,
		NotifyTTL: e.cfg.Notify.TTL,
		ExportDir: filepath.Dir(e.cfg.Drafts.Path),
	}

	store, err := drafts.Open(e.cfg.Drafts.Path)
	if err != nil {
		e.log.Warn("drafts unavailable", zap.String("path", e.cfg.Drafts.Path), zap.Error(err))
	} else {
		defer store.Close()
		deps.Drafts = store
	}

	e.log.Info("starting", zap.String("backend", e.cfg.Backend.URL))
	p := tea.NewProgram(ui.New(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
