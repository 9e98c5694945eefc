package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/slides/internal/app"
	"github.com/llehouerou/slides/internal/config"
	"github.com/llehouerou/slides/internal/errmsg"
	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/ingest"
	"github.com/llehouerou/slides/internal/logger"
	"github.com/llehouerou/slides/internal/mpris"
	"github.com/llehouerou/slides/internal/notify"
	"github.com/llehouerou/slides/internal/prefs"
	"github.com/llehouerou/slides/internal/state"
	"github.com/llehouerou/slides/internal/stderr"
	"github.com/llehouerou/slides/internal/ui/photoview"
)

type rootFlags struct {
	samples  bool
	watch    bool
	reset    bool
	noImages bool
	logLevel string
	dbPath   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "slides [photo or folder]...",
		Short: "Terminal photo slideshow with themed transitions",
		Long: "slides shows photos and folders as a slideshow in the terminal.\n" +
			"Without arguments the previous session's photos are restored.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.samples, "samples", false, "Start with the sample photos")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Add new images appearing in the given folders")
	cmd.Flags().BoolVar(&flags.reset, "reset", false, "Clear stored preferences before starting")
	cmd.Flags().BoolVar(&flags.noImages, "no-images", false, "Show text placards instead of terminal graphics")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.dbPath, "db", "", "Preferences database path")

	return cmd
}

func run(flags *rootFlags, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	icons.Init(cfg.Icons)

	log, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Anything written to fd 2 while the TUI runs goes to the log
	capture, err := stderr.Start(func(line string) { log.Warn("stderr", "line", line) })
	if err != nil {
		log.Warn("stderr capture unavailable", "error", err.Error())
	}
	defer capture.Stop()

	stateMgr, err := state.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpPrefsOpen, err)
	}
	defer stateMgr.Close()

	store := prefs.New(stateMgr, log)
	if flags.reset {
		log.Info("preferences reset from the command line")
		store.ClearAll()
	}

	images := newRenderer(flags.noImages, log)

	watcher, watchErr := startWatcher(cfg, flags.watch, args, log)

	var remote *mpris.Adapter
	if cfg.MPRIS {
		if remote, err = mpris.New(); err != nil {
			log.Warn("media player control unavailable", "error", err.Error())
		}
	}

	var notifier notify.Notifier
	if cfg.Notify.Desktop {
		if notifier, err = notify.New(); err != nil {
			log.Warn("desktop notifications unavailable", "error", err.Error())
		}
	}

	m := app.New(app.Options{
		Config:  cfg,
		Store:   store,
		Log:     log,
		Images:  images,
		Watcher: watcher,
		Remote:  remote,
		Notify:  notifier,
		Paths:   args,
		Samples: flags.samples,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if watchErr != nil {
		go p.Send(app.ErrorMsg{Op: errmsg.OpWatchStart, Err: watchErr})
	}

	log.Info("starting", "paths", len(args), "db", cfg.DBPath)
	if _, err := p.Run(); err != nil {
		capture.WriteOriginal(err.Error() + "\n")
		return err
	}
	return nil
}

// openLogger writes JSON logs to the configured file, or to the XDG state
// directory. The terminal belongs to the TUI.
func openLogger(c config.LogConfig) (*logger.Logger, func(), error) {
	path := c.File
	if path == "" {
		var err error
		if path, err = logger.DefaultPath(); err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
	}
	f, err := logger.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	log, err := logger.New(logger.Options{Level: c.Level, Writer: f})
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, func() { f.Close() }, nil
}

// newRenderer detects the terminal graphics protocol. A missing cache only
// costs resizing each photo again.
func newRenderer(disabled bool, log *logger.Logger) *photoview.Renderer {
	if disabled {
		return nil
	}
	proto := photoview.Detect()
	if proto == nil {
		log.Info("no terminal graphics, photos shown as placards")
		return nil
	}
	cache, err := photoview.NewCache("")
	if err != nil {
		log.Warn("photo cache disabled", "error", err.Error())
		cache = nil
	} else if err := cache.Prune(photoview.DefaultMaxAge); err != nil {
		log.Debug("photo cache prune", "error", err.Error())
	}
	log.Info("terminal graphics", "protocol", proto.Name())
	return photoview.New(proto, cache)
}

// startWatcher watches the configured folders, plus the folders given on
// the command line with --watch.
func startWatcher(cfg *config.Config, flag bool, args []string, log *logger.Logger) (*ingest.Watcher, error) {
	var dirs []string
	if cfg.HasWatch() {
		dirs = append(dirs, cfg.PhotoDirs...)
	}
	if flag {
		for _, a := range args {
			if info, err := os.Stat(a); err == nil && info.IsDir() {
				dirs = append(dirs, a)
			}
		}
	}
	if len(dirs) == 0 {
		if flag {
			return nil, errors.New("--watch needs a folder argument or photo_dirs in the config")
		}
		return nil, nil
	}
	return ingest.Watch(dirs, log)
}
