// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/app/popupctl"
	"github.com/llehouerou/slides/internal/config"
	"github.com/llehouerou/slides/internal/ingest"
	"github.com/llehouerou/slides/internal/logger"
	"github.com/llehouerou/slides/internal/loop"
	"github.com/llehouerou/slides/internal/mpris"
	"github.com/llehouerou/slides/internal/notify"
	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/prefs"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui/photolist"
	"github.com/llehouerou/slides/internal/ui/photoview"
	"github.com/llehouerou/slides/internal/ui/slideview"
	"github.com/llehouerou/slides/internal/ui/styles"
	"github.com/llehouerou/slides/internal/ui/toast"
)

// FocusTarget represents which panel receives keys.
type FocusTarget int

const (
	// FocusSlide sends keys to the slideshow.
	FocusSlide FocusTarget = iota
	// FocusPhotoList sends keys to the photo list panel.
	FocusPhotoList
)

// Options are the dependencies of the application model.
type Options struct {
	Config  *config.Config
	Store   *prefs.Store
	Log     *logger.Logger
	Sched   loop.Scheduler      // nil means a real-time loop.Deferred
	Images  *photoview.Renderer // nil shows text placards only
	Watcher *ingest.Watcher     // nil disables folder watching
	Rand    slideshow.Rand      // nil uses math/rand
	Remote  *mpris.Adapter      // nil disables media player control
	Notify  notify.Notifier     // nil disables desktop notifications

	// Paths are photos or folders to load at startup. Without paths the
	// previous session's photos are restored.
	Paths   []string
	Samples bool
}

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	log      *logger.Logger
	store    *prefs.Store
	sched    loop.Scheduler
	deferred *loop.Deferred
	watcher  *ingest.Watcher
	images   *photoview.Renderer
	remote   *mpris.Adapter
	notifier notify.Notifier
	notifyID uint32

	Slides  *slideshow.Engine
	Themes  *theme.Engine
	Palette *palette.Registry
	interp  *Interpreter
	events  *eventQueue

	Popups    *popupctl.Manager
	Toasts    *toast.Stack
	Slide     slideview.Model
	PhotoList photolist.Model
	Focus     FocusTarget

	photoListVisible bool
	pendingTransmit  string
	ticking          bool
	startPaths       []string
	startSamples     bool

	Width  int
	Height int
}

// New wires the engines and panels.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = prefs.New(prefs.NewMemory(), log)
	}
	sched := opts.Sched
	if sched == nil {
		sched = loop.NewDeferred()
	}
	deferred, _ := sched.(*loop.Deferred)

	themes := theme.New(store, log, theme.WithMaxTransition(cfg.Theme.MaxTransitionMS))
	styles.Use(themes.Current(), themes.DarkMode())

	slideOpts := []slideshow.Option{slideshow.WithLogger(log)}
	if opts.Rand != nil {
		slideOpts = append(slideOpts, slideshow.WithRand(opts.Rand))
	}
	slides := slideshow.New(sched, store, themes, slideOpts...)

	toasts := toast.New(sched, cfg.NotifyDuration())
	interp := NewInterpreter(slides, themes, toasts, log)
	reg := palette.New(sched, interp,
		palette.WithExecuteDelay(cfg.ExecuteDelay()),
		palette.WithLogger(log),
	)

	events := &eventQueue{}
	slides.OnEvent(events.pushEvent)
	themes.OnChange(events.pushTheme)

	slide := slideview.New()
	slide.SetClock(sched.Now)
	slide.SetMotion(themes.State().Info().Motion)
	slide.SetEmptyHint("Press L for samples, ctrl+k for commands")
	slide.SetFocused(true)

	m := Model{
		cfg:              cfg,
		log:              log.With("component", "app"),
		store:            store,
		sched:            sched,
		deferred:         deferred,
		watcher:          opts.Watcher,
		images:           opts.Images,
		remote:           opts.Remote,
		notifier:         opts.Notify,
		Slides:           slides,
		Themes:           themes,
		Palette:          reg,
		interp:           interp,
		events:           events,
		Popups:           popupctl.New(),
		Toasts:           toasts,
		Slide:            slide,
		PhotoList:        photolist.New(),
		Focus:            FocusSlide,
		photoListVisible: true,
		startPaths:       opts.Paths,
		startSamples:     opts.Samples,
	}

	if len(opts.Paths) == 0 {
		if saved := m.savedPhotos(); len(saved) > 0 {
			m.log.Info("restoring photos", "count", len(saved))
			slides.Load(saved)
		}
		if slides.Len() == 0 {
			m.startPaths = cfg.PhotoDirs
			m.startSamples = m.startSamples || (cfg.LoadSamples && len(cfg.PhotoDirs) == 0)
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForFire(m.deferred),
		waitForWatch(m.watcher),
		waitForRemote(m.remote),
	}
	if len(m.startPaths) > 0 {
		cmds = append(cmds, collectCmd(m.startPaths, m.Slides.Photos()))
	}
	if m.startSamples {
		cmds = append(cmds, func() tea.Msg { return LoadSamplesMsg{} })
	}
	return tea.Batch(cmds...)
}

// Close releases the scheduler, the watcher and the media player adapter.
func (m Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	_ = m.remote.Close()
	if m.deferred != nil {
		m.deferred.Close()
	}
}
