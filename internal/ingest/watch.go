package ingest

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/llehouerou/slides/internal/logger"
)

// DefaultSettle is how long a watched folder must stay quiet before new
// files are reported.
const DefaultSettle = 500 * time.Millisecond

// Watcher reports image files created in watched folders. Paths are batched
// until the folders settle, so a copy of many files arrives as one batch
// and half-written files are not sniffed too early.
type Watcher struct {
	w      *fsnotify.Watcher
	log    *logger.Logger
	settle time.Duration

	out  chan []string
	done chan struct{}
	once sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithSettle sets the quiet period before a batch is reported.
func WithSettle(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.settle = d
		}
	}
}

// Watch starts watching dirs. Close stops it.
func Watch(dirs []string, log *logger.Logger, opts ...WatchOption) (*Watcher, error) {
	if len(dirs) == 0 {
		return nil, errors.New("no folders to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	w := &Watcher{
		w:      fw,
		log:    log.With("component", "watcher"),
		settle: DefaultSettle,
		out:    make(chan []string, 1),
		done:   make(chan struct{}),
	}
	for _, o := range opts {
		o(w)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
		w.log.Info("watching folder", "dir", dir)
	}
	go w.loop()
	return w, nil
}

// Batches delivers the image paths found after each quiet period. It is
// closed when the watcher stops.
func (w *Watcher) Batches() <-chan []string {
	return w.out
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.w.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.out)

	var (
		pending []string
		seen    = map[string]bool{}
		timer   *time.Timer
		fire    <-chan time.Time
	)
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if strings.HasPrefix(filepath.Base(event.Name), ".") || seen[event.Name] {
				continue
			}
			seen[event.Name] = true
			pending = append(pending, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				timer.Reset(w.settle)
			}
			fire = timer.C
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		case <-fire:
			fire = nil
			batch := make([]string, 0, len(pending))
			for _, p := range pending {
				if IsImage(p) {
					batch = append(batch, p)
				}
			}
			pending = nil
			clear(seen)
			if len(batch) == 0 {
				continue
			}
			w.log.Debug("new photos", "count", len(batch))
			select {
			case w.out <- batch:
			case <-w.done:
				return
			}
		}
	}
}
