package palette

import (
	"slices"
	"strings"
	"time"

	"github.com/llehouerou/slides/internal/logger"
	"github.com/llehouerou/slides/internal/loop"
)

// DefaultExecuteDelay separates closing the palette from running the
// selected command.
const DefaultExecuteDelay = 100 * time.Millisecond

// View is the renderable palette state.
type View struct {
	Open     bool
	Query    string
	Commands []Command
	Selected int
}

// Registry holds the command catalog and the palette state. It is not safe
// for concurrent use.
type Registry struct {
	sched      loop.Scheduler
	dispatcher Dispatcher
	delay      time.Duration
	log        *logger.Logger
	seed       []Command

	commands []Command
	filtered []Command
	query    string
	selected int
	open     bool

	pending   loop.Timer
	listeners []func(View)
}

// Option configures a Registry.
type Option func(*Registry)

// WithExecuteDelay overrides DefaultExecuteDelay.
func WithExecuteDelay(d time.Duration) Option {
	return func(r *Registry) {
		if d >= 0 {
			r.delay = d
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) { r.log = l.With("component", "palette") }
}

// WithCommands replaces the builtin catalog.
func WithCommands(cmds []Command) Option {
	return func(r *Registry) { r.seed = cmds }
}

// New creates a closed Registry holding the builtin catalog.
func New(sched loop.Scheduler, d Dispatcher, opts ...Option) *Registry {
	r := &Registry{
		sched:      sched,
		dispatcher: d,
		delay:      DefaultExecuteDelay,
		seed:       Builtin(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, cmd := range r.seed {
		r.Add(cmd)
	}
	r.seed = nil
	r.filtered = slices.Clone(r.commands)
	return r
}

// OnChange registers fn to receive the view after every change.
func (r *Registry) OnChange(fn func(View)) {
	if fn != nil {
		r.listeners = append(r.listeners, fn)
	}
}

// Open shows the palette with an empty query and the first entry selected.
// It does nothing when already open.
func (r *Registry) Open() {
	if r.open {
		return
	}
	r.open = true
	r.query = ""
	r.filtered = slices.Clone(r.commands)
	r.selected = 0
	r.notify()
}

// Close hides the palette and clears the query.
func (r *Registry) Close() {
	if !r.open {
		return
	}
	r.open = false
	r.query = ""
	r.notify()
}

func (r *Registry) Toggle() {
	if r.open {
		r.Close()
	} else {
		r.Open()
	}
}

func (r *Registry) IsOpen() bool {
	return r.open
}

// Filter keeps the commands whose label or category contains query,
// ignoring case and surrounding space. The selection returns to the first
// entry.
func (r *Registry) Filter(query string) {
	r.query = query
	r.filtered = r.match(query)
	r.selected = 0
	r.notify()
}

// Query returns the last filter query.
func (r *Registry) Query() string {
	return r.query
}

func (r *Registry) match(query string) []Command {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(r.commands)
	}
	var out []Command
	for _, cmd := range r.commands {
		if strings.Contains(strings.ToLower(cmd.Label), q) ||
			strings.Contains(strings.ToLower(cmd.Category), q) {
			out = append(out, cmd)
		}
	}
	return out
}

// SelectNext moves the selection down, wrapping to the top.
func (r *Registry) SelectNext() {
	if len(r.filtered) == 0 {
		return
	}
	r.selected = (r.selected + 1) % len(r.filtered)
	r.notify()
}

// SelectPrevious moves the selection up, wrapping to the bottom.
func (r *Registry) SelectPrevious() {
	if len(r.filtered) == 0 {
		return
	}
	r.selected = (r.selected - 1 + len(r.filtered)) % len(r.filtered)
	r.notify()
}

// Select moves the selection to i within the filtered list.
func (r *Registry) Select(i int) bool {
	if i < 0 || i >= len(r.filtered) {
		return false
	}
	r.selected = i
	r.notify()
	return true
}

// Selected returns the selected command.
func (r *Registry) Selected() (Command, bool) {
	if r.selected < 0 || r.selected >= len(r.filtered) {
		return Command{}, false
	}
	return r.filtered[r.selected], true
}

// ExecuteSelected closes the palette and dispatches the selected command's
// effect after the execute delay. A later execution before the delay
// elapses replaces the pending one. It reports whether a command was
// scheduled.
func (r *Registry) ExecuteSelected() bool {
	cmd, ok := r.Selected()
	if !ok {
		return false
	}

	r.Close()
	loop.Stop(r.pending)
	r.log.Debug("executing command", "id", cmd.ID)
	r.pending = r.sched.After(r.delay, func() {
		r.pending = nil
		r.dispatcher.Dispatch(cmd.Effect)
	})
	return true
}

// Pending reports whether a command is waiting for its execute delay.
func (r *Registry) Pending() bool {
	return r.pending != nil
}

// Add appends cmd to the catalog. Commands that fail validation or reuse an
// existing id are dropped.
func (r *Registry) Add(cmd Command) bool {
	if err := cmd.Validate(); err != nil {
		r.log.Debug("command rejected", "id", cmd.ID, "error", err.Error())
		return false
	}
	if r.index(cmd.ID) >= 0 {
		r.log.Debug("command rejected", "id", cmd.ID, "error", "duplicate id")
		return false
	}
	r.commands = append(r.commands, cmd)
	r.refilter()
	return true
}

// Remove deletes the command with id.
func (r *Registry) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.commands = slices.Delete(r.commands, i, i+1)
	r.refilter()
	return true
}

// Command returns the catalog entry with id.
func (r *Registry) Command(id string) (Command, bool) {
	i := r.index(id)
	if i < 0 {
		return Command{}, false
	}
	return r.commands[i], true
}

// Commands returns the full catalog in order.
func (r *Registry) Commands() []Command {
	return slices.Clone(r.commands)
}

// Filtered returns the commands matching the current query.
func (r *Registry) Filtered() []Command {
	return slices.Clone(r.filtered)
}

// View returns the current palette state.
func (r *Registry) View() View {
	return View{
		Open:     r.open,
		Query:    r.query,
		Commands: slices.Clone(r.filtered),
		Selected: r.selected,
	}
}

func (r *Registry) index(id string) int {
	return slices.IndexFunc(r.commands, func(c Command) bool { return c.ID == id })
}

// refilter reapplies the query after a catalog change, keeping the
// selection in range.
func (r *Registry) refilter() {
	r.filtered = r.match(r.query)
	if r.selected >= len(r.filtered) {
		r.selected = max(0, len(r.filtered)-1)
	}
	if r.open {
		r.notify()
	}
}

func (r *Registry) notify() {
	if len(r.listeners) == 0 {
		return
	}
	v := r.View()
	for _, fn := range r.listeners {
		fn(v)
	}
}
