// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/ui/commandbar"
	"github.com/llehouerou/slides/internal/ui/confirm"
	"github.com/llehouerou/slides/internal/ui/helpbindings"
	"github.com/llehouerou/slides/internal/ui/popup"
	"github.com/llehouerou/slides/internal/ui/settings"
	"github.com/llehouerou/slides/internal/ui/textinput"
)

// opener is implemented by popups whose visibility is owned elsewhere, such
// as the command palette whose registry can close itself.
type opener interface {
	IsOpen() bool
}

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Palette:  popup.SizePalette,
			Settings: popup.SizeForm,
			// All others default to SizeAuto
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help, Confirm, Caption, Palette, Settings:
		pop := p.popups[t]
		if pop == nil {
			return false
		}
		if o, ok := pop.(opener); ok {
			return o.IsOpen()
		}
		return true
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Error:
		p.errorMsg = ""
	case Help, Confirm, Caption, Palette, Settings:
		delete(p.popups, t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog for a destructive action.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.ShowDestructive(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowCaption displays the caption editor for the named photo.
func (p *Manager) ShowCaption(name, caption string) tea.Cmd {
	ti := textinput.New()
	ti.Start("Caption · "+name, caption, name, p.width, p.height)
	ti.SetPlaceholder("Enter a caption")
	return p.Show(Caption, &ti)
}

// ShowPalette opens the command palette over reg.
func (p *Manager) ShowPalette(reg *palette.Registry) tea.Cmd {
	bar := commandbar.New(reg)
	w, h := p.contentSize(p.sizes[Palette])
	bar.Open(w, h)
	return p.Show(Palette, &bar)
}

// ShowSettings displays the settings panel on v.
func (p *Manager) ShowSettings(v settings.Values) tea.Cmd {
	s := settings.New()
	s.Show(v, p.width, p.height)
	return p.Show(Settings, &s)
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// --- Accessors ---

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// Settings returns the settings popup model for direct access.
func (p *Manager) Settings() *settings.Model {
	if pop := p.popups[Settings]; pop != nil {
		if s, ok := pop.(*settings.Model); ok {
			return s
		}
	}
	return nil
}

// --- Key Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// Update forwards non-key messages, such as the cursor blink, to the
// active popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	active := p.ActivePopup()
	if active == None || active == Error {
		return nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		if t == Error {
			base = popup.Compose(base, p.renderError(), p.width, p.height)
			continue
		}

		content := p.popups[t].View()
		rendered := popup.RenderBordered(content, p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width, p.height)
	}
	return base
}

func (p *Manager) renderError() string {
	d := popup.Dialog{
		Title:   "Error",
		Content: p.errorMsg,
		Footer:  "Press any key to dismiss",
	}
	return d.Render(p.width, p.height)
}
