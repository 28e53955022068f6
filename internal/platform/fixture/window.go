package fixture

import "github.com/mj1618/winfind/internal/platform"

// Stage is a titled top-level window. It may be owned by another window.
type Stage struct {
	id       platform.WindowID
	title    string
	hasTitle bool
	owner    platform.Window
}

// NewStage creates a stage with a title. owner may be nil.
func NewStage(id platform.WindowID, title string, owner platform.Window) *Stage {
	return &Stage{id: id, title: title, hasTitle: true, owner: owner}
}

// NewUntitledStage creates a stage whose title was never set.
func NewUntitledStage(id platform.WindowID, owner platform.Window) *Stage {
	return &Stage{id: id, owner: owner}
}

func (s *Stage) ID() platform.WindowID { return s.id }

func (s *Stage) Kind() platform.Kind { return platform.KindStage }

func (s *Stage) Title() (string, bool) { return s.title, s.hasTitle }

func (s *Stage) Owner() platform.Window { return s.owner }

// SetTitle changes the title.
func (s *Stage) SetTitle(title string) {
	s.title = title
	s.hasTitle = true
}

// SetOwner changes the owner. nil removes it.
func (s *Stage) SetOwner(owner platform.Window) { s.owner = owner }

// Popup is an untitled transient window such as a menu or tooltip.
type Popup struct {
	id    platform.WindowID
	owner platform.Window
}

// NewPopup creates a popup owned by owner (may be nil).
func NewPopup(id platform.WindowID, owner platform.Window) *Popup {
	return &Popup{id: id, owner: owner}
}

func (p *Popup) ID() platform.WindowID { return p.id }

func (p *Popup) Kind() platform.Kind { return platform.KindPopup }

func (p *Popup) Title() (string, bool) { return "", false }

func (p *Popup) Owner() platform.Window { return p.owner }

// SetOwner changes the owner. nil removes it.
func (p *Popup) SetOwner(owner platform.Window) { p.owner = owner }

// Surface is a window that can never have an owner or a title.
type Surface struct {
	id platform.WindowID
}

// NewSurface creates a surface.
func NewSurface(id platform.WindowID) *Surface {
	return &Surface{id: id}
}

func (s *Surface) ID() platform.WindowID { return s.id }

func (s *Surface) Kind() platform.Kind { return platform.KindSurface }

func (s *Surface) Title() (string, bool) { return "", false }

func (s *Surface) Owner() platform.Window { return nil }

// Scene is content that can be attached to one window at a time.
type Scene struct {
	id   platform.SceneID
	host platform.Window
}

// ID returns the scene identifier.
func (s *Scene) ID() platform.SceneID { return s.id }

// Window returns the hosting window, or nil when detached.
func (s *Scene) Window() platform.Window { return s.host }

// Attach moves the scene into w.
func (s *Scene) Attach(w platform.Window) { s.host = w }

// Detach removes the scene from its window.
func (s *Scene) Detach() { s.host = nil }
