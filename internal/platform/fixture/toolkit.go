// Package fixture provides an in-memory window system. It backs the test
// suites and the "fixture" backend, which replays a YAML description of a
// desktop so the CLI and MCP server can run without a display.
package fixture

import (
	"fmt"
	"slices"

	"github.com/mj1618/winfind/internal/platform"
)

// Toolkit is an in-memory window system. Windows are kept in the order they
// were opened.
type Toolkit struct {
	windows []platform.Window
	scenes  map[platform.SceneID]*Scene
	focused platform.Window
}

var (
	_ platform.Toolkit       = (*Toolkit)(nil)
	_ platform.WindowManager = (*Toolkit)(nil)
)

// New returns an empty toolkit.
func New() *Toolkit {
	return &Toolkit{scenes: make(map[platform.SceneID]*Scene)}
}

// Open adds windows in creation order.
func (t *Toolkit) Open(windows ...platform.Window) {
	t.windows = append(t.windows, windows...)
}

// Close removes w. Handles held elsewhere stay valid but w no longer appears
// in Windows.
func (t *Toolkit) Close(w platform.Window) {
	t.windows = slices.DeleteFunc(t.windows, func(open platform.Window) bool {
		return open == w
	})
	if t.focused == w {
		t.focused = nil
	}
}

// Windows returns the open windows, oldest first.
func (t *Toolkit) Windows() []platform.Window {
	return slices.Clone(t.windows)
}

// Window finds an open window by ID.
func (t *Toolkit) Window(id platform.WindowID) (platform.Window, bool) {
	for _, w := range t.windows {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

// AddScene registers a scene hosted by host (nil for detached).
func (t *Toolkit) AddScene(id platform.SceneID, host platform.Window) *Scene {
	s := &Scene{id: id, host: host}
	t.scenes[id] = s
	return s
}

// Scene looks up a registered scene.
func (t *Toolkit) Scene(id platform.SceneID) (platform.Scene, error) {
	s, ok := t.scenes[id]
	if !ok {
		return nil, fmt.Errorf("scene %d not found", id)
	}
	return s, nil
}

// Focus records w as the focused window.
func (t *Toolkit) Focus(w platform.Window) error {
	if w == nil {
		return fmt.Errorf("no window to focus")
	}
	if !slices.Contains(t.windows, w) {
		return fmt.Errorf("window %d is not open", w.ID())
	}
	t.focused = w
	return nil
}

// Focused returns the window last focused, or nil.
func (t *Toolkit) Focused() platform.Window {
	return t.focused
}
