//go:build linux

package x11

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/mj1618/winfind/internal/platform"
)

// Toolkit queries managed windows from the X server. Attributes are read on
// every call; only the handle for each X window id is kept so that the same
// window always compares equal to itself.
type Toolkit struct {
	conn *Connection
	log  *slog.Logger

	mu      sync.Mutex
	handles map[xproto.Window]platform.Window
}

var (
	_ platform.Toolkit       = (*Toolkit)(nil)
	_ platform.WindowManager = (*Toolkit)(nil)
	_ platform.Screenshotter = (*Toolkit)(nil)
)

// NewToolkit wraps an open connection.
func NewToolkit(conn *Connection, log *slog.Logger) *Toolkit {
	if log == nil {
		log = slog.Default()
	}
	return &Toolkit{
		conn:    conn,
		log:     log.With("backend", "x11"),
		handles: make(map[xproto.Window]platform.Window),
	}
}

// Windows returns the managed windows in _NET_CLIENT_LIST order, which EWMH
// defines as initial mapping order.
func (t *Toolkit) Windows() []platform.Window {
	clients, err := ewmh.ClientListGet(t.conn.XUtil)
	if err != nil {
		t.log.Warn("failed to read client list", "err", err)
		return nil
	}
	windows := make([]platform.Window, 0, len(clients))
	for _, id := range clients {
		windows = append(windows, t.handle(id))
	}
	t.log.Debug("listed windows", "count", len(windows))
	return windows
}

// Scene treats any X window as a scene hosted by the managed window whose
// subtree contains it.
func (t *Toolkit) Scene(id platform.SceneID) (platform.Scene, error) {
	if id == 0 {
		return nil, fmt.Errorf("scene id must be non-zero")
	}
	return &scene{tk: t, id: xproto.Window(id)}, nil
}

// handle returns the interned handle for an X window id.
func (t *Toolkit) handle(id xproto.Window) platform.Window {
	t.mu.Lock()
	defer t.mu.Unlock()
	if w, ok := t.handles[id]; ok {
		return w
	}

	base := window{tk: t, id: id}
	var w platform.Window
	switch t.kind(id) {
	case platform.KindPopup:
		w = &popup{base}
	case platform.KindSurface:
		w = &surface{base}
	default:
		w = &stage{base}
	}
	t.handles[id] = w
	return w
}

func (t *Toolkit) kind(id xproto.Window) platform.Kind {
	types, err := ewmh.WmWindowTypeGet(t.conn.XUtil, id)
	if err != nil {
		return platform.KindStage
	}
	return kindFromTypes(types)
}

// title reads _NET_WM_NAME, falling back to WM_NAME.
func (t *Toolkit) title(id xproto.Window) (string, bool) {
	if name, err := ewmh.WmNameGet(t.conn.XUtil, id); err == nil {
		return name, true
	}
	if name, err := icccm.WmNameGet(t.conn.XUtil, id); err == nil {
		return name, true
	}
	return "", false
}

// transientFor reads WM_TRANSIENT_FOR.
func (t *Toolkit) transientFor(id xproto.Window) platform.Window {
	owner, err := icccm.WmTransientForGet(t.conn.XUtil, id)
	if err != nil || owner == 0 || owner == t.conn.Root || owner == id {
		return nil
	}
	return t.handle(owner)
}

// clientSet returns the ids currently in the client list.
func (t *Toolkit) clientSet() (map[xproto.Window]bool, error) {
	clients, err := ewmh.ClientListGet(t.conn.XUtil)
	if err != nil {
		return nil, err
	}
	set := make(map[xproto.Window]bool, len(clients))
	for _, id := range clients {
		set[id] = true
	}
	return set, nil
}

// window holds what every category shares.
type window struct {
	tk *Toolkit
	id xproto.Window
}

func (w *window) ID() platform.WindowID { return platform.WindowID(w.id) }

func (w *window) String() string { return fmt.Sprintf("0x%x", uint32(w.id)) }

// stage is a normal, dialog or utility window.
type stage struct{ window }

func (s *stage) Kind() platform.Kind { return platform.KindStage }

func (s *stage) Title() (string, bool) { return s.tk.title(s.id) }

func (s *stage) Owner() platform.Window { return s.tk.transientFor(s.id) }

// popup is a menu, tooltip or notification.
type popup struct{ window }

func (p *popup) Kind() platform.Kind { return platform.KindPopup }

func (p *popup) Title() (string, bool) { return "", false }

func (p *popup) Owner() platform.Window { return p.tk.transientFor(p.id) }

// surface is a dock or desktop window.
type surface struct{ window }

func (s *surface) Kind() platform.Kind { return platform.KindSurface }

func (s *surface) Title() (string, bool) { return "", false }

func (s *surface) Owner() platform.Window { return nil }
