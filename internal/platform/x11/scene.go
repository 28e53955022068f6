//go:build linux

package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/mj1618/winfind/internal/platform"
)

// maxTreeDepth bounds the walk up the X window tree.
const maxTreeDepth = 128

// scene is an arbitrary X window (a widget, a GL surface, an embedded
// plug) whose host is the managed client above it in the window tree.
type scene struct {
	tk *Toolkit
	id xproto.Window
}

// Window walks parents until it reaches a managed client. Under reparenting
// window managers the client sits below its frame, so a scene inside the
// client's subtree meets the client before the frame.
func (s *scene) Window() platform.Window {
	clients, err := s.tk.clientSet()
	if err != nil {
		s.tk.log.Warn("failed to read client list", "err", err)
		return nil
	}

	id := s.id
	for depth := 0; depth < maxTreeDepth; depth++ {
		if clients[id] {
			return s.tk.handle(id)
		}
		tree, err := xproto.QueryTree(s.tk.conn.XUtil.Conn(), id).Reply()
		if err != nil {
			s.tk.log.Debug("scene window is gone", "scene", uint32(s.id), "err", err)
			return nil
		}
		if tree.Parent == 0 || id == tree.Root {
			return nil
		}
		id = tree.Parent
	}
	return nil
}
