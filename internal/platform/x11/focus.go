//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/mj1618/winfind/internal/platform"
)

// Focus activates and raises w using _NET_ACTIVE_WINDOW.
// The client message is built by hand: the xgbutil ewmh request helpers
// panic on this library version.
func (t *Toolkit) Focus(w platform.Window) error {
	if w == nil {
		return fmt.Errorf("no window to focus")
	}
	atom, err := t.conn.internAtom("_NET_ACTIVE_WINDOW")
	if err != nil {
		return err
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(w.ID()),
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	err = xproto.SendEventChecked(
		t.conn.XUtil.Conn(),
		false,
		t.conn.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
	if err != nil {
		return fmt.Errorf("failed to focus window 0x%x: %w", uint32(w.ID()), err)
	}
	t.log.Debug("focused window", "window", uint32(w.ID()))
	return nil
}
