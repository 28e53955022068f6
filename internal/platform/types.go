package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// SceneID identifies a scene (a content surface that may be hosted by a window).
type SceneID uint32

// Kind is the category of a window.
type Kind int

const (
	// KindStage is a decorated top-level window. It has a title and may be
	// owned by another window (dialogs).
	KindStage Kind = iota
	// KindPopup is a transient surface such as a menu or tooltip. It has no
	// title but may have an owner.
	KindPopup
	// KindSurface is anything else (docks, desktop backgrounds). It never has
	// an owner.
	KindSurface
)

func (k Kind) String() string {
	switch k {
	case KindStage:
		return "stage"
	case KindPopup:
		return "popup"
	case KindSurface:
		return "surface"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a string value to Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stage", "":
		return KindStage, nil
	case "popup":
		return KindPopup, nil
	case "surface":
		return KindSurface, nil
	default:
		return KindStage, fmt.Errorf("unknown window kind: %q (expected stage, popup, or surface)", s)
	}
}

// ParseWindowID parses a decimal or 0x-prefixed hexadecimal window ID.
func ParseWindowID(s string) (WindowID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return WindowID(v), nil
}

// ParseSceneID parses a decimal or 0x-prefixed hexadecimal scene ID.
func ParseSceneID(s string) (SceneID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid scene id %q: %w", s, err)
	}
	return SceneID(v), nil
}
