//go:build linux

package x11

import "github.com/mj1618/winfind/internal/platform"

// kindFromTypes maps _NET_WM_WINDOW_TYPE values to a window category. The
// first recognised type wins, matching how window managers read the list.
func kindFromTypes(types []string) platform.Kind {
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL",
			"_NET_WM_WINDOW_TYPE_DIALOG",
			"_NET_WM_WINDOW_TYPE_UTILITY",
			"_NET_WM_WINDOW_TYPE_TOOLBAR",
			"_NET_WM_WINDOW_TYPE_SPLASH":
			return platform.KindStage
		case "_NET_WM_WINDOW_TYPE_POPUP_MENU",
			"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU",
			"_NET_WM_WINDOW_TYPE_MENU",
			"_NET_WM_WINDOW_TYPE_TOOLTIP",
			"_NET_WM_WINDOW_TYPE_COMBO",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return platform.KindPopup
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK":
			return platform.KindSurface
		}
	}
	// Untyped windows are treated as normal application windows.
	return platform.KindStage
}
