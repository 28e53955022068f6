package platform

import "image"

// Window is a top-level or pop-up surface managed by the window system.
// Handles are compared by identity: the same on-screen window must always be
// represented by the same handle value.
type Window interface {
	// ID returns the window-system identifier.
	ID() WindowID

	// Kind reports the window category.
	Kind() Kind

	// Title returns the window title. ok is false when the window has no
	// title attribute at all (pop-ups, docks).
	Title() (title string, ok bool)

	// Owner returns the window that spawned this one, or nil. Only stage and
	// popup categories can have an owner.
	Owner() Window
}

// Scene is content that may or may not currently be hosted by a window.
type Scene interface {
	// Window returns the hosting window, or nil when detached.
	Window() Window
}

// Toolkit is the query surface of the host window system.
type Toolkit interface {
	// Windows returns all open top-level and pop-up windows in creation
	// order, oldest first. It never fails; an unreadable window system
	// yields an empty snapshot.
	Windows() []Window

	// Scene looks up a scene by identifier.
	Scene(id SceneID) (Scene, error)
}

// WindowManager changes window focus.
type WindowManager interface {
	Focus(w Window) error
}

// Screenshotter captures window contents.
type Screenshotter interface {
	Capture(w Window) (image.Image, error)
}
