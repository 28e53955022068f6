// Package locator finds and orders open windows relative to the window a
// test last interacted with.
package locator

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/mj1618/winfind/internal/platform"
)

// Proximity scores returned by Locator.Proximity.
const (
	ProximityTarget    = 0 // the window is the target
	ProximityOwner     = 1 // the window owns the target, directly or transitively
	ProximityUnrelated = 2
)

// DefaultMaxOwnerDepth bounds the ownership-chain walk.
const DefaultMaxOwnerDepth = 64

var (
	// ErrOutOfRange is returned by WindowAt for a bad index.
	ErrOutOfRange = errors.New("window index out of range")
	// ErrNotFound is returned by WindowByTitle when no window matches.
	ErrNotFound = errors.New("no window matches")
)

// Locator is a read-only view over the toolkit's windows plus one remembered
// target window. It is not safe for concurrent use.
type Locator struct {
	toolkit platform.Toolkit
	target  platform.Window

	// MaxOwnerDepth limits how many owner hops are followed when scoring.
	MaxOwnerDepth int
}

// New creates a Locator over toolkit with no target set.
func New(toolkit platform.Toolkit) *Locator {
	return &Locator{toolkit: toolkit, MaxOwnerDepth: DefaultMaxOwnerDepth}
}

// Target returns the remembered target window, or nil. The window may have
// been closed since it was set.
func (l *Locator) Target() platform.Window {
	return l.target
}

// SetTarget remembers w as the target window. nil unsets it.
func (l *Locator) SetTarget(w platform.Window) {
	l.target = w
}

// ListWindows returns all open windows, most recently created first.
func (l *Locator) ListWindows() []platform.Window {
	windows := slices.Clone(l.toolkit.Windows())
	slices.Reverse(windows)
	return windows
}

// ListOrderedWindows returns all open windows sorted by proximity to the
// target. Windows with equal scores keep their ListWindows order.
func (l *Locator) ListOrderedWindows() []platform.Window {
	type scored struct {
		w     platform.Window
		score int
	}
	windows := l.ListWindows()
	ranked := make([]scored, len(windows))
	for i, w := range windows {
		ranked[i] = scored{w: w, score: l.Proximity(w)}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return a.score - b.score
	})
	for i := range ranked {
		windows[i] = ranked[i].w
	}
	return windows
}

// WindowAt returns the nth window (0-based) in ListWindows order.
func (l *Locator) WindowAt(n int) (platform.Window, error) {
	windows := l.ListWindows()
	if n < 0 || n >= len(windows) {
		return nil, fmt.Errorf("%w: %d (have %d windows)", ErrOutOfRange, n, len(windows))
	}
	return windows[n], nil
}

// WindowByTitle returns the first window in ListWindows order whose whole
// title matches the regular expression pattern. Windows without a title
// never match.
func (l *Locator) WindowByTitle(pattern string) (platform.Window, error) {
	re, err := compileFullMatch(pattern)
	if err != nil {
		return nil, err
	}
	for _, w := range l.ListWindows() {
		title, ok := w.Title()
		if ok && re.MatchString(title) {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: title %q", ErrNotFound, pattern)
}

// WindowByID returns the open window with the given identifier.
func (l *Locator) WindowByID(id platform.WindowID) (platform.Window, error) {
	for _, w := range l.ListWindows() {
		if w.ID() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// IndexOf returns the position of w in ListWindows order, or -1.
func (l *Locator) IndexOf(w platform.Window) int {
	for i, open := range l.ListWindows() {
		if open == w {
			return i
		}
	}
	return -1
}

// WindowOfScene returns the window currently hosting scene, or nil when the
// scene is detached.
func (l *Locator) WindowOfScene(scene platform.Scene) platform.Window {
	return scene.Window()
}

// Proximity scores w against the current target.
func (l *Locator) Proximity(w platform.Window) int {
	if l.target == nil {
		return ProximityUnrelated
	}
	if w == l.target {
		return ProximityTarget
	}
	if l.owns(w, l.target) {
		return ProximityOwner
	}
	return ProximityUnrelated
}

// owns reports whether w appears in the owner chain of target: the target's
// owner, that window's owner, and so on.
func (l *Locator) owns(w, target platform.Window) bool {
	depth := l.MaxOwnerDepth
	if depth <= 0 {
		depth = DefaultMaxOwnerDepth
	}
	for owner := target.Owner(); owner != nil && depth > 0; owner = owner.Owner() {
		if owner == w {
			return true
		}
		depth--
	}
	return false
}

// compileFullMatch anchors pattern so it must match the entire input.
func compileFullMatch(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid title pattern %q: %w", pattern, err)
	}
	return re, nil
}
