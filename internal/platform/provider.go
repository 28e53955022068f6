package platform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Provider bundles the backends for one window system.
type Provider struct {
	Toolkit       Toolkit
	WindowManager WindowManager
	Screenshotter Screenshotter

	// Close releases the backend connection. May be nil.
	Close func()
}

// Options selects and configures a backend.
type Options struct {
	Backend string // registered backend name, e.g. "x11" or "fixture"
	Fixture string // fixture file for the fixture backend
}

// ErrUnsupported is returned when the requested backend is not available.
var ErrUnsupported = errors.New("window backend not available")

// Factory creates a Provider for one backend.
type Factory func(opts Options) (*Provider, error)

var factories = map[string]Factory{}

// Register makes a backend available to NewProvider. Backend packages call it
// from init().
func Register(name string, f Factory) {
	factories[name] = f
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider returns a Provider for the backend named in opts.
func NewProvider(opts Options) (*Provider, error) {
	f, ok := factories[opts.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupported, opts.Backend, strings.Join(Backends(), ", "))
	}
	return f(opts)
}
