package model

import "github.com/mj1618/winfind/internal/platform"

// Window is the printable record of a window handle.
type Window struct {
	Index     int     `yaml:"index"               json:"index"`
	ID        uint32  `yaml:"id"                  json:"id"`
	Kind      string  `yaml:"kind"                json:"kind"`
	Title     *string `yaml:"title,omitempty"     json:"title,omitempty"`
	Owner     uint32  `yaml:"owner,omitempty"     json:"owner,omitempty"`
	Proximity *int    `yaml:"proximity,omitempty" json:"proximity,omitempty"`
	Target    bool    `yaml:"target,omitempty"    json:"target,omitempty"`
}

// FromWindow snapshots w's attributes. index is its position in the list it
// was taken from.
func FromWindow(w platform.Window, index int) Window {
	rec := Window{
		Index: index,
		ID:    uint32(w.ID()),
		Kind:  w.Kind().String(),
	}
	if title, ok := w.Title(); ok {
		rec.Title = &title
	}
	if owner := w.Owner(); owner != nil {
		rec.Owner = uint32(owner.ID())
	}
	return rec
}

// WithProximity returns a copy of rec with a proximity score attached.
func (rec Window) WithProximity(score int) Window {
	rec.Proximity = &score
	return rec
}
