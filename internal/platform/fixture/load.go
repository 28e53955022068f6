package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/winfind/internal/platform"
	"gopkg.in/yaml.v3"
)

// document is the on-disk fixture format:
//
//	windows:
//	  - id: 1
//	    title: Main
//	  - id: 2
//	    kind: popup
//	    owner: 1
//	scenes:
//	  - id: 10
//	    window: 1
//
// Windows are listed in creation order and an owner must be declared before
// the windows it owns.
type document struct {
	Windows []windowSpec `yaml:"windows"`
	Scenes  []sceneSpec  `yaml:"scenes"`
}

type windowSpec struct {
	ID    uint32  `yaml:"id"`
	Kind  string  `yaml:"kind"`
	Title *string `yaml:"title"`
	Owner uint32  `yaml:"owner"`
}

type sceneSpec struct {
	ID     uint32 `yaml:"id"`
	Window uint32 `yaml:"window"` // 0 = detached
}

// Load reads a fixture file.
func Load(path string) (*Toolkit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	tk, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tk, nil
}

// Parse builds a toolkit from fixture YAML.
func Parse(data []byte) (*Toolkit, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	tk := New()
	byID := make(map[uint32]platform.Window, len(doc.Windows))
	for i, spec := range doc.Windows {
		if spec.ID == 0 {
			return nil, fmt.Errorf("windows[%d]: id is required", i)
		}
		if _, dup := byID[spec.ID]; dup {
			return nil, fmt.Errorf("windows[%d]: duplicate id %d", i, spec.ID)
		}
		kind, err := platform.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("windows[%d]: %w", i, err)
		}

		var owner platform.Window
		if spec.Owner != 0 {
			o, ok := byID[spec.Owner]
			if !ok {
				return nil, fmt.Errorf("windows[%d]: owner %d must be declared before window %d", i, spec.Owner, spec.ID)
			}
			owner = o
		}

		id := platform.WindowID(spec.ID)
		var w platform.Window
		switch kind {
		case platform.KindStage:
			if spec.Title != nil {
				w = NewStage(id, *spec.Title, owner)
			} else {
				w = NewUntitledStage(id, owner)
			}
		case platform.KindPopup:
			if spec.Title != nil {
				return nil, fmt.Errorf("windows[%d]: popups cannot have a title", i)
			}
			w = NewPopup(id, owner)
		case platform.KindSurface:
			if spec.Title != nil || owner != nil {
				return nil, fmt.Errorf("windows[%d]: surfaces cannot have a title or owner", i)
			}
			w = NewSurface(id)
		}
		byID[spec.ID] = w
		tk.Open(w)
	}

	for i, spec := range doc.Scenes {
		id := platform.SceneID(spec.ID)
		if _, dup := tk.scenes[id]; dup {
			return nil, fmt.Errorf("scenes[%d]: duplicate id %d", i, spec.ID)
		}
		var host platform.Window
		if spec.Window != 0 {
			w, ok := byID[spec.Window]
			if !ok {
				return nil, fmt.Errorf("scenes[%d]: unknown window %d", i, spec.Window)
			}
			host = w
		}
		tk.AddScene(id, host)
	}

	return tk, nil
}
