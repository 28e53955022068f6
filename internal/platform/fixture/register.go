package fixture

import (
	"fmt"

	"github.com/mj1618/winfind/internal/platform"
)

// BackendName is the name the fixture backend registers under.
const BackendName = "fixture"

func init() {
	platform.Register(BackendName, func(opts platform.Options) (*platform.Provider, error) {
		if opts.Fixture == "" {
			return nil, fmt.Errorf("the fixture backend needs a fixture file (--fixture or config 'fixture')")
		}
		tk, err := Load(opts.Fixture)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Toolkit:       tk,
			WindowManager: tk,
		}, nil
	})
}
