//go:build linux

package x11

import (
	"log/slog"

	"github.com/mj1618/winfind/internal/platform"
)

// BackendName is the name the X11 backend registers under.
const BackendName = "x11"

func init() {
	platform.Register(BackendName, func(opts platform.Options) (*platform.Provider, error) {
		conn, err := NewConnection()
		if err != nil {
			return nil, err
		}
		tk := NewToolkit(conn, slog.Default())
		return &platform.Provider{
			Toolkit:       tk,
			WindowManager: tk,
			Screenshotter: tk,
			Close:         conn.Close,
		}, nil
	})
}
