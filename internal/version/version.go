package version

// Set at build time with -ldflags "-X github.com/mj1618/winfind/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
