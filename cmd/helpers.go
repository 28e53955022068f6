package cmd

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/winfind/internal/locator"
	"github.com/mj1618/winfind/internal/model"
	"github.com/mj1618/winfind/internal/platform"
	"github.com/spf13/cobra"
)

// session is one command's view of the desktop.
type session struct {
	provider *platform.Provider
	locator  *locator.Locator
}

// openSession connects to the configured backend. Callers must call close.
func openSession() (*session, error) {
	provider, err := platform.NewProvider(platform.Options{
		Backend: settings.Backend,
		Fixture: settings.Fixture,
	})
	if err != nil {
		return nil, err
	}
	l := locator.New(provider.Toolkit)
	l.MaxOwnerDepth = settings.MaxOwnerDepth
	slog.Debug("opened session", "backend", settings.Backend)
	return &session{provider: provider, locator: l}, nil
}

func (s *session) close() {
	if s.provider.Close != nil {
		s.provider.Close()
	}
}

// addSelectorFlags registers the flags that pick a single window.
func addSelectorFlags(cmd *cobra.Command) {
	cmd.Flags().Int("index", 0, "Pick the window at this position (0 = newest)")
	cmd.Flags().String("title", "", "Pick the newest window whose whole title matches this regular expression")
}

// addTargetFlags registers the flags that set the locator's target window.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("target-id", "", "Target window by system ID (decimal or 0x hex)")
	cmd.Flags().String("target-title", "", "Target the newest window whose whole title matches this regular expression")
}

// selectWindow resolves --index or --title to a window.
func selectWindow(cmd *cobra.Command, l *locator.Locator) (platform.Window, error) {
	title, _ := cmd.Flags().GetString("title")
	hasIndex := cmd.Flags().Changed("index")

	switch {
	case hasIndex && title != "":
		return nil, fmt.Errorf("specify only one of --index or --title")
	case hasIndex:
		index, _ := cmd.Flags().GetInt("index")
		return l.WindowAt(index)
	case title != "":
		return l.WindowByTitle(title)
	default:
		return nil, fmt.Errorf("specify --index or --title")
	}
}

// applyTarget sets the locator's target from --target-id or --target-title.
// With neither flag the target stays unset.
func applyTarget(cmd *cobra.Command, l *locator.Locator) error {
	idStr, _ := cmd.Flags().GetString("target-id")
	title, _ := cmd.Flags().GetString("target-title")

	var (
		target platform.Window
		err    error
	)
	switch {
	case idStr != "" && title != "":
		return fmt.Errorf("specify only one of --target-id or --target-title")
	case idStr != "":
		var id platform.WindowID
		id, err = platform.ParseWindowID(idStr)
		if err != nil {
			return err
		}
		target, err = l.WindowByID(id)
	case title != "":
		target, err = l.WindowByTitle(title)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	l.SetTarget(target)
	return nil
}

// windowRecord builds the printable record for w, including its list position
// and whether it is the current target.
func windowRecord(l *locator.Locator, w platform.Window) *model.Window {
	rec := model.FromWindow(w, l.IndexOf(w))
	rec.Target = w == l.Target()
	return &rec
}
