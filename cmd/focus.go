package cmd

import (
	"fmt"

	"github.com/mj1618/winfind/internal/model"
	"github.com/mj1618/winfind/internal/output"
	"github.com/spf13/cobra"
)

// FocusResult is the output of a successful focus.
type FocusResult struct {
	OK     bool          `yaml:"ok"     json:"ok"`
	Action string        `yaml:"action" json:"action"`
	Window *model.Window `yaml:"window" json:"window"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring a window to the foreground",
	Long:  "Locate a window by index or title and ask the window manager to activate it.",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addSelectorFlags(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.provider.WindowManager == nil {
		return fmt.Errorf("window management not available with the %s backend", settings.Backend)
	}

	w, err := selectWindow(cmd, s.locator)
	if err != nil {
		return err
	}
	if err := s.provider.WindowManager.Focus(w); err != nil {
		return err
	}

	return output.Print(FocusResult{
		OK:     true,
		Action: "focus",
		Window: windowRecord(s.locator, w),
	})
}
