package cmd

import (
	"fmt"

	"github.com/mj1618/winfind/internal/model"
	"github.com/mj1618/winfind/internal/output"
	"github.com/mj1618/winfind/internal/platform"
	"github.com/spf13/cobra"
)

// WindowResult is the output of the window command.
type WindowResult struct {
	OK       bool          `yaml:"ok"                 json:"ok"`
	Action   string        `yaml:"action"             json:"action"`
	Window   *model.Window `yaml:"window,omitempty"   json:"window,omitempty"`
	Detached bool          `yaml:"detached,omitempty" json:"detached,omitempty"`
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Pick one window by index, title, or scene",
	Long: `Pick one window.

  --index N     the Nth window, newest first (fails when out of range)
  --title RE    the newest window whose whole title matches RE (fails when none does)
  --scene ID    the window currently hosting the scene (reports detached when none)`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	addSelectorFlags(windowCmd)
	windowCmd.Flags().String("scene", "", "Pick the window hosting this scene ID (decimal or 0x hex)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	sceneStr, _ := cmd.Flags().GetString("scene")
	if sceneStr != "" {
		if cmd.Flags().Changed("index") || cmd.Flags().Changed("title") {
			return fmt.Errorf("--scene cannot be combined with --index or --title")
		}
		id, err := platform.ParseSceneID(sceneStr)
		if err != nil {
			return err
		}
		scene, err := s.provider.Toolkit.Scene(id)
		if err != nil {
			return err
		}
		w := s.locator.WindowOfScene(scene)
		if w == nil {
			return output.Print(WindowResult{OK: true, Action: "window", Detached: true})
		}
		return output.Print(WindowResult{OK: true, Action: "window", Window: windowRecord(s.locator, w)})
	}

	w, err := selectWindow(cmd, s.locator)
	if err != nil {
		return err
	}
	return output.Print(WindowResult{OK: true, Action: "window", Window: windowRecord(s.locator, w)})
}
