package cmd

import (
	"slices"

	"github.com/mj1618/winfind/internal/model"
	"github.com/mj1618/winfind/internal/output"
	"github.com/spf13/cobra"
)

// ListResult is the output of the list command.
type ListResult struct {
	OK      bool           `yaml:"ok"               json:"ok"`
	Action  string         `yaml:"action"           json:"action"`
	Ordered bool           `yaml:"ordered"          json:"ordered"`
	Target  uint32         `yaml:"target,omitempty" json:"target,omitempty"`
	Windows []model.Window `yaml:"windows"          json:"windows"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open windows",
	Long:  "List open windows, newest first. With --ordered, windows are ranked by proximity to the target window: the target, then the windows that own it, then everything else.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("ordered", false, "Rank windows by proximity to the target window")
	addTargetFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := applyTarget(cmd, s.locator); err != nil {
		return err
	}
	ordered, _ := cmd.Flags().GetBool("ordered")

	result := ListResult{OK: true, Action: "list", Ordered: ordered}
	if target := s.locator.Target(); target != nil {
		result.Target = uint32(target.ID())
	}

	enumerated := s.locator.ListWindows()
	windows := enumerated
	if ordered {
		windows = s.locator.ListOrderedWindows()
	}

	result.Windows = make([]model.Window, len(windows))
	for i, w := range windows {
		rec := model.FromWindow(w, slices.Index(enumerated, w))
		rec.Target = w == s.locator.Target()
		if ordered {
			rec = rec.WithProximity(s.locator.Proximity(w))
		}
		result.Windows[i] = rec
	}
	return output.Print(result)
}
