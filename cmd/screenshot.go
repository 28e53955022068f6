package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/mj1618/winfind/internal/output"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot of a window",
	Long:  "Locate a window by index or title and capture its contents, e.g. to attach to a failing test report.",
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	addSelectorFlags(screenshotCmd)
	screenshotCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	screenshotCmd.Flags().String("image-format", "png", "Image format: png, jpg")
	screenshotCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
	screenshotCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0")
	screenshotCmd.Flags().Bool("label", false, "Stamp the window ID and title in the corner")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("image-format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")
	label, _ := cmd.Flags().GetBool("label")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if s.provider.Screenshotter == nil {
		return fmt.Errorf("screenshots not available with the %s backend", settings.Backend)
	}

	w, err := selectWindow(cmd, s.locator)
	if err != nil {
		return err
	}
	img, err := s.provider.Screenshotter.Capture(w)
	if err != nil {
		return err
	}
	img, err = ScaleImage(img, scale)
	if err != nil {
		return err
	}
	if label {
		text := fmt.Sprintf("0x%x", uint32(w.ID()))
		if title, ok := w.Title(); ok && title != "" {
			text += " " + title
		}
		img = LabelImage(img, text)
	}
	data, err := EncodeImage(img, format, quality)
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, data, 0644)
	}

	// Default: base64 on stdout for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, output.Writer)
	if _, err := encoder.Write(data); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(output.Writer)
	return err
}
