package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/winfind/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testFixture = `
windows:
  - id: 1
    title: Main
  - id: 2
    title: Settings
    owner: 1
  - id: 3
    kind: popup
    owner: 2
  - id: 4
    title: Login
scenes:
  - id: 10
    window: 2
  - id: 11
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desktop.yaml")
	if err := os.WriteFile(path, []byte(testFixture), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// resetFlags puts every flag back to its default so tests don't leak state
// through the package-level commands.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args against an isolated home
// directory and returns what was printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var buf bytes.Buffer
	prev := output.Writer
	output.Writer = &buf
	t.Cleanup(func() { output.Writer = prev })

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "window", "focus", "screenshot", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "backend", "fixture", "format", "pretty", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q not found", name)
		}
	}
}

func TestRootCommand_FixtureImpliesBackend(t *testing.T) {
	path := writeFixture(t)
	if _, err := runCLI(t, "list", "--fixture", path, "--format", "json"); err != nil {
		t.Fatal(err)
	}
	if settings.Backend != "fixture" {
		t.Errorf("backend = %q, want fixture", settings.Backend)
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "desktop.yaml"), []byte(testFixture), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "backend: fixture\nfixture: desktop.yaml\nformat: json\nmax_owner_depth: 8\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "window", "--config", cfgPath, "--index", "0")
	if err != nil {
		t.Fatal(err)
	}
	var got WindowResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Window == nil || got.Window.ID != 4 {
		t.Errorf("window = %+v, want id 4", got.Window)
	}
	if settings.MaxOwnerDepth != 8 {
		t.Errorf("max owner depth = %d, want 8", settings.MaxOwnerDepth)
	}
}

func TestRootCommand_MissingExplicitConfig(t *testing.T) {
	_, err := runCLI(t, "list", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing --config file")
	}
}

func TestRootCommand_BadFormat(t *testing.T) {
	_, err := runCLI(t, "list", "--fixture", writeFixture(t), "--format", "xml")
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRootCommand_ReportsErrorsWithoutUsage(t *testing.T) {
	if !rootCmd.SilenceUsage {
		t.Error("usage should not be printed on command errors")
	}
	if rootCmd.SilenceErrors {
		t.Error("command errors should still be printed")
	}
}
