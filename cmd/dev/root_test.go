package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// standing in for testing.T.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	// rootCmd is shared between tests; a --help from a previous Execute
	// stays set on the flag set and would short-circuit this invocation.
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		if err := f.Value.Set("false"); err != nil {
			t.Fatal(err)
		}
		f.Changed = false
	}
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHelpWithoutConfigSucceeds(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeRoot(t)
	if err != nil {
		t.Fatalf("help invocation must not fail, got %v", err)
	}
	if !strings.Contains(out, "Create a .dev-cheat.yaml file to get started!") {
		t.Errorf("expected remediation hint, got %q", out)
	}
}

func TestHelpFlagWithoutConfigSucceeds(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeRoot(t, "--help")
	if err != nil {
		t.Fatalf("--help must not fail, got %v", err)
	}
	if !strings.Contains(out, "Create a .dev-cheat.yaml file") {
		t.Errorf("expected remediation hint, got %q", out)
	}
}

func TestHelpListsConfiguredCommands(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfg := `
quick_commands:
  build:
    description: Run production build
    actions:
      - echo building
`
	if err := os.WriteFile(".dev-cheat.yaml", []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeRoot(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Run production build") {
		t.Errorf("help should list configured commands, got %q", out)
	}
}

func TestMissingConfigFailsNonHelp(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := executeRoot(t, "build")
	if err == nil {
		t.Fatal("non-help invocation without config must fail")
	}
}
