package devcheat

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LiboWorks/dev-cheat/internal/config"
)

const quickOnlyConfig = `
quick_commands:
  greet:
    description: Say hello
    actions:
      - echo hello from dev-cheat
workflows:
  ship:
    description: Ship it
    steps:
      - run tests
`

func writeConfig(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, ".dev-cheat.yaml")
	if err := os.WriteFile(path, []byte(quickOnlyConfig), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunQuickCommand(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir)

	var out bytes.Buffer
	err := RunWith(context.Background(), "greet", nil,
		WithDir(dir),
		WithOutput(&out),
		WithNoColor(),
	)
	if err != nil {
		t.Fatalf("RunWith() error = %v", err)
	}

	if !strings.Contains(out.String(), "hello from dev-cheat") {
		t.Errorf("output = %q, want the echoed line", out.String())
	}
	if !strings.Contains(out.String(), "Say hello") {
		t.Error("output should announce the command description")
	}
}

func TestRunMissingConfig(t *testing.T) {
	err := Run(context.Background(), "greet", nil, &Options{Dir: t.TempDir()})
	if !errors.Is(err, config.ErrNoConfigFile) {
		t.Errorf("expected ErrNoConfigFile, got %v", err)
	}
}

func TestRunWithConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elsewhere.yaml")
	if err := os.WriteFile(path, []byte(quickOnlyConfig), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := RunWith(context.Background(), "greet", nil,
		WithConfigPath(path),
		WithOutput(&out),
		WithNoColor(),
	)
	if err != nil {
		t.Fatalf("RunWith() error = %v", err)
	}
}

func TestHelpText(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir)

	text, err := HelpText(&Options{Dir: dir})
	if err != nil {
		t.Fatalf("HelpText() error = %v", err)
	}
	for _, want := range []string{"greet", "Say hello", "ship", "WORKFLOWS:"} {
		if !strings.Contains(text, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestHelpTextMissingConfig(t *testing.T) {
	_, err := HelpText(&Options{Dir: t.TempDir()})
	if !errors.Is(err, config.ErrNoConfigFile) {
		t.Errorf("expected ErrNoConfigFile, got %v", err)
	}
}
