package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const fullConfig = `
project:
  name: shop
  type: web
  stack:
    language: python
  standards:
    lint: ruff
  tools:
    test: pytest

quick_commands:
  build:
    description: Run production build
    actions:
      - echo building
      - make build

ai_commands:
  create:
    description: Generate a new component
    context_needed:
      - standards
    template: Create a component named {name}
  review:
    description: Code review helpers
    file:
      description: Review one file
      template: Review the file

workflows:
  ship:
    description: Ship a release
    steps:
      - run tests
      - tag release

contexts:
  standards: Follow PEP 8.

vocabulary:
  make it faster: optimize the hot path

ai_settings:
  model: test-model
  max_tokens: 512
`

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dev-commands.yaml", fullConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Project == nil || cfg.Project.Name != "shop" {
		t.Errorf("unexpected project: %+v", cfg.Project)
	}

	qc, ok := cfg.QuickCommands["build"]
	if !ok {
		t.Fatal("quick command 'build' not found")
	}
	if len(qc.Actions) != 2 {
		t.Errorf("expected 2 actions, got %d", len(qc.Actions))
	}

	ac, ok := cfg.AICommands["create"]
	if !ok {
		t.Fatal("ai command 'create' not found")
	}
	if ac.Template != "Create a component named {name}" {
		t.Errorf("unexpected template: %q", ac.Template)
	}
	if len(ac.ContextNeeded) != 1 || ac.ContextNeeded[0] != "standards" {
		t.Errorf("unexpected context_needed: %v", ac.ContextNeeded)
	}

	wf, ok := cfg.Workflows["ship"]
	if !ok {
		t.Fatal("workflow 'ship' not found")
	}
	if len(wf.Steps) != 2 {
		t.Errorf("expected 2 steps, got %d", len(wf.Steps))
	}

	if got := cfg.Vocabulary["make it faster"]; got != "optimize the hot path" {
		t.Errorf("unexpected vocabulary expansion: %q", got)
	}

	if cfg.AISettings == nil || cfg.AISettings.MaxTokens != 512 {
		t.Errorf("unexpected ai_settings: %+v", cfg.AISettings)
	}
}

func TestLoadSubCommands(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dev-commands.yaml", fullConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	review, ok := cfg.AICommands["review"]
	if !ok {
		t.Fatal("ai command 'review' not found")
	}
	sub, ok := review.Sub["file"]
	if !ok {
		t.Fatalf("sub-command 'file' not found, sub = %v", review.Sub)
	}
	if sub.Template != "Review the file" {
		t.Errorf("unexpected sub-command template: %q", sub.Template)
	}
}

func TestLoadEmptySectionsValid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".dev-cheat.yaml", "project:\n  name: minimal\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.QuickCommands) != 0 || len(cfg.AICommands) != 0 || len(cfg.Workflows) != 0 {
		t.Error("expected empty sections for minimal config")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "dev-commands.yaml", "quick_commands:\n  build: [unterminated\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "error loading config file") {
		t.Errorf("parse error should mention the config file: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				QuickCommands: map[string]QuickCommand{
					"build": {Description: "b", Actions: []string{"make"}},
				},
			},
			wantErr: false,
		},
		{
			name: "quick command without actions",
			cfg: Config{
				QuickCommands: map[string]QuickCommand{
					"build": {Description: "b"},
				},
			},
			wantErr: true,
		},
		{
			name: "workflow without steps",
			cfg: Config{
				Workflows: map[string]Workflow{
					"ship": {Description: "s"},
				},
			},
			wantErr: true,
		},
		{
			name: "empty ai command",
			cfg: Config{
				AICommands: map[string]AICommand{
					"fix": {},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
