// Package prompt builds the request body sent to the language model.
// Construction is deterministic for a given configuration, invocation and
// working tree, so identical invocations produce identical prompts.
package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/LiboWorks/dev-cheat/internal/config"
)

// replyContract is the fixed three-section format the model is asked to
// respond in. Section order is ACTIONS, CODE, EXPLANATION; any may be empty.
const replyContract = `Respond in this format:
ACTIONS:
- [list of shell commands to execute]

CODE:
[any code files to create/modify]

EXPLANATION:
[brief explanation of what you're doing]`

// projectContext is the JSON shape embedded in every prompt.
type projectContext struct {
	Project          *config.Project `json:"project"`
	Standards        map[string]any  `json:"standards"`
	Tools            map[string]any  `json:"tools"`
	CurrentDirectory string          `json:"currentDirectory"`
	Files            []string        `json:"files"`
}

// Build constructs the full prompt for one invocation. command is the
// resolved command tag ("custom", "interpret", "workflow" or an ai_commands
// key); args are the free-form parameters. cmd is the matched AI command
// definition, or nil for generic interpretation.
func Build(cfg *config.Config, command string, args []string, cmd *config.AICommand) (string, error) {
	ctx, err := buildProjectContext(cfg)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are a development assistant for this project. Here's the context:

PROJECT CONTEXT:
%s

COMMAND: %s
ARGS: %s

COMMAND CONTEXT:
%s

Based on the project context and command, provide executable actions. If you're generating code, make it production-ready and follow the specified standards.

%s`, ctx, command, strings.Join(args, " "), commandContext(cfg, command, args, cmd), replyContract), nil
}

// buildProjectContext serializes the project subtree, working directory and
// a bounded file snapshot as indented JSON.
func buildProjectContext(cfg *config.Config) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	ctx := projectContext{
		Project:          cfg.Project,
		CurrentDirectory: cwd,
		Files:            RelevantFiles(".", MaxFiles),
	}
	if cfg.Project != nil {
		ctx.Standards = cfg.Project.Standards
		ctx.Tools = cfg.Project.Tools
	}

	b, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize project context: %w", err)
	}
	return string(b), nil
}

// commandContext describes the matched AI command, or asks for generic
// interpretation. Declared context labels that name a configured contexts
// entry have that snippet inlined.
func commandContext(cfg *config.Config, command string, args []string, cmd *config.AICommand) string {
	if cmd == nil {
		return fmt.Sprintf("General command interpretation needed for: %s %s", command, strings.Join(args, " "))
	}

	labels := "none"
	if len(cmd.ContextNeeded) > 0 {
		labels = strings.Join(cmd.ContextNeeded, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Template: %s\nContext needed: %s", cmd.Template, labels)
	for _, label := range cmd.ContextNeeded {
		if snippet, ok := cfg.Contexts[label]; ok {
			fmt.Fprintf(&b, "\n%s: %s", label, snippet)
		}
	}
	return b.String()
}
