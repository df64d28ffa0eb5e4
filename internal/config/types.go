// Package config loads and validates the dev-cheat configuration tree.
// The tree is read once per invocation and treated as immutable afterwards;
// every section is optional and an absent section behaves as an empty one.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the root of the loaded configuration tree.
type Config struct {
	Project       *Project                `yaml:"project"`
	QuickCommands map[string]QuickCommand `yaml:"quick_commands"`
	AICommands    map[string]AICommand    `yaml:"ai_commands"`
	Workflows     map[string]Workflow     `yaml:"workflows"`
	Contexts      map[string]string       `yaml:"contexts"`
	Vocabulary    map[string]string       `yaml:"vocabulary"`
	AISettings    *AISettings             `yaml:"ai_settings"`
}

// Project carries free-form project metadata that is forwarded verbatim
// into AI prompts. Stack, Standards and Tools are arbitrary subtrees.
type Project struct {
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	Type      string         `yaml:"type,omitempty" json:"type,omitempty"`
	Stack     map[string]any `yaml:"stack,omitempty" json:"stack,omitempty"`
	Standards map[string]any `yaml:"standards,omitempty" json:"standards,omitempty"`
	Tools     map[string]any `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// QuickCommand is a named, deterministic sequence of shell actions.
type QuickCommand struct {
	Description string   `yaml:"description"`
	Actions     []string `yaml:"actions"`
}

// AICommand is a named prompt recipe. A command may instead hold one level
// of named sub-commands, resolved against the first invocation argument.
type AICommand struct {
	Description   string   `yaml:"description"`
	ContextNeeded []string `yaml:"context_needed"`
	Template      string   `yaml:"template"`

	// Sub holds nested sub-commands. Populated by UnmarshalYAML from any
	// mapping-valued keys that are not recognized fields.
	Sub map[string]AICommand `yaml:"-"`
}

// UnmarshalYAML decodes the recognized scalar fields and treats every other
// mapping-valued key as a sub-command. Sub-commands decode their recognized
// fields only, so nesting stops at one level.
func (c *AICommand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("ai command must be a mapping, got %s", nodeKind(node))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch key {
		case "description":
			if err := val.Decode(&c.Description); err != nil {
				return err
			}
		case "context_needed":
			if err := val.Decode(&c.ContextNeeded); err != nil {
				return err
			}
		case "template":
			if err := val.Decode(&c.Template); err != nil {
				return err
			}
		default:
			if val.Kind != yaml.MappingNode {
				return fmt.Errorf("ai command field %q is not recognized", key)
			}
			var sub subAICommand
			if err := val.Decode(&sub); err != nil {
				return fmt.Errorf("sub-command %q: %w", key, err)
			}
			if c.Sub == nil {
				c.Sub = make(map[string]AICommand)
			}
			c.Sub[key] = AICommand{
				Description:   sub.Description,
				ContextNeeded: sub.ContextNeeded,
				Template:      sub.Template,
			}
		}
	}
	return nil
}

// subAICommand decodes a nested command without re-entering UnmarshalYAML,
// so a sub-command cannot itself declare sub-commands.
type subAICommand struct {
	Description   string   `yaml:"description"`
	ContextNeeded []string `yaml:"context_needed"`
	Template      string   `yaml:"template"`
}

// Workflow is a named sequence of human-readable steps. Workflows have no
// executor of their own; they always reduce to an AI prompt.
type Workflow struct {
	Description   string   `yaml:"description"`
	Steps         []string `yaml:"steps"`
	ContextNeeded []string `yaml:"context_needed"`
}

// AISettings tunes the AI request. Environment variables take precedence,
// see ResolveSettings.
type AISettings struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// Validate checks structural invariants that YAML decoding cannot express.
func (c *Config) Validate() error {
	for name, qc := range c.QuickCommands {
		if len(qc.Actions) == 0 {
			return fmt.Errorf("quick command %q has no actions", name)
		}
	}
	for name, ac := range c.AICommands {
		if len(ac.Sub) == 0 && ac.Template == "" && ac.Description == "" {
			return fmt.Errorf("ai command %q is empty", name)
		}
	}
	for name, wf := range c.Workflows {
		if len(wf.Steps) == 0 {
			return fmt.Errorf("workflow %q has no steps", name)
		}
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}
