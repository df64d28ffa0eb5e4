// Package dispatch routes one user invocation to exactly one execution
// path: a deterministic quick command, a templated AI command, a workflow
// expansion, a vocabulary shortcut, or generic interpretation.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/LiboWorks/dev-cheat/internal/backend"
	"github.com/LiboWorks/dev-cheat/internal/config"
	"github.com/LiboWorks/dev-cheat/internal/logging"
	"github.com/LiboWorks/dev-cheat/internal/prompt"
	"github.com/LiboWorks/dev-cheat/internal/render"
	"github.com/LiboWorks/dev-cheat/internal/response"
)

// echoPrefix marks display-only quick-command actions. The remainder is
// printed literally; no subprocess is spawned, so shell quoting in the
// remainder is not resolved.
const echoPrefix = "echo "

// Dispatcher owns one loaded configuration and executes one invocation.
type Dispatcher struct {
	cfg      *config.Config
	settings config.Settings
	registry *backend.Registry
	shell    backend.ShellRunner
	parser   response.Parser
	renderer *render.Renderer
}

// Option customizes a Dispatcher, mainly for tests.
type Option func(*Dispatcher)

// WithLLM injects a pre-built language-model backend and makes it the
// default provider.
func WithLLM(b backend.LLMBackend) Option {
	return func(d *Dispatcher) {
		d.registry.Register(b.Name(), b)
		d.registry.SetDefault(b.Name())
	}
}

// WithShell overrides the shell runner.
func WithShell(s backend.ShellRunner) Option {
	return func(d *Dispatcher) {
		d.shell = s
	}
}

// WithRenderer overrides the output renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(d *Dispatcher) {
		d.renderer = r
	}
}

// WithParser overrides the response parser.
func WithParser(p response.Parser) Option {
	return func(d *Dispatcher) {
		d.parser = p
	}
}

// New creates a Dispatcher over a loaded configuration. The configuration
// is treated as immutable for the lifetime of the dispatcher.
func New(cfg *config.Config, settings config.Settings, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		settings: settings,
		registry: backend.NewRegistry(),
		parser:   response.NewSectionParser(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.renderer == nil {
		d.renderer = render.New(render.Options{})
	}
	if d.shell == nil {
		d.shell = backend.NewExecShell(backend.ShellConfig{})
	}
	return d
}

// Close releases provider resources.
func (d *Dispatcher) Close() error {
	return d.registry.Close()
}

// Execute classifies the invocation and runs exactly one execution path.
// Precedence, first match wins: quick command, AI command, workflow,
// vocabulary phrase, generic interpretation. Matching is exact; quick and
// AI resolution key on the command word only, vocabulary on the full
// space-joined invocation.
func (d *Dispatcher) Execute(ctx context.Context, command string, args []string) error {
	full := strings.Join(append([]string{command}, args...), " ")

	if qc, ok := d.cfg.QuickCommands[command]; ok {
		logging.Debug().Str("path", "quick").Str("command", command).Msg("resolved")
		return d.runQuick(ctx, qc)
	}

	if ac, ok := d.cfg.AICommands[command]; ok {
		name, cmd, rest := resolveSub(command, ac, args)
		logging.Debug().Str("path", "ai").Str("command", name).Msg("resolved")
		return d.runAI(ctx, name, rest, &cmd)
	}

	if wf, ok := d.cfg.Workflows[command]; ok {
		logging.Debug().Str("path", "workflow").Str("command", command).Msg("resolved")
		return d.runWorkflow(ctx, wf, args)
	}

	if expansion, ok := d.cfg.Vocabulary[full]; ok {
		logging.Debug().Str("path", "vocabulary").Str("phrase", full).Msg("resolved")
		return d.runAI(ctx, "custom", []string{expansion}, nil)
	}

	logging.Debug().Str("path", "interpret").Str("invocation", full).Msg("resolved")
	return d.runAI(ctx, "interpret", []string{full}, nil)
}

// resolveSub resolves one level of AI sub-commands against the first
// argument token.
func resolveSub(command string, cmd config.AICommand, args []string) (string, config.AICommand, []string) {
	if len(cmd.Sub) > 0 && len(args) > 0 {
		if sub, ok := cmd.Sub[args[0]]; ok {
			return command + " " + args[0], sub, args[1:]
		}
	}
	return command, cmd, args
}

// runQuick executes a quick command's actions sequentially, fail-fast.
// Actions with the echo prefix are display-only and never spawn a process.
func (d *Dispatcher) runQuick(ctx context.Context, qc config.QuickCommand) error {
	d.renderer.Executing(qc.Description)

	for _, action := range qc.Actions {
		d.renderer.Action(action)

		if strings.HasPrefix(action, echoPrefix) {
			d.renderer.Plain(strings.TrimPrefix(action, echoPrefix))
			continue
		}

		if err := d.shell.Run(ctx, action); err != nil {
			return &ActionError{Action: action, Err: err}
		}
	}

	d.renderer.Success("Command completed successfully!")
	return nil
}

// runAI sends one prompt to the configured provider and executes the reply.
// name is the command tag ("custom", "interpret", "workflow" or an AI
// command key); cmd is the matched definition, looked up by tag when nil.
func (d *Dispatcher) runAI(ctx context.Context, name string, args []string, cmd *config.AICommand) error {
	// Credential gate: fail before any network activity.
	if d.settings.APIKey == "" {
		return fmt.Errorf("%w: export %s to use AI commands",
			ErrCredentialMissing, config.CredentialVar(d.settings.Provider))
	}

	if cmd == nil {
		if ac, ok := d.cfg.AICommands[name]; ok {
			cmd = &ac
		}
	}

	d.renderer.Processing()

	body, err := prompt.Build(d.cfg, name, args, cmd)
	if err != nil {
		return fmt.Errorf("AI command failed: %w", err)
	}
	logging.Debug().Str("command", name).Int("prompt_bytes", len(body)).
		Str("model", d.settings.Model).Msg("sending request")

	llm, err := d.ensureBackend()
	if err != nil {
		return fmt.Errorf("AI command failed: %w", err)
	}

	reply, err := llm.Generate(ctx, body, d.settings.Model, d.settings.MaxTokens)
	if err != nil {
		return fmt.Errorf("AI command failed: %w", err)
	}

	d.renderer.Response(reply)
	d.executeResponse(ctx, d.parser.Parse(reply))
	return nil
}

// executeResponse runs AI-suggested actions fail-soft: every action is
// attempted, failures are reported per-action and never abort siblings.
// This deliberately differs from the fail-fast quick-command pipeline.
func (d *Dispatcher) executeResponse(ctx context.Context, resp response.Response) {
	if len(resp.Actions) > 0 {
		d.renderer.ActionsHeader()
		for _, action := range resp.Actions {
			d.renderer.Action(action)
			if err := d.shell.Run(ctx, action); err != nil {
				d.renderer.ActionFailure(err)
				logging.Warn().Str("action", action).Err(err).Msg("suggested action failed")
			}
		}
	}

	if resp.Code != "" {
		d.renderer.Code(resp.Code)
	}
}

// runWorkflow reduces a workflow to a single AI request: the steps are
// joined into one sentence and dispatched under the "workflow" tag with the
// original arguments appended.
func (d *Dispatcher) runWorkflow(ctx context.Context, wf config.Workflow, args []string) error {
	d.renderer.Workflow(wf.Description)

	steps := fmt.Sprintf("Execute this workflow: %s", strings.Join(wf.Steps, ", "))
	return d.runAI(ctx, "workflow", append([]string{steps}, args...), nil)
}

// ensureBackend returns the default provider, constructing it from settings
// on first use.
func (d *Dispatcher) ensureBackend() (backend.LLMBackend, error) {
	if b, ok := d.registry.Get(""); ok {
		return b, nil
	}

	var (
		b   backend.LLMBackend
		err error
	)
	switch d.settings.Provider {
	case "openai":
		b, err = backend.NewOpenAIBackend(backend.OpenAIConfig{
			APIKey:       d.settings.APIKey,
			DefaultModel: d.settings.Model,
		})
	default:
		b, err = backend.NewAnthropicBackend(backend.AnthropicConfig{
			APIKey:       d.settings.APIKey,
			DefaultModel: d.settings.Model,
		})
	}
	if err != nil {
		return nil, err
	}

	d.registry.Register(b.Name(), b)
	d.registry.SetDefault(b.Name())
	return b, nil
}
