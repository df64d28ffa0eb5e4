// Package devcheat provides a public API for the dev-cheat dispatcher.
//
// This package allows embedding the dispatcher in other programs: load a
// configuration, route one invocation, or render the help overview.
//
// Basic usage:
//
//	err := devcheat.Run(ctx, "build", nil, nil)
//
// With options:
//
//	err := devcheat.RunWith(ctx, "create", []string{"Button"},
//	    devcheat.WithDir("/path/to/project"),
//	    devcheat.WithNoColor(),
//	)
package devcheat

import (
	"context"

	"github.com/LiboWorks/dev-cheat/internal/config"
	"github.com/LiboWorks/dev-cheat/internal/dispatch"
	"github.com/LiboWorks/dev-cheat/internal/render"
)

// Run loads the configuration and routes one invocation: command is the
// command word, args its arguments. A nil opts uses defaults (configuration
// discovered in the current directory, colored output on stdout).
//
// The process model is one invocation per call: the configuration is read
// fresh and nothing persists afterwards.
func Run(ctx context.Context, command string, args []string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	d := dispatch.New(cfg, config.ResolveSettings(cfg),
		dispatch.WithRenderer(render.New(render.Options{Out: opts.Out, NoColor: opts.NoColor})))
	defer d.Close()

	return d.Execute(ctx, command, args)
}

// RunWith routes one invocation with functional options.
func RunWith(ctx context.Context, command string, args []string, opts ...Option) error {
	return Run(ctx, command, args, ApplyOptions(opts...))
}

// HelpText loads the configuration and renders the command overview.
// It fails when no configuration can be loaded; callers decide how to
// present that (the CLI prints a remediation hint and still exits 0).
func HelpText(opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return "", err
	}
	return render.HelpText(cfg), nil
}

func loadConfig(opts *Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.Discover(opts.Dir)
}
