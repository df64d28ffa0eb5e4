package devcheat

import "io"

// Version is the current version of dev-cheat.
const Version = "0.1.0"

// Options configures a dispatcher run.
type Options struct {
	// Dir is the directory searched for a configuration file.
	// Defaults to the current working directory.
	Dir string

	// ConfigPath bypasses discovery and loads this exact file.
	ConfigPath string

	// Out is where user-facing output is written. Defaults to os.Stdout.
	Out io.Writer

	// NoColor disables ANSI colors.
	NoColor bool
}

// DefaultOptions returns a new Options with default values.
func DefaultOptions() *Options {
	return &Options{}
}

// Option is a functional option for configuring a run.
type Option func(*Options)

// WithDir sets the directory searched for a configuration file.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

// WithConfigPath loads this exact configuration file, skipping discovery.
func WithConfigPath(path string) Option {
	return func(o *Options) {
		o.ConfigPath = path
	}
}

// WithOutput redirects user-facing output.
func WithOutput(out io.Writer) Option {
	return func(o *Options) {
		o.Out = out
	}
}

// WithNoColor disables ANSI colors.
func WithNoColor() Option {
	return func(o *Options) {
		o.NoColor = true
	}
}

// ApplyOptions applies functional options to a default Options.
func ApplyOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
