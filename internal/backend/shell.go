package backend

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// ShellRunner executes one shell command line and blocks until it exits.
type ShellRunner interface {
	// Run executes command through the shell. The subprocess shares the
	// dispatcher's standard streams, so interactive programs work but the
	// call blocks until the command exits. A non-zero exit status or a
	// failure to launch is returned as an error.
	Run(ctx context.Context, command string) error
}

// ExecShell implements ShellRunner using os/exec.
type ExecShell struct {
	shell  string // e.g., "sh", "bash", "zsh"
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// ShellConfig holds configuration for the shell runner.
type ShellConfig struct {
	// Shell is the shell to use (default: "sh").
	Shell string

	// Stdin, Stdout, Stderr override the inherited standard streams.
	// Nil values inherit the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecShell creates a shell runner. Subprocesses inherit the invoking
// process's standard streams unless overridden in cfg.
func NewExecShell(cfg ShellConfig) *ExecShell {
	shell := cfg.Shell
	if shell == "" {
		shell = "sh"
	}
	s := &ExecShell{
		shell:  shell,
		stdin:  cfg.Stdin,
		stdout: cfg.Stdout,
		stderr: cfg.Stderr,
	}
	if s.stdin == nil {
		s.stdin = os.Stdin
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	return s
}

// Run implements ShellRunner.
func (s *ExecShell) Run(ctx context.Context, command string) error {
	// Use `sh -c` so full shell syntax works
	cmd := exec.CommandContext(ctx, s.shell, "-c", command)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	return cmd.Run()
}
