// Package render produces all user-facing output of the dispatcher: status
// lines, AI replies, code blocks and the help text. Everything writes to an
// injectable writer so tests can capture output.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Renderer writes status output for one invocation.
type Renderer struct {
	out io.Writer
}

// Options configures a Renderer.
type Options struct {
	// Out is where output is written. Defaults to os.Stdout.
	Out io.Writer

	// NoColor disables ANSI colors globally.
	NoColor bool
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.NoColor {
		color.NoColor = true
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// Out exposes the underlying writer so shell subprocesses can share it.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Executing announces a quick command.
func (r *Renderer) Executing(description string) {
	fmt.Fprintf(r.out, "🚀 Executing: %s\n", description)
}

// Workflow announces a workflow expansion.
func (r *Renderer) Workflow(description string) {
	fmt.Fprintf(r.out, "🔄 Starting workflow: %s\n", description)
}

// Processing announces the AI round-trip.
func (r *Renderer) Processing() {
	fmt.Fprintln(r.out, "🤖 Processing with AI...")
}

// Action prints one action line before it runs.
func (r *Renderer) Action(action string) {
	fmt.Fprintf(r.out, "  → %s\n", color.New(color.FgCyan).Sprint(action))
}

// ActionsHeader introduces the AI-suggested action list.
func (r *Renderer) ActionsHeader() {
	fmt.Fprintln(r.out, "\n🔧 Executing actions:")
}

// Plain prints a display-only line, used for echo actions.
func (r *Renderer) Plain(text string) {
	fmt.Fprintln(r.out, text)
}

// Success reports overall success.
func (r *Renderer) Success(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", "✅", color.New(color.FgGreen).Sprint(msg))
}

// Failure reports a fatal failure.
func (r *Renderer) Failure(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", "❌", color.New(color.FgRed).Sprint(msg))
}

// ActionFailure reports one failed AI-suggested action without aborting
// its siblings.
func (r *Renderer) ActionFailure(err error) {
	fmt.Fprintf(r.out, "    ❌ Failed: %s\n", color.New(color.FgRed).Sprint(err.Error()))
}

// Response prints the full model reply.
func (r *Renderer) Response(text string) {
	fmt.Fprintln(r.out, "📝 AI Response:")
	fmt.Fprintln(r.out, text)
}

// Code prints a generated code block. The block is never written to a file
// and never executed.
func (r *Renderer) Code(code string) {
	fmt.Fprintln(r.out, "\n📄 Generated code:")
	fmt.Fprintln(r.out, code)
}

// Hint prints a remediation hint.
func (r *Renderer) Hint(msg string) {
	fmt.Fprintln(r.out, msg)
}
