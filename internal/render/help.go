package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LiboWorks/dev-cheat/internal/config"
)

// HelpText renders the usage overview for a loaded configuration: every
// quick command, AI command and workflow with its description, aligned.
// Keys are sorted so the output is stable.
func HelpText(cfg *config.Config) string {
	var b strings.Builder

	b.WriteString("\n🚀 Dev Assistant CLI\n\n")
	b.WriteString("USAGE:\n  dev <command> [args...]\n")

	writeSection(&b, "QUICK COMMANDS", quickEntries(cfg))
	writeSection(&b, "AI COMMANDS", aiEntries(cfg))
	writeSection(&b, "WORKFLOWS", workflowEntries(cfg))

	b.WriteString(`
EXAMPLES:
  dev build                    # Run production build
  dev create component Button  # Generate new component
  dev fix                      # Auto-fix linting issues
  dev analyze src/app.py       # Analyze specific file

Set ANTHROPIC_API_KEY environment variable for AI commands.
`)
	return b.String()
}

type helpEntry struct {
	name        string
	description string
}

func writeSection(b *strings.Builder, title string, entries []helpEntry) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "  %-15s - %s\n", e.name, e.description)
	}
}

func quickEntries(cfg *config.Config) []helpEntry {
	var entries []helpEntry
	for name, qc := range cfg.QuickCommands {
		entries = append(entries, helpEntry{name, qc.Description})
	}
	return sortedEntries(entries)
}

func aiEntries(cfg *config.Config) []helpEntry {
	var entries []helpEntry
	for name, ac := range cfg.AICommands {
		// Entries without a description are sub-command groups or
		// malformed; skip them in the listing.
		if ac.Description == "" {
			continue
		}
		entries = append(entries, helpEntry{name, ac.Description})
	}
	return sortedEntries(entries)
}

func workflowEntries(cfg *config.Config) []helpEntry {
	var entries []helpEntry
	for name, wf := range cfg.Workflows {
		entries = append(entries, helpEntry{name, wf.Description})
	}
	return sortedEntries(entries)
}

func sortedEntries(entries []helpEntry) []helpEntry {
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries
}
