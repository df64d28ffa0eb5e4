// Package response parses the three-section text contract replies
// (ACTIONS / CODE / EXPLANATION) returned by the language model.
//
// The contract is a legacy free-text format with no escaping or grammar, so
// parsing is best-effort and anchored on the section headers. The Parser
// interface isolates the format: a structured (tagged-field) protocol could
// replace SectionParser without touching the dispatcher.
package response

import (
	"regexp"
	"strings"
)

// Response is the structured view of a model reply. Any field may be empty.
type Response struct {
	// Actions are shell command suggestions, one per ACTIONS bullet.
	Actions []string

	// Code is the CODE section kept verbatim, trimmed of surrounding
	// whitespace. It is only ever printed, never written or executed.
	Code string

	// Explanation is the free-prose EXPLANATION section.
	Explanation string
}

// Parser extracts a Response from raw reply text.
type Parser interface {
	Parse(text string) Response
}

// SectionParser implements Parser for the ACTIONS/CODE/EXPLANATION format.
type SectionParser struct{}

// NewSectionParser returns a parser for the legacy section format.
func NewSectionParser() *SectionParser {
	return &SectionParser{}
}

var (
	actionsRe     = regexp.MustCompile(`(?s)ACTIONS:\s*(.*?)(?:CODE:|EXPLANATION:|$)`)
	codeRe        = regexp.MustCompile(`(?s)CODE:\s*(.*?)(?:EXPLANATION:|$)`)
	explanationRe = regexp.MustCompile(`(?s)EXPLANATION:\s*(.*)`)
)

// Parse implements Parser.
func (p *SectionParser) Parse(text string) Response {
	var resp Response

	if m := actionsRe.FindStringSubmatch(text); m != nil {
		resp.Actions = parseActionLines(m[1])
	}
	if m := codeRe.FindStringSubmatch(text); m != nil {
		resp.Code = strings.TrimSpace(m[1])
	}
	if m := explanationRe.FindStringSubmatch(text); m != nil {
		resp.Explanation = strings.TrimSpace(m[1])
	}
	return resp
}

// parseActionLines extracts bullet lines from the ACTIONS block. A line is
// an action when, after trimming leading whitespace, it starts with "-";
// the bullet and the whitespace after it are stripped.
func parseActionLines(block string) []string {
	var actions []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		action := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if action != "" {
			actions = append(actions, action)
		}
	}
	return actions
}
