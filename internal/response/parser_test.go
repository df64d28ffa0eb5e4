package response

import (
	"reflect"
	"testing"
)

func TestParseAllSections(t *testing.T) {
	text := "ACTIONS:\n- echo one\n- exit 1\nCODE:\nprint(1)\nEXPLANATION:\ndone"

	got := NewSectionParser().Parse(text)

	wantActions := []string{"echo one", "exit 1"}
	if !reflect.DeepEqual(got.Actions, wantActions) {
		t.Errorf("Actions = %v, want %v", got.Actions, wantActions)
	}
	if got.Code != "print(1)" {
		t.Errorf("Code = %q, want %q", got.Code, "print(1)")
	}
	if got.Explanation != "done" {
		t.Errorf("Explanation = %q, want %q", got.Explanation, "done")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Response
	}{
		{
			name: "actions only",
			text: "ACTIONS:\n- ls -la\n",
			want: Response{Actions: []string{"ls -la"}},
		},
		{
			name: "no sections",
			text: "just some prose without any headers",
			want: Response{},
		},
		{
			name: "empty actions block",
			text: "ACTIONS:\nCODE:\nx = 1\nEXPLANATION:\nassigns x",
			want: Response{Code: "x = 1", Explanation: "assigns x"},
		},
		{
			name: "non-bullet lines ignored",
			text: "ACTIONS:\nfirst install deps\n- npm install\nthen run it\n- npm start\n",
			want: Response{Actions: []string{"npm install", "npm start"}},
		},
		{
			name: "indented bullets",
			text: "ACTIONS:\n  - go test ./...\n\t- go vet ./...\n",
			want: Response{Actions: []string{"go test ./...", "go vet ./..."}},
		},
		{
			name: "code without explanation",
			text: "CODE:\nfunc main() {}\n",
			want: Response{Code: "func main() {}"},
		},
		{
			name: "explanation only",
			text: "EXPLANATION:\nnothing to run",
			want: Response{Explanation: "nothing to run"},
		},
		{
			name: "dash inside action preserved",
			text: "ACTIONS:\n- git log --oneline -5\n",
			want: Response{Actions: []string{"git log --oneline -5"}},
		},
		{
			name: "code kept verbatim between headers",
			text: "ACTIONS:\n- true\nCODE:\nif x:\n    y()\n\nEXPLANATION:\nok",
			want: Response{Actions: []string{"true"}, Code: "if x:\n    y()", Explanation: "ok"},
		},
	}

	p := NewSectionParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
