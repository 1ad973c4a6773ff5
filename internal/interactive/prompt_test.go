package interactive

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes spelled out", input: "yes\n", want: true},
		{name: "uppercase", input: "Y\n", want: true},
		{name: "padded", input: "  yes  \n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "anything else", input: "maybe\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompterWithIO(strings.NewReader(tt.input), &out)

			got := p.Confirm("Install Python %s?", "3.12.1")
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Install Python 3.12.1?") {
				t.Errorf("prompt text missing from output: %q", out.String())
			}
			if !strings.Contains(out.String(), "[y/n]") {
				t.Errorf("expected [y/n] suffix, got %q", out.String())
			}
		})
	}
}
