package convert_test

import (
	"testing"

	"github.com/fwojciec/sitemd/convert"
	"github.com/stretchr/testify/assert"
)

func TestCleanMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "removes horizontal rule artifacts",
			input: "intro\n* * *\n\nbody",
			want:  "intro\n\nbody",
		},
		{
			name:  "removes stray emphasis markers",
			input: "intro\n__\nbody",
			want:  "intro\nbody",
		},
		{
			name:  "normalizes header spacing",
			input: "\n## Usage\n\n\n\nRun it.",
			want:  "## Usage\n\nRun it.",
		},
		{
			name:  "collapses excess blank lines",
			input: "one\n\n\n\ntwo",
			want:  "one\n\ntwo",
		},
		{
			name:  "trims surrounding whitespace",
			input: "\n\n  content  \n\n",
			want:  "content",
		},
		{
			name:  "leaves clean markdown alone",
			input: "# Title\n\nA paragraph.\n\n- item",
			want:  "# Title\n\nA paragraph.\n\n- item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, convert.CleanMarkdown(tt.input))
		})
	}
}
