package conv

import "testing"

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "One case from 1948 caught my eye.",
			expected: "One case from 1948 caught my eye.\n",
		},
		{
			name:     "bold text",
			input:    "**Councilman Vanishes**",
			expected: "<strong>Councilman Vanishes</strong>\n",
		},
		{
			name:     "italic text",
			input:    "*unresolved*",
			expected: "<em>unresolved</em>\n",
		},
		{
			name:     "inline code",
			input:    "`/stats`",
			expected: "<code>/stats</code>\n",
		},
		{
			name:     "disallowed heading stripped",
			input:    "# Leads",
			expected: "Leads\n",
		},
		{
			name:     "list markers survive as text",
			input:    "- first lead\n- second lead",
			expected: "\nfirst lead\nsecond lead\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
