package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words and short tokens",
			text: "Tell me about unsolved murders in Chicago during the 1920s",
			want: []string{"unsolved", "murders", "chicago", "1920s"},
		},
		{
			name: "dedup keeps first occurrence",
			text: "murder murder murder mystery",
			want: []string{"murder", "mystery"},
		},
		{
			name: "punctuation only",
			text: "?! ... --",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractKeywords(tt.text))
		})
	}
}

func TestExtractKeywords_Cap(t *testing.T) {
	text := "arson robbery kidnapping smuggling blackmail forgery embezzlement bribery rioting looting"
	got := ExtractKeywords(text)
	require.Len(t, got, maxKeywords)
	require.Equal(t, "arson", got[0])
	require.NotContains(t, got, "looting")
}
