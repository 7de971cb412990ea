package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/muckraker/internal/core"
)

func TestSplitHTML(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := splitHTML("hello", 100)
		require.Equal(t, []string{"hello"}, chunks)
	})

	t.Run("splits at newline when one is available", func(t *testing.T) {
		text := strings.Repeat("a", 80) + "\n" + strings.Repeat("b", 80)
		chunks := splitHTML(text, 100)
		require.Len(t, chunks, 2)
		require.Equal(t, strings.Repeat("a", 80), chunks[0])
		require.Equal(t, strings.Repeat("b", 80), chunks[1])
	})

	t.Run("hard split without newlines", func(t *testing.T) {
		text := strings.Repeat("a", 250)
		chunks := splitHTML(text, 100)
		require.Len(t, chunks, 3)
		for _, chunk := range chunks {
			require.LessOrEqual(t, len(chunk), 100)
		}
	})
}

func TestRenderMarkdown(t *testing.T) {
	resp := core.AgentResponse{
		Message:            "The dock fire is your strongest lead.",
		InvestigativeLeads: []string{"Check the insurer"},
		FollowUpQuestions:  []string{"Want the watchman's later coverage?"},
	}

	out := renderMarkdown(resp)
	require.True(t, strings.HasPrefix(out, "The dock fire"))
	require.Contains(t, out, "**Leads**\n- Check the insurer")
	require.Contains(t, out, "**You could ask**\n- Want the watchman's later coverage?")
}

func TestRenderMarkdown_MessageOnly(t *testing.T) {
	out := renderMarkdown(core.AgentResponse{Message: "Just an answer."})
	require.Equal(t, "Just an answer.", out)
}
