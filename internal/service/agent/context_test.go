package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/muckraker/internal/core"
)

func userMsg(content string) core.Message {
	return core.Message{Role: core.RoleUser, Content: content}
}

func assistantMsg(content string) core.Message {
	return core.Message{Role: core.RoleAssistant, Content: content}
}

func TestDeriveContext_Stage(t *testing.T) {
	tests := []struct {
		name   string
		recent []core.Message
		intent string
		want   string
	}{
		{
			name:   "first message is opening",
			recent: []core.Message{userMsg("any murders in the archive?")},
			intent: IntentCrime,
			want:   core.StageOpening,
		},
		{
			name: "several turns is exploration",
			recent: []core.Message{
				userMsg("any murders?"), assistantMsg("a few"), userMsg("which ones?"),
			},
			intent: IntentCrime,
			want:   core.StageExploration,
		},
		{
			name:   "deep dive cue in last message",
			recent: []core.Message{userMsg("tell me more about the warehouse fire")},
			intent: IntentGeneral,
			want:   core.StageDeepDive,
		},
		{
			name:   "expanding intent implies deep dive",
			recent: []core.Message{userMsg("yes")},
			intent: IntentExpanding,
			want:   core.StageDeepDive,
		},
		{
			name: "synthesis cue wins over turn count",
			recent: []core.Message{
				userMsg("a"), assistantMsg("b"), userMsg("c"), assistantMsg("d"),
				userMsg("can you summarize the timeline so far?"),
			},
			intent: IntentGeneral,
			want:   core.StageSynthesis,
		},
		{
			name: "system messages do not count as turns",
			recent: []core.Message{
				{Role: core.RoleSystem, Content: "persona"},
				{Role: core.RoleSystem, Content: "rules"},
				userMsg("any murders?"),
			},
			intent: IntentCrime,
			want:   core.StageOpening,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveContext(tt.recent, nil, tt.intent)
			require.Equal(t, tt.want, got.Stage)
		})
	}
}

func TestDeriveContext_Expertise(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"default intermediate", "any murders in Chicago?", core.ExpertiseIntermediate},
		{"archival vocabulary reads expert", "I already checked the microfilm reels for 1924", core.ExpertiseExpert},
		{"asking basics reads novice", "how do I search an archive like this?", core.ExpertiseNovice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveContext([]core.Message{userMsg(tt.text)}, nil, IntentGeneral)
			require.Equal(t, tt.want, got.Expertise)
		})
	}
}

func TestDeriveContext_CarriesFocusAndIntent(t *testing.T) {
	got := DeriveContext([]core.Message{userMsg("hi")}, []string{"arson", "docks"}, IntentCrime)
	require.Equal(t, []string{"arson", "docks"}, got.ResearchFocus)
	require.Equal(t, IntentCrime, got.Intent)
}

func TestBuildInput_RecordCap(t *testing.T) {
	records := make([]core.CorpusRecord, 5)
	for i := range records {
		records[i] = core.CorpusRecord{ID: int64(i + 1), Title: "rec", Relevance: 1 - float64(i)/10}
	}

	in := BuildInput("q", core.ConversationContext{}, records, 3, core.ProjectMetadata{})
	require.Len(t, in.Records, 3)
	require.Equal(t, 2, in.Omitted)
	require.Equal(t, int64(1), in.Records[0].ID)

	in = BuildInput("q", core.ConversationContext{}, records[:2], 3, core.ProjectMetadata{})
	require.Len(t, in.Records, 2)
	require.Zero(t, in.Omitted)
}

func TestBuildUserPrompt_IncludesRecordsAndOmissions(t *testing.T) {
	published := time.Date(1924, time.March, 2, 0, 0, 0, 0, time.UTC)
	in := core.GenerationInput{
		UserMessage: "what happened at the docks?",
		Context:     core.ConversationContext{Stage: core.StageOpening, Expertise: core.ExpertiseIntermediate, Intent: IntentGeneral},
		Records: []core.CorpusRecord{{
			Title:       "Dock Fire Ruled Arson",
			Excerpt:     "Investigators found...",
			Publication: "The Harbor Herald",
			PublishedAt: &published,
			Relevance:   0.9,
			Potential:   core.PotentialYes,
		}},
		Omitted: 4,
		Project: core.ProjectMetadata{Name: "Harbor Stories"},
	}

	prompt := buildUserPrompt(in)
	require.Contains(t, prompt, "Harbor Stories")
	require.Contains(t, prompt, "Dock Fire Ruled Arson")
	require.Contains(t, prompt, "The Harbor Herald, 1924")
	require.Contains(t, prompt, "4 more omitted")
	require.Contains(t, prompt, "what happened at the docks?")
}

func TestBuildUserPrompt_NoRecords(t *testing.T) {
	prompt := buildUserPrompt(core.GenerationInput{
		UserMessage: "anything?",
		Project:     core.ProjectMetadata{Name: "P"},
	})
	require.Contains(t, prompt, "No archive records matched")
}
