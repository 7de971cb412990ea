package agent

import (
	"strings"

	"github.com/sandevgo/muckraker/internal/core"
)

// Vocabulary cues used for expertise and stage classification. Coarse on
// purpose: this is a bias signal for generation, not an assessment.
var (
	expertCues = []string{"microfilm", "primary source", "archival", "provenance", "cross-reference", "corroborat"}
	noviceCues = []string{"how do i", "what is a", "explain", "never done"}

	synthesisCues = []string{"timeline", "summarize", "summary", "pull it together", "connect", "synthesis"}
	deepDiveCues  = []string{"tell me more", "dig deeper", "go deeper", "more detail", "full story"}
)

// DeriveContext classifies the conversation from its recent window. It runs
// fresh every turn, so the reported stage can regress between turns; that is
// accepted rather than papered over.
func DeriveContext(recent []core.Message, focus []string, intent string) core.ConversationContext {
	var lastUser string
	turns := 0
	for _, m := range recent {
		if m.Role == core.RoleSystem {
			continue
		}
		turns++
		if m.Role == core.RoleUser {
			lastUser = strings.ToLower(m.Content)
		}
	}

	stage := core.StageOpening
	switch {
	case containsAnyOf(lastUser, synthesisCues):
		stage = core.StageSynthesis
	case containsAnyOf(lastUser, deepDiveCues) || intent == IntentExpanding:
		stage = core.StageDeepDive
	case turns > 2:
		stage = core.StageExploration
	}

	expertise := core.ExpertiseIntermediate
	switch {
	case containsAnyOf(lastUser, expertCues):
		expertise = core.ExpertiseExpert
	case containsAnyOf(lastUser, noviceCues):
		expertise = core.ExpertiseNovice
	}

	return core.ConversationContext{
		Expertise:     expertise,
		Stage:         stage,
		ResearchFocus: focus,
		Intent:        intent,
	}
}

func containsAnyOf(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

// BuildInput assembles the one object a strategy consumes: the user message,
// the derived context, the ranked records trimmed to the cap, and the
// project metadata. The omitted count is carried so strategies can say how
// much was left out instead of dumping it.
func BuildInput(userMessage string, convCtx core.ConversationContext, records []core.CorpusRecord, recordCap int, project core.ProjectMetadata) core.GenerationInput {
	omitted := 0
	if recordCap > 0 && len(records) > recordCap {
		omitted = len(records) - recordCap
		records = records[:recordCap]
	}

	return core.GenerationInput{
		UserMessage: userMessage,
		Context:     convCtx,
		Records:     records,
		Omitted:     omitted,
		Project:     project,
	}
}
