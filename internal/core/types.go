package core

import "time"

const (
	AppName    = "Muckraker"
	AppVersion = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// DocumentaryPotential is the pre-computed editorial category assigned to a
// corpus record during analysis.
type DocumentaryPotential string

const (
	PotentialYes   DocumentaryPotential = "YES"
	PotentialMaybe DocumentaryPotential = "MAYBE"
	PotentialNo    DocumentaryPotential = "NO"
)

// CorpusRecord is a single analyzed newspaper article. Records are owned by
// the corpus store and never mutated by the agent.
type CorpusRecord struct {
	ID                int64                `json:"id"`
	Title             string               `json:"title"`
	Excerpt           string               `json:"excerpt"`
	Publication       string               `json:"publication,omitempty"`
	PublishedAt       *time.Time           `json:"published_at,omitempty"`
	Relevance         float64              `json:"relevance"`
	NarrativeStrength float64              `json:"narrative_strength"`
	Potential         DocumentaryPotential `json:"potential"`
	StoryTypes        string               `json:"story_types,omitempty"`
}

// ProjectMetadata describes the research project a conversation belongs to.
type ProjectMetadata struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	ResearchGoals []string `json:"research_goals,omitempty"`
}

// Conversation stages. Classification is re-derived every turn from the
// recent window, so a conversation may report an earlier stage than it did
// before. That looseness is accepted.
const (
	StageOpening     = "opening"
	StageExploration = "exploration"
	StageDeepDive    = "deep_dive"
	StageSynthesis   = "synthesis"
)

const (
	ExpertiseNovice       = "novice"
	ExpertiseIntermediate = "intermediate"
	ExpertiseExpert       = "expert"
)

// ConversationContext is derived fresh each turn; only the latest value is
// retained on the conversation.
type ConversationContext struct {
	Expertise     string   `json:"user_expertise"`
	Stage         string   `json:"conversation_stage"`
	ResearchFocus []string `json:"research_focus"`
	Intent        string   `json:"user_intent"`
}

// GenerationInput is the single object handed to a response strategy. Built
// fresh per turn, consumed once, never retained.
type GenerationInput struct {
	UserMessage string              `json:"user_message"`
	Context     ConversationContext `json:"conversation_context"`
	Records     []CorpusRecord      `json:"records"`
	// Omitted counts retrieved records trimmed by the context cap.
	Omitted int             `json:"omitted_records"`
	Project ProjectMetadata `json:"project"`
}
