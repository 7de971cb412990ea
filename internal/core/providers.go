package core

import "context"

// CorpusQuery is the request shape the corpus search collaborator accepts.
// Empty Keywords asks for a diverse high-confidence sample instead of a
// keyword match.
type CorpusQuery struct {
	Keywords []string
	Limit    int
}

// CorpusFilter narrows a corpus search beyond plain keywords. Used by the
// MCP tool surface, not by the conversational turn path.
type CorpusFilter struct {
	Query        string
	Potential    DocumentaryPotential
	MinRelevance float64
	Limit        int
}

type CorpusStats struct {
	TotalRecords int                          `json:"total_records"`
	Interesting  int                          `json:"interesting"`
	ByPotential  map[DocumentaryPotential]int `json:"by_potential"`
}

type CorpusSearcher interface {
	Search(ctx context.Context, q CorpusQuery) ([]CorpusRecord, error)
}

// CorpusBrowser is the corpus surface exposed outside the turn path, for
// slash commands and tool servers.
type CorpusBrowser interface {
	Filtered(ctx context.Context, f CorpusFilter) ([]CorpusRecord, error)
	Stats(ctx context.Context) (CorpusStats, error)
}

// ChatProvider produces free text from a prompt pair. The text may carry the
// fixed section markers the freetext strategy knows how to parse.
type ChatProvider interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// StructuredProvider produces output conforming to the AgentResponse schema
// directly, via the provider's structured-output mode.
type StructuredProvider interface {
	ChatStructured(ctx context.Context, system, user string) (AgentResponse, error)
}

// ConversationGateway is the durable transcript store. Writes are
// best-effort: the orchestrator logs and swallows its errors.
type ConversationGateway interface {
	Upsert(ctx context.Context, projectID, userID string, messages []Message) error
	Delete(ctx context.Context, projectID string) error
}

type ProjectDirectory interface {
	Get(ctx context.Context, projectID string) (ProjectMetadata, error)
}
