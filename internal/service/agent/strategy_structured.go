package agent

import (
	"context"
	"fmt"

	"github.com/sandevgo/muckraker/internal/core"
)

// StructuredStrategy asks the model for a schema-constrained response. It is
// the richest layer and the first to run.
type StructuredStrategy struct {
	provider core.StructuredProvider
}

func NewStructuredStrategy(provider core.StructuredProvider) *StructuredStrategy {
	return &StructuredStrategy{provider: provider}
}

func (*StructuredStrategy) Name() string { return "structured" }

func (s *StructuredStrategy) Generate(ctx context.Context, in core.GenerationInput) (core.AgentResponse, error) {
	resp, err := s.provider.ChatStructured(ctx, systemPreamble+structuredInstructions, buildUserPrompt(in))
	if err != nil {
		return core.AgentResponse{}, fmt.Errorf("structured chat: %w", err)
	}
	// Models occasionally return steps without numbers; renumber rather
	// than fail validation over it.
	for i := range resp.ReasoningSteps {
		if resp.ReasoningSteps[i].Number == 0 {
			resp.ReasoningSteps[i].Number = i + 1
		}
	}
	return resp, nil
}
