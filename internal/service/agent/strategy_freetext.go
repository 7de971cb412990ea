package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/muckraker/internal/core"
)

// FreetextStrategy falls back to a plain chat completion and recovers
// structure from optional marker lines in the reply. All markers are
// optional; a reply with none of them still yields a valid response.
type FreetextStrategy struct {
	provider core.ChatProvider
}

func NewFreetextStrategy(provider core.ChatProvider) *FreetextStrategy {
	return &FreetextStrategy{provider: provider}
}

func (*FreetextStrategy) Name() string { return "freetext" }

func (s *FreetextStrategy) Generate(ctx context.Context, in core.GenerationInput) (core.AgentResponse, error) {
	raw, err := s.provider.Chat(ctx, systemPreamble+freetextInstructions, buildUserPrompt(in))
	if err != nil {
		return core.AgentResponse{}, fmt.Errorf("freetext chat: %w", err)
	}
	return parseMarkedResponse(raw), nil
}

const (
	markerReasoning = "REASONING:"
	markerFollowup  = "FOLLOWUP:"
	markerLead      = "LEAD:"
)

// parseMarkedResponse splits marker lines out of the reply; everything else
// becomes the message body.
func parseMarkedResponse(raw string) core.AgentResponse {
	var (
		body      []string
		steps     []core.ReasoningStep
		followups []string
		leads     []string
	)

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, markerReasoning):
			if text := strings.TrimSpace(strings.TrimPrefix(trimmed, markerReasoning)); text != "" {
				steps = append(steps, core.ReasoningStep{
					Number:      len(steps) + 1,
					Description: text,
					Kind:        core.StepAnalysis,
					Confidence:  0.6,
				})
			}
		case strings.HasPrefix(trimmed, markerFollowup):
			if text := strings.TrimSpace(strings.TrimPrefix(trimmed, markerFollowup)); text != "" {
				followups = append(followups, text)
			}
		case strings.HasPrefix(trimmed, markerLead):
			if text := strings.TrimSpace(strings.TrimPrefix(trimmed, markerLead)); text != "" {
				leads = append(leads, text)
			}
		default:
			body = append(body, line)
		}
	}

	message := strings.TrimSpace(strings.Join(body, "\n"))
	if len(steps) == 0 {
		steps = []core.ReasoningStep{{
			Number:      1,
			Description: "Answered from a free-form model reply without explicit reasoning markers.",
			Kind:        core.StepSynthesis,
			Confidence:  0.5,
		}}
	}

	return core.AgentResponse{
		Message:            message,
		ReasoningSteps:     steps,
		FollowUpQuestions:  followups,
		InvestigativeLeads: leads,
		Confidence: core.ConfidenceAssessment{
			Overall:     0.6,
			Reasoning:   "Recovered from a free-form reply; structure is parsed, not model-graded.",
			Limitations: []string{"Confidence is a fixed estimate for this generation path."},
		},
	}
}
