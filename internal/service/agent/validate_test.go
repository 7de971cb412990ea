package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/muckraker/internal/core"
)

func validResponse() core.AgentResponse {
	return core.AgentResponse{
		Message: "Found two records.",
		ReasoningSteps: []core.ReasoningStep{
			{Number: 1, Description: "Searched the archive.", Kind: core.StepEvidenceReview, Confidence: 0.8},
		},
		Confidence: core.ConfidenceAssessment{Overall: 0.7, Reasoning: "Records matched."},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*core.AgentResponse)
		wantField string
	}{
		{"valid response passes", func(*core.AgentResponse) {}, ""},
		{"empty message", func(r *core.AgentResponse) { r.Message = "" }, "message"},
		{"no reasoning steps", func(r *core.AgentResponse) { r.ReasoningSteps = nil }, "reasoning_steps"},
		{"step without description", func(r *core.AgentResponse) { r.ReasoningSteps[0].Description = "" }, "reasoning_steps"},
		{"step confidence above one", func(r *core.AgentResponse) { r.ReasoningSteps[0].Confidence = 1.2 }, "reasoning_steps"},
		{"negative step confidence", func(r *core.AgentResponse) { r.ReasoningSteps[0].Confidence = -0.1 }, "reasoning_steps"},
		{"overall confidence above one", func(r *core.AgentResponse) { r.Confidence.Overall = 1.5 }, "confidence_assessment"},
		{"boundary confidences pass", func(r *core.AgentResponse) {
			r.ReasoningSteps[0].Confidence = 0
			r.Confidence.Overall = 1
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validResponse()
			tt.mutate(&resp)
			err := Validate(resp)
			if tt.wantField == "" {
				require.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			require.Equal(t, tt.wantField, err.Field)
		})
	}
}
