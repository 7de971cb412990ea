package agent

import "github.com/sandevgo/muckraker/internal/core"

// Validate rejects responses that would confuse the caller more than a
// fallback would. A nil return means the response is usable as-is.
func Validate(resp core.AgentResponse) *core.ValidationError {
	if resp.Message == "" {
		return &core.ValidationError{Field: "message", Reason: "empty"}
	}
	if len(resp.ReasoningSteps) == 0 {
		return &core.ValidationError{Field: "reasoning_steps", Reason: "at least one step required"}
	}
	for _, step := range resp.ReasoningSteps {
		if step.Description == "" {
			return &core.ValidationError{Field: "reasoning_steps", Reason: "step with empty description"}
		}
		if step.Confidence < 0 || step.Confidence > 1 {
			return &core.ValidationError{Field: "reasoning_steps", Reason: "step confidence out of range"}
		}
	}
	if resp.Confidence.Overall < 0 || resp.Confidence.Overall > 1 {
		return &core.ValidationError{Field: "confidence_assessment", Reason: "overall confidence out of range"}
	}
	return nil
}
