package agent

import (
	"context"
	"time"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/pkg/log"
)

// Strategy is one way of producing a response. Strategies are ordered from
// richest to cheapest; a failure at any layer just means the next one runs.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, in core.GenerationInput) (core.AgentResponse, error)
}

// Chain runs strategies in order until one returns a valid response. It
// never fails: if every strategy is exhausted it returns a static degraded
// response, so the caller always has something to show the user.
type Chain struct {
	strategies []Strategy
	timeout    time.Duration
}

func NewChain(timeout time.Duration, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, timeout: timeout}
}

func (c *Chain) Generate(ctx context.Context, in core.GenerationInput) core.AgentResponse {
	logger := log.FromCtx(ctx)

	for _, s := range c.strategies {
		resp, err := c.runOne(ctx, s, in)
		if err != nil {
			logger.Warn().Err(err).Str("strategy", s.Name()).Msg("strategy failed, trying next")
			continue
		}
		if verr := Validate(resp); verr != nil {
			logger.Warn().Err(verr).Str("strategy", s.Name()).Msg("strategy produced invalid response, trying next")
			continue
		}
		logger.Debug().Str("strategy", s.Name()).Msg("response generated")
		return resp
	}

	logger.Error().Msg("all strategies exhausted, returning degraded response")
	return degradedResponse()
}

func (c *Chain) runOne(ctx context.Context, s Strategy, in core.GenerationInput) (core.AgentResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return s.Generate(ctx, in)
}

func degradedResponse() core.AgentResponse {
	return core.AgentResponse{
		Message: "I ran into trouble putting together a proper answer just now. " +
			"Could you rephrase your question, or try again in a moment?",
		ReasoningSteps: []core.ReasoningStep{{
			Number:      1,
			Description: "Response generation failed at every layer; returning a static fallback.",
			Kind:        core.StepConclusion,
			Confidence:  0.2,
		}},
		FollowUpQuestions: []string{"Could you rephrase what you are looking for?"},
		Confidence: core.ConfidenceAssessment{
			Overall:     0.2,
			Reasoning:   "Static fallback after generation failure.",
			Limitations: []string{"No archive records or model output informed this reply."},
		},
	}
}
