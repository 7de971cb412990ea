package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/muckraker/internal/core"
)

type stubStrategy struct {
	name  string
	resp  core.AgentResponse
	err   error
	block bool
	calls int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Generate(ctx context.Context, _ core.GenerationInput) (core.AgentResponse, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return core.AgentResponse{}, ctx.Err()
	}
	return s.resp, s.err
}

func respWithMessage(msg string) core.AgentResponse {
	r := validResponse()
	r.Message = msg
	return r
}

func TestChain_FirstStrategyWins(t *testing.T) {
	first := &stubStrategy{name: "first", resp: respWithMessage("from first")}
	second := &stubStrategy{name: "second", resp: respWithMessage("from second")}

	got := NewChain(0, first, second).Generate(context.Background(), core.GenerationInput{})
	require.Equal(t, "from first", got.Message)
	require.Zero(t, second.calls)
}

func TestChain_AdvancesOnError(t *testing.T) {
	first := &stubStrategy{name: "first", err: errors.New("model down")}
	second := &stubStrategy{name: "second", resp: respWithMessage("from second")}

	got := NewChain(0, first, second).Generate(context.Background(), core.GenerationInput{})
	require.Equal(t, "from second", got.Message)
	require.Equal(t, 1, first.calls)
}

func TestChain_AdvancesOnInvalidResponse(t *testing.T) {
	first := &stubStrategy{name: "first", resp: core.AgentResponse{}} // fails validation
	second := &stubStrategy{name: "second", resp: respWithMessage("from second")}

	got := NewChain(0, first, second).Generate(context.Background(), core.GenerationInput{})
	require.Equal(t, "from second", got.Message)
}

func TestChain_ExhaustionReturnsDegradedResponse(t *testing.T) {
	first := &stubStrategy{name: "first", err: errors.New("down")}
	second := &stubStrategy{name: "second", err: errors.New("also down")}

	got := NewChain(0, first, second).Generate(context.Background(), core.GenerationInput{})
	require.NotEmpty(t, got.Message)
	require.NotEmpty(t, got.ReasoningSteps)
	require.NotEmpty(t, got.FollowUpQuestions)
	require.InDelta(t, 0.2, got.Confidence.Overall, 0.001)
	require.Nil(t, Validate(got))
}

func TestChain_TimeoutAdvancesToNextStrategy(t *testing.T) {
	slow := &stubStrategy{name: "slow", block: true}
	fast := &stubStrategy{name: "fast", resp: respWithMessage("from fast")}

	start := time.Now()
	got := NewChain(20*time.Millisecond, slow, fast).Generate(context.Background(), core.GenerationInput{})
	require.Equal(t, "from fast", got.Message)
	require.Less(t, time.Since(start), 5*time.Second)
}
