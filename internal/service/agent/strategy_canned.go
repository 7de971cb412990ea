package agent

import (
	"context"

	"github.com/sandevgo/muckraker/internal/core"
)

// CannedStrategy answers from a fixed table keyed by intent. It is the floor
// of the chain and also serves the greeting and catalog fast paths, where a
// model call would be wasted.
type CannedStrategy struct{}

func NewCannedStrategy() *CannedStrategy { return &CannedStrategy{} }

func (*CannedStrategy) Name() string { return "canned" }

var cannedReplies = map[string]string{
	IntentGreeting: "Hello! I help you dig through historical newspaper archives for story leads. " +
		"Ask me about crimes, disappearances, scandals, or anything else you think the papers might have covered.",
	IntentCrime: "Crime stories are some of the richest material in old newspapers. " +
		"Tell me a place, a period, or a kind of crime and I will see what the archive holds.",
	IntentMissing: "Disappearances often ran as small items that were never followed up, which makes them " +
		"promising documentary subjects. Give me a name, a place, or a decade to search for.",
	IntentPolice: "Police conduct stories tend to surface across many small reports rather than one big one. " +
		"Tell me what department or period interests you and I will look for the pattern.",
	IntentPolitical: "Political scandals usually leave a long paper trail. " +
		"Name a figure, an office, or an era and I will search the archive for coverage.",
	IntentCatalog: "The archive holds digitized newspaper records scored for relevance, narrative strength, " +
		"and documentary potential. What topic should we start with?",
	IntentExpanding: "Happy to go deeper. Point me at the record or thread you want expanded and I will " +
		"pull what else the archive has around it.",
	IntentAlternative: "Let's come at it from another side. Try naming a different person, place, or " +
		"time period connected to the story and I will search again.",
}

const cannedDefault = "I search historical newspaper archives for story leads. " +
	"Tell me what you are investigating and I will see what the collection holds."

func (*CannedStrategy) Generate(_ context.Context, in core.GenerationInput) (core.AgentResponse, error) {
	msg, ok := cannedReplies[in.Context.Intent]
	if !ok {
		msg = cannedDefault
	}

	return core.AgentResponse{
		Message: msg,
		ReasoningSteps: []core.ReasoningStep{{
			Number:      1,
			Description: "Matched the message to intent " + in.Context.Intent + " and replied from the fixed response table.",
			Kind:        core.StepConclusion,
			Confidence:  0.9,
		}},
		FollowUpQuestions: []string{"What topic, place, or time period should we search for?"},
		Confidence: core.ConfidenceAssessment{
			Overall:     0.7,
			Reasoning:   "Fixed reply chosen by intent; no archive records were consulted.",
			Limitations: []string{"This reply is not grounded in specific archive records."},
		},
	}, nil
}
