package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/muckraker/internal/core"
)

// TemplateStrategy builds a response from the retrieved records alone, with
// no model call. It cannot fail, so anything past it in the chain only runs
// when it is skipped.
type TemplateStrategy struct{}

func NewTemplateStrategy() *TemplateStrategy { return &TemplateStrategy{} }

func (*TemplateStrategy) Name() string { return "template" }

const templateRecordLimit = 3

func (*TemplateStrategy) Generate(_ context.Context, in core.GenerationInput) (core.AgentResponse, error) {
	if len(in.Records) == 0 {
		return templateNoRecords(in), nil
	}

	top := in.Records
	if len(top) > templateRecordLimit {
		top = top[:templateRecordLimit]
	}

	var b strings.Builder
	if len(in.Records) == 1 {
		b.WriteString("I found one record in the archive that fits what you asked about:\n\n")
	} else {
		fmt.Fprintf(&b, "I found %d records in the archive that fit what you asked about. The strongest leads:\n\n", len(in.Records))
	}
	for _, rec := range top {
		fmt.Fprintf(&b, "- %s, from %s", cleanTitle(rec.Title), recordYear(rec))
		if rec.Publication != "" {
			fmt.Fprintf(&b, " in %s", rec.Publication)
		}
		if rec.Potential == core.PotentialYes {
			b.WriteString(". Strong documentary potential")
		}
		b.WriteString(".\n")
	}
	b.WriteString("\nWhich of these would you like to dig into first?")

	return core.AgentResponse{
		Message: b.String(),
		ReasoningSteps: []core.ReasoningStep{{
			Number:      1,
			Description: fmt.Sprintf("Summarized the top %d of %d matching archive records by relevance.", len(top), len(in.Records)),
			Kind:        core.StepEvidenceReview,
			Confidence:  0.7,
		}},
		FollowUpQuestions:  []string{"Which of these leads should we pursue first?"},
		InvestigativeLeads: leadsFromRecords(top),
		Confidence: core.ConfidenceAssessment{
			Overall:     0.6,
			Reasoning:   "Built directly from matching archive records without model synthesis.",
			Limitations: []string{"Records are listed, not analyzed."},
		},
	}, nil
}

func templateNoRecords(in core.GenerationInput) core.AgentResponse {
	msg := "I could not find archive records matching that. The collection may simply not cover it, " +
		"or it may be filed under different terms."
	if len(in.Context.ResearchFocus) > 0 {
		msg += fmt.Sprintf(" So far we have been looking at %s.", strings.Join(in.Context.ResearchFocus, ", "))
	}
	msg += " Want to try the same question from a different angle?"

	return core.AgentResponse{
		Message: msg,
		ReasoningSteps: []core.ReasoningStep{{
			Number:      1,
			Description: "No archive records matched the search terms for this message.",
			Kind:        core.StepEvidenceReview,
			Confidence:  0.5,
		}},
		FollowUpQuestions: []string{"Would you like to try the same question from a different angle, with different terms?"},
		Confidence: core.ConfidenceAssessment{
			Overall:     0.4,
			Reasoning:   "No supporting records were found.",
			Limitations: []string{"The answer reflects absence of matches, not absence of stories."},
		},
	}
}

// cleanTitle strips wrapping quotes that digitization sometimes leaves on
// headlines.
func cleanTitle(title string) string {
	return strings.Trim(strings.TrimSpace(title), `"'`)
}

func recordYear(rec core.CorpusRecord) string {
	if rec.PublishedAt == nil {
		return "an unknown year"
	}
	return fmt.Sprintf("%d", rec.PublishedAt.Year())
}

func leadsFromRecords(records []core.CorpusRecord) []string {
	leads := make([]string, 0, len(records))
	for _, rec := range records {
		leads = append(leads, fmt.Sprintf("Follow up on %q (%s).", cleanTitle(rec.Title), recordYear(rec)))
	}
	return leads
}
