package agent

import (
	"fmt"
	"strings"

	"github.com/sandevgo/muckraker/internal/core"
)

const systemPreamble = `You are Muckraker, a research assistant for investigative journalists and
documentary researchers working with digitized historical newspaper archives.

You help users find story leads, assess their documentary potential, and plan
next research steps. Ground every claim in the archive records provided in the
prompt. When the records do not support an answer, say so plainly and suggest
how the search could be reframed. Never invent records, dates, or publications.

Keep answers focused and practical. Prefer specific records over sweeping
summaries.`

// structuredInstructions is appended for the schema-constrained path so the
// model grades its own confidence per step.
const structuredInstructions = `

Respond with a structured answer: a message for the user, numbered reasoning
steps each with a type and a confidence between 0 and 1, follow-up questions,
investigative leads, and an overall confidence assessment with its limitations.`

// freetextInstructions is appended for the plain-text path. The markers are
// parsed out of the reply; the model may omit any of them.
const freetextInstructions = `

After your answer you may add optional lines, one item per line:
REASONING: <a step of your reasoning>
FOLLOWUP: <a question the user could ask next>
LEAD: <a concrete investigative lead>`

// buildUserPrompt renders the generation input as a single prompt block. The
// record section stays compact so a dozen records fit well under any context
// window we target.
func buildUserPrompt(in core.GenerationInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", in.Project.Name)
	if in.Project.Description != "" {
		fmt.Fprintf(&b, "About: %s\n", in.Project.Description)
	}
	if len(in.Project.ResearchGoals) > 0 {
		fmt.Fprintf(&b, "Research goals: %s\n", strings.Join(in.Project.ResearchGoals, "; "))
	}

	fmt.Fprintf(&b, "\nConversation stage: %s. User expertise: %s. Intent: %s.\n",
		in.Context.Stage, in.Context.Expertise, in.Context.Intent)
	if len(in.Context.ResearchFocus) > 0 {
		fmt.Fprintf(&b, "Current research focus: %s\n", strings.Join(in.Context.ResearchFocus, ", "))
	}

	if len(in.Records) == 0 {
		b.WriteString("\nNo archive records matched this message.\n")
	} else {
		fmt.Fprintf(&b, "\nArchive records (%d", len(in.Records))
		if in.Omitted > 0 {
			fmt.Fprintf(&b, ", %d more omitted", in.Omitted)
		}
		b.WriteString("):\n")
		for i, rec := range in.Records {
			fmt.Fprintf(&b, "%d. %s", i+1, rec.Title)
			if rec.Publication != "" {
				fmt.Fprintf(&b, " (%s", rec.Publication)
				if rec.PublishedAt != nil {
					fmt.Fprintf(&b, ", %d", rec.PublishedAt.Year())
				}
				b.WriteString(")")
			} else if rec.PublishedAt != nil {
				fmt.Fprintf(&b, " (%d)", rec.PublishedAt.Year())
			}
			fmt.Fprintf(&b, "\n   relevance %.2f, narrative strength %.2f, documentary potential %s\n",
				rec.Relevance, rec.NarrativeStrength, rec.Potential)
			if rec.Excerpt != "" {
				fmt.Fprintf(&b, "   %s\n", truncate(rec.Excerpt, 280))
			}
		}
	}

	fmt.Fprintf(&b, "\nUser message: %s\n", in.UserMessage)
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return cut + "..."
}
