package agent

import (
	"regexp"
	"strings"
)

// Intent categories. The classifier is total: every input lands on exactly
// one of these.
const (
	IntentGreeting    = "greeting"
	IntentCrime       = "seeking_crime_story"
	IntentMissing     = "seeking_missing_persons"
	IntentPolice      = "seeking_police_corruption"
	IntentPolitical   = "seeking_political_scandal"
	IntentCatalog     = "catalog_overview"
	IntentExpanding   = "expanding_current_thread"
	IntentAlternative = "seeking_alternative_story"
	IntentGeneral     = "general_exploration"
)

var (
	greetingRe = regexp.MustCompile(`^(hi|hello|hey|good (morning|afternoon|evening))[\s.!?]*$`)

	// Whole words only, so "yesterday" and "eyes" stay out.
	affirmationRe = regexp.MustCompile(`\b(yes|yeah)\b`)
)

type intentRule struct {
	intent string
	match  func(string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

// Rule order is the tie-break policy: the first matching rule wins, so the
// more specific categories sit above the broader ones.
var intentRules = []intentRule{
	{IntentGreeting, func(s string) bool { return greetingRe.MatchString(s) }},
	{IntentCatalog, containsAny("what kind of stories", "what stories do you have", "what do you have")},
	{IntentPolice, func(s string) bool {
		return strings.Contains(s, "police") && strings.Contains(s, "corruption")
	}},
	{IntentCrime, containsAny("murder", "kill", "homicide", "crime")},
	{IntentMissing, containsAny("disappear", "missing", "vanish")},
	{IntentPolitical, containsAny("political", "scandal", "corruption", "coverup", "cover-up")},
	{IntentAlternative, containsAny("another", "different", "something else")},
	{IntentExpanding, func(s string) bool {
		return containsAny("tell me more", "dig deeper", "go deeper")(s) || affirmationRe.MatchString(s)
	}},
}

// ClassifyIntent maps a raw message to one intent category. Never fails;
// unmatched input is general exploration.
func ClassifyIntent(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range intentRules {
		if rule.match(s) {
			return rule.intent
		}
	}
	return IntentGeneral
}

// searchKeywords biases retrieval by intent before falling back to plain
// keyword extraction, mirroring how researchers actually phrase these asks.
func searchKeywords(intent, text string) []string {
	switch intent {
	case IntentCrime:
		return []string{"murder", "crime"}
	case IntentMissing:
		return []string{"missing", "disappear"}
	case IntentPolice:
		return []string{"police"}
	case IntentPolitical:
		return []string{"political", "scandal"}
	case IntentGreeting, IntentCatalog:
		return nil
	default:
		return ExtractKeywords(text)
	}
}
