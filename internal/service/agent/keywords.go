package agent

import (
	"strings"
	"unicode"
)

const maxKeywords = 8

// Words too common to narrow an archive search.
var stopWords = map[string]struct{}{
	"about": {}, "after": {}, "again": {}, "also": {}, "around": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "between": {},
	"could": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"else": {}, "even": {}, "ever": {}, "every": {}, "find": {},
	"from": {}, "have": {}, "having": {}, "here": {}, "into": {},
	"just": {}, "kind": {}, "know": {}, "like": {}, "looking": {},
	"many": {}, "maybe": {}, "more": {}, "most": {}, "much": {},
	"over": {}, "show": {}, "some": {}, "something": {}, "stories": {},
	"story": {}, "tell": {}, "than": {}, "that": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "want": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "will": {}, "with": {}, "would": {},
	"your": {},
}

// ExtractKeywords derives search terms from free text: lowercase tokens
// longer than three characters, stop words removed, first occurrence order
// preserved. No stemming, no ranking.
func ExtractKeywords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	var keywords []string
	for _, f := range fields {
		if len(f) <= 3 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		keywords = append(keywords, f)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
