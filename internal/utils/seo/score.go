// Package seo provides the keyword-density scoring heuristic applied to
// generated text. The score is a 0-100 proxy for keyword usage, not a real
// search-ranking signal.
package seo

import (
	"math"
	"strings"
)

// Result holds the intermediate values of a scoring pass alongside the final score.
type Result struct {
	Score        int
	KeywordCount int
	WordCount    int
}

// Score computes the keyword-density score for text against keywords.
//
// Matching is case-insensitive and substring based: a keyword that appears
// inside a longer word still counts. Word counting splits on single spaces
// and keeps empty tokens from repeated whitespace. Both behaviors are part
// of the scoring contract and must not be "fixed"; downstream consumers rely
// on score compatibility across versions.
//
// The formula is min(round(density*100*10), 100). The stacked *100*10 scale
// factors are kept verbatim for compatibility.
func Score(text string, keywords []string) Result {
	textLower := strings.ToLower(text)

	keywordCount := 0
	for _, kw := range keywords {
		keywordCount += strings.Count(textLower, strings.ToLower(kw))
	}

	wordCount := len(strings.Split(text, " "))

	density := float64(keywordCount) / float64(wordCount)
	score := int(math.Round(density * 100 * 10))
	if score > 100 {
		score = 100
	}

	return Result{
		Score:        score,
		KeywordCount: keywordCount,
		WordCount:    wordCount,
	}
}

// NormalizeKeywords returns the lower-cased form of keywords. The normalized
// form is what gets persisted alongside a generated record.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}
