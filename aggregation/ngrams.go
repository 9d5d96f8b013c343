package aggregation

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"

	"trenddit/models"
)

// TermCount is one n-gram and its frequency across the post set.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// TopTerms extracts unigrams and bigrams from every post's title and body,
// with English stop-words removed, and returns the n most frequent terms.
// Ties break by first appearance in tokenizer order, which keeps the output
// deterministic for a fixed input.
func TopTerms(posts []models.Post, n int) []TermCount {
	if n <= 0 {
		n = 30
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0

	record := func(term string) {
		if _, ok := firstSeen[term]; !ok {
			firstSeen[term] = seq
			seq++
		}
		counts[term]++
	}

	for _, p := range posts {
		text := p.Title + " " + p.Body
		cleaned := stopwords.CleanString(text, "en", true)
		tokens := strings.Fields(cleaned)

		for i, tok := range tokens {
			record(tok)
			if i+1 < len(tokens) {
				record(tok + " " + tokens[i+1])
			}
		}
	}

	terms := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return firstSeen[terms[i].Term] < firstSeen[terms[j].Term]
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
