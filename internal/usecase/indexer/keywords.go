package indexer

import (
	"sort"
	"strings"
	"unicode"
)

// Stop words excluded from derived record keywords. This list follows the
// original index tool and is broader than the query parser's: transcripts are
// conversational, so filler words dominate raw frequency counts.
var keywordStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "its", "may", "new", "now", "old", "see", "two", "who", "did",
		"way", "she", "been", "call", "come", "each", "find", "give", "hand",
		"have", "here", "keep", "last", "left", "life", "live", "look", "made",
		"make", "most", "move", "must", "name", "need", "open", "over", "part",
		"play", "put", "said", "same", "seem", "show", "side", "take", "tell",
		"turn", "want", "well", "went", "were", "what", "when", "will", "with",
		"word", "work", "year", "think", "know", "time", "would", "there",
		"could", "should", "going", "like", "that", "this", "they", "just",
		"about", "really", "actually", "yeah", "okay", "right", "thing",
		"things",
	}
	for _, w := range words {
		keywordStopWords[w] = struct{}{}
	}
}

// ExtractKeywords derives a record's keyword list: tokenize, lower-case,
// drop stop words, pure numbers and tokens under 3 characters, rank the rest
// by frequency and keep the top max. Frequency ties break alphabetically so
// repeated builds produce identical records.
func ExtractKeywords(text string, max int) []string {
	if max <= 0 {
		return []string{}
	}

	freq := map[string]int{}
	order := []string{}

	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		word := strings.ToLower(tok)
		if len([]rune(word)) < 3 {
			continue
		}
		if isNumeric(word) {
			continue
		}
		if _, ok := keywordStopWords[word]; ok {
			continue
		}
		if _, ok := freq[word]; !ok {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return order[i] < order[j]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
