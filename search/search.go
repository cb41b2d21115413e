package search

import (
	"sort"
	"strings"
	"unicode"
)

const (
	noMatch = iota - 1
	initialismMatch
	containsMatch
	prefixMatch
	exactMatch
)

// score ranks how well 'name' matches 'search'. Both must be lower case.
func score(name, search string) int {
	switch {
	case name == search:
		return exactMatch
	case strings.HasPrefix(name, search):
		return prefixMatch
	case strings.Contains(name, search):
		return containsMatch
	case matchesInitialism(name, search):
		return initialismMatch
	default:
		return noMatch
	}
}

// matchesInitialism returns true if search is made of the first letters of name's words, in order.
// Words are split on spaces and punctuation, i.e. "Eating Out" or "Home:Utilities".
func matchesInitialism(name, search string) bool {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	for _, word := range words {
		if len(search) == 0 {
			return true
		}
		if word[0] == search[0] {
			search = search[1:]
		}
	}
	return len(search) == 0
}

type scoreItem struct {
	name  string
	score int
}

// Categories returns the category names matching search, best matches first.
// Names with equal scores keep their original order. An empty search matches everything.
func Categories(names []string, search string) []string {
	search = strings.ToLower(strings.TrimSpace(search))
	scores := make([]scoreItem, 0, len(names))
	for _, name := range names {
		if s := score(strings.ToLower(name), search); s != noMatch {
			scores = append(scores, scoreItem{name: name, score: s})
		}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	results := make([]string, len(scores))
	for i, item := range scores {
		results[i] = item.name
	}
	return results
}
