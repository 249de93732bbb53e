package domain

import (
	"slices"
	"strings"
	"unicode"
)

// Match is a questionnaire ranked against a free-text query
type Match struct {
	Questionnaire Questionnaire
	Score         int
}

// FuzzyScore rates how well target matches query. Zero means no match.
// Substring hits rank above in-order character hits; prefix hits rank highest.
func FuzzyScore(target, query string) int {
	t := []rune(strings.ToLower(target))
	q := []rune(strings.ToLower(query))
	if len(q) == 0 {
		return 0
	}

	if idx := strings.Index(string(t), string(q)); idx >= 0 {
		if idx == 0 {
			return 150
		}
		return 100
	}

	score, qi, prev := 0, 0, -2
	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		switch {
		case i == 0:
			score += 15
		case isSeparator(t[i-1]):
			score += 10
		}
		if prev == i-1 {
			score += 10
		}
		score++
		prev = i
		qi++
	}
	if qi < len(q) {
		return 0
	}
	return score
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '.' || r == '-' || r == ':' || r == '/'
}

// Rank scores every questionnaire by its abbreviation and name and returns the hits,
// best first. Equal scores keep catalog order.
func Rank(catalog []Questionnaire, query string) []Match {
	var matches []Match
	for i := range catalog {
		best := max(FuzzyScore(catalog[i].Short, query), FuzzyScore(catalog[i].Name, query))
		if best > 0 {
			matches = append(matches, Match{Questionnaire: catalog[i], Score: best})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return b.Score - a.Score
	})
	return matches
}

// Suggest returns up to limit abbreviations resembling query.
// Abbreviations within a small edit distance come first, closest first, so typos
// like "SUX" still find "SUS"; fuzzy name and abbreviation hits follow.
func Suggest(catalog []Questionnaire, query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	type near struct {
		short string
		dist  int
	}
	budget := max(1, len([]rune(q))/3)
	var nearby []near
	for i := range catalog {
		if d := editDistance(strings.ToLower(catalog[i].Short), q); d <= budget {
			nearby = append(nearby, near{short: catalog[i].Short, dist: d})
		}
	}
	slices.SortStableFunc(nearby, func(a, b near) int { return a.dist - b.dist })

	var out []string
	for _, n := range nearby {
		if len(out) == limit {
			return out
		}
		out = append(out, n.short)
	}
	for _, m := range Rank(catalog, query) {
		if len(out) == limit {
			break
		}
		if !slices.Contains(out, m.Questionnaire.Short) {
			out = append(out, m.Questionnaire.Short)
		}
	}
	return out
}

// editDistance is the Levenshtein distance between a and b, counted in runes
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			if ra[i-1] == rb[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
