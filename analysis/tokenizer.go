package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// CountWords counts whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Tokens splits text into word-like tokens. Apostrophes stay inside a token,
// every other non letter/digit rune is a separator.
func Tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’')
	})
}

// FrequentWords returns the most frequent lower-cased alphabetic tokens that
// are not stop-words, highest count first. Ties keep first-seen order.
func (e *Engine) FrequentWords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, tok := range wordTokens(text) {
		if !isAlpha(tok) {
			continue
		}
		w := strings.ToLower(tok)
		if _, stop := e.stopWords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > e.topWords {
		order = order[:e.topWords]
	}
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// clitics are split off before ranking so "Obama's" still counts as "obama".
var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// wordTokens is Tokens with contractions and possessives split at the
// apostrophe. Sentiment keeps the unsplit tokens for negation ("don't").
func wordTokens(text string) []string {
	var out []string
	for _, tok := range Tokens(text) {
		if !strings.ContainsAny(tok, "'’") {
			out = append(out, tok)
			continue
		}
		tok = strings.ReplaceAll(tok, "’", "'")
		lower := strings.ToLower(tok)
		for _, c := range clitics {
			if len(lower) > len(c) && strings.HasSuffix(lower, c) {
				tok = tok[:len(tok)-len(c)]
				break
			}
		}
		for _, part := range strings.Split(tok, "'") {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func isAlpha(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
