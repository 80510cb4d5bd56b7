package analysis

import (
	"encoding/json"
	"strings"
)

// Sentiment labels derived from polarity.
const (
	SentimentPositive = "positivo"
	SentimentNegative = "negativo"
	SentimentNeutral  = "neutral"
)

// polarityThreshold bounds the neutral band of Sentiment.Label.
const polarityThreshold = 0.1

// negationFactor flips and dampens the polarity of a negated word ("not good").
const negationFactor = -0.5

// Sentiment holds the raw lexicon scores of a text.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`     // -1.0 to +1.0
	Subjectivity float64 `json:"subjectivity"` // 0.0 to 1.0
}

// Label buckets the polarity into positivo / negativo / neutral.
func (s Sentiment) Label() string {
	switch {
	case s.Polarity > polarityThreshold:
		return SentimentPositive
	case s.Polarity < -polarityThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// MarshalJSON renders the scores together with the derived label.
func (s Sentiment) MarshalJSON() ([]byte, error) {
	type scores Sentiment
	return json.Marshal(struct {
		scores
		Label string `json:"label"`
	}{scores(s), s.Label()})
}

// Sentiment scores text against the embedded lexicon. Each lexicon hit
// contributes its polarity and subjectivity, scaled by a directly preceding
// intensifier and flipped by a negation within the two previous tokens.
// The result is the mean over all hits; texts without hits score 0/0.
func (e *Engine) Sentiment(text string) Sentiment {
	toks := Tokens(strings.ToLower(text))

	var polarity, subjectivity float64
	hits := 0
	for i, tok := range toks {
		entry, ok := e.lexicon[canonicalApostrophe(tok)]
		if !ok {
			continue
		}
		p, s := entry.polarity, entry.subjectivity

		if i > 0 {
			if f, ok := intensifiers[canonicalApostrophe(toks[i-1])]; ok {
				p *= f
				s *= f
			}
		}
		if negatedAt(toks, i) {
			p *= negationFactor
		}

		polarity += p
		subjectivity += s
		hits++
	}
	if hits == 0 {
		return Sentiment{}
	}
	return Sentiment{
		Polarity:     clamp(polarity/float64(hits), -1, 1),
		Subjectivity: clamp(subjectivity/float64(hits), 0, 1),
	}
}

func negatedAt(toks []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if _, ok := negations[canonicalApostrophe(toks[j])]; ok {
			return true
		}
	}
	return false
}

func canonicalApostrophe(tok string) string {
	return strings.ReplaceAll(tok, "’", "'")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
