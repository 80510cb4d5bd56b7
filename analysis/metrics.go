package analysis

import (
	"fmt"
	"math"
	"strings"
)

// Complexity labels.
const (
	ComplexityBasic        = "Básica"
	ComplexityIntermediate = "Intermedia"
	ComplexityAdvanced     = "Avanzada"
)

// wordsPerMinute is the reading speed behind EstimatedReadingTime.
const wordsPerMinute = 200

// Metrics are the readability numbers derived from word and sentence counts.
type Metrics struct {
	WordCount            int
	Sentences            int
	AvgWordsPerSentence  int
	EstimatedReadingTime int
	Complexity           string
}

// ComputeMetrics derives averages, reading time and complexity.
// Divisions round half to even.
func ComputeMetrics(wordCount, sentences int) Metrics {
	avg := 0
	if sentences > 0 {
		avg = int(math.RoundToEven(float64(wordCount) / float64(sentences)))
	}
	return Metrics{
		WordCount:            wordCount,
		Sentences:            sentences,
		AvgWordsPerSentence:  avg,
		EstimatedReadingTime: max(1, int(math.RoundToEven(float64(wordCount)/wordsPerMinute))),
		Complexity:           ComplexityFor(avg),
	}
}

// ComplexityFor maps an average sentence length to a complexity label.
func ComplexityFor(avgWordsPerSentence int) string {
	switch {
	case avgWordsPerSentence > 20:
		return ComplexityAdvanced
	case avgWordsPerSentence > 15:
		return ComplexityIntermediate
	default:
		return ComplexityBasic
	}
}

// Insights renders m as exactly three summary sentences.
func Insights(m Metrics) []string {
	unit := "minutes"
	if m.EstimatedReadingTime == 1 {
		unit = "minute"
	}
	return []string{
		fmt.Sprintf("This article contains %d words distributed across %d sentences.", m.WordCount, m.Sentences),
		fmt.Sprintf("The text complexity is %s with an average of %d words per sentence.", strings.ToLower(m.Complexity), m.AvgWordsPerSentence),
		fmt.Sprintf("Estimated reading time: %d %s.", m.EstimatedReadingTime, unit),
	}
}
