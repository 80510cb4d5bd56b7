package analysis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultTopWords is the number of frequent words kept when Options.TopWords is not set.
const DefaultTopWords = 10

// Options configures an Engine. Zero values fall back to the built-in defaults.
type Options struct {
	TopWords int
	Topics   []TopicRule
}

// Engine turns raw article text into a Result.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	topWords  int
	stopWords map[string]struct{}
	topics    []TopicRule
	lexicon   map[string]lexiconEntry
}

// Result is the analysis record returned to clients and persisted with a saved article.
type Result struct {
	FrequentWords        []string  `json:"frequent_words"`
	Sentiment            Sentiment `json:"sentiment"`
	Topics               []string  `json:"topics"`
	Complexity           string    `json:"complexity"`
	WordCount            int       `json:"word_count"`
	Sentences            int       `json:"sentences"`
	AvgWordsPerSentence  int       `json:"avg_words_per_sentence"`
	EstimatedReadingTime int       `json:"estimated_reading_time"`
	KeyInsights          []string  `json:"key_insights"`
	NamedEntities        []Entity  `json:"named_entities"`
}

// New builds an Engine from opts.
func New(opts Options) *Engine {
	topWords := opts.TopWords
	if topWords <= 0 {
		topWords = DefaultTopWords
	}
	rules := opts.Topics
	if len(rules) == 0 {
		rules = DefaultTopics
	}
	return &Engine{
		topWords:  topWords,
		stopWords: englishStopWords,
		topics:    normalizeRules(rules),
		lexicon:   sentimentLexicon,
	}
}

// Default returns an Engine with the built-in topic table and top-10 ranking.
func Default() *Engine {
	return New(Options{})
}

// Analyze runs the whole pipeline over text. It never fails; empty or
// malformed input yields the zero-valued counts with the documented defaults.
func (e *Engine) Analyze(text string) Result {
	text = normalize(text)

	sentences := SplitSentences(text)
	m := ComputeMetrics(CountWords(text), len(sentences))

	return Result{
		FrequentWords:        e.FrequentWords(text),
		Sentiment:            e.Sentiment(text),
		Topics:               e.Topics(text),
		Complexity:           m.Complexity,
		WordCount:            m.WordCount,
		Sentences:            m.Sentences,
		AvgWordsPerSentence:  m.AvgWordsPerSentence,
		EstimatedReadingTime: m.EstimatedReadingTime,
		KeyInsights:          Insights(m),
		NamedEntities:        e.Entities(text),
	}
}

// normalize replaces invalid UTF-8 and composes the text to NFC so that
// accented keywords match regardless of how the source encoded them.
func normalize(text string) string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	return norm.NFC.String(text)
}
