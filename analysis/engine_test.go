package analysis_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-analyzer/analysis"
)

const obamaText = "Barack Obama was the 44th President of the United States. He lived in Washington."

// sentences builds n sentences of exactly wordsEach words.
func sentences(n, wordsEach int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(strings.TrimSpace(strings.Repeat("palabra ", wordsEach)))
		b.WriteString(". ")
	}
	return b.String()
}

func TestAnalyzeEmptyText(t *testing.T) {
	r := analysis.Default().Analyze("")

	assert.Equal(t, 0, r.WordCount)
	assert.Equal(t, 0, r.Sentences)
	assert.Equal(t, 0, r.AvgWordsPerSentence)
	assert.Equal(t, 1, r.EstimatedReadingTime)
	assert.Equal(t, analysis.ComplexityBasic, r.Complexity)
	assert.Equal(t, []string{analysis.GeneralTopic}, r.Topics)
	assert.Empty(t, r.FrequentWords)
	assert.Empty(t, r.NamedEntities)
	assert.Len(t, r.KeyInsights, 3)
	assert.Equal(t, analysis.SentimentNeutral, r.Sentiment.Label())
}

func TestAnalyzeObamaScenario(t *testing.T) {
	r := analysis.Default().Analyze(obamaText)

	assert.Equal(t, 2, r.Sentences)
	assert.Equal(t, 14, r.WordCount)
	assert.Equal(t, 7, r.AvgWordsPerSentence)
	assert.Equal(t, analysis.ComplexityBasic, r.Complexity)
	assert.Equal(t, 1, r.EstimatedReadingTime)
	// The keyword table is Spanish, so English extracts fall back to General.
	assert.Equal(t, []string{analysis.GeneralTopic}, r.Topics)
	assert.Equal(t, []string{"barack", "obama", "president", "united", "states", "lived", "washington"}, r.FrequentWords)
	assert.Equal(t, []string{
		"This article contains 14 words distributed across 2 sentences.",
		"The text complexity is básica with an average of 7 words per sentence.",
		"Estimated reading time: 1 minute.",
	}, r.KeyInsights)
}

func TestAnalyzeComplexityBoundaries(t *testing.T) {
	testCases := []struct {
		wordsPerSentence int
		want             string
	}{
		{15, analysis.ComplexityBasic},
		{16, analysis.ComplexityIntermediate},
		{20, analysis.ComplexityIntermediate},
		{21, analysis.ComplexityAdvanced},
	}

	engine := analysis.Default()
	for _, tc := range testCases {
		r := engine.Analyze(sentences(3, tc.wordsPerSentence))
		assert.Equal(t, tc.wordsPerSentence, r.AvgWordsPerSentence)
		assert.Equal(t, tc.want, r.Complexity, "avg=%d", tc.wordsPerSentence)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	engine := analysis.Default()
	text := "El científico estudió la historia. It was a very good and influential work!"

	assert.Equal(t, engine.Analyze(text), engine.Analyze(text))
}

func TestAnalyzeConcurrentCalls(t *testing.T) {
	engine := analysis.Default()
	want := engine.Analyze(obamaText)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, engine.Analyze(obamaText))
		}()
	}
	wg.Wait()
}

func TestAnalyzeInvalidUTF8(t *testing.T) {
	r := analysis.Default().Analyze("caf\xff\xfe good. ok")

	assert.Equal(t, 2, r.Sentences)
	assert.Equal(t, 3, r.WordCount)
	assert.Len(t, r.KeyInsights, 3)
	assert.GreaterOrEqual(t, r.EstimatedReadingTime, 1)
}

func TestAnalyzeInvalidUTF8KeepsWordBoundaries(t *testing.T) {
	r := analysis.Default().Analyze("ab\xffcd")

	assert.Equal(t, 1, r.WordCount)
}

func TestAnalyzeDecomposedAccentsMatchTopics(t *testing.T) {
	// "científico" written with a combining acute accent (NFD).
	r := analysis.Default().Analyze("Un cienti\u0301fico famoso.")

	assert.Equal(t, []string{"Ciencia"}, r.Topics)
}

func TestNewWithOptions(t *testing.T) {
	engine := analysis.New(analysis.Options{
		TopWords: 2,
		Topics:   []analysis.TopicRule{{Label: "Presidency", Keywords: []string{"President"}}},
	})
	r := engine.Analyze("Apple apple banana banana banana cherry. The President spoke.")

	assert.Equal(t, []string{"banana", "apple"}, r.FrequentWords)
	assert.Equal(t, []string{"Presidency"}, r.Topics)
}

func TestReadingTimeRounding(t *testing.T) {
	testCases := []struct {
		words int
		want  int
	}{
		{0, 1},
		{100, 1}, // 0.5 rounds to 0, floored at 1
		{300, 2}, // 1.5 rounds to 2
		{500, 2}, // 2.5 rounds to 2 (half to even)
		{1000, 5},
	}
	for _, tc := range testCases {
		m := analysis.ComputeMetrics(tc.words, 1)
		assert.Equal(t, tc.want, m.EstimatedReadingTime, "words=%d", tc.words)
	}
}

func TestComputeMetricsNoSentences(t *testing.T) {
	m := analysis.ComputeMetrics(42, 0)

	assert.Equal(t, 0, m.AvgWordsPerSentence)
	assert.Equal(t, analysis.ComplexityBasic, m.Complexity)
}

func TestInsightsPluralization(t *testing.T) {
	one := analysis.Insights(analysis.ComputeMetrics(10, 1))
	many := analysis.Insights(analysis.ComputeMetrics(1000, 40))

	require.Len(t, one, 3)
	require.Len(t, many, 3)
	assert.Equal(t, "Estimated reading time: 1 minute.", one[2])
	assert.Equal(t, "Estimated reading time: 5 minutes.", many[2])
	assert.Equal(t, "The text complexity is avanzada with an average of 25 words per sentence.", many[1])
}
