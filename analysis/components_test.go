package analysis_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-analyzer/analysis"
)

func TestSplitSentences(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"only punctuation", "...!?", []string{}},
		{"mixed terminators", "Hi there! How are you? Fine.", []string{"Hi there", "How are you", "Fine"}},
		{"no terminator", "  trailing text  ", []string{"trailing text"}},
		{"decimals are split", "Pi is 3.14 roughly.", []string{"Pi is 3", "14 roughly"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analysis.SplitSentences(tc.text))
		})
	}
}

func TestFrequentWordsTieBreakAndLimit(t *testing.T) {
	engine := analysis.Default()
	text := "zeta alpha zeta beta alpha gamma delta epsilon eta theta iota kappa lambda mu"

	got := engine.FrequentWords(text)

	require.Len(t, got, analysis.DefaultTopWords)
	assert.Equal(t, []string{"zeta", "alpha", "beta", "gamma", "delta", "epsilon", "eta", "theta", "iota", "kappa"}, got)
}

func TestFrequentWordsFiltersStopWordsAndNonAlpha(t *testing.T) {
	got := analysis.Default().FrequentWords("The 1990s and the R2-D2 droid. THE droid's droid!")

	assert.Equal(t, []string{"droid"}, got)
}

func TestFrequentWordsSplitsPossessivesAndContractions(t *testing.T) {
	engine := analysis.Default()

	got := engine.FrequentWords("Obama's policy changed. Obama's plan worked. Biden spoke. Biden left.")
	assert.Equal(t, []string{"obama", "biden", "policy", "changed", "plan", "worked", "spoke", "left"}, got)

	got = engine.FrequentWords("The senators’ vote wasn't close. Lincoln’s speech.")
	assert.Equal(t, []string{"senators", "vote", "close", "lincoln", "speech"}, got)
}

func TestSentimentLabels(t *testing.T) {
	engine := analysis.Default()

	testCases := []struct {
		name      string
		text      string
		label     string
		polarity  float64
		subjectiv float64
	}{
		{"no lexicon hits", "The table is made of wood.", analysis.SentimentNeutral, 0, 0},
		{"plain positive", "It was good.", analysis.SentimentPositive, 0.7, 0.6},
		{"intensified", "It was very good.", analysis.SentimentPositive, 0.91, 0.78},
		{"negated", "It was not good.", analysis.SentimentNegative, -0.35, 0.6},
		{"negative", "A terrible and tragic war.", analysis.SentimentNegative, (-1.0 - 0.75 - 0.4) / 3, (1.0 + 0.75 + 0.4) / 3},
		{"mild", "A major event.", analysis.SentimentNeutral, 0.06, 0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := engine.Sentiment(tc.text)
			assert.InDelta(t, tc.polarity, s.Polarity, 1e-9)
			assert.InDelta(t, tc.subjectiv, s.Subjectivity, 1e-9)
			assert.Equal(t, tc.label, s.Label())
		})
	}
}

func TestSentimentBounds(t *testing.T) {
	s := analysis.Default().Sentiment("extremely excellent, extremely perfect, extremely awesome")

	assert.LessOrEqual(t, s.Polarity, 1.0)
	assert.LessOrEqual(t, s.Subjectivity, 1.0)
	assert.Equal(t, 1.0, s.Polarity)
}

func TestSentimentLabelThresholds(t *testing.T) {
	assert.Equal(t, analysis.SentimentNeutral, analysis.Sentiment{Polarity: 0.1}.Label())
	assert.Equal(t, analysis.SentimentPositive, analysis.Sentiment{Polarity: 0.1001}.Label())
	assert.Equal(t, analysis.SentimentNeutral, analysis.Sentiment{Polarity: -0.1}.Label())
	assert.Equal(t, analysis.SentimentNegative, analysis.Sentiment{Polarity: -0.1001}.Label())
}

func TestSentimentJSONIncludesLabel(t *testing.T) {
	b, err := json.Marshal(analysis.Sentiment{Polarity: 0.5, Subjectivity: 0.25})
	require.NoError(t, err)

	assert.JSONEq(t, `{"polarity":0.5,"subjectivity":0.25,"label":"positivo"}`, string(b))

	var back analysis.Sentiment
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, analysis.Sentiment{Polarity: 0.5, Subjectivity: 0.25}, back)
}

func TestTopics(t *testing.T) {
	engine := analysis.Default()

	testCases := []struct {
		name string
		text string
		want []string
	}{
		{"scientist", "Fue un científico brillante.", []string{"Ciencia"}},
		{"table order", "La POLÍTICA, la historia y el arte.", []string{"Historia", "Arte y Cultura", "Política"}},
		{"substring match", "Una parte del gobierno.", []string{"Arte y Cultura", "Política"}},
		{"english text", "A history of science and art.", []string{analysis.GeneralTopic}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.Topics(tc.text))
		})
	}
}

func TestTopicsSuppressDuplicateLabels(t *testing.T) {
	engine := analysis.New(analysis.Options{Topics: []analysis.TopicRule{
		{Label: "Science", Keywords: []string{"physics"}},
		{Label: "Science", Keywords: []string{"chemistry"}},
		{Label: "Sport", Keywords: []string{"football"}},
	}})

	assert.Equal(t, []string{"Science", "Sport"}, engine.Topics("Physics, chemistry and football."))
}

func TestEntities(t *testing.T) {
	got := analysis.Default().Entities(obamaText + " In 1961 he was born in Honolulu, Hawaii.")

	assert.Equal(t, []analysis.Entity{
		{Text: "Barack Obama", Label: analysis.EntityProperNoun},
		{Text: "44th", Label: analysis.EntityOrdinal},
		{Text: "President of the United States", Label: analysis.EntityProperNoun},
		{Text: "Washington", Label: analysis.EntityProperNoun},
		{Text: "1961", Label: analysis.EntityDate},
		{Text: "Honolulu", Label: analysis.EntityProperNoun},
		{Text: "Hawaii", Label: analysis.EntityProperNoun},
	}, got)
}

func TestEntitiesDeduplicates(t *testing.T) {
	got := analysis.Default().Entities("Paris is big. Paris is old. The Louvre is in Paris.")

	assert.Equal(t, []analysis.Entity{
		{Text: "Paris", Label: analysis.EntityProperNoun},
		{Text: "Louvre", Label: analysis.EntityProperNoun},
	}, got)
}
