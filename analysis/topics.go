package analysis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// GeneralTopic is returned when no keyword of the topic table matches.
const GeneralTopic = "General"

// TopicRule assigns Label to any text containing one of Keywords.
type TopicRule struct {
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// DefaultTopics is the built-in Spanish keyword table.
var DefaultTopics = []TopicRule{
	{Label: "Historia", Keywords: []string{"historia", "histórico"}},
	{Label: "Ciencia", Keywords: []string{"ciencia", "científico"}},
	{Label: "Arte y Cultura", Keywords: []string{"arte", "cultura"}},
	{Label: "Política", Keywords: []string{"política", "gobierno"}},
}

// Topics returns the labels whose keywords appear as substrings of the
// lower-cased text, in table order and without duplicates.
func (e *Engine) Topics(text string) []string {
	lower := strings.ToLower(text)

	var topics []string
	seen := make(map[string]struct{})
	for _, rule := range e.topics {
		if _, dup := seen[rule.Label]; dup {
			continue
		}
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				topics = append(topics, rule.Label)
				seen[rule.Label] = struct{}{}
				break
			}
		}
	}
	if len(topics) == 0 {
		return []string{GeneralTopic}
	}
	return topics
}

func normalizeRules(rules []TopicRule) []TopicRule {
	out := make([]TopicRule, 0, len(rules))
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kws = append(kws, strings.ToLower(norm.NFC.String(strings.TrimSpace(kw))))
		}
		out = append(out, TopicRule{Label: r.Label, Keywords: kws})
	}
	return out
}
