package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entity labels.
const (
	EntityProperNoun = "PROPN"
	EntityDate       = "DATE"
	EntityOrdinal    = "ORDINAL"
	EntityCardinal   = "CARDINAL"
)

// Entity is a named span found in the text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

var (
	yearPattern     = regexp.MustCompile(`^(1[0-9]{3}|20[0-9]{2})$`)
	ordinalPattern  = regexp.MustCompile(`^[0-9]+(st|nd|rd|th)$`)
	cardinalPattern = regexp.MustCompile(`^[0-9]+([.,][0-9]+)*$`)
)

// connectors may appear inside a capitalized run ("Bank of the West").
var connectors = toSet([]string{"of", "the", "de", "la", "del", "y", "and"})

type field struct {
	core       string // field without surrounding punctuation
	endsClause bool   // field ends with punctuation that closes a run
}

// Entities extracts capitalized runs and numeric expressions in order of
// first appearance. It is a surface heuristic, not a trained recognizer.
func (e *Engine) Entities(text string) []Entity {
	fields := splitFields(text)

	var out []Entity
	seen := make(map[Entity]struct{})
	add := func(ent Entity) {
		if _, ok := seen[ent]; ok {
			return
		}
		seen[ent] = struct{}{}
		out = append(out, ent)
	}

	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if label := numericLabel(f.core); label != "" {
			add(Entity{Text: f.core, Label: label})
			continue
		}
		if !isCapitalized(f.core) {
			continue
		}

		run := []string{f.core}
		j := i
		for !fields[j].endsClause && j+1 < len(fields) {
			next := j + 1
			for next < len(fields) && isConnector(fields[next].core) && !fields[next].endsClause {
				next++
			}
			if next >= len(fields) || !isCapitalized(fields[next].core) || numericLabel(fields[next].core) != "" {
				break
			}
			for k := j + 1; k <= next; k++ {
				run = append(run, fields[k].core)
			}
			j = next
		}
		i = j

		// Drop a leading stop-word picked up at sentence start ("The", "He").
		for len(run) > 0 {
			if _, stop := e.stopWords[strings.ToLower(run[0])]; !stop {
				break
			}
			run = run[1:]
		}
		for len(run) > 0 && isConnector(run[0]) {
			run = run[1:]
		}
		if len(run) == 0 {
			continue
		}
		add(Entity{Text: strings.Join(run, " "), Label: EntityProperNoun})
	}
	if out == nil {
		out = []Entity{}
	}
	return out
}

func splitFields(text string) []field {
	raw := strings.Fields(text)
	out := make([]field, 0, len(raw))
	for _, r := range raw {
		core := strings.TrimFunc(r, func(c rune) bool {
			return !unicode.IsLetter(c) && !unicode.IsDigit(c)
		})
		last, _ := utf8.DecodeLastRuneInString(r)
		ends := strings.ContainsRune(".,;:!?)\"”", last)
		if core != "" {
			out = append(out, field{core: core, endsClause: ends})
		}
	}
	return out
}

func isConnector(word string) bool {
	_, ok := connectors[strings.ToLower(word)]
	return ok
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func numericLabel(word string) string {
	switch {
	case yearPattern.MatchString(word):
		return EntityDate
	case ordinalPattern.MatchString(strings.ToLower(word)):
		return EntityOrdinal
	case cardinalPattern.MatchString(word):
		return EntityCardinal
	default:
		return ""
	}
}
