package usecases

import (
	"sort"
	"strings"
	"unicode"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
)

// problemIndicators are the substrings that flag a word's surrounding context
// as a candidate problem description. Matching is case-insensitive (the scan
// lowercases each response first). English only.
var problemIndicators = []string{
	"problem", "issue", "concern", "difficult", "challenging", "bad", "poor",
	"slow", "delay", "wait", "queue", "long line", "crowded", "confusing",
	"unclear", "missing", "lack of", "insufficient", "inadequate", "not enough",
}

// fallbackProblems pad the result up to exactly five entries when fewer real
// phrases are extracted. Order matters: earlier entries are inserted first and
// receive higher synthetic counts.
var fallbackProblems = []string{
	"Long wait times at immigration counters",
	"Insufficient signage in multiple languages",
	"Limited availability of water stations",
	"Crowding at key ritual sites",
	"Transportation delays between locations",
}

const (
	topProblemCount    = 5
	maxPhraseLength    = 60
	contextWindowWords = 5
	fallbackBaseCount  = 50
	fallbackCountStep  = 5
)

// phraseAccumulator counts normalized phrases while remembering insertion
// order, so ties can be broken by first encounter during the final sort.
type phraseAccumulator struct {
	counts map[string]int
	order  []string
}

func newPhraseAccumulator() *phraseAccumulator {
	return &phraseAccumulator{
		counts: make(map[string]int),
	}
}

func (a *phraseAccumulator) add(phrase string, count int) {
	if _, exists := a.counts[phrase]; !exists {
		a.order = append(a.order, phrase)
	}
	a.counts[phrase] += count
}

func (a *phraseAccumulator) len() int {
	return len(a.order)
}

func (a *phraseAccumulator) has(phrase string) bool {
	_, exists := a.counts[phrase]
	return exists
}

// extractProblemPhrase scans one response for problem indicators and returns
// the cleaned context window around the first match. At most one phrase is
// extracted per response, even when several indicators are present.
func extractProblemPhrase(response string) (string, bool) {
	words := strings.Fields(strings.ToLower(response))

	for i := 0; i < len(words); i++ {
		pair := words[i]
		if i+1 < len(words) {
			pair = words[i] + " " + words[i+1]
		}

		for _, indicator := range problemIndicators {
			if !strings.Contains(words[i], indicator) && !strings.Contains(pair, indicator) {
				continue
			}

			// Context window of up to 5 words on each side, clamped to bounds
			start := i - contextWindowWords
			if start < 0 {
				start = 0
			}
			end := i + contextWindowWords + 1
			if end > len(words) {
				end = len(words)
			}

			return cleanProblemPhrase(strings.Join(words[start:end], " ")), true
		}
	}

	return "", false
}

// cleanProblemPhrase normalizes a candidate phrase: collapses whitespace,
// capitalizes the first letter and caps the length at 60 characters.
func cleanProblemPhrase(phrase string) string {
	cleaned := strings.Join(strings.Fields(phrase), " ")
	if cleaned == "" {
		return cleaned
	}

	runes := []rune(cleaned)
	runes[0] = unicode.ToUpper(runes[0])

	if len(runes) > maxPhraseLength {
		return string(runes[:maxPhraseLength-3]) + "..."
	}

	return string(runes)
}

// analyzeProblems turns the text corpus into exactly five ranked problem
// phrases. Too few real phrases are padded from the fallback list; ties are
// broken by first-encountered order.
func analyzeProblems(corpus []string) []entities.ProblemCount {
	acc := newPhraseAccumulator()

	for _, response := range corpus {
		if phrase, ok := extractProblemPhrase(response); ok {
			acc.add(phrase, 1)
		}
	}

	// Pad with fallback phrases until we have five distinct entries. Synthetic
	// counts descend by insertion position, not by fallback list index.
	if acc.len() < topProblemCount {
		inserted := 0
		for _, fallback := range fallbackProblems {
			if acc.len() >= topProblemCount {
				break
			}
			if acc.has(fallback) {
				continue
			}
			acc.add(fallback, fallbackBaseCount-inserted*fallbackCountStep)
			inserted++
		}
	}

	phrases := make([]string, len(acc.order))
	copy(phrases, acc.order)

	sort.SliceStable(phrases, func(i, j int) bool {
		return acc.counts[phrases[i]] > acc.counts[phrases[j]]
	})

	if len(phrases) > topProblemCount {
		phrases = phrases[:topProblemCount]
	}

	counts := make([]entities.ProblemCount, len(phrases))
	for i, phrase := range phrases {
		counts[i] = entities.ProblemCount{
			Problem: phrase,
			Count:   acc.counts[phrase],
			Rank:    i + 1,
		}
	}

	return counts
}

// collectTextResponses flattens the free-text answers of the given surveys
// into a single corpus, in survey order then response order. Non-text answers
// and blank values are skipped.
func collectTextResponses(surveys []entities.Survey) []string {
	var corpus []string

	for _, survey := range surveys {
		for _, response := range survey.Answers.Responses {
			if response.Type != entities.ResponseTypeText {
				continue
			}

			value, ok := response.Value.(string)
			if !ok {
				continue
			}

			if trimmed := strings.TrimSpace(value); trimmed != "" {
				corpus = append(corpus, trimmed)
			}
		}
	}

	return corpus
}
