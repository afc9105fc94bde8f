package search

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/julianstephens/verseref/pkg/corpus"
)

// minScore is the floor below which a verse is not considered a match.
const minScore = 0.82

// Result is a scored verse from a full-text query.
type Result struct {
	Verse corpus.Verse
	Score float32
}

// Engine is the fuzzy full-text fallback for queries that are not references.
// It scores each verse by per-word Jaro-Winkler similarity against the query,
// with an exact substring short-circuiting to a full score.
type Engine struct {
	verses []corpus.Verse
	texts  []string
	words  [][]string
}

// NewEngine indexes an in-memory verse list. The word split is precomputed
// once so per-keystroke queries only pay for similarity scoring.
func NewEngine(verses []corpus.Verse) *Engine {
	e := &Engine{
		verses: verses,
		texts:  make([]string, len(verses)),
		words:  make([][]string, len(verses)),
	}
	for i, v := range verses {
		e.texts[i] = strings.ToLower(v.Text)
		e.words[i] = splitWords(v.Text)
	}
	return e
}

// Search returns up to limit verses ranked by score, ties kept in canonical
// order. A query with no usable words returns nil.
func (e *Engine) Search(query string, limit int) []Result {
	queryWords := splitWords(query)
	if len(queryWords) == 0 || limit <= 0 {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	var results []Result
	for i := range e.verses {
		score := e.score(i, needle, queryWords)
		if score < minScore {
			continue
		}
		results = append(results, Result{Verse: e.verses[i], Score: score})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (e *Engine) score(i int, needle string, queryWords []string) float32 {
	if strings.Contains(e.texts[i], needle) {
		return 1
	}

	var total float32
	for _, qw := range queryWords {
		var best float32
		for _, vw := range e.words[i] {
			sim, err := edlib.StringsSimilarity(qw, vw, edlib.JaroWinkler)
			if err != nil {
				continue
			}
			if sim > best {
				best = sim
			}
			if best == 1 {
				break
			}
		}
		total += best
	}
	return total / float32(len(queryWords))
}

// splitWords lowercases and splits on non-letter runs, dropping single-rune
// fragments that would match nearly everything.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}
