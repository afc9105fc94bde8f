package search

import (
	"github.com/julianstephens/verseref/pkg/bibleref"
	"github.com/julianstephens/verseref/pkg/corpus"
)

// DefaultLimit bounds full-text results when the caller does not say otherwise.
const DefaultLimit = 10

// Kind discriminates what a query resolved to.
type Kind string

const (
	KindReference   Kind = "reference"
	KindSuggestions Kind = "suggestions"
	KindSearch      Kind = "search"
)

// Response is the pipeline outcome for one query. Exactly the fields for its
// Kind are populated: Ref and Verses for a reference, Suggestions for a
// partial book name, Matches for full-text search.
type Response struct {
	Kind        Kind
	Ref         *bibleref.Reference
	Verses      []corpus.Verse
	Suggestions []bibleref.Suggestion
	Matches     []Result
}

// Resolver wires reference detection, verse matching, and the fuzzy fallback
// into the single entry point a search box calls on every input change.
type Resolver struct {
	table  *bibleref.Table
	verses []corpus.Verse
	engine *Engine
}

// NewResolver builds a resolver over a book table and a fully loaded verse
// list. The resolver holds no other state, so one instance serves any number
// of concurrent queries.
func NewResolver(table *bibleref.Table, verses []corpus.Verse) *Resolver {
	return &Resolver{
		table:  table,
		verses: verses,
		engine: NewEngine(verses),
	}
}

// Query classifies the input and resolves it. An exact reference always wins
// over suggestions; only input that is not reference-like at all reaches the
// fuzzy engine, and it is passed through unchanged.
func (r *Resolver) Query(q string) Response {
	switch d := r.table.Detect(q).(type) {
	case bibleref.Exact:
		return Response{
			Kind:   KindReference,
			Ref:    &d.Ref,
			Verses: corpus.Match(d.Ref, r.verses),
		}
	case bibleref.Suggestions:
		return Response{Kind: KindSuggestions, Suggestions: d.Books}
	default:
		return Response{Kind: KindSearch, Matches: r.engine.Search(q, DefaultLimit)}
	}
}
