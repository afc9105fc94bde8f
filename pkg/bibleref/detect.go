package bibleref

import "unicode/utf8"

// Detection is the outcome of classifying raw search input. Exactly one of the
// three variants is returned per call: Exact, Suggestions, or NoMatch. The
// interface is sealed so a type switch covers every case.
type Detection interface {
	isDetection()
}

// Exact means the input is a complete, resolvable reference.
type Exact struct {
	Ref Reference
}

// Suggestions means the input looks like a partial book name; Books is ranked
// highest relevance first.
type Suggestions struct {
	Books []Suggestion
}

// NoMatch means the input is not reference-like and should go to full-text
// search unchanged.
type NoMatch struct{}

func (Exact) isDetection()       {}
func (Suggestions) isDetection() {}
func (NoMatch) isDetection()     {}

// Detect classifies raw input. A fully specified reference always wins over a
// prefix suggestion; suggestions are surfaced only when no exact parse is
// possible. Input shorter than two runes after normalization is never
// reference-like, which keeps single-keystroke queries from producing noise.
func (t *Table) Detect(input string) Detection {
	norm := Normalize(input)
	if utf8.RuneCountInString(norm) < 2 {
		return NoMatch{}
	}
	if ref, ok := t.Parse(norm); ok {
		return Exact{Ref: ref}
	}
	if books := t.Suggest(norm); len(books) > 0 {
		return Suggestions{Books: books}
	}
	return NoMatch{}
}
