package bibleref

import "strings"

// MaxSuggestions caps the list returned by Suggest.
const MaxSuggestions = 8

// Suggest returns up to MaxSuggestions books whose name, abbreviation, or any
// registered alias starts with the given prefix. Canonical names and
// abbreviations are scanned first in canonical order, then the alias index in
// registration order, so direct matches outrank alias matches. Each book
// appears at most once. An empty prefix returns nil.
func (t *Table) Suggest(partial string) []Suggestion {
	prefix := fold(Normalize(partial))
	if prefix == "" {
		return nil
	}

	var out []Suggestion
	seen := make(map[string]bool, MaxSuggestions)

	add := func(b *Book) bool {
		if seen[b.Name] {
			return len(out) < MaxSuggestions
		}
		seen[b.Name] = true
		out = append(out, b.suggestion())
		return len(out) < MaxSuggestions
	}

	for i := range t.books {
		b := &t.books[i]
		if strings.HasPrefix(fold(b.Name), prefix) || strings.HasPrefix(fold(b.Abbr), prefix) {
			if !add(b) {
				return out
			}
		}
	}

	for _, e := range t.ordered {
		if strings.HasPrefix(e.key, prefix) {
			if !add(e.book) {
				return out
			}
		}
	}

	return out
}
