package bibleref

import (
	"fmt"
	"strings"
	"sync"
)

// Table is the read-only alias index over the canonical book list. Build it
// once with NewTable (or use Default) and share it freely; it is never mutated
// after construction, so unsynchronized concurrent reads are safe.
type Table struct {
	books   []Book
	byAlias map[string]*Book
	ordered []aliasEntry
}

// aliasEntry preserves registration order so suggestion scans are
// deterministic. Go map iteration order is not.
type aliasEntry struct {
	key  string
	book *Book
}

// NewTable builds the alias index. Identity aliases (name, abbreviation, and
// their whitespace-free forms) are registered first, in canonical order, then
// curated aliases layer on top. First registration wins, so a curated alias can
// never shadow a canonical one. Curated aliases naming a book that is not in
// the table are dropped: that is a data defect for tests to catch, not a reason
// to fail construction.
func NewTable(books []Book, curated []Alias) (*Table, error) {
	t := &Table{
		books:   append([]Book(nil), books...),
		byAlias: make(map[string]*Book, len(books)*4+len(curated)),
	}

	byName := make(map[string]*Book, len(books))
	seenSlug := make(map[string]string, len(books))
	for i := range t.books {
		b := &t.books[i]
		if b.Name == "" || b.Abbr == "" {
			return nil, fmt.Errorf("book %d: missing name or abbreviation", i)
		}
		if b.Chapters < 1 || b.Chapters > 150 {
			return nil, fmt.Errorf("%s: chapter count %d out of range", b.Name, b.Chapters)
		}
		if _, dup := byName[b.Name]; dup {
			return nil, fmt.Errorf("duplicate book name: %s", b.Name)
		}
		byName[b.Name] = b

		slug := b.Slug()
		if prev, dup := seenSlug[slug]; dup {
			return nil, fmt.Errorf("slug collision: %s and %s both derive %q", prev, b.Name, slug)
		}
		seenSlug[slug] = b.Name

		t.register(fold(b.Name), b)
		t.register(fold(b.Abbr), b)
	}

	for _, a := range curated {
		b, ok := byName[a.Book]
		if !ok {
			continue
		}
		t.register(fold(a.Alias), b)
	}

	return t, nil
}

// register adds an alias key plus its whitespace-free form ("1 corinthians"
// and "1corinthians"). Existing keys are left alone.
func (t *Table) register(key string, b *Book) {
	for _, k := range []string{key, strings.ReplaceAll(key, " ", "")} {
		if k == "" {
			continue
		}
		if _, taken := t.byAlias[k]; taken {
			continue
		}
		t.byAlias[k] = b
		t.ordered = append(t.ordered, aliasEntry{key: k, book: b})
	}
}

// Lookup resolves a candidate book name through the alias index. Absence is an
// expected outcome (most search input is not a book name), so it is reported as
// a bool, never an error.
func (t *Table) Lookup(candidate string) (*Book, bool) {
	b, ok := t.byAlias[fold(Normalize(candidate))]
	return b, ok
}

// Books returns the canonical book list in order.
func (t *Table) Books() []Book {
	return t.books
}

// Aliases returns every registered alias key mapped to its canonical book
// name, in registration order. The keys are already folded.
func (t *Table) Aliases() []Alias {
	out := make([]Alias, len(t.ordered))
	for i, e := range t.ordered {
		out[i] = Alias{Alias: e.key, Book: e.book.Name}
	}
	return out
}

// Normalize trims the input, strips periods ("Gen." == "Gen"), and collapses
// every run of whitespace to a single space. Case is preserved; lookups fold
// separately.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

func fold(s string) string {
	return strings.ToLower(s)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared table over the 66-book canon and the curated alias
// list. It is built on first use and read-only thereafter.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(canonicalBooks, curatedAliases)
		if err != nil {
			// The embedded canon is fixed data; a build failure here is a
			// programming error, not an input error.
			panic(fmt.Sprintf("bibleref: invalid canon table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}
