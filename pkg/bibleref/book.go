package bibleref

import "strings"

// Testament identifies which of the two canon partitions a book belongs to.
type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book is a single canonical book entry. The full Name is the identity key;
// every other representation (abbreviation, alias, slug) resolves back to it.
type Book struct {
	Name      string
	Abbr      string
	Testament Testament
	Order     int
	Chapters  int
}

// Slug returns the URL-safe form of the canonical name: lowercased, with every
// run of whitespace replaced by a single hyphen. It is always derived from Name,
// never stored, so the two cannot disagree.
func (b *Book) Slug() string {
	return SlugFor(b.Name)
}

// SlugFor derives a slug from a canonical book name.
func SlugFor(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// SingleChapter reports whether the book is referenced by verse number alone
// ("Jude 4" convention).
func (b *Book) SingleChapter() bool {
	return b.Chapters == 1
}

// Suggestion is a read-only projection of a Book returned by prefix matching.
type Suggestion struct {
	Name      string
	Abbr      string
	Slug      string
	Testament Testament
	Chapters  int
}

func (b *Book) suggestion() Suggestion {
	return Suggestion{
		Name:      b.Name,
		Abbr:      b.Abbr,
		Slug:      b.Slug(),
		Testament: b.Testament,
		Chapters:  b.Chapters,
	}
}
