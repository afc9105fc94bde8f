package bibleref

// Reference is a fully resolved verse reference. Zero means "not specified":
// Chapter 0 is a book-only reference, Verse 0 a chapter-only reference, and
// VerseEnd 0 a single verse. A Verse without a Chapter cannot be constructed,
// and VerseEnd is always >= Verse when set.
type Reference struct {
	Book      string
	Slug      string
	Testament Testament
	Chapter   int
	Verse     int
	VerseEnd  int
}

func (b *Book) reference() Reference {
	return Reference{
		Book:      b.Name,
		Slug:      b.Slug(),
		Testament: b.Testament,
	}
}

// Parse resolves an input string to a Reference. It succeeds only on a
// complete, unambiguous alias match; prefix matching belongs to Suggest. The
// second return is false when the input is not a reference.
//
// The trailing location is split off first. If a location is present but the
// book part does not resolve, the whole parse fails; the digits are never
// reinterpreted as something else. For single-chapter books a bare trailing
// number is read as the verse with the chapter fixed at 1, so "Jude 4" and
// "Jude 1:4" yield the same Reference.
func (t *Table) Parse(input string) (Reference, bool) {
	norm := Normalize(input)
	if norm == "" {
		return Reference{}, false
	}

	bookPart, loc, hasLoc := splitLocation(norm)
	if !hasLoc {
		b, ok := t.Lookup(norm)
		if !ok {
			return Reference{}, false
		}
		return b.reference(), true
	}

	b, ok := t.Lookup(bookPart)
	if !ok {
		return Reference{}, false
	}

	ref := b.reference()
	if b.SingleChapter() && !loc.hasVerse {
		ref.Chapter = 1
		ref.Verse = loc.chapter
		return ref, true
	}
	ref.Chapter = loc.chapter
	ref.Verse = loc.verse
	ref.VerseEnd = loc.verseEnd
	return ref, true
}
