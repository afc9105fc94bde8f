package bibleref

import (
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	table := Default()

	tests := []struct {
		name  string
		input string
		want  Reference
		ok    bool
	}{
		{
			name:  "book chapter verse",
			input: "John 3:16",
			want:  Reference{Book: "John", Slug: "john", Testament: NewTestament, Chapter: 3, Verse: 16},
			ok:    true,
		},
		{
			name:  "verse range",
			input: "Colossians 1:16-17",
			want:  Reference{Book: "Colossians", Slug: "colossians", Testament: NewTestament, Chapter: 1, Verse: 16, VerseEnd: 17},
			ok:    true,
		},
		{
			name:  "en dash range",
			input: "John 3:16–18",
			want:  Reference{Book: "John", Slug: "john", Testament: NewTestament, Chapter: 3, Verse: 16, VerseEnd: 18},
			ok:    true,
		},
		{
			name:  "book only",
			input: "Romans",
			want:  Reference{Book: "Romans", Slug: "romans", Testament: NewTestament},
			ok:    true,
		},
		{
			name:  "chapter only",
			input: "Psalms 23",
			want:  Reference{Book: "Psalms", Slug: "psalms", Testament: OldTestament, Chapter: 23},
			ok:    true,
		},
		{
			name:  "curated alias with location",
			input: "psalm 23",
			want:  Reference{Book: "Psalms", Slug: "psalms", Testament: OldTestament, Chapter: 23},
			ok:    true,
		},
		{
			name:  "lowercase and periods",
			input: "gen. 1:1",
			want:  Reference{Book: "Genesis", Slug: "genesis", Testament: OldTestament, Chapter: 1, Verse: 1},
			ok:    true,
		},
		{
			name:  "whitespace-free numbered book",
			input: "1corinthians 13",
			want:  Reference{Book: "1 Corinthians", Slug: "1-corinthians", Testament: NewTestament, Chapter: 13},
			ok:    true,
		},
		{
			name:  "numbered book with spaces",
			input: "1 Corinthians 13:4-7",
			want:  Reference{Book: "1 Corinthians", Slug: "1-corinthians", Testament: NewTestament, Chapter: 13, Verse: 4, VerseEnd: 7},
			ok:    true,
		},
		{
			name:  "single-chapter book bare number is the verse",
			input: "Jude 4",
			want:  Reference{Book: "Jude", Slug: "jude", Testament: NewTestament, Chapter: 1, Verse: 4},
			ok:    true,
		},
		{
			name:  "single-chapter book explicit chapter",
			input: "Jude 1:4",
			want:  Reference{Book: "Jude", Slug: "jude", Testament: NewTestament, Chapter: 1, Verse: 4},
			ok:    true,
		},
		{
			name:  "excess internal whitespace",
			input: "  song   of  solomon  2:1 ",
			want:  Reference{Book: "Song of Solomon", Slug: "song-of-solomon", Testament: OldTestament, Chapter: 2, Verse: 1},
			ok:    true,
		},
		{name: "open-ended range", input: "John 3:16-", ok: false},
		{name: "reversed range", input: "John 3:16-2", ok: false},
		{name: "four-digit number", input: "John 2024", ok: false},
		{name: "zero chapter", input: "John 0", ok: false},
		{name: "unknown book with location", input: "Hezekiah 3:16", ok: false},
		{name: "free text", input: "in the beginning", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "bare number", input: "316", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// Both spellings of a single-chapter book reference must produce the same
// result, whichever code path handles them.
func TestSingleChapterBookEquivalence(t *testing.T) {
	table := Default()

	for _, book := range table.Books() {
		if !book.SingleChapter() {
			continue
		}
		bare, ok1 := table.Parse(fmt.Sprintf("%s 4", book.Name))
		explicit, ok2 := table.Parse(fmt.Sprintf("%s 1:4", book.Name))
		if !ok1 || !ok2 {
			t.Errorf("%s: parse failed (bare=%v explicit=%v)", book.Name, ok1, ok2)
			continue
		}
		if bare != explicit {
			t.Errorf("%s: bare %+v != explicit %+v", book.Name, bare, explicit)
		}
		if bare.Chapter != 1 {
			t.Errorf("%s: chapter = %d, want 1", book.Name, bare.Chapter)
		}
		t.Logf("✓ %s 4 == %s 1:4", book.Name, book.Name)
	}
}

// Every multi-chapter book round-trips "{name} {lastChapter}:1".
func TestRoundTrip(t *testing.T) {
	table := Default()

	for _, book := range table.Books() {
		if book.SingleChapter() {
			continue
		}
		input := fmt.Sprintf("%s %d:1", book.Name, book.Chapters)
		ref, ok := table.Parse(input)
		if !ok {
			t.Errorf("Parse(%q) failed", input)
			continue
		}
		if ref.Book != book.Name || ref.Chapter != book.Chapters || ref.Verse != 1 || ref.VerseEnd != 0 {
			t.Errorf("Parse(%q) = %+v", input, ref)
		}
	}
}
