package corpus

import (
	"testing"

	"github.com/julianstephens/verseref/pkg/bibleref"
)

var matchFixture = []Verse{
	{Book: "Genesis", Chapter: 1, V: 1, Text: "In the beginning God created the heaven and the earth."},
	{Book: "Genesis", Chapter: 1, V: 2, Text: "And the earth was without form, and void."},
	{Book: "Genesis", Chapter: 2, V: 1, Text: "Thus the heavens and the earth were finished."},
	{Book: "Jude", Chapter: 1, V: 3, Text: "Beloved, when I gave all diligence to write unto you."},
	{Book: "Jude", Chapter: 1, V: 4, Text: "For there are certain men crept in unawares."},
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		ref  bibleref.Reference
		want int
	}{
		{
			name: "book only",
			ref:  bibleref.Reference{Book: "Genesis"},
			want: 3,
		},
		{
			name: "chapter only",
			ref:  bibleref.Reference{Book: "Genesis", Chapter: 1},
			want: 2,
		},
		{
			name: "single verse",
			ref:  bibleref.Reference{Book: "Genesis", Chapter: 1, Verse: 2},
			want: 1,
		},
		{
			name: "verse range",
			ref:  bibleref.Reference{Book: "Jude", Chapter: 1, Verse: 3, VerseEnd: 4},
			want: 2,
		},
		{
			name: "book not in corpus",
			ref:  bibleref.Reference{Book: "Revelation", Chapter: 22},
			want: 0,
		},
		{
			name: "verse beyond chapter",
			ref:  bibleref.Reference{Book: "Genesis", Chapter: 1, Verse: 99},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.ref, matchFixture)
			if len(got) != tt.want {
				t.Errorf("Match(%+v) = %d verses, want %d", tt.ref, len(got), tt.want)
			}
			for _, v := range got {
				if v.Book != tt.ref.Book {
					t.Errorf("matched verse from wrong book: %+v", v)
				}
			}
		})
	}
}

// A well-formed reference against an empty corpus is an empty result, never
// an error.
func TestMatchEmptyCorpus(t *testing.T) {
	ref := bibleref.Reference{Book: "Genesis", Chapter: 1, Verse: 1}
	if got := Match(ref, nil); len(got) != 0 {
		t.Errorf("Match on empty corpus = %+v, want empty", got)
	}
}
