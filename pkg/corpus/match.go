package corpus

import "github.com/julianstephens/verseref/pkg/bibleref"

// Match filters an in-memory verse list down to a reference. Book names are
// compared by exact canonical name. A zero Chapter keeps the whole book, a
// zero Verse keeps the whole chapter, and a zero VerseEnd means a single
// verse. An empty result is not an error: the reference may be well formed
// while the corpus is unloaded or has a gap, and the caller decides what to
// render in that case.
func Match(ref bibleref.Reference, verses []Verse) []Verse {
	var out []Verse
	end := ref.VerseEnd
	if end == 0 {
		end = ref.Verse
	}
	for _, v := range verses {
		if v.Book != ref.Book {
			continue
		}
		if ref.Chapter != 0 && v.Chapter != ref.Chapter {
			continue
		}
		if ref.Verse != 0 && (v.V < ref.Verse || v.V > end) {
			continue
		}
		out = append(out, v)
	}
	return out
}
