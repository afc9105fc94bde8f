package bibleref

// location is the typed result of scanning a trailing "chapter[:verse[-end]]"
// suffix. Zero verse fields mean the element was absent; hasVerse
// distinguishes "Jude 4" (chapter only) from "Jude 1:4" for the
// single-chapter-book rule.
type location struct {
	chapter  int
	verse    int
	verseEnd int
	hasVerse bool
}

// splitLocation splits a normalized input into a book part and a trailing
// location. The location must be the final whitespace-delimited token, so a
// leading digit glued to a book name ("1 Corinthians") is never mistaken for a
// chapter. ok is false when the last token is not a well-formed location, in
// which case the whole input is a book-name candidate.
func splitLocation(s string) (book string, loc location, ok bool) {
	cut := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			cut = i
			break
		}
	}
	if cut <= 0 {
		return s, location{}, false
	}
	loc, ok = scanLocation(s[cut+1:])
	if !ok {
		return s, location{}, false
	}
	return s[:cut], loc, true
}

// scanLocation parses "C", "C:V", or "C:V-W" where each number is 1-3 digits
// and at least 1. The dash may be a hyphen, en dash, or em dash. The whole
// token must be consumed: a trailing dash ("3:16-"), a 4-digit number, a
// reversed range, or any stray character rejects the token.
func scanLocation(s string) (location, bool) {
	sc := locScanner{src: []rune(s)}

	ch, ok := sc.number()
	if !ok {
		return location{}, false
	}
	loc := location{chapter: ch}
	if sc.eof() {
		return loc, true
	}

	if !sc.accept(':') {
		return location{}, false
	}
	v, ok := sc.number()
	if !ok {
		return location{}, false
	}
	loc.verse = v
	loc.hasVerse = true
	if sc.eof() {
		return loc, true
	}

	if !sc.dash() {
		return location{}, false
	}
	end, ok := sc.number()
	if !ok || !sc.eof() {
		return location{}, false
	}
	if end < v {
		return location{}, false
	}
	loc.verseEnd = end
	return loc, true
}

type locScanner struct {
	src []rune
	pos int
}

func (sc *locScanner) eof() bool {
	return sc.pos >= len(sc.src)
}

func (sc *locScanner) accept(r rune) bool {
	if sc.eof() || sc.src[sc.pos] != r {
		return false
	}
	sc.pos++
	return true
}

func (sc *locScanner) dash() bool {
	if sc.eof() {
		return false
	}
	switch sc.src[sc.pos] {
	case '-', '–', '—':
		sc.pos++
		return true
	}
	return false
}

// number reads a run of 1-3 digits with value >= 1. Longer runs are rejected
// outright so years and result counts embedded in text never read as
// chapter or verse numbers.
func (sc *locScanner) number() (int, bool) {
	n := 0
	digits := 0
	for !sc.eof() && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
		if digits == 3 {
			return 0, false
		}
		n = n*10 + int(sc.src[sc.pos]-'0')
		digits++
		sc.pos++
	}
	if digits == 0 || n < 1 {
		return 0, false
	}
	return n, true
}
