package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/julianstephens/verseref/pkg/bibleref"
)

// Corpus reads verse text from a canonical root directory laid out as
// books/<slug>/chNN.json. Chapters are loaded lazily and cached; the cache is
// the only mutable state and is guarded for concurrent readers.
type Corpus struct {
	root     string
	table    *bibleref.Table
	chapters map[string]*Chapter
	mu       sync.RWMutex
}

// Resolved is the outcome of resolving a reference against the corpus text.
type Resolved struct {
	Ref    bibleref.Reference
	Book   *bibleref.Book
	Verses []Verse
}

// Open validates the corpus root and binds it to a book table. No chapter data
// is read until it is asked for.
func Open(root string, table *bibleref.Table) (*Corpus, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, &CorpusError{Kind: FileError, Err: ErrInvalidRoot, Cause: err}
	}
	return &Corpus{
		root:     root,
		table:    table,
		chapters: make(map[string]*Chapter),
	}, nil
}

// Resolve loads the text for a reference. A book-only reference resolves to
// chapter 1, matching how a chapter view opens a book. Out-of-range chapters
// are range errors; a well-formed reference whose verses are absent from the
// file yields however many verses the file has, which may be none.
func (c *Corpus) Resolve(ref bibleref.Reference) (*Resolved, error) {
	book, ok := c.table.Lookup(ref.Book)
	if !ok {
		return nil, &CorpusError{
			Kind:    RangeError,
			Message: fmt.Sprintf("unknown book: %s", ref.Book),
			Err:     ErrUnknownBook,
		}
	}

	chapter := ref.Chapter
	if chapter == 0 {
		chapter = 1
	}
	if chapter > book.Chapters {
		return nil, &CorpusError{
			Kind:    RangeError,
			Message: fmt.Sprintf("chapter %d out of range for %s (1-%d)", chapter, book.Name, book.Chapters),
			Err:     ErrChapterNotFound,
		}
	}

	ch, err := c.loadChapter(book.Slug(), chapter)
	if err != nil {
		return nil, err
	}

	res := &Resolved{Ref: ref, Book: book}
	if ref.Verse == 0 {
		res.Verses = ch.flatten()
		return res, nil
	}
	end := ref.VerseEnd
	if end == 0 {
		end = ref.Verse
	}
	for _, v := range ch.flatten() {
		if v.V >= ref.Verse && v.V <= end {
			res.Verses = append(res.Verses, v)
		}
	}
	return res, nil
}

// LoadBook materializes every chapter of a book as flat verse records.
func (c *Corpus) LoadBook(name string) ([]Verse, error) {
	book, ok := c.table.Lookup(name)
	if !ok {
		return nil, &CorpusError{
			Kind:    RangeError,
			Message: fmt.Sprintf("unknown book: %s", name),
			Err:     ErrUnknownBook,
		}
	}
	var out []Verse
	for chapter := 1; chapter <= book.Chapters; chapter++ {
		ch, err := c.loadChapter(book.Slug(), chapter)
		if err != nil {
			return nil, err
		}
		out = append(out, ch.flatten()...)
	}
	return out, nil
}

// LoadAll materializes the entire corpus in canonical order, for callers that
// want the in-memory verse list the matcher and search engine consume.
func (c *Corpus) LoadAll() ([]Verse, error) {
	var out []Verse
	for _, book := range c.table.Books() {
		verses, err := c.LoadBook(book.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, verses...)
	}
	return out, nil
}

func (c *Corpus) loadChapter(slug string, chapter int) (*Chapter, error) {
	cacheKey := fmt.Sprintf("%s:%d", slug, chapter)

	c.mu.RLock()
	if ch, exists := c.chapters[cacheKey]; exists {
		c.mu.RUnlock()
		return ch, nil
	}
	c.mu.RUnlock()

	path := filepath.Join(c.root, "books", slug, fmt.Sprintf("ch%02d.json", chapter))
	data, err := os.ReadFile(path) // nolint: gosec
	if err != nil {
		return nil, &CorpusError{
			Kind:    FileError,
			Message: fmt.Sprintf("failed to read chapter file: %s", path),
			Err:     ErrChapterNotFound,
			Cause:   err,
		}
	}

	var ch Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, &CorpusError{
			Kind:    ParseError,
			Message: fmt.Sprintf("failed to parse chapter file: %s", path),
			Err:     fmt.Errorf("JSON unmarshal failed: %w", err),
			Cause:   err,
		}
	}

	c.mu.Lock()
	c.chapters[cacheKey] = &ch
	c.mu.Unlock()

	return &ch, nil
}
