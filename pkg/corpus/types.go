package corpus

// ChapterVerse is a single verse as stored inside a chapter file.
type ChapterVerse struct {
	V    int    `json:"v"`
	Text string `json:"text"`
}

// Chapter is the on-disk unit of the corpus: one JSON file per chapter under
// books/<slug>/chNN.json.
type Chapter struct {
	Work    string         `json:"work"`
	Book    string         `json:"book"`
	Slug    string         `json:"slug"`
	Chapter int            `json:"chapter"`
	Verses  []ChapterVerse `json:"verses"`
}

// Verse is the flat record the matcher and search engine operate on. Book
// holds the canonical name, never a slug or alias.
type Verse struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	V       int    `json:"v"`
	Text    string `json:"text"`
}

func (c *Chapter) flatten() []Verse {
	out := make([]Verse, len(c.Verses))
	for i, v := range c.Verses {
		out[i] = Verse{Book: c.Book, Chapter: c.Chapter, V: v.V, Text: v.Text}
	}
	return out
}
