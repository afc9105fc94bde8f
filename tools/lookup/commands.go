package main

import (
	"fmt"

	"github.com/julianstephens/verseref/pkg/bibleref"
	"github.com/julianstephens/verseref/pkg/corpus"
	"github.com/julianstephens/verseref/pkg/search"
)

type DetectCmd struct {
	Query string `arg:"" help:"The raw query to classify"`
}

func (c *DetectCmd) Run() error {
	switch d := bibleref.Default().Detect(c.Query).(type) {
	case bibleref.Exact:
		fmt.Println("exact reference:")
		printRef(d.Ref)
	case bibleref.Suggestions:
		fmt.Printf("%d suggestion(s):\n", len(d.Books))
		for _, s := range d.Books {
			fmt.Printf("  %s (%s, %d chapters)\n", s.Name, s.Abbr, s.Chapters)
		}
	case bibleref.NoMatch:
		fmt.Println("not a reference; treat as full-text search")
	}
	return nil
}

type SuggestCmd struct {
	Prefix string `arg:"" help:"Book name prefix"`
}

func (c *SuggestCmd) Run() error {
	books := bibleref.Default().Suggest(c.Prefix)
	if len(books) == 0 {
		fmt.Println("no matching books")
		return nil
	}
	for _, s := range books {
		fmt.Printf("%-20s %-8s %s\n", s.Name, s.Abbr, s.Slug)
	}
	return nil
}

type SearchCmd struct {
	Query string `arg:"" help:"The raw query"`
	Canon string `type:"existingdir" help:"The corpus root" default:"./canon"`
	Limit int    `help:"Maximum full-text results" default:"10"`
}

func (c *SearchCmd) Run() error {
	table := bibleref.Default()
	corp, err := corpus.Open(c.Canon, table)
	if err != nil {
		return err
	}
	verses, err := corp.LoadAll()
	if err != nil {
		return err
	}

	resolver := search.NewResolver(table, verses)
	resp := resolver.Query(c.Query)

	switch resp.Kind {
	case search.KindReference:
		printRef(*resp.Ref)
		for _, v := range resp.Verses {
			fmt.Printf("  %s %d:%d  %s\n", v.Book, v.Chapter, v.V, v.Text)
		}
		if len(resp.Verses) == 0 {
			fmt.Println("  (no matching verses in corpus)")
		}
	case search.KindSuggestions:
		fmt.Printf("%d suggestion(s):\n", len(resp.Suggestions))
		for _, s := range resp.Suggestions {
			fmt.Printf("  %s (%s)\n", s.Name, s.Abbr)
		}
	case search.KindSearch:
		if len(resp.Matches) == 0 {
			fmt.Println("no results")
			return nil
		}
		if c.Limit > 0 && len(resp.Matches) > c.Limit {
			resp.Matches = resp.Matches[:c.Limit]
		}
		for _, m := range resp.Matches {
			fmt.Printf("%.2f  %s %d:%d  %s\n", m.Score, m.Verse.Book, m.Verse.Chapter, m.Verse.V, m.Verse.Text)
		}
	}
	return nil
}

func printRef(ref bibleref.Reference) {
	out := ref.Book
	if ref.Chapter != 0 {
		out = fmt.Sprintf("%s %d", out, ref.Chapter)
		if ref.Verse != 0 {
			out = fmt.Sprintf("%s:%d", out, ref.Verse)
			if ref.VerseEnd != 0 {
				out = fmt.Sprintf("%s-%d", out, ref.VerseEnd)
			}
		}
	}
	fmt.Printf("  %s  [%s]  /read/%s", out, ref.Testament, ref.Slug)
	if ref.Chapter != 0 {
		fmt.Printf("/%d", ref.Chapter)
		if ref.Verse != 0 {
			fmt.Printf("#verse-%d", ref.Verse)
		}
	}
	fmt.Println()
}
