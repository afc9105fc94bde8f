package main

import (
	"fmt"
	"strings"

	"github.com/julianstephens/verseref/pkg/bibleref"
)

type TableCmd struct{}

// Run re-checks the book table invariants the library relies on: every
// canonical name and abbreviation resolves to its own book (in any case, with
// or without whitespace), and the 66 derived slugs are pairwise distinct.
func (c *TableCmd) Run(stop chan bool) error {
	table := bibleref.Default()
	books := table.Books()

	var totalErrors int

	if len(books) != 66 {
		fmt.Printf("Book table error: expected 66 books, found %d\n", len(books))
		totalErrors++
	}

	seenSlug := make(map[string]string)
	for _, book := range books {
		for _, probe := range []string{
			book.Name,
			strings.ToUpper(book.Name),
			strings.ReplaceAll(book.Name, " ", ""),
			book.Abbr,
			strings.ToLower(book.Abbr),
		} {
			resolved, ok := table.Lookup(probe)
			if !ok {
				fmt.Printf("Alias error: %q does not resolve\n", probe)
				totalErrors++
				continue
			}
			if resolved.Name != book.Name {
				fmt.Printf("Alias error: %q resolves to %s, want %s\n", probe, resolved.Name, book.Name)
				totalErrors++
			}
		}

		slug := book.Slug()
		if prev, dup := seenSlug[slug]; dup {
			fmt.Printf("Slug collision: %s and %s both derive %q\n", prev, book.Name, slug)
			totalErrors++
		}
		seenSlug[slug] = book.Name
	}

	close(stop)

	fmt.Println("========================================")
	fmt.Printf("Books Checked: %d\n", len(books))
	fmt.Printf("Aliases Registered: %d\n", len(table.Aliases()))
	fmt.Printf("Total Errors Found: %d\n", totalErrors)
	fmt.Println("========================================")

	if totalErrors > 0 {
		return fmt.Errorf("table validation failed with %d errors", totalErrors)
	}
	fmt.Println("Table validation completed successfully")
	return nil
}
