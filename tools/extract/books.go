package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/verseref/pkg/bibleref"
)

// BookInfo is the index entry downstream consumers (the reader frontend,
// ingest tooling) read from books.json.
type BookInfo struct {
	Name      string `json:"name"`
	Abbr      string `json:"abbr"`
	Slug      string `json:"slug"`
	Testament string `json:"testament"`
	Order     int    `json:"order"`
	Chapters  int    `json:"chapters"`
}

type BooksOutput struct {
	Schema int        `json:"schema"`
	Work   string     `json:"work"`
	Books  []BookInfo `json:"books"`
}

// MainBooks writes the canonical book index from the in-code table.
func MainBooks(outDir string) {
	table := bibleref.Default()

	output := BooksOutput{
		Schema: 1,
		Work:   "KJV",
		Books:  []BookInfo{},
	}
	for _, book := range table.Books() {
		output.Books = append(output.Books, BookInfo{
			Name:      book.Name,
			Abbr:      book.Abbr,
			Slug:      book.Slug(),
			Testament: string(book.Testament),
			Order:     book.Order,
			Chapters:  book.Chapters,
		})
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Println("Error marshaling JSON:", err)
		return
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Println("Error creating output directory:", err)
		return
	}
	if err := os.WriteFile(filepath.Join(outDir, "books.json"), jsonData, 0600); err != nil {
		fmt.Println("Error writing JSON file:", err)
		return
	}

	fmt.Println("Successfully created books.json")
}
