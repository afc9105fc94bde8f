package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/verseref/pkg/bibleref"
	"github.com/julianstephens/verseref/pkg/corpus"
)

func main() {
	book := flag.String("book", "", "Book name or slug (e.g. genesis, jude) or 'all' to process every book")
	rawDir := flag.String("raw", "./raw/html", "Directory holding raw HTML chapter files, one subdirectory per book slug")
	outDir := flag.String("out", "./canon", "Output corpus root")
	flag.Parse()

	if *book == "" {
		fmt.Println("Usage: go run ./tools/ingest -book=SLUG")
		fmt.Println("Example: go run ./tools/ingest -book=proverbs")
		fmt.Println("         go run ./tools/ingest -book=all")
		os.Exit(1)
	}

	table := bibleref.Default()

	var books []bibleref.Book
	if *book == "all" {
		books = table.Books()
	} else {
		b, ok := table.Lookup(*book)
		if !ok {
			// Slugs are not aliases; resolve them against the table directly.
			for _, cand := range table.Books() {
				if cand.Slug() == *book {
					b, ok = &cand, true
					break
				}
			}
		}
		if !ok {
			fmt.Printf("Error: unknown book %q\n", *book)
			os.Exit(1)
		}
		books = []bibleref.Book{*b}
	}

	parser := NewParser()
	totalProcessed := 0
	totalSkipped := 0
	totalErrors := 0

	for _, b := range books {
		processed, skipped, errs := processBook(parser, b, *rawDir, *outDir)
		totalProcessed += processed
		totalSkipped += skipped
		totalErrors += errs
	}

	fmt.Printf("\n========================================\n")
	fmt.Printf("Total Files Processed: %d\n", totalProcessed)
	fmt.Printf("Total Files Skipped: %d\n", totalSkipped)
	fmt.Printf("Total Errors: %d\n", totalErrors)
	fmt.Printf("========================================\n")
	if totalErrors > 0 {
		os.Exit(1)
	}
}

// processBook converts every raw chapter file of one book into its corpus
// JSON form. Missing chapter files are skipped, not fatal: raw sources arrive
// book by book.
func processBook(parser *Parser, book bibleref.Book, rawDir, outDir string) (processed, skipped, errs int) {
	slug := book.Slug()

	for chapter := 1; chapter <= book.Chapters; chapter++ {
		filename := fmt.Sprintf("ch%02d.htm", chapter)
		htmlPath := filepath.Join(rawDir, slug, filename)

		content, err := os.ReadFile(htmlPath) // nolint: gosec
		if err != nil {
			skipped++
			continue
		}
		processed++

		extracted, err := parser.Parse(content, filename)
		if err != nil {
			fmt.Printf("Error parsing %s: %v\n", htmlPath, err)
			errs++
			continue
		}
		if extracted.ChapterNumber != chapter {
			fmt.Printf("Error in %s: chapter label %d does not match filename\n", htmlPath, extracted.ChapterNumber)
			errs++
			continue
		}

		ch := corpus.Chapter{
			Work:    "KJV",
			Book:    book.Name,
			Slug:    slug,
			Chapter: chapter,
		}
		for _, v := range extracted.Verses {
			ch.Verses = append(ch.Verses, corpus.ChapterVerse{V: v.Number, Text: v.Text})
		}

		if err := writeChapter(outDir, &ch); err != nil {
			fmt.Printf("Error writing %s chapter %d: %v\n", book.Name, chapter, err)
			errs++
		}
	}
	return processed, skipped, errs
}

func writeChapter(outDir string, ch *corpus.Chapter) error {
	bookDir := filepath.Join(outDir, "books", ch.Slug)
	if err := os.MkdirAll(bookDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(ch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	path := filepath.Join(bookDir, fmt.Sprintf("ch%02d.json", ch.Chapter))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
