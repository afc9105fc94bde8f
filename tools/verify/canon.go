package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/verseref/pkg/bibleref"
	"github.com/julianstephens/verseref/pkg/corpus"
)

type CanonCmd struct {
	Canon string `type:"existingdir" help:"The corpus root containing books/ subdirectories" default:"./canon"`
}

func (c *CanonCmd) Run(stop chan bool) error {
	table := bibleref.Default()

	chapterFiles, err := getCanonFiles(c.Canon)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d chapter files\n", len(chapterFiles))

	if len(chapterFiles) == 0 {
		fmt.Println("No chapter files found, skipping validation")
		close(stop)
		return nil
	}

	bookChapterCounts := make(map[string]int)
	var totalErrors int
	for _, path := range chapterFiles {
		chapter, err := validateChapterFile(path, table)
		if err != nil {
			fmt.Printf("Validation error in %s: %v\n", path, err)
			totalErrors++
			continue
		}
		bookChapterCounts[chapter.Book]++
	}

	// A book with any chapters ingested must have all of them.
	for book, found := range bookChapterCounts {
		b, ok := table.Lookup(book)
		if !ok {
			continue // already reported per file
		}
		if found != b.Chapters {
			fmt.Printf("Chapter count mismatch for %s: expected %d, found %d\n", b.Name, b.Chapters, found)
			totalErrors++
		}
	}

	close(stop)

	fmt.Println("========================================")
	fmt.Printf("Total Files Validated: %d\n", len(chapterFiles))
	fmt.Printf("Total Errors Found: %d\n", totalErrors)
	fmt.Println("========================================")

	if totalErrors > 0 {
		return fmt.Errorf("validation completed with errors. Please review the output above for details")
	}
	fmt.Println("Validation completed successfully with no errors")
	return nil
}

func getCanonFiles(canonDir string) ([]string, error) {
	var files []string
	err := filepath.Walk(filepath.Join(canonDir, "books"), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func validateChapterFile(path string, table *bibleref.Table) (*corpus.Chapter, error) {
	content, err := os.ReadFile(path) // nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var chapter corpus.Chapter
	if err := json.Unmarshal(content, &chapter); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if chapter.Work == "" || chapter.Book == "" || chapter.Slug == "" {
		return nil, fmt.Errorf("missing required metadata fields")
	}

	book, ok := table.Lookup(chapter.Book)
	if !ok {
		return nil, fmt.Errorf("unknown book: %s", chapter.Book)
	}
	if book.Name != chapter.Book {
		return nil, fmt.Errorf("book field %q is not the canonical name %q", chapter.Book, book.Name)
	}
	if book.Slug() != chapter.Slug {
		return nil, fmt.Errorf("slug %q does not match canonical slug %q", chapter.Slug, book.Slug())
	}
	if chapter.Chapter < 1 || chapter.Chapter > book.Chapters {
		return nil, fmt.Errorf("chapter number %d out of range for %s (1-%d)", chapter.Chapter, book.Name, book.Chapters)
	}

	if len(chapter.Verses) == 0 {
		return nil, fmt.Errorf("missing verses field")
	}
	previousNum := 0
	for _, verse := range chapter.Verses {
		if verse.V != previousNum+1 {
			return nil, fmt.Errorf("non-contiguous verse numbers: expected %d, got %d", previousNum+1, verse.V)
		}
		if verse.Text == "" {
			return nil, fmt.Errorf("verse %d has empty text", verse.V)
		}
		previousNum = verse.V
	}

	return &chapter, nil
}
