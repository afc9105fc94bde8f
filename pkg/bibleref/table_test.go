package bibleref

import (
	"strings"
	"testing"
)

func TestAliasCompleteness(t *testing.T) {
	table := Default()
	books := table.Books()

	if len(books) != 66 {
		t.Fatalf("expected 66 books, got %d", len(books))
	}

	for _, book := range books {
		probes := []string{
			book.Name,
			strings.ToUpper(book.Name),
			strings.ToLower(book.Name),
			strings.ReplaceAll(book.Name, " ", ""),
			book.Abbr,
			strings.ToLower(book.Abbr),
			strings.ReplaceAll(book.Abbr, " ", ""),
		}
		for _, probe := range probes {
			resolved, ok := table.Lookup(probe)
			if !ok {
				t.Errorf("%s: probe %q did not resolve", book.Name, probe)
				continue
			}
			if resolved.Name != book.Name {
				t.Errorf("probe %q resolved to %s, want %s", probe, resolved.Name, book.Name)
			}
		}
	}
}

func TestSlugUniqueness(t *testing.T) {
	books := Default().Books()

	seen := make(map[string]string, len(books))
	for _, book := range books {
		slug := book.Slug()
		if prev, dup := seen[slug]; dup {
			t.Errorf("slug collision: %s and %s both derive %q", prev, book.Name, slug)
		}
		seen[slug] = book.Name
	}

	if len(seen) != 66 {
		t.Errorf("expected 66 distinct slugs, got %d", len(seen))
	}
}

func TestSlugDerivation(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Song of Solomon", "song-of-solomon"},
		{"1 Corinthians", "1-corinthians"},
		{"Jude", "jude"},
	}

	for _, tt := range tests {
		if got := SlugFor(tt.name); got != tt.want {
			t.Errorf("SlugFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCuratedAliases(t *testing.T) {
	table := Default()

	tests := []struct {
		alias string
		want  string
	}{
		{"ge", "Genesis"},
		{"exo", "Exodus"},
		{"ps", "Psalms"},
		{"psa", "Psalms"},
		{"psalm", "Psalms"},
		{"Song of Songs", "Song of Solomon"},
		{"apocalypse", "Revelation"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			book, ok := table.Lookup(tt.alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", tt.alias)
			}
			if book.Name != tt.want {
				t.Errorf("alias %q resolved to %s, want %s", tt.alias, book.Name, tt.want)
			}
		})
	}
}

func TestLookupMiss(t *testing.T) {
	table := Default()

	for _, probe := range []string{"", "faith hope love", "xyzzy", "2024"} {
		if book, ok := table.Lookup(probe); ok {
			t.Errorf("probe %q unexpectedly resolved to %s", probe, book.Name)
		}
	}
}

func TestCuratedAliasUnknownBookDropped(t *testing.T) {
	books := []Book{
		{Name: "Jude", Abbr: "Jud", Testament: NewTestament, Order: 1, Chapters: 1},
	}
	curated := []Alias{
		{"epistle", "Laodiceans"}, // not in the table; must be a silent no-op
	}

	table, err := NewTable(books, curated)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	if _, ok := table.Lookup("epistle"); ok {
		t.Error("alias for unknown book should not resolve")
	}
	if _, ok := table.Lookup("jude"); !ok {
		t.Error("canonical name should still resolve")
	}
}

func TestCanonicalAliasNeverShadowed(t *testing.T) {
	books := []Book{
		{Name: "John", Abbr: "Jhn", Testament: NewTestament, Order: 1, Chapters: 21},
		{Name: "Jude", Abbr: "Jud", Testament: NewTestament, Order: 2, Chapters: 1},
	}
	curated := []Alias{
		{"john", "Jude"}, // collides with a canonical name; first registration wins
	}

	table, err := NewTable(books, curated)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	book, ok := table.Lookup("john")
	if !ok {
		t.Fatal("canonical name did not resolve")
	}
	if book.Name != "John" {
		t.Errorf("canonical alias was shadowed: got %s", book.Name)
	}
}

func TestNewTableRejectsBadData(t *testing.T) {
	tests := []struct {
		name  string
		books []Book
	}{
		{
			name: "duplicate name",
			books: []Book{
				{Name: "John", Abbr: "Jhn", Chapters: 21},
				{Name: "John", Abbr: "Jn2", Chapters: 5},
			},
		},
		{
			name: "chapter count out of range",
			books: []Book{
				{Name: "John", Abbr: "Jhn", Chapters: 200},
			},
		},
		{
			name: "slug collision",
			books: []Book{
				{Name: "Song of Solomon", Abbr: "Song", Chapters: 8},
				{Name: "song OF solomon", Abbr: "SoS", Chapters: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.books, nil); err == nil {
				t.Error("expected construction error, got nil")
			}
		})
	}
}
