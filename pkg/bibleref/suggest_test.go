package bibleref

import "testing"

func TestSuggestCapAndDedup(t *testing.T) {
	table := Default()

	got := table.Suggest("j")
	if len(got) > MaxSuggestions {
		t.Fatalf("got %d suggestions, cap is %d", len(got), MaxSuggestions)
	}

	// Nine books match the prefix; the cap keeps eight of them.
	candidates := map[string]bool{
		"Joshua": true, "Judges": true, "Job": true, "Jeremiah": true,
		"Joel": true, "Jonah": true, "John": true, "James": true, "Jude": true,
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s.Name] {
			t.Errorf("duplicate suggestion: %s", s.Name)
		}
		seen[s.Name] = true
		if !candidates[s.Name] {
			t.Errorf("unexpected suggestion %s for prefix 'j'", s.Name)
		}
	}
	if len(got) != MaxSuggestions {
		t.Errorf("nine books match 'j'; expected a full list of %d, got %d", MaxSuggestions, len(got))
	}
}

func TestSuggestCanonicalOrderFirst(t *testing.T) {
	table := Default()

	got := table.Suggest("ju")
	if len(got) != 2 {
		t.Fatalf("Suggest(\"ju\") = %d books, want 2", len(got))
	}
	if got[0].Name != "Judges" || got[1].Name != "Jude" {
		t.Errorf("got [%s, %s], want [Judges, Jude]", got[0].Name, got[1].Name)
	}
}

func TestSuggestNumberedBooks(t *testing.T) {
	table := Default()

	got := table.Suggest("1 c")
	if len(got) != 2 {
		t.Fatalf("Suggest(\"1 c\") = %d books, want 2", len(got))
	}
	// 1 Chronicles precedes 1 Corinthians in canonical order.
	if got[0].Name != "1 Chronicles" || got[1].Name != "1 Corinthians" {
		t.Errorf("got [%s, %s]", got[0].Name, got[1].Name)
	}
}

func TestSuggestAliasOnlyMatch(t *testing.T) {
	table := Default()

	got := table.Suggest("apoc")
	if len(got) != 1 || got[0].Name != "Revelation" {
		t.Fatalf("Suggest(\"apoc\") = %+v, want [Revelation]", got)
	}
	if got[0].Slug != "revelation" {
		t.Errorf("slug = %q", got[0].Slug)
	}
}

func TestSuggestEmptyPrefix(t *testing.T) {
	table := Default()

	for _, input := range []string{"", "   ", "."} {
		if got := table.Suggest(input); got != nil {
			t.Errorf("Suggest(%q) = %+v, want nil", input, got)
		}
	}
}

func TestSuggestNoMatch(t *testing.T) {
	if got := Default().Suggest("xyz"); len(got) != 0 {
		t.Errorf("Suggest(\"xyz\") = %+v, want empty", got)
	}
}
