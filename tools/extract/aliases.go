package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/verseref/pkg/bibleref"
)

// AliasesOutput maps every registered alias to its canonical book name.
type AliasesOutput map[string]string

// MainAliases writes the full alias index so non-Go consumers can resolve
// book names without reimplementing the table.
func MainAliases(outDir string) {
	table := bibleref.Default()

	aliases := make(AliasesOutput)
	for _, a := range table.Aliases() {
		aliases[a.Alias] = a.Book
	}

	jsonData, err := json.MarshalIndent(aliases, "", "  ")
	if err != nil {
		fmt.Println("Error marshaling JSON:", err)
		return
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Println("Error creating output directory:", err)
		return
	}
	if err := os.WriteFile(filepath.Join(outDir, "aliases.json"), jsonData, 0600); err != nil {
		fmt.Println("Error writing aliases.json:", err)
		return
	}

	fmt.Println("Successfully created aliases.json")
}
