package main

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const ManifestFileName = "SHA256MANIFEST"

type ManifestCmd struct {
	Raw string `type:"existingdir" help:"The raw HTML source directory" default:"./raw"`
}

func (m *ManifestCmd) Run(stop chan bool) error {
	manifestPath := filepath.Join(m.Raw, ManifestFileName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return fmt.Errorf("manifest file not found in raw directory: %s", manifestPath)
	}

	file, err := os.Open(manifestPath) // nolint: gosec
	if err != nil {
		return fmt.Errorf("failed to open manifest file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Printf("Error closing manifest file: %v\n", err)
		}
	}()

	var totalFiles int
	var mismatches int
	var errors int

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Manifest line: "hash  filepath"
		parts := strings.Fields(line)
		if len(parts) < 2 {
			fmt.Printf("Manifest error: invalid line format - %s\n", line)
			errors++
			continue
		}

		expectedHash := parts[0]
		filePath := strings.Join(parts[1:], " ") // paths may contain spaces
		if !filepath.IsAbs(filePath) {
			filePath = filepath.Join(m.Raw, filePath)
		}

		totalFiles++

		fileContent, err := os.ReadFile(filePath) // nolint: gosec
		if err != nil {
			fmt.Printf("Manifest error: cannot read file %s - %v\n", filePath, err)
			errors++
			continue
		}

		actualHash := fmt.Sprintf("%x", sha256.Sum256(fileContent))
		if actualHash != expectedHash {
			fmt.Printf("Hash mismatch for %s: expected %s, got %s\n", filePath, expectedHash, actualHash)
			mismatches++
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading manifest file: %w", err)
	}

	close(stop)

	fmt.Println("========================================")
	fmt.Printf("Total Files Verified: %d\n", totalFiles)
	fmt.Printf("Hash Mismatches: %d\n", mismatches)
	fmt.Printf("Read Errors: %d\n", errors)
	fmt.Println("========================================")

	if mismatches > 0 || errors > 0 {
		return fmt.Errorf("manifest validation failed: %d mismatches, %d errors", mismatches, errors)
	}

	fmt.Println("Manifest validation completed successfully")
	return nil
}
