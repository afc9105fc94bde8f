package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ExtractedChapter is the raw result of parsing one HTML chapter file.
type ExtractedChapter struct {
	ChapterNumber int
	Verses        []ExtractedVerse
	SourceFile    string
}

// ExtractedVerse is one verse pulled out of the HTML.
type ExtractedVerse struct {
	Number int
	Text   string
}

// Parser extracts verse text from HTML chapter files. The source layout is
// one file per chapter: a <div class="chapterlabel"> holding the chapter
// number, and <span class="verse"> markers whose following text nodes make up
// the verse body until the next marker.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(content []byte, filename string) (*ExtractedChapter, error) {
	doc, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &ExtractedChapter{SourceFile: filename}

	chapterNum, err := p.extractChapterNumber(doc)
	if err != nil {
		return nil, err
	}
	result.ChapterNumber = chapterNum

	result.Verses = p.extractVerses(doc)
	if len(result.Verses) == 0 {
		return nil, fmt.Errorf("no verses found in %s", filename)
	}

	return result, nil
}

func (p *Parser) extractChapterNumber(doc *html.Node) (int, error) {
	var chapter int
	found := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "chapterlabel") {
			text := strings.TrimSpace(textContent(n))
			if num, err := strconv.Atoi(text); err == nil {
				chapter = num
				found = true
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if !found {
		return 0, fmt.Errorf("could not find <div class='chapterlabel'>")
	}
	return chapter, nil
}

// extractVerses walks the document in order, opening a new verse at each
// <span class="verse"> marker and appending every text node that follows to
// the currently open verse.
func (p *Parser) extractVerses(doc *html.Node) []ExtractedVerse {
	var verses []ExtractedVerse
	var current *strings.Builder
	currentNum := 0

	flush := func() {
		if current == nil {
			return
		}
		text := collapseSpace(current.String())
		if text != "" {
			verses = append(verses, ExtractedVerse{Number: currentNum, Text: text})
		}
		current = nil
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "span" && hasClass(n, "verse"):
				flush()
				if fields := strings.Fields(collapseSpace(textContent(n))); len(fields) > 0 {
					if num, err := strconv.Atoi(fields[0]); err == nil {
						currentNum = num
						current = &strings.Builder{}
					}
				}
				return // the marker's own text is the verse number, skip it
			case n.Data == "div" && hasClass(n, "footnote"):
				return // footnote apparatus is not verse text
			}
		}
		if n.Type == html.TextNode && current != nil {
			current.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flush()

	return verses
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func collapseSpace(s string) string {
	// Non-breaking spaces show up after verse markers in the source HTML.
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
