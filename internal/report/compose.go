package report

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var (
	spacesAfterNewline  = regexp.MustCompile(`\n +`)
	spacesBeforeNewline = regexp.MustCompile(` +\n`)
)

// Compose joins the head and problem texts into the final report. Empty
// fragments are dropped, the rest separated by a blank line, and spaces
// around line breaks are stripped.
func Compose(head string, problems []string) string {
	text := joinNonEmpty("\n\n", head, joinNonEmpty("\n\n", problems...))
	text = spacesAfterNewline.ReplaceAllString(text, "\n")
	return spacesBeforeNewline.ReplaceAllString(text, "\n")
}

// Build renders the report for an already parsed forecast page.
func Build(doc *goquery.Document) (string, int) {
	sections := ExtractSections(doc)

	problems := make([]string, 0, len(sections.Problems))
	for _, p := range sections.Problems {
		problems = append(problems, ParseProblem(p).String())
	}
	return Compose(ParseHead(sections.Head).String(), problems), len(sections.Problems)
}

// Render parses an HTML forecast page and renders its report. It also
// returns the number of problem sections found.
func Render(r io.Reader) (string, int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", 0, fmt.Errorf("parse forecast page: %w", err)
	}
	text, problems := Build(doc)
	return text, problems, nil
}

// RenderBytes is Render over an in-memory page.
func RenderBytes(page []byte) (string, int, error) {
	return Render(bytes.NewReader(page))
}
