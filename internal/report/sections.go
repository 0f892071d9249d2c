// Package report turns a lavinprognoser.se forecast page into a condensed
// Swedish text report.
package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CSS classes used by the forecast page.
const (
	containerSelector = ".App-container"
	problemSelector   = ".Topic-container"
)

// HeadSection is the overview block at the top of the forecast page.
type HeadSection struct {
	sel  *goquery.Selection
	page *goquery.Selection
}

// ProblemSection is one avalanche problem block.
type ProblemSection struct {
	sel *goquery.Selection
}

// Sections holds the parts of a forecast page that end up in the report.
type Sections struct {
	Head     HeadSection
	Problems []ProblemSection
}

// ExtractSections splits a forecast page into its head and problem sections.
// The head is the first App-container; the second one (observations and
// weather) is not part of the report. Problems are collected page-wide in
// document order.
func ExtractSections(doc *goquery.Document) Sections {
	page := doc.Selection
	sections := Sections{
		Head: HeadSection{
			sel:  page.Find(containerSelector).Eq(0),
			page: page,
		},
	}
	page.Find(problemSelector).Each(func(_ int, s *goquery.Selection) {
		sections.Problems = append(sections.Problems, ProblemSection{sel: s})
	})
	return sections
}

// nthText returns the whitespace-normalized text of the i-th match of
// selector below sel, or "" when there is no such element.
func nthText(sel *goquery.Selection, selector string, i int) string {
	if sel == nil {
		return ""
	}
	return normalizeSpace(sel.Find(selector).Eq(i).Text())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
