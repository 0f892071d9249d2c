package report

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/couchcryptid/lavinbot/internal/domain"
)

const (
	altitudeSelector  = ".AltitudeMeter g g polygon"
	directionSelector = ".DirectionMeter g g polygon"
	needleSelector    = ".SizeMeter-needle"
)

// Problem is one avalanche problem of a forecast.
type Problem struct {
	Title       string
	Altitudes   []domain.AltitudeBand
	Directions  []domain.Direction
	Probability domain.Probability // empty when unknown
	Size        domain.Size        // empty when unknown

	// Extracted for completeness; not rendered.
	Summary string
}

// ParseProblem extracts title and decoded geometry from a problem section.
// Polygons that do not decode are skipped.
func ParseProblem(p ProblemSection) Problem {
	problem := Problem{
		Title:   nthText(p.sel, ".Forecast-title", 0),
		Summary: nthText(p.sel, ".Summary-content", 0),
	}
	if p.sel == nil {
		return problem
	}

	p.sel.Find(altitudeSelector).Each(func(_ int, s *goquery.Selection) {
		if band, ok := domain.DecodeAltitude(s.AttrOr("points", "")); ok {
			problem.Altitudes = append(problem.Altitudes, band)
		}
	})

	p.sel.Find(directionSelector).Each(func(_ int, s *goquery.Selection) {
		if dir, ok := domain.DecodeDirection(s.AttrOr("points", "")); ok {
			problem.Directions = append(problem.Directions, dir)
		}
	})
	// The rose emits sectors counter to reading order.
	slices.Reverse(problem.Directions)

	needles := p.sel.Find(needleSelector)
	if prob, ok := domain.DecodeProbability(needles.Eq(0).AttrOr("transform", "")); ok {
		problem.Probability = prob
	}
	if size, ok := domain.DecodeSize(needles.Eq(1).AttrOr("transform", "")); ok {
		problem.Size = size
	}
	return problem
}

// String renders the problem. The title line is always emitted, even when
// empty; the remaining lines only when they have a value.
func (p Problem) String() string {
	lines := []string{p.Title}
	if len(p.Altitudes) > 0 {
		lines = append(lines, "Höjder: "+upperFirst(joinLabels(p.Altitudes)))
	}
	if len(p.Directions) > 0 {
		lines = append(lines, "Väderstreck: "+joinLabels(p.Directions))
	}
	if p.Probability != "" {
		lines = append(lines, "Sannolikhet: "+string(p.Probability))
	}
	if p.Size != "" {
		lines = append(lines, "Storlek: "+string(p.Size))
	}
	return strings.Join(lines, "\n")
}

func joinLabels[T ~string](labels []T) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
