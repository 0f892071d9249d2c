package report

import (
	"strconv"
	"strings"
)

// notAssessed is the danger label shown when no danger level was issued.
const notAssessed = "Ej bedömd lavinfara"

// Head is the overview of a forecast.
type Head struct {
	Title       string
	Published   string
	Expires     string
	DangerScale string // "1".."5", empty when suppressed
	Danger      string
	Trend       string
	TrendTitle  string

	// Extracted for completeness; not rendered.
	SummaryTitle string
	Text         string
	Summary      string
}

// ParseHead extracts the overview fields from the head section. The danger
// and trend labels are looked up page-wide since the page does not always
// nest them inside the head container.
func ParseHead(h HeadSection) Head {
	head := Head{
		Title:        nthText(h.sel, ".Forecast-title", 0),
		Published:    nthText(h.sel, ".Forecast-date", 0),
		Expires:      nthText(h.sel, ".Forecast-date", 1),
		DangerScale:  nthText(h.sel, ".Symbol-label", 0),
		Danger:       nthText(h.page, ".Forecast-risk", 0),
		Trend:        nthText(h.page, ".Forecast-risk", 1),
		SummaryTitle: nthText(h.sel, ".Summary-title", 0),
		TrendTitle:   nthText(h.sel, ".Summary-title", 1),
		Text:         nthText(h.sel, ".Forecast-text", 0),
		Summary:      nthText(h.sel, ".Summary-content", 0),
	}
	if head.Danger == notAssessed {
		head.DangerScale = ""
	}
	return head
}

// String renders the head as report lines. Empty fields produce no line.
func (h Head) String() string {
	var danger string
	if n, ok := scaleNumber(h.DangerScale); ok {
		danger = strconv.Itoa(n) + ". "
	}
	if h.Danger != "" {
		danger += h.Danger + "\n"
	}

	return joinNonEmpty("\n",
		suffixed(h.Title, "\n"),
		h.Published,
		suffixed(h.Expires, "\n"),
		danger,
		suffixed(h.TrendTitle, ":"),
		h.Trend,
	)
}

// scaleNumber reads the leading integer of the danger scale label.
func scaleNumber(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func suffixed(s, suffix string) string {
	if s == "" {
		return ""
	}
	return s + suffix
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
