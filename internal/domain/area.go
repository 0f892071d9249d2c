package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Area is a forecast region on lavinprognoser.se.
type Area struct {
	Name string // display name, e.g. "Kebnekaisefjällen"
	Slug string // URL path segment, e.g. "kebnekaisefjallen"
}

var areas = []Area{
	{Name: "Abisko/Riksgränsfjällen", Slug: "abisko-riksgransfjallen"},
	{Name: "Kebnekaisefjällen", Slug: "kebnekaisefjallen"},
	{Name: "Västra Vindelfjällen", Slug: "vastra_vindelfjallen"},
	{Name: "Södra Lapplandsfjällen", Slug: "sodra-lapplandsfjallen"},
	{Name: "Södra Jämtlandsfjällen", Slug: "sodra_jamtlandsfjallen"},
	{Name: "Västra Härjedalsfjällen", Slug: "vastra_harjedalsfjallen"},
}

// Areas returns a copy of the fixed area table.
func Areas() []Area {
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

// ForecastRequest is a parsed chat command. An empty DateQuery means no date was given.
type ForecastRequest struct {
	AreaQuery string
	DateQuery string
}

// ResolvedTarget identifies one forecast page. An empty Date selects the latest forecast.
type ResolvedTarget struct {
	Area Area
	Date string // "2023-3-1"
}

// URL builds the forecast page address below baseURL.
func (t ResolvedTarget) URL(baseURL string) string {
	u := fmt.Sprintf("%s/oversikt-alla-omraden/%s/prognos/",
		strings.TrimRight(baseURL, "/"), url.PathEscape(t.Area.Slug))
	if t.Date != "" {
		u += "?forecastdate=" + url.QueryEscape(t.Date)
	}
	return u
}

// FormatForecastDate renders a date the way the forecastdate parameter expects it.
func FormatForecastDate(d time.Time) string {
	return fmt.Sprintf("%d-%d-%d", d.Year(), int(d.Month()), d.Day())
}
