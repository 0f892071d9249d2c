package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/lavinbot/internal/domain"
)

func TestParse(t *testing.T) {
	t.Run("area only", func(t *testing.T) {
		req, err := Parse("Kebnekaisefjällen")
		require.NoError(t, err)
		assert.Equal(t, domain.ForecastRequest{AreaQuery: "Kebnekaisefjällen"}, req)
	})

	t.Run("area and date", func(t *testing.T) {
		req, err := Parse("Kebnekaisefjällen 2023-03-01")
		require.NoError(t, err)
		assert.Equal(t, "Kebnekaisefjällen", req.AreaQuery)
		assert.Equal(t, "2023-03-01", req.DateQuery)
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrEmptyCommand)
	})

	// The two-token limit is enforced; extra tokens are not silently ignored.
	t.Run("three tokens are rejected", func(t *testing.T) {
		_, err := Parse("Västra Vindelfjällen 2023-03-01")
		assert.ErrorIs(t, err, ErrTooManyTokens)
	})

	t.Run("trailing space yields no date", func(t *testing.T) {
		req, err := Parse("Abisko ")
		require.NoError(t, err)
		assert.Equal(t, "Abisko", req.AreaQuery)
		assert.Empty(t, req.DateQuery)
	})
}

func TestResolver_ResolveArea(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name  string
		query string
		slug  string
	}{
		{"exact name", "Kebnekaisefjällen", "kebnekaisefjallen"},
		{"lower case", "kebnekaisefjällen", "kebnekaisefjallen"},
		{"abbreviation", "kebne", "kebnekaisefjallen"},
		{"abisko", "abisko", "abisko-riksgransfjallen"},
		{"jämtland", "jämtland", "sodra_jamtlandsfjallen"},
		{"two matches picks best", "Västra", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, err := r.ResolveArea(tt.query)
			require.NoError(t, err)
			if tt.slug != "" {
				assert.Equal(t, tt.slug, area.Slug)
			} else {
				assert.Contains(t, []string{"vastra_vindelfjallen", "vastra_harjedalsfjallen"}, area.Slug)
			}
		})
	}

	t.Run("no match", func(t *testing.T) {
		_, err := r.ResolveArea("Nonexistentfjällen")
		assert.ErrorIs(t, err, ErrAreaNotFound)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := r.ResolveArea("")
		assert.ErrorIs(t, err, ErrAreaNotFound)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := r.ResolveArea("fjällen")
		assert.ErrorIs(t, err, ErrAmbiguousArea)
	})
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()
	r.now = func() time.Time { return time.Date(2024, time.February, 29, 9, 30, 0, 0, time.UTC) }

	t.Run("dated", func(t *testing.T) {
		target, err := r.Resolve(domain.ForecastRequest{AreaQuery: "Kebnekaisefjällen", DateQuery: "2023-03-01"})
		require.NoError(t, err)
		assert.Equal(t, "kebnekaisefjallen", target.Area.Slug)
		assert.Equal(t, "2023-3-1", target.Date)
		assert.Equal(t,
			"http://www.lavinprognoser.se/oversikt-alla-omraden/kebnekaisefjallen/prognos/?forecastdate=2023-3-1",
			target.URL("http://www.lavinprognoser.se"))
	})

	t.Run("unparseable date falls back to latest", func(t *testing.T) {
		target, err := r.Resolve(domain.ForecastRequest{AreaQuery: "Kebnekaisefjällen", DateQuery: "snart"})
		require.NoError(t, err)
		assert.Empty(t, target.Date)
	})

	t.Run("relative date", func(t *testing.T) {
		target, err := r.Resolve(domain.ForecastRequest{AreaQuery: "Abisko", DateQuery: "imorgon"})
		require.NoError(t, err)
		assert.Equal(t, "2024-3-1", target.Date)
	})

	t.Run("unknown area", func(t *testing.T) {
		_, err := r.Resolve(domain.ForecastRequest{AreaQuery: "Nonexistentfjällen"})
		assert.ErrorIs(t, err, ErrAreaNotFound)
	})
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"2023-03-01", "2023-3-1", true},
		{"2023-3-1", "2023-3-1", true},
		{"2023/03/01", "2023-3-1", true},
		{"20230301", "2023-3-1", true},
		{"01.03.2023", "2023-3-1", true},
		{"idag", "2024-1-1", true},
		{"IDAG", "2024-1-1", true},
		{"igår", "2023-12-31", true},
		{"imorgon", "2024-1-2", true},
		{"", "", false},
		{"2023-13-01", "", false},
		{"tomorrow", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, ok := ParseDate(tt.input, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, domain.FormatForecastDate(d))
			}
		})
	}
}
