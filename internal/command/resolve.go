package command

import (
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/couchcryptid/lavinbot/internal/domain"
)

// maxMatches is the number of fuzzy matches still accepted; the best one wins.
const maxMatches = 2

// areaNames adapts an area table to fuzzy.Source.
type areaNames []domain.Area

func (a areaNames) String(i int) string { return a[i].Name }
func (a areaNames) Len() int            { return len(a) }

// Resolver turns forecast requests into forecast page targets.
type Resolver struct {
	areas areaNames
	now   func() time.Time
}

// NewResolver creates a Resolver over the fixed area table using the domain clock.
func NewResolver() *Resolver {
	return &Resolver{
		areas: areaNames(domain.Areas()),
		now:   domain.Now,
	}
}

// ResolveArea fuzzy-matches query against the area names, case-insensitively,
// and returns the highest ranked area.
func (r *Resolver) ResolveArea(query string) (domain.Area, error) {
	if query == "" {
		return domain.Area{}, fmt.Errorf("%w: empty query", ErrAreaNotFound)
	}
	matches := fuzzy.FindFrom(query, r.areas)
	switch {
	case len(matches) == 0:
		return domain.Area{}, fmt.Errorf("%w: %q", ErrAreaNotFound, query)
	case len(matches) > maxMatches:
		return domain.Area{}, fmt.Errorf("%w: %q matches %d areas", ErrAmbiguousArea, query, len(matches))
	}
	return r.areas[matches[0].Index], nil
}

// Resolve resolves the area and date of a request. An unparseable date is
// dropped so the latest forecast is used.
func (r *Resolver) Resolve(req domain.ForecastRequest) (domain.ResolvedTarget, error) {
	area, err := r.ResolveArea(req.AreaQuery)
	if err != nil {
		return domain.ResolvedTarget{}, err
	}

	target := domain.ResolvedTarget{Area: area}
	if d, ok := ParseDate(req.DateQuery, r.now()); ok {
		target.Date = domain.FormatForecastDate(d)
	}
	return target, nil
}
