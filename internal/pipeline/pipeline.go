package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/lavinbot/internal/command"
	"github.com/couchcryptid/lavinbot/internal/domain"
	"github.com/couchcryptid/lavinbot/internal/observability"
	"github.com/couchcryptid/lavinbot/internal/report"
)

// TargetResolver turns a parsed command into a forecast page target.
type TargetResolver interface {
	Resolve(req domain.ForecastRequest) (domain.ResolvedTarget, error)
}

// ReadinessChecker reports whether a dependency is usable.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Pipeline runs one chat command through parse, resolve, fetch and render.
type Pipeline struct {
	resolver TargetResolver
	fetcher  domain.PageFetcher
	baseURL  string
	ready    ReadinessChecker
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline. ready may be nil when there is nothing to check.
func New(resolver TargetResolver, fetcher domain.PageFetcher, baseURL string, ready ReadinessChecker, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		fetcher:  fetcher,
		baseURL:  baseURL,
		ready:    ready,
		logger:   logger.With("component", "pipeline"),
		metrics:  metrics,
	}
}

// Resolve parses a command and resolves its forecast page target.
func (p *Pipeline) Resolve(text string) (domain.ResolvedTarget, error) {
	req, err := command.Parse(text)
	if err != nil {
		return domain.ResolvedTarget{}, err
	}
	return p.resolver.Resolve(req)
}

// Run produces the report for a command, or the error that prevented it.
func (p *Pipeline) Run(ctx context.Context, text string) (string, error) {
	target, err := p.Resolve(text)
	if err != nil {
		return "", err
	}

	url := target.URL(p.baseURL)
	p.logger.Debug("fetching forecast", "area", target.Area.Name, "date", target.Date, "url", url)

	page, err := p.fetcher.FetchPage(ctx, url)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	out, problems, err := report.RenderBytes(page)
	if err != nil {
		return "", err
	}
	p.metrics.ProblemsPerReport.Observe(float64(problems))
	return out, nil
}

// Handle is the chat boundary: every failure collapses to an empty report.
// Callers cannot tell a failed request from a forecast with nothing to say.
func (p *Pipeline) Handle(ctx context.Context, text string) string {
	out, err := p.Run(ctx, text)
	outcome := classify(err)
	p.metrics.RequestsTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		p.logger.Warn("report request failed", "command", text, "outcome", outcome, "error", err)
		return ""
	}
	p.logger.Info("report served", "command", text, "bytes", len(out))
	return out
}

// CheckReadiness reports whether the pipeline's dependencies are reachable.
func (p *Pipeline) CheckReadiness(ctx context.Context) error {
	if p.ready == nil {
		return nil
	}
	return p.ready.CheckReadiness(ctx)
}

// FetchError wraps a failed forecast page download.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func classify(err error) string {
	var fetchErr *FetchError
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, command.ErrEmptyCommand), errors.Is(err, command.ErrTooManyTokens):
		return observability.OutcomeBadCommand
	case errors.Is(err, command.ErrAreaNotFound), errors.Is(err, command.ErrAmbiguousArea):
		return observability.OutcomeUnknownArea
	case errors.As(err, &fetchErr):
		return observability.OutcomeFetchFailed
	default:
		return observability.OutcomeRenderFailed
	}
}
