// Package command interprets chat commands of the form "<area> [<date>]".
package command

import (
	"errors"
	"strings"

	"github.com/couchcryptid/lavinbot/internal/domain"
)

var (
	ErrEmptyCommand  = errors.New("empty command")
	ErrTooManyTokens = errors.New("command has more than two tokens")
	ErrAreaNotFound  = errors.New("no area matches")
	ErrAmbiguousArea = errors.New("area query matches too many areas")
)

// maxTokens is the area query plus an optional date.
const maxTokens = 2

// Parse splits a command on single spaces into an area query and an optional
// date query. Commands with more than two tokens are rejected.
func Parse(text string) (domain.ForecastRequest, error) {
	if text == "" {
		return domain.ForecastRequest{}, ErrEmptyCommand
	}
	tokens := strings.Split(text, " ")
	if len(tokens) > maxTokens {
		return domain.ForecastRequest{}, ErrTooManyTokens
	}

	req := domain.ForecastRequest{AreaQuery: tokens[0]}
	if len(tokens) == maxTokens {
		req.DateQuery = tokens[1]
	}
	return req, nil
}
