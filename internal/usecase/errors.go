package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoGameweekData      = errors.New("no gameweek data")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
