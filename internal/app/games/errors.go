package games

import "errors"

var (
	ErrNoActiveRound = errors.New("no_active_round")
	ErrInvalidHold   = errors.New("invalid_hold")
)
