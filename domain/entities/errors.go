package entities

import "errors"

// Business-rule failures returned by the rank engine. These are expected
// outcomes the command layer renders directly; only storage failures are
// treated as real errors.
var (
	ErrUnknownRank       = errors.New("rank is not in the shop catalog")
	ErrAlreadyOwned      = errors.New("rank is already owned")
	ErrNotOwned          = errors.New("rank is not owned")
	ErrInsufficientFunds = errors.New("insufficient coins")
)
