package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────

var (
	// Record errors
	ErrRecordNotFound = errors.New("daily record not found")
	ErrBadDate        = errors.New("date must be in YYYY-MM-DD form")

	// Pool errors
	ErrUnknownPool      = errors.New("unknown xp pool")
	ErrNonPositiveGrant = errors.New("grant amount must be positive")

	// Ledger errors. A dropped ledger write after a successful pool
	// increment is the one failure that can double-count XP, so it is
	// fatal and must be retried, never ignored.
	ErrLedgerWriteFailed = errors.New("award ledger write failed")

	// Claim errors
	ErrUnknownClaimKind = errors.New("unknown claim kind")
	ErrAlreadyClaimed   = errors.New("bonus already claimed this period")
	ErrClaimNotReady    = errors.New("claim requirement not met")
)
