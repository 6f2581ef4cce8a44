package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	// ErrProfileMissing means the identity store authenticated the user but no
	// account record exists. The gap is surfaced, not repaired.
	ErrProfileMissing = errors.New("account profile missing")
	ErrNotCaregiver   = errors.New("account is not a caregiver")
	ErrInvalidInput   = errors.New("invalid input")
)
