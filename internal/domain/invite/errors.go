package invite

import "errors"

var (
	ErrInviteNotFound = errors.New("invite code not found")
	ErrInviteExpired  = errors.New("invite code expired")
	ErrInviteConsumed = errors.New("invite code already used")
	// ErrLinkingFailed means the identity was created but the account write or
	// caregiver link failed afterwards.
	ErrLinkingFailed = errors.New("account linking failed")
)
