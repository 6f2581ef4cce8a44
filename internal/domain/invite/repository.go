package invite

import (
	"context"
	"time"
)

type Repository interface {
	// Put writes the invite, overwriting any existing record with the same
	// code. Codes are not collision-checked before writing.
	Put(ctx context.Context, inv *Invite) error
	GetByCode(ctx context.Context, code string) (*Invite, error)
	MarkConsumed(ctx context.Context, code string, at time.Time) error
}
