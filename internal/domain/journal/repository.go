package journal

import "context"

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, ownerID, id string) (*Entry, error)
	ListByOwner(ctx context.Context, ownerID string, filter ListFilter) ([]Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, ownerID, id string) error
}
