package memories

import "context"

type Repository interface {
	Create(ctx context.Context, memory *Memory) error
	GetByID(ctx context.Context, id string) (*Memory, error)
	ListByCaregiver(ctx context.Context, caregiverID string) ([]Memory, error)
	Delete(ctx context.Context, id string) error
}
