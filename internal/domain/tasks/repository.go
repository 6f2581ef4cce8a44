package tasks

import "context"

type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	ListByCaregiver(ctx context.Context, caregiverID string) ([]Task, error)
	ListByPatient(ctx context.Context, patientID string) ([]Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}
