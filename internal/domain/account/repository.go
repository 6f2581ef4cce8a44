package account

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, acct *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	AddPatientLink(ctx context.Context, link *PatientLink) error
	ListPatients(ctx context.Context, caregiverID string) ([]Account, error)
	IsLinked(ctx context.Context, caregiverID, patientID string) (bool, error)
}
