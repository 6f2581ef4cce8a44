package account

import (
	"context"
	"errors"

	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(accountdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, acct *accountdomain.Account) error {
	return r.db.WithContext(ctx).Create(acct).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*accountdomain.Account, error) {
	var acct accountdomain.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountdomain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acct, nil
}

func (r *PostgresRepository) AddPatientLink(ctx context.Context, link *accountdomain.PatientLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *PostgresRepository) ListPatients(ctx context.Context, caregiverID string) ([]accountdomain.Account, error) {
	var patients []accountdomain.Account
	err := r.db.WithContext(ctx).
		Table("accounts").
		Joins("join patient_links on patient_links.patient_id = accounts.id").
		Where("patient_links.caregiver_id = ?", caregiverID).
		Order("patient_links.linked_at asc").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PostgresRepository) IsLinked(ctx context.Context, caregiverID, patientID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&accountdomain.PatientLink{}).
		Where("caregiver_id = ? AND patient_id = ?", caregiverID, patientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
