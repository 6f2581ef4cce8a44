package memories

import (
	"context"
	"errors"

	memoriesdomain "github.com/harshitajain06/Memorylane/internal/domain/memories"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, memory *memoriesdomain.Memory) error {
	return r.db.WithContext(ctx).Create(memory).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*memoriesdomain.Memory, error) {
	var memory memoriesdomain.Memory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&memory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memoriesdomain.ErrMemoryNotFound
		}
		return nil, err
	}
	return &memory, nil
}

func (r *PostgresRepository) ListByCaregiver(ctx context.Context, caregiverID string) ([]memoriesdomain.Memory, error) {
	var result []memoriesdomain.Memory
	err := r.db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Order("created_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&memoriesdomain.Memory{}, "id = ?", id).Error
}
