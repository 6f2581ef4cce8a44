package tasks

import (
	"context"
	"errors"

	tasksdomain "github.com/harshitajain06/Memorylane/internal/domain/tasks"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *tasksdomain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*tasksdomain.Task, error) {
	var task tasksdomain.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasksdomain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *PostgresRepository) ListByCaregiver(ctx context.Context, caregiverID string) ([]tasksdomain.Task, error) {
	var result []tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Order("created_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListByPatient(ctx context.Context, patientID string) ([]tasksdomain.Task, error) {
	var result []tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	return r.db.WithContext(ctx).
		Model(&tasksdomain.Task{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&tasksdomain.Task{}, "id = ?", id).Error
}
