package journal

import (
	"context"
	"errors"

	journaldomain "github.com/harshitajain06/Memorylane/internal/domain/journal"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *journaldomain.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, id string) (*journaldomain.Entry, error) {
	var entry journaldomain.Entry
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, journaldomain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, filter journaldomain.ListFilter) ([]journaldomain.Entry, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var result []journaldomain.Entry
	if err := query.Order("date desc, created_at desc").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, entry *journaldomain.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).Delete(&journaldomain.Entry{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return journaldomain.ErrEntryNotFound
	}
	return nil
}
