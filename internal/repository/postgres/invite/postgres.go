package invite

import (
	"context"
	"errors"
	"time"

	invitedomain "github.com/harshitajain06/Memorylane/internal/domain/invite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Put upserts by code: a colliding code silently replaces the older invite.
func (r *PostgresRepository) Put(ctx context.Context, inv *invitedomain.Invite) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).
		Create(inv).Error
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*invitedomain.Invite, error) {
	var inv invitedomain.Invite
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invitedomain.ErrInviteNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PostgresRepository) MarkConsumed(ctx context.Context, code string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&invitedomain.Invite{}).
		Where("code = ?", code).
		Update("consumed_at", at).Error
}
