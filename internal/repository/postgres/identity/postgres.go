package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	identitydomain "github.com/harshitajain06/Memorylane/internal/domain/identity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PostgresProvider is the default identity store: bcrypt-hashed credentials
// and bearer sessions in the application database.
type PostgresProvider struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresProvider {
	return &PostgresProvider{db: db}
}

func (p *PostgresProvider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	var count int64
	if err := p.db.WithContext(ctx).Model(&identitydomain.Identity{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", identitydomain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	ident := identitydomain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := p.db.WithContext(ctx).Create(&ident).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", identitydomain.ErrEmailTaken
		}
		return "", err
	}

	return ident.ID, nil
}

func (p *PostgresProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	var ident identitydomain.Identity
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&ident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", identitydomain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)); err != nil {
		return "", identitydomain.ErrInvalidCredentials
	}

	return ident.ID, nil
}

func (p *PostgresProvider) DeleteIdentity(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&identitydomain.Identity{}, "id = ?", id).Error
}

func (p *PostgresProvider) CreateSession(ctx context.Context, session *identitydomain.Session) error {
	return p.db.WithContext(ctx).Create(session).Error
}

func (p *PostgresProvider) GetSession(ctx context.Context, token string) (*identitydomain.Session, error) {
	var session identitydomain.Session
	if err := p.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identitydomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (p *PostgresProvider) DeleteSession(ctx context.Context, token string) error {
	return p.db.WithContext(ctx).Delete(&identitydomain.Session{}, "token = ?", token).Error
}
