package identity

import "time"

// Identity is a credential record. It is deliberately separate from the
// account profile: the two stores can drift (an identity may exist without a
// profile) and the login path has to surface that gap rather than hide it.
type Identity struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null;column:password_hash"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Identity) TableName() string {
	return "identities"
}

type Session struct {
	Token     string    `gorm:"primaryKey"`
	AccountID string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
