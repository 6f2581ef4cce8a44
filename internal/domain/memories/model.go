package memories

import "time"

// Memory is a shared photo record. The image itself lives in external storage;
// only its URL is kept here.
type Memory struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	CaregiverID string    `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"not null"`
	ImageURL    string    `gorm:"not null;column:image_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
