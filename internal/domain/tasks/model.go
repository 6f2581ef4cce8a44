package tasks

import "time"

type Task struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	CaregiverID string    `gorm:"type:uuid;not null;index"`
	PatientID   string    `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type CreateTaskInput struct {
	CaregiverID string
	PatientID   string
	Title       string
	Description string
}
