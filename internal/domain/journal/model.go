package journal

import "time"

const DefaultMood = "happy"

type Entry struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	OwnerID   string    `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	Mood      string    `gorm:"not null"`
	Date      string    `gorm:"size:10;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Entry) TableName() string {
	return "journal_entries"
}

type CreateEntryInput struct {
	OwnerID string
	Title   string
	Content string
	Mood    string
	Date    string
}

type UpdateEntryInput struct {
	ID      string
	OwnerID string
	Title   *string
	Content *string
	Mood    *string
	Date    *string
}

type ListFilter struct {
	Query string
}
