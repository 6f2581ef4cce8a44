package account

import "time"

type Role string

const (
	RoleCaregiver Role = "caregiver"
	RolePatient   Role = "patient"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCaregiver, RolePatient:
		return true
	default:
		return false
	}
}

// Account is the profile record for an identity. A patient always carries the
// id of its single caregiver; a caregiver's patients live in patient_links.
type Account struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"not null;index"`
	Role        Role      `gorm:"type:varchar(16);not null"`
	CaregiverID *string   `gorm:"type:uuid;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// PatientLink is the relational rendition of the caregiver's patient set.
// The composite key keeps a pair from being inserted twice; a duplicate
// redemption therefore shows up as a second patient account, not a double link.
type PatientLink struct {
	CaregiverID string    `gorm:"type:uuid;primaryKey"`
	PatientID   string    `gorm:"type:uuid;primaryKey"`
	LinkedAt    time.Time `gorm:"autoCreateTime"`
}
