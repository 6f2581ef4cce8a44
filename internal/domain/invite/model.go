package invite

import "time"

const CodeLength = 6

// Invite is keyed by its code. ConsumedAt is only enforced when the
// single-use policy is on; with the policy off the column still records the
// first redemption for auditing.
type Invite struct {
	Code        string     `gorm:"size:6;primaryKey"`
	CaregiverID string     `gorm:"type:uuid;not null;index"`
	ConsumedAt  *time.Time `gorm:"column:consumed_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

// Policy controls invite lifecycle. The zero value reproduces the historical
// behavior: no expiry, codes stay valid after redemption.
type Policy struct {
	SingleUse bool
	TTL       time.Duration
}

func (p Policy) expired(createdAt, now time.Time) bool {
	return p.TTL > 0 && now.Sub(createdAt) > p.TTL
}
