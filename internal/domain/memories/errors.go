package memories

import "errors"

var (
	ErrMemoryNotFound = errors.New("memory not found")
	ErrNotLinked      = errors.New("patient has no linked caregiver")
	ErrNotOwner       = errors.New("memory belongs to another caregiver")
)
