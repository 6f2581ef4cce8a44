package tasks

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrPatientNotLinked = errors.New("patient not linked to caregiver")
	ErrNotAllowed       = errors.New("not allowed")
)
