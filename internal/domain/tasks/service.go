package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type LinkChecker interface {
	IsLinked(ctx context.Context, caregiverID, patientID string) (bool, error)
}

type Service struct {
	repo  Repository
	links LinkChecker
}

func NewService(repo Repository, links LinkChecker) *Service {
	return &Service{repo: repo, links: links}
}

func (s *Service) Create(ctx context.Context, input CreateTaskInput) (*Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if input.PatientID == "" {
		return nil, fmt.Errorf("patient id is required")
	}

	linked, err := s.links.IsLinked(ctx, input.CaregiverID, input.PatientID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrPatientNotLinked
	}

	task := Task{
		ID:          uuid.NewString(),
		CaregiverID: input.CaregiverID,
		PatientID:   input.PatientID,
		Title:       title,
		Description: description,
	}
	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *Service) ListForCaregiver(ctx context.Context, caregiverID string) ([]Task, error) {
	return s.repo.ListByCaregiver(ctx, caregiverID)
}

func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]Task, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// SetCompleted toggles completion. Only the task's patient or its caregiver
// may do so.
func (s *Service) SetCompleted(ctx context.Context, actorID, taskID string, completed bool) (*Task, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if actorID != task.PatientID && actorID != task.CaregiverID {
		return nil, ErrNotAllowed
	}

	if err := s.repo.SetCompleted(ctx, task.ID, completed); err != nil {
		return nil, err
	}

	task.Completed = completed
	return task, nil
}

func (s *Service) Delete(ctx context.Context, caregiverID, taskID string) error {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.CaregiverID != caregiverID {
		return ErrNotAllowed
	}
	return s.repo.Delete(ctx, task.ID)
}
