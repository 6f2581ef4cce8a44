package memories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
)

type CaregiverResolver interface {
	CaregiverOf(ctx context.Context, patientID string) (string, error)
}

type Service struct {
	repo       Repository
	caregivers CaregiverResolver
}

func NewService(repo Repository, caregivers CaregiverResolver) *Service {
	return &Service{repo: repo, caregivers: caregivers}
}

func (s *Service) Add(ctx context.Context, caregiverID, imageURL, description string) (*Memory, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, fmt.Errorf("image url is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	memory := Memory{
		ID:          uuid.NewString(),
		CaregiverID: caregiverID,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(ctx, &memory); err != nil {
		return nil, err
	}

	return &memory, nil
}

func (s *Service) ListForCaregiver(ctx context.Context, caregiverID string) ([]Memory, error) {
	return s.repo.ListByCaregiver(ctx, caregiverID)
}

// ListForPatient resolves the patient's caregiver and returns that caregiver's
// shared memories.
func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]Memory, error) {
	caregiverID, err := s.caregivers.CaregiverOf(ctx, patientID)
	if err != nil {
		if errors.Is(err, accountdomain.ErrAccountNotFound) {
			return nil, ErrNotLinked
		}
		return nil, err
	}
	return s.repo.ListByCaregiver(ctx, caregiverID)
}

func (s *Service) Delete(ctx context.Context, caregiverID, memoryID string) error {
	memory, err := s.repo.GetByID(ctx, memoryID)
	if err != nil {
		return err
	}
	if memory.CaregiverID != caregiverID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, memory.ID)
}
