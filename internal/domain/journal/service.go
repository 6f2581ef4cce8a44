package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateEntryInput) (*Entry, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}

	mood := strings.TrimSpace(input.Mood)
	if mood == "" {
		mood = DefaultMood
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}

	entry := Entry{
		ID:      uuid.NewString(),
		OwnerID: input.OwnerID,
		Title:   title,
		Content: content,
		Mood:    mood,
		Date:    date,
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *Service) List(ctx context.Context, ownerID string, filter ListFilter) ([]Entry, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.ListByOwner(ctx, ownerID, filter)
}

func (s *Service) Update(ctx context.Context, input UpdateEntryInput) (*Entry, error) {
	if input.Title == nil && input.Content == nil && input.Mood == nil && input.Date == nil {
		return nil, fmt.Errorf("no fields to update")
	}

	entry, err := s.repo.GetByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("title is required")
		}
		entry.Title = trimmed
	}
	if input.Content != nil {
		trimmed := strings.TrimSpace(*input.Content)
		if trimmed == "" {
			return nil, fmt.Errorf("content is required")
		}
		entry.Content = trimmed
	}
	if input.Mood != nil {
		mood := strings.TrimSpace(*input.Mood)
		if mood == "" {
			mood = DefaultMood
		}
		entry.Mood = mood
	}
	if input.Date != nil {
		date := strings.TrimSpace(*input.Date)
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("date must be YYYY-MM-DD")
		}
		entry.Date = date
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, entryID string) error {
	return s.repo.Delete(ctx, ownerID, entryID)
}
