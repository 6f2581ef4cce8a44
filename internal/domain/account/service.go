package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshitajain06/Memorylane/internal/domain/identity"
)

const minPasswordLength = 6

type Service struct {
	repo       Repository
	ids        identity.Provider
	sessions   identity.SessionStore
	sessionTTL time.Duration
}

func NewService(repo Repository, ids identity.Provider, sessions identity.SessionStore, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &Service{
		repo:       repo,
		ids:        ids,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// RegisterCaregiver creates an identity and a caregiver account with an empty
// patient set, then opens a session for it.
func (s *Service) RegisterCaregiver(ctx context.Context, email, password string) (*Account, *identity.Session, error) {
	email, password, err := normalizeCredentials(email, password)
	if err != nil {
		return nil, nil, err
	}

	id, err := s.ids.CreateIdentity(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	acct := Account{
		ID:    id,
		Email: email,
		Role:  RoleCaregiver,
	}
	if err := s.repo.Create(ctx, &acct); err != nil {
		return nil, nil, fmt.Errorf("create caregiver account: %w", err)
	}

	session, err := s.IssueSession(ctx, acct.ID)
	if err != nil {
		return nil, nil, err
	}

	return &acct, session, nil
}

// Login authenticates against the identity store and resolves the account
// record to obtain the role. An identity without an account record fails with
// ErrProfileMissing.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, *identity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, identity.ErrInvalidCredentials
	}

	id, err := s.ids.Authenticate(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	acct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, nil, ErrProfileMissing
		}
		return nil, nil, err
	}

	session, err := s.IssueSession(ctx, acct.ID)
	if err != nil {
		return nil, nil, err
	}

	return acct, session, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

func (s *Service) IssueSession(ctx context.Context, accountID string) (*identity.Session, error) {
	session := identity.Session{
		Token:     uuid.NewString(),
		AccountID: accountID,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

// ResolveSession maps a bearer token to the account it belongs to. Expired
// sessions behave like missing ones.
func (s *Service) ResolveSession(ctx context.Context, token string) (*Account, error) {
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.sessions.DeleteSession(ctx, session.Token)
		return nil, identity.ErrSessionNotFound
	}
	return s.repo.GetByID(ctx, session.AccountID)
}

// LinkPatient writes the patient account and the caregiver's link row in one
// transaction, so a partially linked patient cannot be observed.
func (s *Service) LinkPatient(ctx context.Context, patientID, email, caregiverID string) (*Account, error) {
	var acct Account
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		caregiver, err := tx.GetByID(ctx, caregiverID)
		if err != nil {
			return err
		}
		if caregiver.Role != RoleCaregiver {
			return ErrNotCaregiver
		}

		acct = Account{
			ID:          patientID,
			Email:       email,
			Role:        RolePatient,
			CaregiverID: &caregiver.ID,
		}
		if err := tx.Create(ctx, &acct); err != nil {
			return err
		}

		link := PatientLink{
			CaregiverID: caregiver.ID,
			PatientID:   acct.ID,
		}
		return tx.AddPatientLink(ctx, &link)
	})
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, caregiverID string) ([]Account, error) {
	return s.repo.ListPatients(ctx, caregiverID)
}

func (s *Service) IsLinked(ctx context.Context, caregiverID, patientID string) (bool, error) {
	return s.repo.IsLinked(ctx, caregiverID, patientID)
}

// CaregiverOf returns the caregiver id a patient is linked to.
func (s *Service) CaregiverOf(ctx context.Context, patientID string) (string, error) {
	acct, err := s.repo.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	if acct.Role != RolePatient || acct.CaregiverID == nil {
		return "", ErrAccountNotFound
	}
	return *acct.CaregiverID, nil
}

func normalizeCredentials(email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return "", "", fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return "", "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return email, password, nil
}
