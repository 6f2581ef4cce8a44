package account

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/harshitajain06/Memorylane/internal/domain/identity"
)

type fakeAccountRepo struct {
	accounts  map[string]*Account
	links     map[string][]string // caregiver -> patient ids
	createErr error
	linkErr   error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*Account),
		links:    make(map[string][]string),
	}
}

func (r *fakeAccountRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeAccountRepo) Create(ctx context.Context, acct *Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *acct
	r.accounts[acct.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*Account, error) {
	acct, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copied := *acct
	return &copied, nil
}

func (r *fakeAccountRepo) AddPatientLink(ctx context.Context, link *PatientLink) error {
	if r.linkErr != nil {
		return r.linkErr
	}
	r.links[link.CaregiverID] = append(r.links[link.CaregiverID], link.PatientID)
	return nil
}

func (r *fakeAccountRepo) ListPatients(ctx context.Context, caregiverID string) ([]Account, error) {
	result := make([]Account, 0)
	for _, patientID := range r.links[caregiverID] {
		if acct, ok := r.accounts[patientID]; ok {
			result = append(result, *acct)
		}
	}
	return result, nil
}

func (r *fakeAccountRepo) IsLinked(ctx context.Context, caregiverID, patientID string) (bool, error) {
	for _, id := range r.links[caregiverID] {
		if id == patientID {
			return true, nil
		}
	}
	return false, nil
}

type fakeIdentities struct {
	credentials map[string]string // email -> password
	ids         map[string]string // email -> id
	nextID      int
}

func newFakeIdentities() *fakeIdentities {
	return &fakeIdentities{
		credentials: make(map[string]string),
		ids:         make(map[string]string),
	}
}

func (p *fakeIdentities) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	if _, ok := p.credentials[email]; ok {
		return "", identity.ErrEmailTaken
	}
	p.nextID++
	id := fmt.Sprintf("id-%d", p.nextID)
	p.credentials[email] = password
	p.ids[email] = id
	return id, nil
}

func (p *fakeIdentities) Authenticate(ctx context.Context, email, password string) (string, error) {
	stored, ok := p.credentials[email]
	if !ok || stored != password {
		return "", identity.ErrInvalidCredentials
	}
	return p.ids[email], nil
}

func (p *fakeIdentities) DeleteIdentity(ctx context.Context, id string) error {
	for email, storedID := range p.ids {
		if storedID == id {
			delete(p.ids, email)
			delete(p.credentials, email)
		}
	}
	return nil
}

type fakeSessions struct {
	sessions map[string]*identity.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*identity.Session)}
}

func (s *fakeSessions) CreateSession(ctx context.Context, session *identity.Session) error {
	copied := *session
	s.sessions[session.Token] = &copied
	return nil
}

func (s *fakeSessions) GetSession(ctx context.Context, token string) (*identity.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, identity.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessions) DeleteSession(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func TestRegisterCaregiverSuccess(t *testing.T) {
	repo := newFakeAccountRepo()
	sessions := newFakeSessions()
	svc := NewService(repo, newFakeIdentities(), sessions, time.Hour)

	acct, session, err := svc.RegisterCaregiver(context.Background(), " Carer@Example.com ", "secret123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if acct.Email != "carer@example.com" {
		t.Fatalf("expected normalized email, got %q", acct.Email)
	}
	if acct.Role != RoleCaregiver {
		t.Fatalf("expected caregiver role, got %q", acct.Role)
	}
	if acct.CaregiverID != nil {
		t.Fatalf("caregiver must not carry a caregiver_id")
	}
	if session.AccountID != acct.ID {
		t.Fatalf("expected session for %s, got %s", acct.ID, session.AccountID)
	}
	if _, ok := sessions.sessions[session.Token]; !ok {
		t.Fatalf("expected session persisted")
	}
}

func TestRegisterCaregiverValidation(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), newFakeIdentities(), newFakeSessions(), time.Hour)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret123"},
		{"email without at", "not-an-email", "secret123"},
		{"short password", "carer@example.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.RegisterCaregiver(context.Background(), tc.email, tc.password)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegisterCaregiverEmailTaken(t *testing.T) {
	ids := newFakeIdentities()
	ids.credentials["carer@example.com"] = "secret123"
	ids.ids["carer@example.com"] = "id-0"
	svc := NewService(newFakeAccountRepo(), ids, newFakeSessions(), time.Hour)

	_, _, err := svc.RegisterCaregiver(context.Background(), "carer@example.com", "secret123")
	if !errors.Is(err, identity.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRoleDispatch(t *testing.T) {
	repo := newFakeAccountRepo()
	ids := newFakeIdentities()
	svc := NewService(repo, ids, newFakeSessions(), time.Hour)

	caregiver, _, err := svc.RegisterCaregiver(context.Background(), "carer@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	patientID, err := ids.CreateIdentity(context.Background(), "patient@example.com", "secret123")
	if err != nil {
		t.Fatalf("patient identity: %v", err)
	}
	if _, err := svc.LinkPatient(context.Background(), patientID, "patient@example.com", caregiver.ID); err != nil {
		t.Fatalf("link patient: %v", err)
	}

	acct, _, err := svc.Login(context.Background(), "carer@example.com", "secret123")
	if err != nil {
		t.Fatalf("caregiver login: %v", err)
	}
	if acct.Role != RoleCaregiver {
		t.Fatalf("expected caregiver, got %q", acct.Role)
	}

	acct, _, err = svc.Login(context.Background(), "patient@example.com", "secret123")
	if err != nil {
		t.Fatalf("patient login: %v", err)
	}
	if acct.Role != RolePatient {
		t.Fatalf("expected patient, got %q", acct.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), newFakeIdentities(), newFakeSessions(), time.Hour)
	if _, _, err := svc.RegisterCaregiver(context.Background(), "carer@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "carer@example.com", "wrong")
	if !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginProfileMissing(t *testing.T) {
	ids := newFakeIdentities()
	if _, err := ids.CreateIdentity(context.Background(), "ghost@example.com", "secret123"); err != nil {
		t.Fatalf("identity: %v", err)
	}
	svc := NewService(newFakeAccountRepo(), ids, newFakeSessions(), time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
	if !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
}

func TestLinkPatient(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, newFakeIdentities(), newFakeSessions(), time.Hour)

	caregiver, _, err := svc.RegisterCaregiver(context.Background(), "carer@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	acct, err := svc.LinkPatient(context.Background(), "patient-1", "patient@example.com", caregiver.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if acct.Role != RolePatient {
		t.Fatalf("expected patient role, got %q", acct.Role)
	}
	if acct.CaregiverID == nil || *acct.CaregiverID != caregiver.ID {
		t.Fatalf("expected caregiver %s, got %v", caregiver.ID, acct.CaregiverID)
	}

	linked, err := svc.IsLinked(context.Background(), caregiver.ID, "patient-1")
	if err != nil || !linked {
		t.Fatalf("expected link, got linked=%v err=%v", linked, err)
	}

	patients, err := svc.ListPatients(context.Background(), caregiver.ID)
	if err != nil || len(patients) != 1 {
		t.Fatalf("expected one patient, got %d err=%v", len(patients), err)
	}
}

func TestLinkPatientRejectsNonCaregiver(t *testing.T) {
	repo := newFakeAccountRepo()
	caregiverID := "cg-1"
	repo.accounts[caregiverID] = &Account{ID: caregiverID, Role: RoleCaregiver}
	repo.accounts["patient-1"] = &Account{ID: "patient-1", Role: RolePatient, CaregiverID: &caregiverID}
	svc := NewService(repo, newFakeIdentities(), newFakeSessions(), time.Hour)

	_, err := svc.LinkPatient(context.Background(), "patient-2", "other@example.com", "patient-1")
	if !errors.Is(err, ErrNotCaregiver) {
		t.Fatalf("expected ErrNotCaregiver, got %v", err)
	}

	_, err = svc.LinkPatient(context.Background(), "patient-2", "other@example.com", "missing")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestResolveSessionExpiry(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.accounts["acct-1"] = &Account{ID: "acct-1", Role: RoleCaregiver}
	sessions := newFakeSessions()
	sessions.sessions["stale"] = &identity.Session{
		Token:     "stale",
		AccountID: "acct-1",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	svc := NewService(repo, newFakeIdentities(), sessions, time.Hour)

	_, err := svc.ResolveSession(context.Background(), "stale")
	if !errors.Is(err, identity.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, ok := sessions.sessions["stale"]; ok {
		t.Fatalf("expected stale session deleted")
	}

	session, err := svc.IssueSession(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	acct, err := svc.ResolveSession(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("resolve session: %v", err)
	}
	if acct.ID != "acct-1" {
		t.Fatalf("expected acct-1, got %s", acct.ID)
	}
}

func TestCaregiverOf(t *testing.T) {
	repo := newFakeAccountRepo()
	caregiverID := "cg-1"
	repo.accounts[caregiverID] = &Account{ID: caregiverID, Role: RoleCaregiver}
	repo.accounts["patient-1"] = &Account{ID: "patient-1", Role: RolePatient, CaregiverID: &caregiverID}
	svc := NewService(repo, newFakeIdentities(), newFakeSessions(), time.Hour)

	got, err := svc.CaregiverOf(context.Background(), "patient-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != caregiverID {
		t.Fatalf("expected %s, got %s", caregiverID, got)
	}

	_, err = svc.CaregiverOf(context.Background(), caregiverID)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for a caregiver, got %v", err)
	}
}
