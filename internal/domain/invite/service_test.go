package invite

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harshitajain06/Memorylane/internal/domain/account"
	"github.com/harshitajain06/Memorylane/internal/domain/identity"
	"github.com/harshitajain06/Memorylane/pkg/logger"
)

type fakeInviteRepo struct {
	invites map[string]*Invite
	putErr  error
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[string]*Invite)}
}

func (r *fakeInviteRepo) Put(ctx context.Context, inv *Invite) error {
	if r.putErr != nil {
		return r.putErr
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	copied := *inv
	r.invites[inv.Code] = &copied
	return nil
}

func (r *fakeInviteRepo) GetByCode(ctx context.Context, code string) (*Invite, error) {
	inv, ok := r.invites[code]
	if !ok {
		return nil, ErrInviteNotFound
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInviteRepo) MarkConsumed(ctx context.Context, code string, at time.Time) error {
	inv, ok := r.invites[code]
	if !ok {
		return ErrInviteNotFound
	}
	inv.ConsumedAt = &at
	return nil
}

type fakeIdentityProvider struct {
	identities map[string]string // id -> email
	emails     map[string]bool
	nextID     int
	createErr  error
	deleted    []string
}

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{
		identities: make(map[string]string),
		emails:     make(map[string]bool),
	}
}

func (p *fakeIdentityProvider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	if p.createErr != nil {
		return "", p.createErr
	}
	if p.emails[email] {
		return "", identity.ErrEmailTaken
	}
	p.nextID++
	id := fmt.Sprintf("id-%d", p.nextID)
	p.identities[id] = email
	p.emails[email] = true
	return id, nil
}

func (p *fakeIdentityProvider) DeleteIdentity(ctx context.Context, id string) error {
	email, ok := p.identities[id]
	if ok {
		delete(p.identities, id)
		delete(p.emails, email)
	}
	p.deleted = append(p.deleted, id)
	return nil
}

type fakeLinker struct {
	accounts map[string]*account.Account
	linkErr  error
}

func newFakeLinker() *fakeLinker {
	return &fakeLinker{accounts: make(map[string]*account.Account)}
}

func (l *fakeLinker) LinkPatient(ctx context.Context, patientID, email, caregiverID string) (*account.Account, error) {
	if l.linkErr != nil {
		return nil, l.linkErr
	}
	acct := &account.Account{
		ID:          patientID,
		Email:       email,
		Role:        account.RolePatient,
		CaregiverID: &caregiverID,
	}
	l.accounts[patientID] = acct
	return acct, nil
}

func (l *fakeLinker) IssueSession(ctx context.Context, accountID string) (*identity.Session, error) {
	return &identity.Session{
		Token:     "token-" + accountID,
		AccountID: accountID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

func newTestService(repo *fakeInviteRepo, ids *fakeIdentityProvider, linker *fakeLinker, policy Policy) *Service {
	return NewService(repo, ids, linker, policy, logger.New(io.Discard, 0, "json"))
}

func TestGenerate(t *testing.T) {
	repo := newFakeInviteRepo()
	svc := newTestService(repo, newFakeIdentityProvider(), newFakeLinker(), Policy{})

	code, err := svc.Generate(context.Background(), "cg-1")
	require.NoError(t, err)
	require.Len(t, code, CodeLength)

	stored, ok := repo.invites[code]
	require.True(t, ok)
	require.Equal(t, "cg-1", stored.CaregiverID)
	require.Nil(t, stored.ConsumedAt)
}

func TestGenerateRequiresCaregiver(t *testing.T) {
	svc := newTestService(newFakeInviteRepo(), newFakeIdentityProvider(), newFakeLinker(), Policy{})

	_, err := svc.Generate(context.Background(), "  ")
	require.Error(t, err)
}

func TestGenerateOverwritesExistingCode(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{Code: "A1B2C3", CaregiverID: "cg-old", CreatedAt: time.Now().UTC()}

	// Codes are not collision-checked: a second Put under the same code
	// silently replaces the first caregiver's invite.
	err := repo.Put(context.Background(), &Invite{Code: "A1B2C3", CaregiverID: "cg-new"})
	require.NoError(t, err)
	require.Equal(t, "cg-new", repo.invites["A1B2C3"].CaregiverID)
}

func TestRedeemSuccess(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{Code: "A1B2C3", CaregiverID: "cg-1", CreatedAt: time.Now().UTC()}
	ids := newFakeIdentityProvider()
	linker := newFakeLinker()
	svc := newTestService(repo, ids, linker, Policy{})

	_, _, err := svc.Redeem(context.Background(), " a1b2c3 ", "patient@example.com", "secret123")
	require.ErrorIs(t, err, ErrInviteNotFound) // codes are case-sensitive

	acct, session, err := svc.Redeem(context.Background(), "A1B2C3", "Patient@Example.com ", "secret123")
	require.NoError(t, err)
	require.Equal(t, account.RolePatient, acct.Role)
	require.Equal(t, "patient@example.com", acct.Email)
	require.NotNil(t, acct.CaregiverID)
	require.Equal(t, "cg-1", *acct.CaregiverID)
	require.NotEmpty(t, session.Token)

	// The first redemption is recorded even though the default policy keeps
	// the code reusable.
	require.NotNil(t, repo.invites["A1B2C3"].ConsumedAt)
}

func TestRedeemUnknownCode(t *testing.T) {
	ids := newFakeIdentityProvider()
	svc := newTestService(newFakeInviteRepo(), ids, newFakeLinker(), Policy{})

	_, _, err := svc.Redeem(context.Background(), "ZZZZZZ", "patient@example.com", "secret123")
	require.ErrorIs(t, err, ErrInviteNotFound)
	require.Empty(t, ids.identities)
}

func TestRedeemEmailTakenLeavesInviteReusable(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{Code: "A1B2C3", CaregiverID: "cg-1", CreatedAt: time.Now().UTC()}
	ids := newFakeIdentityProvider()
	ids.emails["patient@example.com"] = true
	svc := newTestService(repo, ids, newFakeLinker(), Policy{})

	_, _, err := svc.Redeem(context.Background(), "A1B2C3", "patient@example.com", "secret123")
	require.ErrorIs(t, err, identity.ErrEmailTaken)
	require.Nil(t, repo.invites["A1B2C3"].ConsumedAt)

	_, _, err = svc.Redeem(context.Background(), "A1B2C3", "other@example.com", "secret123")
	require.NoError(t, err)
}

func TestRedeemLinkFailureDeletesIdentity(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{Code: "A1B2C3", CaregiverID: "cg-1", CreatedAt: time.Now().UTC()}
	ids := newFakeIdentityProvider()
	linker := newFakeLinker()
	linker.linkErr = fmt.Errorf("db down")
	svc := newTestService(repo, ids, linker, Policy{})

	_, _, err := svc.Redeem(context.Background(), "A1B2C3", "patient@example.com", "secret123")
	require.ErrorIs(t, err, ErrLinkingFailed)
	require.Len(t, ids.deleted, 1)
	require.Empty(t, ids.identities)
	require.Nil(t, repo.invites["A1B2C3"].ConsumedAt)
}

func TestRedeemTwiceDefaultPolicy(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{Code: "A1B2C3", CaregiverID: "cg-1", CreatedAt: time.Now().UTC()}
	linker := newFakeLinker()
	svc := newTestService(repo, newFakeIdentityProvider(), linker, Policy{})

	_, _, err := svc.Redeem(context.Background(), "A1B2C3", "first@example.com", "secret123")
	require.NoError(t, err)
	_, _, err = svc.Redeem(context.Background(), "A1B2C3", "second@example.com", "secret123")
	require.NoError(t, err)
	require.Len(t, linker.accounts, 2)
}

func TestRedeemSingleUse(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{Code: "A1B2C3", CaregiverID: "cg-1", CreatedAt: time.Now().UTC()}
	ids := newFakeIdentityProvider()
	svc := newTestService(repo, ids, newFakeLinker(), Policy{SingleUse: true})

	_, _, err := svc.Redeem(context.Background(), "A1B2C3", "first@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Redeem(context.Background(), "A1B2C3", "second@example.com", "secret123")
	require.ErrorIs(t, err, ErrInviteConsumed)
	require.Len(t, ids.identities, 1)
}

func TestRedeemExpired(t *testing.T) {
	repo := newFakeInviteRepo()
	repo.invites["A1B2C3"] = &Invite{
		Code:        "A1B2C3",
		CaregiverID: "cg-1",
		CreatedAt:   time.Now().UTC().Add(-48 * time.Hour),
	}
	ids := newFakeIdentityProvider()
	svc := newTestService(repo, ids, newFakeLinker(), Policy{TTL: 24 * time.Hour})

	_, _, err := svc.Redeem(context.Background(), "A1B2C3", "patient@example.com", "secret123")
	require.ErrorIs(t, err, ErrInviteExpired)
	require.Empty(t, ids.identities)
}

func TestRedeemValidatesInput(t *testing.T) {
	svc := newTestService(newFakeInviteRepo(), newFakeIdentityProvider(), newFakeLinker(), Policy{})

	_, _, err := svc.Redeem(context.Background(), "", "patient@example.com", "secret123")
	require.Error(t, err)
	_, _, err = svc.Redeem(context.Background(), "A1B2C3", "", "secret123")
	require.Error(t, err)
	_, _, err = svc.Redeem(context.Background(), "A1B2C3", "patient@example.com", "")
	require.Error(t, err)
}
