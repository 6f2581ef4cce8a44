package invite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshitajain06/Memorylane/internal/domain/account"
	"github.com/harshitajain06/Memorylane/internal/domain/identity"
	"github.com/harshitajain06/Memorylane/pkg/logger"
)

type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
}

type AccountLinker interface {
	LinkPatient(ctx context.Context, patientID, email, caregiverID string) (*account.Account, error)
	IssueSession(ctx context.Context, accountID string) (*identity.Session, error)
}

type Service struct {
	repo     Repository
	ids      IdentityProvider
	accounts AccountLinker
	policy   Policy
	log      logger.Logger
}

func NewService(repo Repository, ids IdentityProvider, accounts AccountLinker, policy Policy, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		ids:      ids,
		accounts: accounts,
		policy:   policy,
		log:      log,
	}
}

// Generate produces a shareable code for the caregiver: the first CodeLength
// characters of a random identifier. The code is not collision-checked; a
// colliding write overwrites the older invite.
func (s *Service) Generate(ctx context.Context, caregiverID string) (string, error) {
	if strings.TrimSpace(caregiverID) == "" {
		return "", fmt.Errorf("caregiver id is required")
	}

	code := uuid.NewString()[:CodeLength]
	inv := Invite{
		Code:        code,
		CaregiverID: caregiverID,
	}
	if err := s.repo.Put(ctx, &inv); err != nil {
		return "", fmt.Errorf("persist invite: %w", err)
	}

	generatedMetric.Inc()
	return code, nil
}

// Redeem consumes a code to create a patient account bound to the inviting
// caregiver. Steps run in strict sequence: invite lookup, identity creation,
// then the account+link write (one transaction inside the linker). If the
// linking write fails after the identity exists, the identity is deleted as
// best-effort compensation before the failure is surfaced.
func (s *Service) Redeem(ctx context.Context, code, email, password string) (*account.Account, *identity.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil, fmt.Errorf("code is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, nil, fmt.Errorf("password is required")
	}

	inv, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		redeemFailedMetric.WithLabelValues("invalid_code").Inc()
		return nil, nil, err
	}

	now := time.Now().UTC()
	if s.policy.expired(inv.CreatedAt, now) {
		redeemFailedMetric.WithLabelValues("expired").Inc()
		return nil, nil, ErrInviteExpired
	}
	if s.policy.SingleUse && inv.ConsumedAt != nil {
		redeemFailedMetric.WithLabelValues("consumed").Inc()
		return nil, nil, ErrInviteConsumed
	}

	id, err := s.ids.CreateIdentity(ctx, email, password)
	if err != nil {
		// The invite stays untouched and reusable.
		redeemFailedMetric.WithLabelValues("identity").Inc()
		return nil, nil, err
	}

	acct, err := s.accounts.LinkPatient(ctx, id, email, inv.CaregiverID)
	if err != nil {
		redeemFailedMetric.WithLabelValues("linking").Inc()
		if derr := s.ids.DeleteIdentity(ctx, id); derr != nil {
			// Compensation failed: the identity is now orphaned until a
			// later ProfileMissing login exposes it.
			s.log.Error("invite.redeem: identity compensation failed", "identity_id", id, "err", derr)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrLinkingFailed, err)
	}

	if inv.ConsumedAt == nil {
		if err := s.repo.MarkConsumed(ctx, code, now); err != nil {
			// The patient is already linked; a reusable code is the lesser harm.
			s.log.Warn("invite.redeem: mark consumed failed", "code", code, "err", err)
		}
	}

	session, err := s.accounts.IssueSession(ctx, acct.ID)
	if err != nil {
		return nil, nil, err
	}

	redeemedMetric.Inc()
	return acct, session, nil
}
