package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	identitydomain "github.com/harshitajain06/Memorylane/internal/domain/identity"
	"github.com/harshitajain06/Memorylane/pkg/logger"
)

// User is the resolved session carried through the request context. Handlers
// read it from here instead of any ambient global state.
type User struct {
	ID          string
	Email       string
	Role        accountdomain.Role
	CaregiverID *string
}

type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*accountdomain.Account, error)
}

type SessionAuth struct {
	accounts SessionResolver
	log      logger.Logger
}

func NewSessionAuth(accounts SessionResolver, log logger.Logger) *SessionAuth {
	return &SessionAuth{accounts: accounts, log: log}
}

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
)

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		acct, err := a.accounts.ResolveSession(r.Context(), token)
		if err != nil {
			if !errors.Is(err, identitydomain.ErrSessionNotFound) && !errors.Is(err, accountdomain.ErrAccountNotFound) {
				a.log.InternalError("auth: resolve session failed", err)
			}
			unauthorized(w)
			return
		}

		user := User{
			ID:          acct.ID,
			Email:       acct.Email,
			Role:        acct.Role,
			CaregiverID: acct.CaregiverID,
		}
		ctx := WithUser(r.Context(), user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route subtree to one role. Dispatch is on the Role
// variant, not on raw strings.
func RequireRole(role accountdomain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if user.Role != role {
				writeError(w, http.StatusForbidden, "forbidden", "this action requires the "+string(role)+" role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
