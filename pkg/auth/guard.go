// Package auth verifies the signed login tokens carried in the "user" and
// "admin" cookies and hands the resulting Principal to handlers through the
// request context.
//
//	admin := r.Group("/admin", auth.Guard(auth.RoleAdmin))
//	p, err := auth.FromCtx(r.Context(), auth.RoleAdmin)
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ErrLogin means the request carries no valid principal for the role.
var ErrLogin = errors.New("login required")

// Principal is the verified identity of the caller.
type Principal struct {
	UserID   string `json:"userID"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

type ctxKey struct{ role string }

// WithPrincipal stores p in ctx under its role.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{p.Role}, p)
}

// FromCtx returns the principal for role, or ErrLogin.
func FromCtx(ctx context.Context, role string) (Principal, error) {
	if p, ok := ctx.Value(ctxKey{role}).(Principal); ok {
		return p, nil
	}
	return Principal{}, ErrLogin
}

// CookieName is the cookie that carries role's token.
func CookieName(role string) string { return role }

// Guard rejects requests without a valid role token with 401 and passes the
// verified principal downstream.
func Guard(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(CookieName(role)); err == nil {
				token = c.Value
			}

			p, err := Verify(token, role)
			if err != nil {
				logger.WithCtx(r.Context()).Debug("guard rejected request", "role", role, "path", r.URL.Path, "error", err)
				response.Unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// SetCookie issues a token for p and sets it as p.Role's cookie.
func SetCookie(w http.ResponseWriter, p Principal) error {
	token, err := IssueToken(p)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(p.Role),
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   config.AppEnv() == "production",
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie expires role's cookie.
func ClearCookie(w http.ResponseWriter, role string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(role),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
