package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bob = Principal{UserID: "bob", UserName: "Bob", Role: RoleUser}

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(bob)
	require.NoError(t, err)

	p, err := Verify(token, RoleUser)
	require.NoError(t, err)
	assert.Equal(t, bob, p)
}

func TestVerifyRejects(t *testing.T) {
	userToken, err := IssueToken(bob)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "bob",
		Role:   RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString(secret())
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "bob", Role: RoleAdmin}).
		SignedString([]byte("another secret"))
	require.NoError(t, err)

	cases := map[string]struct {
		token, role string
	}{
		"empty":        {"", RoleUser},
		"garbage":      {"not.a.token", RoleUser},
		"wrong role":   {userToken, RoleAdmin},
		"expired":      {expiredToken, RoleUser},
		"other secret": {forged, RoleAdmin},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Verify(tc.token, tc.role)
			assert.True(t, errors.Is(err, ErrLogin), "got %v", err)
		})
	}
}

func TestIssueTokenNeedsIdentity(t *testing.T) {
	_, err := IssueToken(Principal{Role: RoleUser})
	assert.Error(t, err)
	_, err = IssueToken(Principal{UserID: "bob", Role: "root"})
	assert.Error(t, err)
}

func TestGuard(t *testing.T) {
	var seen Principal
	h := Guard(RoleUser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromCtx(r.Context(), RoleUser)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user_info", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login := httptest.NewRecorder()
	require.NoError(t, SetCookie(login, bob))
	cookies := login.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, RoleUser, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/user_info", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, bob, seen)

	admin := httptest.NewRequest(http.MethodGet, "/admin_index", nil)
	admin.AddCookie(&http.Cookie{Name: RoleAdmin, Value: cookies[0].Value})
	rec = httptest.NewRecorder()
	Guard(RoleAdmin)(h).ServeHTTP(rec, admin)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "a user token does not open admin routes")
}

func TestFromCtxIsPerRole(t *testing.T) {
	ctx := WithPrincipal(httptest.NewRequest(http.MethodGet, "/", nil).Context(), bob)

	_, err := FromCtx(ctx, RoleAdmin)
	assert.ErrorIs(t, err, ErrLogin)
	p, err := FromCtx(ctx, RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", p.UserID)
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec, RoleAdmin)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, RoleAdmin, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "Secret"))
	assert.False(t, CheckPassword("plain-text", "plain-text"))
}
