// Package testkit drives handlers through httptest and asserts on the
// view, text and redirect replies they produce.
//
//	rec := testkit.Serve(h, testkit.As(testkit.Post("/sendMessage", form), alice))
//	model := testkit.AssertView(t, rec, "message_list")
package testkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/venuebook/pkg/auth"
)

// Get builds a GET with query as the query string.
func Get(target string, query url.Values) *http.Request {
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}
	return httptest.NewRequest(http.MethodGet, target, nil)
}

// Post builds a urlencoded form POST.
func Post(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// As attaches p as if the role guard had verified it.
func As(r *http.Request, p auth.Principal) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), p))
}

// WithCookie signs p into its role cookie for requests that pass a real guard.
func WithCookie(t testing.TB, r *http.Request, p auth.Principal) *http.Request {
	t.Helper()
	token, err := auth.IssueToken(p)
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: auth.CookieName(p.Role), Value: token})
	return r
}

func Serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

// AssertView checks a 200 view reply named name and returns its model.
func AssertView(t testing.TB, rec *httptest.ResponseRecorder, name string) map[string]interface{} {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var body struct {
		View  string                 `json:"view"`
		Model map[string]interface{} `json:"model"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	assert.Equal(t, name, body.View)
	return body.Model
}

// AssertText checks status and the exact plain-text body.
func AssertText(t testing.TB, rec *httptest.ResponseRecorder, status int, want string) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

// AssertBool checks a literal true/false reply.
func AssertBool(t testing.TB, rec *httptest.ResponseRecorder, want bool) {
	t.Helper()
	if want {
		AssertText(t, rec, http.StatusOK, "true")
		return
	}
	AssertText(t, rec, http.StatusOK, "false")
}

func AssertRedirect(t testing.TB, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, location, rec.Header().Get("Location"))
}

// AssertError checks an error envelope with status.
func AssertError(t testing.TB, rec *httptest.ResponseRecorder, status int) map[string]interface{} {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	assert.EqualValues(t, status, body["status"])
	return body
}

// DecodeJSON decodes a 200 JSON reply into dest.
func DecodeJSON(t testing.TB, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), "body: %s", rec.Body.String())
}
