package ctx_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	appctx "github.com/shashiranjanraj/venuebook/pkg/ctx"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

func serve(req *http.Request, h appctx.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	appctx.Wrap(h)(rec, req)
	return rec
}

func TestView(t *testing.T) {
	rec := serve(httptest.NewRequest(http.MethodGet, "/", nil), func(c *appctx.Context) {
		c.View("venue", response.Model{"venue": "court"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"view":"venue","model":{"venue":"court"}}`, rec.Body.String())
}

func TestBoolAndRedirect(t *testing.T) {
	rec := serve(httptest.NewRequest(http.MethodPost, "/", nil), func(c *appctx.Context) {
		c.Bool(false)
	})
	assert.Equal(t, "false", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	rec = serve(httptest.NewRequest(http.MethodPost, "/", nil), func(c *appctx.Context) {
		c.Redirect("/order_manage")
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/order_manage", rec.Header().Get("Location"))
}

func TestPageDefaultsAndErrors(t *testing.T) {
	var page int
	var err error
	serve(httptest.NewRequest(http.MethodGet, "/list", nil), func(c *appctx.Context) {
		page, err = c.Page()
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	serve(httptest.NewRequest(http.MethodGet, "/list?page=3", nil), func(c *appctx.Context) {
		page, err = c.Page()
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	serve(httptest.NewRequest(http.MethodGet, "/list?page=abc", nil), func(c *appctx.Context) {
		_, err = c.Page()
	})
	assert.Error(t, err)
}

func TestUint(t *testing.T) {
	form := url.Values{"orderID": {"7"}, "bad": {"0"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	serve(req, func(c *appctx.Context) {
		id, err := c.Uint("orderID")
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)

		_, err = c.Uint("bad")
		assert.Error(t, err)
		_, err = c.Uint("missing")
		assert.Error(t, err)
	})
}

func TestBindForm(t *testing.T) {
	type input struct {
		Content string `form:"content" validate:"required"`
		Hours   int    `form:"hours"   validate:"nullable,gte=1"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hours=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(req, func(c *appctx.Context) {
		var in input
		assert.False(t, c.BindForm(&in))
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content"`)
	assert.Contains(t, rec.Body.String(), `"hours"`)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("content=hi&hours=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	serve(req, func(c *appctx.Context) {
		var in input
		require.True(t, c.BindForm(&in))
		assert.Equal(t, "hi", in.Content)
		assert.Equal(t, 2, in.Hours)
	})
}

func TestPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	p := auth.Principal{UserID: "user1", UserName: "User One", Role: auth.RoleUser}
	req = req.WithContext(auth.WithPrincipal(req.Context(), p))

	serve(req, func(c *appctx.Context) {
		got, err := c.Principal(auth.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, p, got)

		_, err = c.Principal(auth.RoleAdmin)
		assert.ErrorIs(t, err, auth.ErrLogin)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	serve(req, func(c *appctx.Context) {
		assert.Equal(t, "192.0.2.1", c.ClientIP())
	})

	config.Set("TRUSTED_PROXIES", "192.0.2.1")
	t.Cleanup(func() { config.Set("TRUSTED_PROXIES", "") })
	serve(req, func(c *appctx.Context) {
		assert.Equal(t, "10.0.0.1", c.ClientIP())
	})
}
