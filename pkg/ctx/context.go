// Package ctx gives handlers a single request context with helpers for
// parameters, sessions, principals and the view/bool/redirect replies.
//
//	func (vc *VenueController) Show(c *ctx.Context) {
//	    id, err := c.Uint("venueID")
//	    ...
//	    c.View("venue", response.Model{"venue": v})
//	}
//
//	router.Get("/venue", "venue.show", ctx.Wrap(vc.Show))
package ctx

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/bind"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/middleware"
	"github.com/shashiranjanraj/venuebook/pkg/response"
	"github.com/shashiranjanraj/venuebook/pkg/session"
	"github.com/shashiranjanraj/venuebook/pkg/validate"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Query returns a query-string value. Returns "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// PostForm returns a form field, falling back to the query string.
func (c *Context) PostForm(key string) string {
	return c.R.FormValue(key)
}

// Int reads key from the form or query string. A missing key yields def;
// a malformed one is an error naming the key.
func (c *Context) Int(key string, def int) (int, error) {
	raw := strings.TrimSpace(c.R.FormValue(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return n, nil
}

// Uint reads a required positive ID from the form or query string.
func (c *Context) Uint(key string) (uint, error) {
	raw := strings.TrimSpace(c.R.FormValue(key))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return uint(n), nil
}

// Page reads the 1-based "page" parameter, defaulting to 1.
func (c *Context) Page() (int, error) {
	return c.Int("page", 1)
}

// ClientIP returns the client IP. See middleware.ClientIP for proxy handling.
func (c *Context) ClientIP() string {
	return middleware.ClientIP(c.R)
}

// Session returns the request's flash session.
func (c *Context) Session() *session.Session {
	return session.FromCtx(c.R)
}

// SaveSession persists the session before a reply is written. Failures are
// logged; flash data is best effort.
func (c *Context) SaveSession() {
	if err := c.Session().Save(c.W); err != nil {
		logger.WithCtx(c.Context()).Warn("session save failed", "error", err)
	}
}

// Principal returns the verified caller for role.
func (c *Context) Principal(role string) (auth.Principal, error) {
	return auth.FromCtx(c.Context(), role)
}

// BindForm fills dest from the request form and validates it. On failure it
// answers 400 and returns false.
func (c *Context) BindForm(dest any) bool {
	errs, err := bind.Form(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.status = http.StatusBadRequest
		response.ValidationError(c.W, errs)
		return false
	}
	return true
}

// JSON writes v as the whole body.
func (c *Context) JSON(code int, v any) {
	c.status = code
	response.JSON(c.W, code, v)
}

// View renders the named view with model.
func (c *Context) View(name string, model response.Model) {
	c.status = http.StatusOK
	response.View(c.W, name, model)
}

// Bool answers a literal true or false.
func (c *Context) Bool(ok bool) {
	c.status = http.StatusOK
	response.Bool(c.W, ok)
}

// String writes a plain-text response.
func (c *Context) String(code int, body string) {
	c.status = code
	response.Text(c.W, code, body)
}

// Error sends a JSON error envelope with the given status and message.
func (c *Context) Error(code int, message string) {
	c.status = code
	response.Error(c.W, code, message)
}

// Redirect answers 302 Found to url.
func (c *Context) Redirect(url string) {
	c.status = http.StatusFound
	http.Redirect(c.W, c.R, url, http.StatusFound)
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
