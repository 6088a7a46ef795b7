// Package session keeps short-lived per-browser state (flash messages) in
// Redis, keyed by an opaque cookie.
//
//	sess := session.FromCtx(r)
//	sess.Flash("message", "saved")
//	sess.Save(w)
//
// Authentication does not live here; see pkg/auth.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/pkg/cache"
)

type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions reads the cookie name and TTL from config.
func DefaultOptions() Options {
	return Options{
		CookieName: config.SessionCookie(),
		TTL:        config.SessionTTL(),
		HTTPOnly:   true,
		Secure:     config.AppEnv() == "production",
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	ctx     context.Context
	changed bool
}

func storeKey(id string) string { return "venuebook:session:" + id }

func newSession(ctx context.Context, opts Options) *Session {
	return &Session{
		id:   uuid.NewString(),
		data: map[string]interface{}{},
		opts: opts,
		ctx:  ctx,
	}
}

func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *Session) GetString(key string) (string, bool) {
	v, ok := s.data[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *Session) Delete(key string) {
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.changed = true
}

// Flash stores a value that GetFlash returns once.
func (s *Session) Flash(key string, value interface{}) {
	s.Set("_flash_"+key, value)
}

func (s *Session) GetFlash(key string) (interface{}, bool) {
	v, ok := s.Get("_flash_" + key)
	if ok {
		s.Delete("_flash_" + key)
	}
	return v, ok
}

// FlashString is GetFlash for string values; "" when absent.
func (s *Session) FlashString(key string) string {
	v, _ := s.GetFlash(key)
	str, _ := v.(string)
	return str
}

// Invalidate drops all data.
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

func (s *Session) ID() string { return s.id }

// Save persists changed data and refreshes the cookie. Unchanged sessions
// are not written.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}

	if err := cache.Set(s.ctx, storeKey(s.id), json.RawMessage(raw), s.opts.TTL); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Middleware loads the session named by the cookie, or starts a new one.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := newSession(r.Context(), opts)

			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				sess.id = cookie.Value
				var data map[string]interface{}
				if cache.Get(r.Context(), storeKey(sess.id), &data) && data != nil {
					sess.data = data
				}
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
		})
	}
}

// FromCtx returns the request's session, or a fresh unsaved one when the
// middleware did not run.
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	return newSession(r.Context(), DefaultOptions())
}
