package kernel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/venuebook/database/seeders"
	"github.com/shashiranjanraj/venuebook/internal/testdb"
	"github.com/shashiranjanraj/venuebook/pkg/auth"
	"github.com/shashiranjanraj/venuebook/pkg/testkit"
)

func newKernel(t *testing.T) http.Handler {
	t.Helper()
	db := testdb.Open(t)
	require.NoError(t, seeders.RunAll(context.Background(), db, io.Discard))
	k, err := NewHTTPKernel(db)
	require.NoError(t, err)
	return k.Handler()
}

// login posts credentials and returns the issued role cookie.
func login(t *testing.T, h http.Handler, userID, password, role, landing string) *http.Cookie {
	t.Helper()
	rec := testkit.Serve(h, testkit.Post("/loginCheck.do", url.Values{"userID": {userID}, "password": {password}}))
	testkit.AssertText(t, rec, http.StatusOK, landing)
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName(role) {
			return c
		}
	}
	t.Fatalf("no %s cookie after login", role)
	return nil
}

func with(r *http.Request, c *http.Cookie) *http.Request {
	r.AddCookie(c)
	return r
}

func TestOperationalEndpoints(t *testing.T) {
	h := newKernel(t)

	assert.Equal(t, http.StatusNoContent, testkit.Serve(h, testkit.Get("/healthz", nil)).Code)

	rec := testkit.Serve(h, testkit.Get("/healthz", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = testkit.Serve(h, testkit.Get("/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "venuebook_")
}

func TestVenuePageBounds(t *testing.T) {
	h := newKernel(t)

	rec := testkit.Serve(h, testkit.Get("/venuelist/getVenueList", url.Values{"page": {"3689348814741910324"}}))
	testkit.AssertError(t, rec, http.StatusBadRequest)

	rec = testkit.Serve(h, testkit.Get("/venuelist/getVenueList", url.Values{"page": {"9"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Content []json.RawMessage `json:"content"`
		Total   int64             `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(3), page.Total)
}

func TestGraphQLAcceptsCrossOriginQueries(t *testing.T) {
	h := newKernel(t)

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "https://catalogue.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := testkit.Serve(h, req)
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = testkit.Get("/graphql", url.Values{"query": {"{ venues(page: 1) { totalElements } }"}})
	req.Header.Set("Origin", "https://catalogue.example")
	rec = testkit.Serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestGuardsThroughTheKernel(t *testing.T) {
	h := newKernel(t)

	testkit.AssertError(t, testkit.Serve(h, testkit.Get("/user_info", nil)), http.StatusUnauthorized)
	testkit.AssertError(t, testkit.Serve(h, testkit.Get("/admin/venue_manage", nil)), http.StatusUnauthorized)

	user := login(t, h, "test", "test", auth.RoleUser, "/index")
	testkit.AssertView(t, testkit.Serve(h, with(testkit.Get("/user_info", nil), user)), "user_info")
	testkit.AssertError(t, testkit.Serve(h, with(testkit.Get("/admin/venue_manage", nil), user)), http.StatusUnauthorized)

	admin := login(t, h, "admin", "admin", auth.RoleAdmin, "/admin_index")
	testkit.AssertView(t, testkit.Serve(h, with(testkit.Get("/admin/venue_manage", nil), admin)), "admin/venue_manage")
	testkit.AssertError(t, testkit.Serve(h, with(testkit.Get("/user_info", nil), admin)), http.StatusUnauthorized)

	testkit.AssertBool(t, testkit.Serve(h, testkit.Post("/loginCheck.do", url.Values{"userID": {"test"}, "password": {"nope"}})), false)
}

func TestOrderLifecycle(t *testing.T) {
	h := newKernel(t)
	user := login(t, h, "test", "test", auth.RoleUser, "/index")
	admin := login(t, h, "admin", "admin", auth.RoleAdmin, "/admin_index")

	booking := url.Values{"venueName": {"羽毛球场A"}, "date": {"2026-11-02"}, "startTime": {"10:00"}, "hours": {"2"}}
	testkit.AssertRedirect(t, testkit.Serve(h, with(testkit.Post("/addOrder.do", booking), user)), "/order_manage")

	var mine []struct {
		OrderID   uint   `json:"orderID"`
		State     int    `json:"state"`
		Total     int    `json:"total"`
		VenueName string `json:"venueName"`
	}
	testkit.DecodeJSON(t, testkit.Serve(h, with(testkit.Get("/getOrderList.do", nil), user)), &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].State)
	assert.Equal(t, 120, mine[0].Total)
	assert.Equal(t, "羽毛球场A", mine[0].VenueName)
	id := url.Values{"orderID": {itoa(mine[0].OrderID)}}

	testkit.AssertError(t, testkit.Serve(h, with(testkit.Post("/finishOrder.do", id), user)), http.StatusConflict)
	testkit.AssertBool(t, testkit.Serve(h, with(testkit.Post("/admin/passOrder.do", id), admin)), true)
	testkit.AssertError(t, testkit.Serve(h, with(testkit.Post("/admin/rejectOrder.do", id), admin)), http.StatusConflict)
	testkit.AssertBool(t, testkit.Serve(h, with(testkit.Post("/finishOrder.do", id), user)), true)

	testkit.DecodeJSON(t, testkit.Serve(h, with(testkit.Get("/getOrderList.do", nil), user)), &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, 4, mine[0].State)
}

func TestCatalogueGraphQL(t *testing.T) {
	h := newKernel(t)

	q := `{ venues(page: 1) { totalElements content { venueName price } } news { totalElements } }`
	rec := testkit.Serve(h, httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":`+quote(q)+`}`)))

	var body struct {
		Data struct {
			Venues struct {
				TotalElements int `json:"totalElements"`
				Content       []struct {
					VenueName string `json:"venueName"`
					Price     int    `json:"price"`
				} `json:"content"`
			} `json:"venues"`
			News struct {
				TotalElements int `json:"totalElements"`
			} `json:"news"`
		} `json:"data"`
	}
	testkit.DecodeJSON(t, rec, &body)
	assert.Equal(t, 3, body.Data.Venues.TotalElements)
	require.Len(t, body.Data.Venues.Content, 3)
	assert.Equal(t, "羽毛球场A", body.Data.Venues.Content[0].VenueName)
	assert.Equal(t, 1, body.Data.News.TotalElements)
}

func TestRoutesAreNamed(t *testing.T) {
	k, err := NewHTTPKernel(nil)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, ri := range k.Routes() {
		names[ri.Name] = true
	}
	for _, want := range []string{"healthz", "index", "user.login_check", "order.add", "admin.order.pass", "admin.message.reject"} {
		assert.True(t, names[want], "route %s", want)
	}
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
