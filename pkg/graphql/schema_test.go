package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingSchema(t *testing.T) graphql.Schema {
	t.Helper()
	s, err := NewSchema(graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"ping": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{"name": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: "pong"}},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Args["name"], nil
				},
			},
		},
	}))
	require.NoError(t, err)
	return s
}

type result struct {
	Data   map[string]interface{}   `json:"data"`
	Errors []map[string]interface{} `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) result {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var r result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	return r
}

func TestHandlerGetAndPost(t *testing.T) {
	h := Handler(pingSchema(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape("{ ping }"), nil))
	assert.Equal(t, "pong", decode(t, rec).Data["ping"])

	body, _ := json.Marshal(Request{Query: "query P($n: String) { ping(name: $n) }", Variables: map[string]interface{}{"n": "court"}})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body)))
	assert.Equal(t, "court", decode(t, rec).Data["ping"])
}

func TestHandlerQueryErrorsAreResults(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(pingSchema(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape("{ nope }"), nil))
	assert.NotEmpty(t, decode(t, rec).Errors)
}

func TestHandlerRejectsBadRequests(t *testing.T) {
	h := Handler(pingSchema(t))
	cases := map[string]struct {
		req  *http.Request
		code int
	}{
		"no query":   {httptest.NewRequest(http.MethodGet, "/graphql", nil), http.StatusBadRequest},
		"bad json":   {httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString("{")), http.StatusBadRequest},
		"bad method": {httptest.NewRequest(http.MethodDelete, "/graphql", nil), http.StatusMethodNotAllowed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tc.req)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
