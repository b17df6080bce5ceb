package numberclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	number := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			if number == "" {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"number":""}`))
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"number": number})
		case http.MethodPost:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "s3cret" {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			if body["number"] == "fail" {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Update failed"}`))
				return
			}
			number = body["number"]
			w.Write([]byte(`{"success":true}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	c := New(newServer(t).URL)
	ctx := context.Background()

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, ErrNotSet)

	assert.ErrorIs(t, c.Set(ctx, "919000000001", "wrong"), ErrUnauthorized)
	require.NoError(t, c.Set(ctx, "919000000001", "s3cret"))

	n, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "919000000001", n)

	err = c.Set(ctx, "fail", "s3cret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Update failed")
}
