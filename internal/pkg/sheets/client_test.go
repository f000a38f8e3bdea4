package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(config.LedgerConfig{EndpointURL: url, Timeout: 2 * time.Second})
}

func TestReadReturnsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "read", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Roll No":"R1","Class":"A","Date":"15-03-2024"},{"rollNumber":42}]`))
	}))
	defer srv.Close()

	rows, err := newTestClient(srv.URL).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "R1", rows[0]["Roll No"])
	assert.Equal(t, float64(42), rows[1]["rollNumber"])
}

func TestReadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Read(context.Background())
	assert.Error(t, err)
}

func TestAppendPostsAddAction(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		// The real endpoint answers with an opaque redirect page.
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Append(context.Background(), map[string]any{
		"rollNumber": "R1",
		"class":      "A",
		"date":       "15-03-2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "add", got["action"])
	assert.Equal(t, "R1", got["rollNumber"])
	assert.Equal(t, "15-03-2024", got["date"])
}

func TestDeletePostsDeleteAction(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Delete(context.Background(), "row-7")
	require.NoError(t, err)
	assert.Equal(t, "delete", got["action"])
	assert.Equal(t, "row-7", got["id"])
}

// Writes are fire and forget: a failing status from the endpoint is not an
// error, only a transport failure is.
func TestWriteIgnoresStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusBadGateway)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(srv.URL).Append(context.Background(), map[string]any{"rollNumber": "R1"}))

	srv.Close()
	assert.Error(t, newTestClient(srv.URL).Append(context.Background(), map[string]any{"rollNumber": "R1"}))
}
