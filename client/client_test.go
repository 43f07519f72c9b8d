package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topic struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(filepath.Join(t.TempDir(), "session.json"))
}

func writeEnvelope(w http.ResponseWriter, code int, status bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func TestSessionPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	session := NewSession(path)
	assert.False(t, session.Authenticated())

	require.NoError(t, session.SetToken("abc123"))
	assert.True(t, session.Authenticated())

	// A new instance over the same file sees the token
	reopened := NewSession(path)
	token, ok := reopened.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	require.NoError(t, reopened.Clear())
	assert.False(t, reopened.Authenticated())
}

func TestCollectionListSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, true, "Topics fetched successfully!", []topic{
			{ID: 1, Name: "Pecahan", Slug: "pecahan"},
		})
	}))
	defer server.Close()

	session := newTestSession(t)
	require.NoError(t, session.SetToken("tok-1"))

	topics := NewCollection[topic](New(server.URL, session), "topics")
	listed, err := topics.List(context.Background(), map[string]string{"subject": "math"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	require.Len(t, listed, 1)
	assert.Equal(t, "pecahan", listed[0].Slug)
}

func TestUnauthorizedEvictsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}))
	defer server.Close()

	session := newTestSession(t)
	require.NoError(t, session.SetToken("expired"))

	topics := NewCollection[topic](New(server.URL, session), "topics")
	_, err := topics.List(context.Background(), nil)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, session.Authenticated())
}

func TestRequestErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusNotFound, false, "Topic not found!", nil)
	}))
	defer server.Close()

	topics := NewCollection[topic](New(server.URL, newTestSession(t)), "topics")
	_, err := topics.Get(context.Background(), 42)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "Topic not found!", reqErr.Message)
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "Login successful!", map[string]any{
			"token": "fresh-token",
		})
	}))
	defer server.Close()

	session := newTestSession(t)
	c := New(server.URL, session)

	require.NoError(t, c.Login(context.Background(), "admin@belajarseru.id", "admin123"))

	token, ok := session.Token()
	assert.True(t, ok)
	assert.Equal(t, "fresh-token", token)
}

func TestCreateAndDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/admin/topics":
			writeEnvelope(w, http.StatusCreated, true, "Topic created successfully!", topic{ID: 7, Name: "Aljabar", Slug: "aljabar"})
		case r.Method == http.MethodDelete && r.URL.Path == "/admin/topics/7":
			writeEnvelope(w, http.StatusOK, true, "Topic deleted successfully!", nil)
		default:
			writeEnvelope(w, http.StatusNotFound, false, "Topic not found!", nil)
		}
	}))
	defer server.Close()

	topics := NewCollection[topic](New(server.URL, newTestSession(t)), "topics")

	created, err := topics.Create(context.Background(), map[string]string{"name": "Aljabar"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)

	require.NoError(t, topics.Delete(context.Background(), 7))

	err = topics.Delete(context.Background(), 8)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}
