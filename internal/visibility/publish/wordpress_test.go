package publish

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordPress_IncompleteCredentials(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	wp := NewWordPress(0)
	_, err := wp.Publish(context.Background(), Document{Title: "t"}, domain.PublishCredentials{
		SiteURL: server.URL, // username and token missing
	})
	require.Error(t, err)

	var pubErr *domain.PublishError
	require.True(t, errors.As(err, &pubErr))
	assert.False(t, called, "incomplete credentials must not reach the sink")
}

func TestWordPress_Publish(t *testing.T) {
	var gotDoc Document
	var gotUser, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		gotUser, gotToken, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDoc))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "link": "https://example.com/post"})
	}))
	defer server.Close()

	wp := NewWordPress(0)
	published, err := wp.Publish(context.Background(), Document{
		Title: "How Acme stacks up",
		HTML:  "<p>body</p>",
		Slug:  "how-acme-stacks-up",
	}, domain.PublishCredentials{
		SiteURL:  server.URL + "/",
		Username: "editor",
		AppToken: "app-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), published.PostID)
	assert.Equal(t, "https://example.com/post", published.URL)
	assert.Equal(t, "How Acme stacks up", published.Title)

	assert.Equal(t, "editor", gotUser)
	assert.Equal(t, "app-pass", gotToken)
	assert.Equal(t, "draft", gotDoc.Status, "status defaults to draft")
	assert.Equal(t, "<p>body</p>", gotDoc.HTML)
}

func TestWordPress_SinkRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid application password"})
	}))
	defer server.Close()

	wp := NewWordPress(0)
	_, err := wp.Publish(context.Background(), Document{Title: "t"}, domain.PublishCredentials{
		SiteURL:  server.URL,
		Username: "editor",
		AppToken: "wrong",
	})
	require.Error(t, err)

	var pubErr *domain.PublishError
	require.True(t, errors.As(err, &pubErr))
	assert.Equal(t, http.StatusForbidden, pubErr.StatusCode)
	assert.Contains(t, pubErr.Error(), "invalid application password")
}

func TestWordPress_RejectionWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	wp := NewWordPress(0)
	_, err := wp.Publish(context.Background(), Document{Title: "t"}, domain.PublishCredentials{
		SiteURL:  server.URL,
		Username: "editor",
		AppToken: "token",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink rejected the document")
}
