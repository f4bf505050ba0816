package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Gateway pushes formatted documents to the publishing sink.
type Gateway interface {
	Publish(ctx context.Context, doc Document, creds domain.PublishCredentials) (*domain.PublishedContent, error)
}

// Document is the shape the sink accepts.
type Document struct {
	Title   string `json:"title"`
	HTML    string `json:"content"`
	Slug    string `json:"slug"`
	Status  string `json:"status"`
	Excerpt string `json:"excerpt"`
}

// WordPress publishes through the WordPress REST API using basic auth
// with an application password.
type WordPress struct {
	http *http.Client
}

func NewWordPress(timeout time.Duration) *WordPress {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &WordPress{http: &http.Client{Timeout: timeout}}
}

type postResponse struct {
	ID   int64  `json:"id"`
	Link string `json:"link"`
}

type errResponse struct {
	Message string `json:"message"`
}

// Publish creates a post. Incomplete credentials are a precondition
// failure returned without attempting the call.
func (w *WordPress) Publish(ctx context.Context, doc Document, creds domain.PublishCredentials) (*domain.PublishedContent, error) {
	if !creds.Complete() {
		return nil, &domain.PublishError{Reason: "missing or incomplete publish credentials"}
	}
	if doc.Status == "" {
		doc.Status = "draft"
	}

	b, _ := json.Marshal(doc)
	endpoint := strings.TrimSuffix(creds.SiteURL, "/") + "/wp-json/wp/v2/posts"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, &domain.PublishError{Reason: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(creds.Username, creds.AppToken)

	resp, err := w.http.Do(req)
	if err != nil {
		return nil, &domain.PublishError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errResponse
		body, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(body, &e)
		reason := e.Message
		if reason == "" {
			reason = "sink rejected the document"
		}
		return nil, &domain.PublishError{Reason: reason, StatusCode: resp.StatusCode}
	}

	var out postResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.PublishError{Reason: "decoding response", Err: fmt.Errorf("decode: %w", err)}
	}

	return &domain.PublishedContent{Title: doc.Title, PostID: out.ID, URL: out.Link}, nil
}
