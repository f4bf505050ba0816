package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"golang.org/x/time/rate"
)

// Request is one completion call against the oracle.
type Request struct {
	Prompt       string
	SystemPrompt string
	Temperature  float64
	JSONMode     bool
}

// Completer is the text-completion oracle the pipeline consumes.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client talks to an OpenAI-compatible chat-completions endpoint. Calls
// are rate limited so batch simulation stays inside the upstream quota.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	limiter *rate.Limiter
}

type ClientOptions struct {
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
}

func NewClient(opt ClientOptions) *Client {
	if opt.BaseURL == "" {
		opt.BaseURL = "https://api.openai.com/v1"
	}
	if opt.Model == "" {
		opt.Model = "gpt-4o-mini"
	}
	if opt.Timeout == 0 {
		opt.Timeout = 60 * time.Second
	}
	if opt.RequestsPerSecond <= 0 {
		opt.RequestsPerSecond = 2
	}
	return &Client{
		baseURL: opt.BaseURL,
		apiKey:  opt.APIKey,
		model:   opt.Model,
		http:    &http.Client{Timeout: opt.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opt.RequestsPerSecond), 1),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature,omitempty"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &domain.OracleError{Op: "complete", Err: err}
	}

	body := chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.JSONMode {
		body.ResponseFormat = &respFormat{Type: "json_object"}
	}

	b, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", &domain.OracleError{Op: "complete", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &domain.OracleError{Op: "complete", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", &domain.OracleError{Op: "complete", StatusCode: resp.StatusCode}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &domain.OracleError{Op: "complete", Err: fmt.Errorf("decode: %w", err)}
	}
	if len(out.Choices) == 0 {
		return "", &domain.OracleError{Op: "complete", Err: fmt.Errorf("empty choice list")}
	}

	content := out.Choices[0].Message.Content
	if req.JSONMode && !json.Valid([]byte(content)) {
		return "", &domain.SchemaError{Op: "complete", Err: fmt.Errorf("response is not valid JSON")}
	}
	return content, nil
}
