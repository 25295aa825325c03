package notesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abhisek/notequiz/internal/quiz"
)

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 4 << 10

// Client talks to the note/quiz generation server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the server at baseURL, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateNote stores a note on the server and returns it with the quizzes
// generated from it. A non-2xx answer yields *StatusError. A missing or null
// quizzes field decodes to an empty slice.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*CreateNoteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+NotesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	var out CreateNoteResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	if out.Quizzes == nil {
		out.Quizzes = []quiz.Item{}
	}
	return &out, nil
}

// Generate submits content as a new note and returns only the quiz items.
func (c *Client) Generate(ctx context.Context, content string) ([]quiz.Item, error) {
	resp, err := c.CreateNote(ctx, CreateNoteRequest{Content: content})
	if err != nil {
		return nil, err
	}
	return resp.Quizzes, nil
}

// GetNote fetches a stored note with its quizzes.
func (c *Client) GetNote(ctx context.Context, id int64) (*CreateNoteResponse, error) {
	url := fmt.Sprintf("%s%s%d", c.baseURL, NotesPath, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	var out CreateNoteResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	if out.Quizzes == nil {
		out.Quizzes = []quiz.Item{}
	}
	return &out, nil
}

// Health calls GET / on the server.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	var out HealthResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: errorDetail(b)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the "detail" field of an error body, falling back to
// the trimmed raw text.
func errorDetail(b []byte) string {
	var er ErrorResponse
	if err := json.Unmarshal(b, &er); err == nil && er.Detail != "" {
		return er.Detail
	}
	return strings.TrimSpace(string(b))
}
