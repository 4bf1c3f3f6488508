// Package api implements the HTTP client for the Taskify backend.
//
// Every request carries "Authorization: Bearer <token>" when the session has
// a token; without one the request goes out unauthenticated and the backend
// governs access. Calls do not retry: a failed call surfaces to the caller as
// a single error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskify/internal/config"
	"taskify/internal/service"
	"taskify/internal/session"
)

// APITimeout is the per-call timeout.
const APITimeout = 10 * time.Second

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return "session rejected by backend (run: taskify login)"
	case e.Code == http.StatusNotFound:
		return "not found"
	case e.Message != "":
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	default:
		return fmt.Sprintf("backend returned %d", e.Code)
	}
}

// IsAuthError reports whether err is a 401/403 from the backend.
func IsAuthError(err error) bool {
	var se *StatusError
	return errors.As(err, &se) &&
		(se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden)
}

// Client talks to the Taskify REST API. It implements service.Authenticator
// and the task operations consumed by the cache layer.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Store
	log     zerolog.Logger
}

// New creates a client against cfg.BaseURL. The session store is read on
// every call, so a login that happens after New is picked up immediately.
func New(cfg *config.Config, sess *session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{},
		sess:    sess,
		log:     log,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Register creates an account. The backend's success payload is opaque and
// discarded.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", credentials{email, password}, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{email, password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response contained no token")
	}
	return resp.Token, nil
}

// ListTasks fetches the caller's task collection. The backend scopes results
// to the authenticated user.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the server-assigned record.
func (c *Client) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", draft, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update; only the set fields of patch are sent.
func (c *Client) UpdateTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	var task service.Task
	path := fmt.Sprintf("/tasks/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, patch, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// do runs one request with the per-call timeout. body is JSON-encoded when
// non-nil, dst is JSON-decoded from the response when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("request timed out")
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api call")

	if resp.StatusCode >= 400 {
		return &StatusError{Code: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// readErrorMessage pulls a human-readable message out of an error payload.
// The backend sends {"error": ...} or {"message": ...}; anything else is
// dropped rather than echoed raw.
func readErrorMessage(r io.Reader) string {
	var e errorResponse
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
