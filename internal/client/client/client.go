// Package client implements the HTTP API client used by the CLI. It keeps
// the current session's token pair and refreshes it transparently when the
// server reports an expired access token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/server/models"
)

// APIClient talks to one CodeRefine server. It is not safe for concurrent
// use: the CLI drives it from a single goroutine.
type APIClient struct {
	baseURL      string
	client       *http.Client
	accessToken  string
	refreshToken string
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// IsLoggedIn reports whether the client holds a session.
func (c *APIClient) IsLoggedIn() bool { return c.accessToken != "" }

// Logout drops the session tokens.
func (c *APIClient) Logout() {
	c.accessToken = ""
	c.refreshToken = ""
}

type errorResponse struct {
	Error string `json:"error"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Ping checks server availability.
func (c *APIClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/api/v1/ping", nil, &resp, false)
}

// Register creates an account. The password travels once over the wire and
// is not retained.
func (c *APIClient) Register(ctx context.Context, userName string, password []byte) error {
	req := credentialsRequest{Username: userName, Password: string(password)}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, nil, false)
}

// Login authenticates and stores the session token pair on success.
func (c *APIClient) Login(ctx context.Context, userName string, password []byte) error {
	req := credentialsRequest{Username: userName, Password: string(password)}
	var pair tokenPairResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &pair, false); err != nil {
		return err
	}
	c.accessToken = pair.AccessToken
	c.refreshToken = pair.RefreshToken
	return nil
}

// Languages returns the server's supported language list.
func (c *APIClient) Languages(ctx context.Context) ([]string, error) {
	var resp struct {
		Languages []string `json:"languages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/languages", nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Languages, nil
}

// Analyze submits code for analysis.
func (c *APIClient) Analyze(ctx context.Context, language, code string) (*models.AnalysisResult, error) {
	req := struct {
		Language string `json:"language"`
		Code     string `json:"code"`
	}{Language: language, Code: code}

	var result models.AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/analyze", req, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// History returns the caller's analysis log, oldest first.
func (c *APIClient) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var resp struct {
		Entries []models.HistoryEntry `json:"entries"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/history", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// refresh exchanges the stored refresh token for a new pair.
func (c *APIClient) refresh(ctx context.Context) error {
	if c.refreshToken == "" {
		return ErrNotLoggedIn
	}
	req := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: c.refreshToken}

	var pair tokenPairResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &pair, false); err != nil {
		c.Logout()
		return err
	}
	c.accessToken = pair.AccessToken
	c.refreshToken = pair.RefreshToken
	return nil
}

// do performs one JSON exchange. Authenticated calls retry once after a
// token refresh when the server answers 401.
func (c *APIClient) do(ctx context.Context, method, path string, reqBody, respBody any, authed bool) error {
	if authed && !c.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	status, body, err := c.roundTrip(ctx, method, path, reqBody, authed)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && authed && c.refreshToken != "" {
		if err := c.refresh(ctx); err != nil {
			return err
		}
		status, body, err = c.roundTrip(ctx, method, path, reqBody, authed)
		if err != nil {
			return err
		}
	}

	if status >= 400 {
		return apiError(status, body)
	}

	if respBody != nil {
		if err := json.Unmarshal(body, respBody); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *APIClient) roundTrip(ctx context.Context, method, path string, reqBody any, authed bool) (int, []byte, error) {
	var reader io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// apiError turns an error payload into a readable error, falling back to
// the HTTP status when the body is not the expected JSON.
func apiError(status int, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return fmt.Errorf("server: %s", er.Error)
	}
	return fmt.Errorf("server: %s", http.StatusText(status))
}
