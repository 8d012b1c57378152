// Package api is the typed client for the EarTalk REST backend. All
// operations issue exactly one HTTP request; failures surface either as an
// *APIError (non-2xx response), ErrNetwork (no response at all), or
// ErrNotAuthenticated (missing token, detected before the request is built).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token at call time. An empty string
// means no session. The token is read per request, never cached, so a
// concurrent login or logout is picked up by the next call.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client defines the backend operations used by services and the CLI.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, req SignupRequest) error
	ResetPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	DeleteAccount(ctx context.Context) error
	GetUser(ctx context.Context) (*UserRecord, error)
	ListRecordings(ctx context.Context) (*RecordingList, error)
	GetRecording(ctx context.Context, identifier string) (*Recording, error)
	UploadAudio(ctx context.Context, audio io.Reader) (*UploadResult, error)
}

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL      string
	httpClient   *http.Client
	tokens       TokenSource
	clientID     string
	clientSecret string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL (no trailing slash).
// clientID and clientSecret are sent with the login form and may be empty.
func NewHTTPClient(baseURL string, timeout time.Duration, clientID, clientSecret string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		tokens:       tokens,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// do issues one request. For authenticated calls the bearer token is read
// from the token source here, at call time.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if authed {
		token := c.tokens.Token(ctx)
		if token == "" {
			return nil, ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

// decodeError turns a non-2xx response into an *APIError. The JSON "detail"
// field is preferred; the raw body text is the fallback.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	detail := strings.TrimSpace(string(body))

	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != nil {
		switch d := payload.Detail.(type) {
		case string:
			detail = d
		default:
			// validation errors arrive as structured detail; keep them readable
			if b, err := json.Marshal(d); err == nil {
				detail = string(b)
			}
		}
	}

	return &APIError{Status: resp.StatusCode, Detail: detail}
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Login exchanges credentials for an access token via the OAuth2 password
// grant. The account email doubles as the login username by backend contract.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", email)
	form.Set("password", password)
	form.Set("scope", "")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	resp, err := c.do(ctx, http.MethodPost, "/api/login/access-token",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return "", decodeError(resp)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return lr.AccessToken, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode signup request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/users/signup", bytes.NewReader(body), "application/json", false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return decodeError(resp)
	}
	return nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email string) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/reset-password/"+url.PathEscape(email), nil, "", false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return decodeError(resp)
	}
	return nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode password request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/users/password", bytes.NewReader(body), "application/json", true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return decodeError(resp)
	}
	return nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/users/me", nil, "", true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return decodeError(resp)
	}
	return nil
}

func (c *HTTPClient) GetUser(ctx context.Context) (*UserRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/users/me", nil, "", true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, decodeError(resp)
	}

	var user UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

func (c *HTTPClient) ListRecordings(ctx context.Context) (*RecordingList, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/users/me/audios", nil, "", true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, decodeError(resp)
	}

	var list RecordingList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode recording list: %w", err)
	}
	return &list, nil
}

func (c *HTTPClient) GetRecording(ctx context.Context, identifier string) (*Recording, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/audio/"+url.PathEscape(identifier), nil, "", true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, decodeError(resp)
	}

	var rec Recording
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	return &rec, nil
}

// UploadAudio sends captured audio as multipart/form-data. The backend
// expects a WAV part named "audio" with the fixed filename "recording.wav".
func (c *HTTPClient) UploadAudio(ctx context.Context, audio io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="audio"; filename="recording.wav"`)
	header.Set("Content-Type", "audio/wav")

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/audio", &buf, mw.FormDataContentType(), true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, decodeError(resp)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode upload result: %w", err)
	}
	return &result, nil
}
