package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

// Upstream generation can legitimately take minutes; everything else should
// answer quickly.
const (
	planningTimeout = 5 * time.Minute
	defaultTimeout  = 15 * time.Second
)

// APIError is a non-2xx backend reply. Message is the backend's "error"
// field when one was sent.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// APIClient talks to the wander JSON API on behalf of browser sessions.
type APIClient struct {
	baseURL  string
	http     *http.Client
	planHTTP *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: defaultTimeout},
		planHTTP: &http.Client{Timeout: planningTimeout},
	}
}

// PlanTrip issues the one long planning call. No retry: the result or a
// terminal failure are the only outcomes.
func (c *APIClient) PlanTrip(ctx context.Context, req request_models.PlanRequest) (*response_models.TripResponse, error) {
	var resp response_models.TripResponse
	if err := c.do(ctx, c.planHTTP, http.MethodPost, "/plan-trip", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	var resp response_models.ChatResponse
	if err := c.do(ctx, c.http, http.MethodPost, "/chat", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	var resp response_models.AuthResponse
	if err := c.do(ctx, c.http, http.MethodPost, "/auth/signup", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	var resp response_models.AuthResponse
	if err := c.do(ctx, c.http, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) GoogleAuth(ctx context.Context, req request_models.GoogleAuthRequest) (*response_models.AuthResponse, error) {
	var resp response_models.AuthResponse
	if err := c.do(ctx, c.http, http.MethodPost, "/auth/google", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) GetProfile(ctx context.Context, token string) (*response_models.UserResponse, error) {
	var resp response_models.UserResponse
	if err := c.do(ctx, c.http, http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) UpdateProfile(ctx context.Context, token string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	var resp response_models.UserResponse
	if err := c.do(ctx, c.http, http.MethodPut, "/auth/me", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) SaveTrip(ctx context.Context, token string, req request_models.SaveTripRequest) (*response_models.SavedTripResponse, error) {
	var resp response_models.SavedTripResponse
	if err := c.do(ctx, c.http, http.MethodPost, "/trips", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) ListTrips(ctx context.Context, token string) ([]response_models.SavedTripResponse, error) {
	var resp []response_models.SavedTripResponse
	if err := c.do(ctx, c.http, http.MethodGet, "/trips", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *APIClient) GetTrip(ctx context.Context, token, tripID string) (*response_models.SavedTripResponse, error) {
	var resp response_models.SavedTripResponse
	if err := c.do(ctx, c.http, http.MethodGet, "/trips/"+tripID, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) UpdateTrip(ctx context.Context, token, tripID string, req request_models.UpdateTripRequest) (*response_models.SavedTripResponse, error) {
	var resp response_models.SavedTripResponse
	if err := c.do(ctx, c.http, http.MethodPatch, "/trips/"+tripID, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) DeleteTrip(ctx context.Context, token, tripID string) error {
	return c.do(ctx, c.http, http.MethodDelete, "/trips/"+tripID, token, nil, nil)
}

func (c *APIClient) do(ctx context.Context, client *http.Client, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractErrorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func extractErrorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
