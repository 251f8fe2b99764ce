// Package authadmin is a client for the identity provider's admin API. The
// provider owns all credentials; this tool only creates, lists, and deletes
// accounts on behalf of the seeding engine.
package authadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateStatus is the outcome of an account creation attempt
type CreateStatus int

const (
	// StatusCreated means a new account was created
	StatusCreated CreateStatus = iota
	// StatusAlreadyExists means an account with this email already exists.
	// The provider does not return the existing id; callers look it up via
	// ListAccounts.
	StatusAlreadyExists
)

// Account is an identity provider account
type Account struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Client talks to the admin endpoint of the identity provider
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a new admin API client
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type createAccountRequest struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	EmailConfirm bool              `json:"email_confirm"`
	UserMetadata map[string]string `json:"user_metadata"`
	ID           string            `json:"id"`
}

type listAccountsResponse struct {
	Users []Account `json:"users"`
}

// CreateAccount creates an account with a caller-chosen id so the relational
// row can share it. An existing account with the same email is reported as
// StatusAlreadyExists, not as an error.
func (c *Client) CreateAccount(ctx context.Context, email, password string, id uuid.UUID, displayName string) (CreateStatus, error) {
	payload := createAccountRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: map[string]string{
			"name":      displayName,
			"full_name": displayName,
		},
		ID: id.String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode account payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("account creation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return StatusCreated, nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	if isAlreadyRegistered(respBody) {
		return StatusAlreadyExists, nil
	}

	return 0, fmt.Errorf("account creation failed with status %d: %s", resp.StatusCode, respBody)
}

// ListAccounts returns all accounts known to the identity provider
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/admin/users", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("account listing failed with status %d: %s", resp.StatusCode, respBody)
	}

	var parsed listAccountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode account listing: %w", err)
	}

	return parsed.Users, nil
}

// DeleteAccount deletes a single account by id
func (c *Client) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/auth/v1/admin/users/"+id.String(), nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("account deletion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("account deletion failed with status %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
}

// isAlreadyRegistered matches the provider's duplicate-email responses
func isAlreadyRegistered(body []byte) bool {
	text := strings.ToLower(string(body))
	return strings.Contains(text, "already registered") || strings.Contains(text, "email_exists")
}
