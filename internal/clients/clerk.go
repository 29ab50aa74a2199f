// Package clients внешние HTTP-клиенты (Clerk).
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const clerkBaseURL = "https://api.clerk.com/v1"

// ClerkClient клиент Backend API Clerk. Нужен только для
// проксирования профиля пользователя на фронт.
type ClerkClient struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewClerkClient(secretKey string) *ClerkClient {
	return &ClerkClient{
		secretKey: secretKey,
		baseURL:   clerkBaseURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// ClerkUser профиль пользователя из Clerk
type ClerkUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// Email первый email адрес пользователя, пустая строка если нет
func (u *ClerkUser) Email() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// GetUser получает пользователя по Clerk ID
func (c *ClerkClient) GetUser(ctx context.Context, userID string) (*ClerkUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("build clerk request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch clerk user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch clerk user: status %d", resp.StatusCode)
	}

	var user ClerkUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode clerk user: %w", err)
	}

	return &user, nil
}
