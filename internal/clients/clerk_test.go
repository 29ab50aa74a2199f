package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/user_1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "user_1",
			"first_name": "John",
			"last_name": "Smith",
			"image_url": "https://img.clerk.com/user_1",
			"email_addresses": [{"email_address": "j.smith@ormiston.school.nz"}]
		}`))
	}))
	defer ts.Close()

	client := NewClerkClient("sk_test")
	client.baseURL = ts.URL

	user, err := client.GetUser(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "user_1", user.ID)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "j.smith@ormiston.school.nz", user.Email())
}

func TestGetUserNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClerkClient("sk_test")
	client.baseURL = ts.URL

	_, err := client.GetUser(context.Background(), "user_unknown")
	assert.Error(t, err)
}

func TestEmailEmpty(t *testing.T) {
	user := &ClerkUser{}
	assert.Equal(t, "", user.Email())
}
