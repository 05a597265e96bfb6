package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeforge-dev/lifeforge/session"
	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func TestLoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		fmt.Fprint(w, `{"success":true,"access_token":"tok-abc","user_id":"D123","role":"hospital","profile":{"name":"City Care"},"redirect":"/dashboard/hospital"}`)
	}))
	defer server.Close()

	store := session.NewMemory()
	c := New(server.URL, store)

	resp, err := c.Login(context.Background(), api.LoginRequest{
		Email:    "ops@citycare.example",
		Password: "secret1",
		Role:     domain.RoleHospital,
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)

	// All three fields land together.
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, "tok-abc", store.Token())
	assert.Equal(t, "D123", store.UserID())
	assert.Equal(t, domain.RoleHospital, store.Role())
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Invalid credentials"}`)
	}))
	defer server.Close()

	store := session.NewMemory()
	c := New(server.URL, store)

	_, err := c.Login(context.Background(), api.LoginRequest{
		Email:    "ops@citycare.example",
		Password: "wrong-1",
		Role:     domain.RoleDonor,
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.False(t, store.IsLoggedIn())
}

func TestLoginValidatesBeforeSending(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())
	_, err := c.Login(context.Background(), api.LoginRequest{Email: "not-an-email", Password: "x", Role: "ghost"})
	require.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestLogoutIsLocalOnly(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	store := session.NewMemory()
	require.NoError(t, store.Set("tok", "u-1", domain.RoleDonor))
	c := New(server.URL, store)

	require.NoError(t, c.Logout())
	assert.False(t, store.IsLoggedIn())
	assert.Equal(t, 0, calls)
}
