package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/go-staffsync/auth"
	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/session"
	"github.com/staffsync/go-staffsync/session/storefakes"
)

const loginResponse = `{
	"success": true,
	"data": {
		"user": {
			"id": "7f9c24e8-3b2a-4d6e-9f1a-8c5b2e7d4a31",
			"email": "hr@staffsync.com",
			"name": "Sarah Mitchell",
			"department": "Human Resources",
			"role": "HR Administrator"
		},
		"access_token": "A1",
		"refresh_token": "R1",
		"token_type": "bearer",
		"expires_in": 1800
	}
}`

func newService(t *testing.T, handler http.Handler) (*auth.Service, *storefakes.FakeSessionStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storefakes.NewFakeSessionStore()
	apiClient, err := client.New(client.Config{BaseURL: server.URL, Store: store})
	require.NoError(t, err)

	return auth.NewService(apiClient, store, zerolog.Nop()), store
}

func TestService_Login(t *testing.T) {
	t.Run("persists tokens and profile as one unit", func(t *testing.T) {
		var gotBody auth.Credentials
		service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/login", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(loginResponse))
		}))

		grant, err := service.Login(context.Background(), auth.Credentials{
			Email:    "hr@staffsync.com",
			Password: "demo123",
		})
		require.NoError(t, err)
		require.Equal(t, "hr@staffsync.com", gotBody.Email)
		require.Equal(t, "A1", grant.AccessToken)
		require.Equal(t, session.RoleHRAdministrator, grant.User.Role)

		stored, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, "A1", stored.AccessToken)
		require.Equal(t, "R1", stored.RefreshToken)
		require.NotNil(t, stored.User)
		require.Equal(t, "Sarah Mitchell", stored.User.Name)
		require.True(t, stored.Authenticated())
	})

	t.Run("failed login leaves the store untouched", func(t *testing.T) {
		service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Incorrect email or password"}}`))
		}))

		_, err := service.Login(context.Background(), auth.Credentials{Email: "hr@staffsync.com", Password: "wrong"})
		require.Error(t, err)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Incorrect email or password", apiErr.Message())

		stored, loadErr := store.Load()
		require.NoError(t, loadErr)
		require.False(t, stored.Authenticated())
	})

	t.Run("response without tokens is rejected", func(t *testing.T) {
		service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1"},"access_token":"","refresh_token":""}}`))
		}))

		_, err := service.Login(context.Background(), auth.Credentials{Email: "hr@staffsync.com", Password: "demo123"})
		require.Error(t, err)

		stored, loadErr := store.Load()
		require.NoError(t, loadErr)
		require.False(t, stored.Authenticated())
	})
}

func TestService_Signup(t *testing.T) {
	var gotBody auth.SignupInput
	service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"success": true,
			"data": {
				"user": {"id": "u2", "email": "new@staffsync.com", "name": "New Hire", "department": "Engineering", "role": "Employee"},
				"access_token": "A-new",
				"refresh_token": "R-new",
				"token_type": "bearer",
				"expires_in": 1800
			}
		}`))
	}))

	grant, err := service.Signup(context.Background(), auth.SignupInput{
		Email:      "new@staffsync.com",
		Password:   "s3curepass",
		Name:       "New Hire",
		Department: "Engineering",
	})
	require.NoError(t, err)
	require.Equal(t, "Engineering", gotBody.Department)
	require.Equal(t, session.RoleEmployee, grant.User.Role)

	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "A-new", stored.AccessToken)
	require.Equal(t, "R-new", stored.RefreshToken)
}

func TestService_Logout(t *testing.T) {
	t.Run("revokes and clears", func(t *testing.T) {
		var revoked bool
		service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/logout", r.URL.Path)
			revoked = true
			w.Write([]byte(`{"success":true,"data":{},"message":"Logged out successfully"}`))
		}))
		store.Seed(session.Session{AccessToken: "A1", RefreshToken: "R1"})

		require.NoError(t, service.Logout(context.Background()))
		require.True(t, revoked)

		stored, err := store.Load()
		require.NoError(t, err)
		require.False(t, stored.Authenticated())
	})

	t.Run("clears locally even when the backend call fails", func(t *testing.T) {
		service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		store.Seed(session.Session{AccessToken: "A1", RefreshToken: "R1"})

		require.NoError(t, service.Logout(context.Background()))

		stored, err := store.Load()
		require.NoError(t, err)
		require.False(t, stored.Authenticated())
	})
}

func TestService_Me_RefreshesStoredProfile(t *testing.T) {
	service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer A1", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"id":"u1","email":"hr@staffsync.com","name":"Sarah M. Mitchell","department":"Human Resources","role":"HR Administrator"}}`))
	}))
	store.Seed(session.Session{
		AccessToken:  "A1",
		RefreshToken: "R1",
		User:         &session.UserProfile{ID: "u1", Name: "Sarah Mitchell"},
	})

	profile, err := service.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Sarah M. Mitchell", profile.Name)

	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "Sarah M. Mitchell", stored.User.Name)
	require.Equal(t, "R1", stored.RefreshToken)
}

func TestService_Current(t *testing.T) {
	service, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Current must not hit the network")
	}))
	store.Seed(session.Session{AccessToken: "A1", RefreshToken: "R1", User: &session.UserProfile{ID: "u1"}})

	current, err := service.Current()
	require.NoError(t, err)
	require.True(t, current.Authenticated())
	require.Equal(t, "u1", current.User.ID)
}
