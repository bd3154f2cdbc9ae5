package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInStoresTokenAndUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "a@b.com", in["email"])

		json.NewEncoder(w).Encode(map[string]string{"token": "tok123", "user_id": "u42"})
	}))
	defer srv.Close()

	api := &API{BaseURL: srv.URL}
	userID, err := api.SignIn(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u42", userID)
	assert.Equal(t, "u42", api.CurrentUserID())
	assert.Equal(t, "tok123", api.Token())
}

func TestSignInRejectedIsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))
	defer srv.Close()

	api := &API{BaseURL: srv.URL}
	_, err := api.SignIn(context.Background(), "a@b.com", "bad")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Message, "Invalid email or password")
	assert.Empty(t, api.CurrentUserID())
}

func TestGetProfileAbsentIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	api := &API{BaseURL: srv.URL}
	_, err := api.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]int{"amount_oz": 32})
	}))
	defer srv.Close()

	api := &API{BaseURL: srv.URL}
	api.SetToken("tok123")

	amount, err := api.GetDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 32, amount)
}

func TestQueryMonthParsesSparseDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		assert.Equal(t, "4", r.URL.Query().Get("month"))
		json.NewEncoder(w).Encode(map[string]any{
			"days": map[string]int{"2026-04-01": 64, "2026-04-15": 80},
		})
	}))
	defer srv.Close()

	api := &API{BaseURL: srv.URL}
	days, err := api.QueryMonth(context.Background(), 2026, time.April)
	require.NoError(t, err)

	require.Len(t, days, 2)
	assert.Equal(t, 64, days[time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)])
	assert.Equal(t, 80, days[time.Date(2026, time.April, 15, 0, 0, 0, 0, time.Local)])
}

func TestSignOutDropsCredentialsLocally(t *testing.T) {
	api := &API{}
	api.SetToken("tok123")
	api.SignOut()
	assert.Empty(t, api.Token())
	assert.Empty(t, api.CurrentUserID())
}
