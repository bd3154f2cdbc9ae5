// Package client holds the app-side half of ChugCheck: an HTTP client
// for the backend, the session state machine, the optimistic today
// tracker, the month-grid history loader, and the device-local store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// ErrNotFound marks an absent remote document. Callers treat it as a
// default state (no profile yet, no intake logged), not a failure.
var ErrNotFound = errors.New("not found")

// AuthError is a rejected credential or auth-transport failure.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type Profile struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	WeightLbs   float64 `json:"weight_lbs"`
	DailyGoalOz int     `json:"daily_goal_oz"`
	IsNewUser   bool    `json:"is_new_user"`
}

type API struct {
	BaseURL    string
	HTTPClient *http.Client

	token  string
	userID string
}

func (a *API) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return &http.Client{Timeout: 12 * time.Second}
}

func (a *API) baseURL() string {
	if a.BaseURL != "" {
		return a.BaseURL
	}
	return defaultBaseURL
}

// SetToken installs a previously issued token, e.g. one kept between
// CLI invocations.
func (a *API) SetToken(token string) { a.token = token }

func (a *API) Token() string { return a.token }

// CurrentUserID returns the signed-in user's opaque id, or "" when
// signed out.
func (a *API) CurrentUserID() string { return a.userID }

// SignOut drops the local credentials. Nothing is revoked server-side.
func (a *API) SignOut() {
	a.token = ""
	a.userID = ""
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL()+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthError{Message: apiErrorMessage(resp)}
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: %s", method, path, apiErrorMessage(resp))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func apiErrorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status
}

func (a *API) SignUp(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	if err := a.do(ctx, http.MethodPost, "/auth/register", in, nil); err != nil {
		return &AuthError{Message: err.Error()}
	}
	return nil
}

func (a *API) SignIn(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	if err := a.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return "", authErr
		}
		return "", &AuthError{Message: err.Error()}
	}
	a.token = out.Token
	a.userID = out.UserID
	return out.UserID, nil
}

func (a *API) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := a.do(ctx, http.MethodGet, "/user/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetWeight submits a new weight and returns the recomputed daily goal.
func (a *API) SetWeight(ctx context.Context, weightLbs float64) (int, error) {
	in := map[string]float64{"weight_lbs": weightLbs}
	var out struct {
		DailyGoalOz int `json:"daily_goal_oz"`
	}
	if err := a.do(ctx, http.MethodPut, "/user/weight", in, &out); err != nil {
		return 0, err
	}
	return out.DailyGoalOz, nil
}

func (a *API) CompleteOnboarding(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/user/onboarded", nil, nil)
}

func (a *API) GetDay(ctx context.Context) (int, error) {
	var out struct {
		AmountOz int `json:"amount_oz"`
	}
	if err := a.do(ctx, http.MethodGet, "/intake/today", nil, &out); err != nil {
		return 0, err
	}
	return out.AmountOz, nil
}

// SetDay writes the day's cumulative total, replacing whatever was
// stored before.
func (a *API) SetDay(ctx context.Context, amountOz int) error {
	in := map[string]int{"amount_oz": amountOz}
	return a.do(ctx, http.MethodPut, "/intake/today", in, nil)
}

func (a *API) ResetDay(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/intake/reset", nil, nil)
}

// QueryMonth fetches one month's logged days keyed by local-midnight
// date. Unlogged days are absent.
func (a *API) QueryMonth(ctx context.Context, year int, month time.Month) (map[time.Time]int, error) {
	path := fmt.Sprintf("/intake/history?year=%d&month=%d", year, int(month))
	var out struct {
		Days map[string]int `json:"days"`
	}
	if err := a.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	days := make(map[time.Time]int, len(out.Days))
	for s, oz := range out.Days {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse history day %q: %w", s, err)
		}
		days[d] = oz
	}
	return days, nil
}
