// Package remote is the HTTP client for the hosted CalTrack backend: the
// authenticated profile, food catalog, and food log tables plus the
// identity endpoints. Schema enforcement and row-level authorization happen
// server-side; this client only shapes requests and surfaces failures as
// errors.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CodeHadIt/caltrack/internal/model"
)

const defaultBaseURL = "https://api.caltrack.app"

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type Account struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"access_token"`
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 12 * time.Second}
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx statuses become errors carrying the status code.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("execute %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed with status %d", method, path, resp.StatusCode)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// SignUp creates a new account. The server assigns the user id and returns
// a session token; the server-side profile row starts out empty.
func (c *Client) SignUp(ctx context.Context, email, password string) (Account, error) {
	var acct Account
	err := c.do(ctx, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	}, &acct)
	if err != nil {
		return Account{}, err
	}
	return acct, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Account, error) {
	var acct Account
	err := c.do(ctx, http.MethodPost, "/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	}, &acct)
	if err != nil {
		return Account{}, err
	}
	return acct, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/signout", nil, nil)
}

// CurrentUser resolves the session token to an account, or errors when the
// session is missing or expired.
func (c *Client) CurrentUser(ctx context.Context) (Account, error) {
	var acct Account
	if c.Token == "" {
		return Account{}, fmt.Errorf("no active session")
	}
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, &acct); err != nil {
		return Account{}, err
	}
	return acct, nil
}

func (c *Client) Profile(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID), nil, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// UpdateProfile patches the set fields of updates onto the remote profile
// row. Zero-valued fields are omitted from the patch.
func (c *Client) UpdateProfile(ctx context.Context, userID string, updates model.Profile) error {
	patch := map[string]any{}
	if updates.HeightCm != 0 {
		patch["height_cm"] = updates.HeightCm
	}
	if updates.WeightKg != 0 {
		patch["weight_kg"] = updates.WeightKg
	}
	if updates.Age != 0 {
		patch["age"] = updates.Age
	}
	if updates.Gender != "" {
		patch["gender"] = updates.Gender
	}
	if updates.ActivityLevel != "" {
		patch["activity_level"] = updates.ActivityLevel
	}
	if updates.Goal != "" {
		patch["goal"] = updates.Goal
	}
	if len(patch) == 0 {
		return nil
	}
	return c.do(ctx, http.MethodPatch, "/profiles/"+url.PathEscape(userID), patch, nil)
}

// Foods returns the default catalog rows unioned with the user's private
// custom foods.
func (c *Client) Foods(ctx context.Context, userID string) ([]model.FoodItem, error) {
	var foods []model.FoodItem
	path := "/food_items?user_id=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *Client) InsertFood(ctx context.Context, food model.FoodItem) (model.FoodItem, error) {
	food.IsDefault = false
	var created model.FoodItem
	if err := c.do(ctx, http.MethodPost, "/food_items", food, &created); err != nil {
		return model.FoodItem{}, err
	}
	return created, nil
}

func (c *Client) Logs(ctx context.Context, userID, date string) ([]model.FoodLog, error) {
	var logs []model.FoodLog
	path := fmt.Sprintf("/food_logs?user_id=%s&date=%s", url.QueryEscape(userID), url.QueryEscape(date))
	if err := c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// LogsInRange fetches every log between from and to (inclusive) in one
// query, so a weekly view costs one round-trip instead of seven.
func (c *Client) LogsInRange(ctx context.Context, userID, from, to string) ([]model.FoodLog, error) {
	var logs []model.FoodLog
	path := fmt.Sprintf("/food_logs?user_id=%s&from=%s&to=%s",
		url.QueryEscape(userID), url.QueryEscape(from), url.QueryEscape(to))
	if err := c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) InsertLog(ctx context.Context, log model.FoodLog) (model.FoodLog, error) {
	var created model.FoodLog
	if err := c.do(ctx, http.MethodPost, "/food_logs", log, &created); err != nil {
		return model.FoodLog{}, err
	}
	return created, nil
}

func (c *Client) DeleteLog(ctx context.Context, logID string) error {
	return c.do(ctx, http.MethodDelete, "/food_logs/"+url.PathEscape(logID), nil, nil)
}

// RequestAccountDeletion asks the server to generate a 24-hour deletion
// token and email it to the account holder.
func (c *Client) RequestAccountDeletion(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/delete-account", nil, nil)
}

// ConfirmAccountDeletion redeems an emailed deletion token. Expiry is
// validated server-side; the token is consumed regardless of outcome.
func (c *Client) ConfirmAccountDeletion(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/confirm-delete?token="+url.QueryEscape(token), nil, nil)
}
