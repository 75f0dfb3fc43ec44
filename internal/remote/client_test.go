package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeHadIt/caltrack/internal/model"
)

func TestSignUpParsesAccount(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/signup" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode signup body: %v", err)
		}
		if in["email"] != "a@b.c" {
			t.Errorf("unexpected email %q", in["email"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"u-1","email":"a@b.c","access_token":"tok"}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	acct, err := c.SignUp(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if acct.UserID != "u-1" || acct.Token != "tok" {
		t.Fatalf("unexpected account %+v", acct)
	}
}

func TestAuthorizationHeaderSent(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"u-1","email":"a@b.c"}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Token: "tok", HTTPClient: ts.Client()}
	if _, err := c.CurrentUser(context.Background()); err != nil {
		t.Fatalf("current user: %v", err)
	}
}

func TestCurrentUserWithoutToken(t *testing.T) {
	t.Parallel()

	c := &Client{BaseURL: "http://unused.invalid"}
	if _, err := c.CurrentUser(context.Background()); err == nil {
		t.Fatalf("expected error without a session token")
	}
}

func TestFoodsAndLogsQueries(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/food_items":
			if r.URL.Query().Get("user_id") != "u-1" {
				t.Errorf("missing user filter: %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`[{"id":"default-0","name":"Basmati Rice","category_id":"cat-carbs","calories_per_100g":150,"is_default":true}]`))
		case r.URL.Path == "/food_logs" && r.URL.Query().Get("date") != "":
			_, _ = w.Write([]byte(`[{"id":"l-1","user_id":"u-1","food_item_id":"default-0","weight_grams":150,"meal_time":"lunch","date":"2026-08-30"}]`))
		case r.URL.Path == "/food_logs":
			if r.URL.Query().Get("from") == "" || r.URL.Query().Get("to") == "" {
				t.Errorf("range query missing bounds: %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Token: "tok", HTTPClient: ts.Client()}
	ctx := context.Background()

	foods, err := c.Foods(ctx, "u-1")
	if err != nil {
		t.Fatalf("foods: %v", err)
	}
	if len(foods) != 1 || !foods[0].IsDefault {
		t.Fatalf("unexpected foods %+v", foods)
	}

	logs, err := c.Logs(ctx, "u-1", "2026-08-30")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 1 || logs[0].MealTime != model.MealLunch {
		t.Fatalf("unexpected logs %+v", logs)
	}

	if _, err := c.LogsInRange(ctx, "u-1", "2026-08-24", "2026-08-30"); err != nil {
		t.Fatalf("logs in range: %v", err)
	}
}

func TestInsertFoodForcesNonDefault(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in model.FoodItem
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode food: %v", err)
		}
		if in.IsDefault {
			t.Errorf("client must never insert default foods")
		}
		in.ID = "srv-1"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Token: "tok", HTTPClient: ts.Client()}
	created, err := c.InsertFood(context.Background(), model.FoodItem{Name: "Jollof Rice", IsDefault: true})
	if err != nil {
		t.Fatalf("insert food: %v", err)
	}
	if created.ID != "srv-1" {
		t.Fatalf("expected server-assigned id, got %+v", created)
	}
}

func TestNon2xxBecomesError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Token: "bad", HTTPClient: ts.Client()}
	if _, err := c.Logs(context.Background(), "u-1", "2026-08-30"); err == nil {
		t.Fatalf("expected error for 401 response")
	}
}
