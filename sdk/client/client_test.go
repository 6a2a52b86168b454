package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}
	if client.config.VerifyAttempts != 10 || client.config.VerifyDelay != 2*time.Second {
		t.Errorf("Expected 10 attempts every 2s, got %d every %v", client.config.VerifyAttempts, client.config.VerifyDelay)
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com/",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected trimmed BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestOnboardingCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/onboarding/check" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(OnboardingStatus{HasOrganization: true, OrganizationID: "org-1"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})
	status, err := client.OnboardingCheck(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !status.HasOrganization || status.HasActiveSubscription || status.OrganizationID != "org-1" {
		t.Errorf("Unexpected status %+v", status)
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error":"Validation failed","details":["Name failed on required"]}`))
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.CreateOrganization(context.Background(), "Acme")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Validation failed" || len(apiErr.Details) != 1 {
		t.Errorf("Unexpected error %+v", apiErr)
	}

	if _, err := client.CreateOrganization(context.Background(), " "); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestStartCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.SeatCount != 12 || req.PlanType != "annual" {
			t.Errorf("Unexpected request %+v", req)
		}
		json.NewEncoder(w).Encode(CheckoutResponse{URL: "https://checkout.test/cs_1", SessionID: "cs_1"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	resp, err := client.StartCheckout(context.Background(), &CheckoutRequest{SeatCount: 12, PlanType: "annual"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.SessionID != "cs_1" {
		t.Errorf("Expected cs_1, got %s", resp.SessionID)
	}

	if _, err := client.StartCheckout(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

// verifyServer fails every call with failStatus when it is set. Otherwise it
// reports an inactive subscription until call number activeAt.
func verifyServer(t *testing.T, activeAt int32, failStatus int, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stripe/verify-session" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		n := atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")

		if failStatus != 0 {
			w.WriteHeader(failStatus)
			w.Write([]byte(`{"ok":false,"error":"failed"}`))
			return
		}

		active := activeAt > 0 && n >= activeAt
		json.NewEncoder(w).Encode(VerifySessionResponse{Ok: active, Subscription: Subscription{Active: active}})
	}))
}

func TestPollVerification(t *testing.T) {
	t.Run("stops on success", func(t *testing.T) {
		var calls int32
		server := verifyServer(t, 3, 0, &calls)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL, VerifyDelay: time.Millisecond})
		resp, err := client.PollVerification(context.Background(), "cs_1")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !resp.Subscription.Active || atomic.LoadInt32(&calls) != 3 {
			t.Errorf("Expected success on third call, got %d calls", calls)
		}
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		var calls int32
		server := verifyServer(t, 0, 0, &calls)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL, VerifyAttempts: 4, VerifyDelay: time.Millisecond})
		_, err := client.PollVerification(context.Background(), "cs_1")
		if !errors.Is(err, ErrVerificationExhausted) {
			t.Fatalf("Expected ErrVerificationExhausted, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 4 {
			t.Errorf("Expected 4 calls, got %d", calls)
		}
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls int32
		server := verifyServer(t, 0, http.StatusInternalServerError, &calls)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL, VerifyAttempts: 3, VerifyDelay: time.Millisecond})
		_, err := client.PollVerification(context.Background(), "cs_1")
		if !errors.Is(err, ErrVerificationExhausted) {
			t.Fatalf("Expected ErrVerificationExhausted, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 3 {
			t.Errorf("Expected 3 calls, got %d", calls)
		}
	})

	t.Run("gives up on forbidden", func(t *testing.T) {
		var calls int32
		server := verifyServer(t, 0, http.StatusForbidden, &calls)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL, VerifyDelay: time.Millisecond})
		_, err := client.PollVerification(context.Background(), "cs_1")
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusForbidden {
			t.Fatalf("Expected 403 APIError, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Errorf("Expected 1 call, got %d", calls)
		}
	})

	t.Run("honours cancellation", func(t *testing.T) {
		var calls int32
		server := verifyServer(t, 0, 0, &calls)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL, VerifyDelay: time.Hour})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.PollVerification(ctx, "cs_1")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("Expected deadline exceeded, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Errorf("Expected 1 call, got %d", calls)
		}
	})
}

func TestWatchOnboardingStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(OnboardingStatus{HasOrganization: true, HasActiveSubscription: n >= 2})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates []bool
	err := client.WatchOnboardingStatus(ctx, 5*time.Millisecond, func(s *OnboardingStatus, err error) {
		if err != nil {
			t.Errorf("Unexpected error %v", err)
			return
		}
		updates = append(updates, s.HasActiveSubscription)
		if s.HasActiveSubscription {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(updates) != 2 || updates[0] || !updates[1] {
		t.Errorf("Unexpected updates %v", updates)
	}
}
