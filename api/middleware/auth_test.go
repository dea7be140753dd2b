package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/auth"
	"github.com/loyaltyworks/rewards-backend/pkg/config"
)

func sessionTestConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:            "test-secret",
		Issuer:            "rewards-test",
		ExpirationMinutes: 60,
		CookieName:        "rewards_session",
	}
}

func TestSessionAuthRejectsMissingCookie(t *testing.T) {
	cfg := sessionTestConfig()
	handlerCalled := false
	handler := SessionAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if handlerCalled {
		t.Fatalf("handler should not run without a session")
	}
}

func TestSessionAuthRejectsTamperedToken(t *testing.T) {
	cfg := sessionTestConfig()
	otherCfg := cfg
	otherCfg.Secret = "different-secret"

	token, err := auth.MintSessionToken(otherCfg, time.Now().UTC(), auth.SessionTokenPayload{CustomerID: 7})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := SessionAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: token})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestSessionAuthInjectsCustomerID(t *testing.T) {
	cfg := sessionTestConfig()
	token, err := auth.MintSessionToken(cfg, time.Now().UTC(), auth.SessionTokenPayload{CustomerID: 42})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	var gotCustomerID uint
	handler := SessionAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCustomerID = CustomerIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: token})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotCustomerID != 42 {
		t.Fatalf("expected customer id 42 got %d", gotCustomerID)
	}
}
