package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/config"
)

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := config.SessionConfig{
		Secret:            "secret",
		Issuer:            "rewards",
		ExpirationMinutes: 30,
	}
	now := time.Now().UTC()

	payload := SessionTokenPayload{CustomerID: 42}

	token, err := MintSessionToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	claims, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}

	if claims.CustomerID != 42 {
		t.Fatalf("expected customer_id 42, got %d", claims.CustomerID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestParseSessionTokenInvalidSignature(t *testing.T) {
	cfg := config.SessionConfig{
		Secret:            "secret",
		Issuer:            "rewards",
		ExpirationMinutes: 10,
	}

	token, err := MintSessionToken(cfg, time.Now(), SessionTokenPayload{CustomerID: 1})
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	if _, err = ParseSessionToken(cfg, token+"x"); err == nil {
		t.Fatal("expected invalid signature error")
	}
}

func TestParseSessionTokenExpired(t *testing.T) {
	cfg := config.SessionConfig{
		Secret:            "secret",
		Issuer:            "rewards",
		ExpirationMinutes: 15,
	}
	now := time.Now().Add(-time.Hour)

	token, err := MintSessionToken(cfg, now, SessionTokenPayload{CustomerID: 7})
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	_, err = ParseSessionToken(cfg, token)
	if err == nil {
		t.Fatal("expected expiration error")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMintSessionTokenMissingCustomer(t *testing.T) {
	cfg := config.SessionConfig{
		Secret:            "secret",
		Issuer:            "rewards",
		ExpirationMinutes: 5,
	}

	if _, err := MintSessionToken(cfg, time.Now(), SessionTokenPayload{}); err == nil {
		t.Fatal("expected missing customer error")
	}
}
