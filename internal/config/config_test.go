package config

import (
	"testing"
	"time"
)

func TestParseExpiresIn(t *testing.T) {
	cases := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{"30s", 30 * time.Second, false},
		{"15m", 15 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"3600", 3600 * time.Second, false},
		{" 24h ", 24 * time.Hour, false},
		{"2H", 2 * time.Hour, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5m", 0, true},
		{"0h", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseExpiresIn(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseExpiresIn(%q) want error got %v", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseExpiresIn(%q) failed: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseExpiresIn(%q) want %v got %v", tc.raw, tc.want, got)
		}
	}
}

func TestTokenLifetimeFallback(t *testing.T) {
	cfg := JWTConfig{ExpiresIn: "bogus"}
	if got := cfg.TokenLifetime(); got != DefaultTokenLifetime {
		t.Fatalf("invalid expires_in should fall back, want %v got %v", DefaultTokenLifetime, got)
	}
	cfg = JWTConfig{ExpiresIn: "12h"}
	if got := cfg.TokenLifetime(); got != 12*time.Hour {
		t.Fatalf("token lifetime want 12h got %v", got)
	}
}

func TestSessionTimeout(t *testing.T) {
	cfg := JWTConfig{ExpiresIn: "24h", SessionTimeoutSeconds: 1800}
	if got := cfg.SessionTimeout(); got != 30*time.Minute {
		t.Fatalf("session timeout want 30m got %v", got)
	}
	cfg = JWTConfig{ExpiresIn: "24h"}
	if got := cfg.SessionTimeout(); got != 24*time.Hour {
		t.Fatalf("session timeout should fall back to token lifetime, got %v", got)
	}
}
