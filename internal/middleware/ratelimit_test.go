package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/config"
)

func rateContext(t *testing.T, userID any) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.RemoteAddr = "203.0.113.7:4711"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/rooms")
	if userID != nil {
		c.Set("user_id", userID)
	}
	return c
}

func TestBuildRateKeyDefaultStrategyPreAuth(t *testing.T) {
	// The limiter runs before JWTAuth, so no user id is in the context yet.
	// The default strategy must not depend on one.
	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "")
	cfg := config.LoadRateLimitConfig()
	if cfg.KeyStrategy != "ip_route" {
		t.Fatalf("default key strategy = %q, want ip_route", cfg.KeyStrategy)
	}

	key := buildRateKey(cfg, rateContext(t, nil))
	if !strings.Contains(key, "ip:203.0.113.7") {
		t.Errorf("key %q misses the client IP", key)
	}
	if !strings.Contains(key, "route:GET /api/rooms") {
		t.Errorf("key %q misses the route", key)
	}
	if strings.Contains(key, "anon") {
		t.Errorf("key %q carries a user component before authentication", key)
	}
}

func TestBuildRateKeyUserStrategy(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}

	key := buildRateKey(cfg, rateContext(t, uint64(42)))
	if !strings.Contains(key, "user:42") {
		t.Errorf("key %q misses the authenticated user", key)
	}

	// Same strategy without an authenticated caller falls back to "anon".
	key = buildRateKey(cfg, rateContext(t, nil))
	if !strings.Contains(key, "user:anon") {
		t.Errorf("key %q should carry the anon marker", key)
	}
}

func TestBuildRateKeyStrategies(t *testing.T) {
	c := rateContext(t, uint64(7))
	cases := []struct {
		strategy string
		want     string
	}{
		{"ip", "rl:ip:203.0.113.7"},
		{"route", "rl:route:GET /api/rooms"},
		{"ip_route", "rl:ip:203.0.113.7:route:GET /api/rooms"},
		{"user", "rl:user:7"},
	}
	for _, tc := range cases {
		t.Run(tc.strategy, func(t *testing.T) {
			cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: tc.strategy}
			if got := buildRateKey(cfg, c); got != tc.want {
				t.Errorf("buildRateKey = %q, want %q", got, tc.want)
			}
		})
	}
}
