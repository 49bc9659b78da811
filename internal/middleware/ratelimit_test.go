package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/config"
)

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	newCtx := func() echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", nil)
		req.RemoteAddr = "203.0.113.9:51000"
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/inquiries")
		return c
	}

	cases := []struct {
		strategy string
		contains []string
	}{
		{"ip", []string{"ip", "203.0.113.9"}},
		{"route", []string{"route", "POST /v1/inquiries"}},
		{"ip_route", []string{"ip", "203.0.113.9", "route", "POST /v1/inquiries"}},
		{"user", []string{"user", "anon"}},
	}
	for _, tc := range cases {
		t.Run(tc.strategy, func(t *testing.T) {
			cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: tc.strategy}
			key := buildRateKey(cfg, newCtx())
			if !strings.HasPrefix(key, "rl:") {
				t.Errorf("key %q missing prefix", key)
			}
			for _, part := range tc.contains {
				if !strings.Contains(key, part) {
					t.Errorf("key %q missing %q", key, part)
				}
			}
		})
	}
}

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
	}{
		{int64(5), 5},
		{int(3), 3},
		{float64(7.9), 7},
		{"12", 12},
		{"junk", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDisabledLimiterIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Error("disabled limiter should not emit rate-limit headers")
	}
}
