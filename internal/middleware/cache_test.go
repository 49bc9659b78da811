package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Set("X-Total", "12")
	body := []byte(`{"tours":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decodePayload reported failure")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" || gotHdr.Get("X-Total") != "12" {
		t.Errorf("headers not preserved: %v", gotHdr)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0, 0, 0, 200},                // shorter than the fixed prefix
		{0, 0, 0, 200, 0, 0, 0, 99},   // header length past end of buffer
		{0, 0, 0, 200, 0, 0, 0, 2, 1}, // header bytes cut off
	}
	for i, bs := range cases {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("case %d: decodePayload accepted malformed input %v", i, bs)
		}
	}
}

func TestCacheKeyStrategies(t *testing.T) {
	e := echo.New()
	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/tours")
		return c
	}
	base := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	k1 := cacheKeyFrom(base, newCtx("/v1/tours?category=1"))
	k2 := cacheKeyFrom(base, newCtx("/v1/tours?category=2"))
	if k1 == k2 {
		t.Error("route_query keys must differ when the query differs")
	}

	routeOnly := base
	routeOnly.KeyStrategy = "route"
	k3 := cacheKeyFrom(routeOnly, newCtx("/v1/tours?category=1"))
	k4 := cacheKeyFrom(routeOnly, newCtx("/v1/tours?category=2"))
	if k3 != k4 {
		t.Error("route strategy must ignore the query string")
	}

	if k1 != cacheKeyFrom(base, newCtx("/v1/tours?category=1")) {
		t.Error("identical requests must map to the same key")
	}
}

func TestDisabledCacheIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tours", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !called {
		t.Error("next handler was not invoked")
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Error("disabled cache should not set X-Cache")
	}
}
