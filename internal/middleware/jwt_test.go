package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/utils"
)

const testSecret = "unit-test-secret"

func runJWTAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/tours", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, c
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runJWTAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	rec, _ := runJWTAuth(t, "Basic abc123")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthInvalidSignature(t *testing.T) {
	at, err := utils.NewAccessToken("some-other-secret", 7, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, _ := runJWTAuth(t, "Bearer "+at.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 7, "EDITOR", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, c := runJWTAuth(t, "Bearer "+at.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if role, _ := c.Get("role").(string); role != "EDITOR" {
		t.Errorf("role in context = %v, want EDITOR", c.Get("role"))
	}
	if sub, _ := c.Get("user_id").(float64); uint64(sub) != 7 {
		t.Errorf("user_id in context = %v, want 7", c.Get("user_id"))
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		allowed  []string
		role     interface{}
		wantCode int
	}{
		{"admin allowed", []string{"ADMIN", "EDITOR"}, "ADMIN", http.StatusOK},
		{"editor allowed", []string{"ADMIN", "EDITOR"}, "EDITOR", http.StatusOK},
		{"editor rejected on admin-only", []string{"ADMIN"}, "EDITOR", http.StatusForbidden},
		{"unknown role rejected", []string{"ADMIN", "EDITOR"}, "VIEWER", http.StatusForbidden},
		{"role missing", []string{"ADMIN"}, nil, http.StatusForbidden},
		{"role wrong type", []string{"ADMIN"}, 42, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}

			h := RequireRole(tc.allowed...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantCode)
			}
		})
	}
}
