package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestTourReqToTour(t *testing.T) {
	base := func() tourReq {
		return tourReq{Title: "Everest Base Camp", Slug: "everest-base-camp", Location: "Nepal", Price: 1499}
	}

	t.Run("valid defaults", func(t *testing.T) {
		req := base()
		tour, msg := req.toTour()
		if msg != "" {
			t.Fatalf("unexpected validation message %q", msg)
		}
		if tour.TourType != "fixed-departure" {
			t.Errorf("tour_type default = %q, want fixed-departure", tour.TourType)
		}
		if !tour.Enabled {
			t.Error("enabled should default to true")
		}
		if tour.Highlights == nil {
			t.Error("highlights should never be nil")
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		for _, strip := range []func(*tourReq){
			func(r *tourReq) { r.Title = "  " },
			func(r *tourReq) { r.Slug = "" },
			func(r *tourReq) { r.Location = "" },
		} {
			req := base()
			strip(&req)
			if _, msg := req.toTour(); msg == "" {
				t.Errorf("expected validation failure for %+v", req)
			}
		}
	})

	t.Run("tour type enum", func(t *testing.T) {
		req := base()
		req.TourType = "customized"
		if _, msg := req.toTour(); msg != "" {
			t.Errorf("customized should be accepted, got %q", msg)
		}
		req.TourType = "self-guided"
		if _, msg := req.toTour(); msg == "" {
			t.Error("unknown tour_type should be rejected")
		}
	})

	t.Run("explicit disabled survives", func(t *testing.T) {
		off := false
		req := base()
		req.Enabled = &off
		tour, msg := req.toTour()
		if msg != "" {
			t.Fatalf("unexpected validation message %q", msg)
		}
		if tour.Enabled {
			t.Error("enabled=false must not be overridden by the default")
		}
	})

	t.Run("empty strings become null columns", func(t *testing.T) {
		req := base()
		req.Image = "  "
		req.Description = ""
		tour, _ := req.toTour()
		if tour.Image != nil || tour.Description != nil {
			t.Error("blank image/description should map to nil")
		}
	})
}

func TestCategoryReqSlugDerivation(t *testing.T) {
	t.Run("create derives slug from name", func(t *testing.T) {
		req := categoryReq{Name: "Beach & Island Getaways"}
		cat, msg := req.toCategory(true)
		if msg != "" {
			t.Fatalf("unexpected validation message %q", msg)
		}
		if cat.Slug != "beach-island-getaways" {
			t.Errorf("slug = %q, want beach-island-getaways", cat.Slug)
		}
	})

	t.Run("create keeps explicit slug", func(t *testing.T) {
		req := categoryReq{Name: "Trekking", Slug: "treks"}
		cat, _ := req.toCategory(true)
		if cat.Slug != "treks" {
			t.Errorf("slug = %q, want treks", cat.Slug)
		}
	})

	t.Run("update never derives", func(t *testing.T) {
		req := categoryReq{Name: "Trekking"}
		if _, msg := req.toCategory(false); msg == "" {
			t.Error("update with empty slug should fail, not re-derive from name")
		}
	})

	t.Run("name required", func(t *testing.T) {
		req := categoryReq{Slug: "orphan"}
		if _, msg := req.toCategory(true); msg == "" {
			t.Error("missing name should fail validation")
		}
	})
}

func TestTestimonialReqValidation(t *testing.T) {
	cases := []struct {
		name   string
		req    testimonialReq
		wantOK bool
	}{
		{"valid", testimonialReq{Name: "Priya", Text: "Amazing trip", Rating: 5}, true},
		{"rating low", testimonialReq{Name: "Priya", Text: "ok", Rating: 0}, false},
		{"rating high", testimonialReq{Name: "Priya", Text: "ok", Rating: 6}, false},
		{"missing text", testimonialReq{Name: "Priya", Rating: 4}, false},
		{"missing name", testimonialReq{Text: "ok", Rating: 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, msg := tc.req.toTestimonial()
			if (msg == "") != tc.wantOK {
				t.Errorf("toTestimonial() msg = %q, wantOK = %v", msg, tc.wantOK)
			}
		})
	}
}

func TestValidateInquiry(t *testing.T) {
	cases := []struct {
		name   string
		req    inquiryReq
		wantOK bool
	}{
		{"valid minimal", inquiryReq{Name: "Alex", Email: "alex@example.com"}, true},
		{"missing name", inquiryReq{Email: "alex@example.com"}, false},
		{"missing email", inquiryReq{Name: "Alex"}, false},
		{"bad email", inquiryReq{Name: "Alex", Email: "not-an-address"}, false},
		{"whitespace name", inquiryReq{Name: "   ", Email: "alex@example.com"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := validateInquiry(&tc.req)
			if (msg == "") != tc.wantOK {
				t.Errorf("validateInquiry() = %q, wantOK = %v", msg, tc.wantOK)
			}
		})
	}
}

func TestValidInquiryStatus(t *testing.T) {
	for _, s := range []string{"new", "contacted", "booked", "closed"} {
		if !ValidInquiryStatus(s) {
			t.Errorf("%q should be a valid status", s)
		}
	}
	for _, s := range []string{"", "NEW", "archived", "all"} {
		if ValidInquiryStatus(s) {
			t.Errorf("%q should not be a valid status", s)
		}
	}
}

func TestEnabledFilter(t *testing.T) {
	e := echo.New()
	get := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	if v := enabledFilter(get("/v1/admin/tours?status=enabled")); v == nil || !*v {
		t.Error("status=enabled should filter to true")
	}
	if v := enabledFilter(get("/v1/admin/tours?status=Disabled")); v == nil || *v {
		t.Error("status=Disabled should filter to false, case-insensitively")
	}
	if v := enabledFilter(get("/v1/admin/tours?status=all")); v != nil {
		t.Error("status=all should mean no filter")
	}
	if v := enabledFilter(get("/v1/admin/tours")); v != nil {
		t.Error("absent status should mean no filter")
	}
}

func TestOptStr(t *testing.T) {
	if optStr("") != nil || optStr("   ") != nil {
		t.Error("blank input should map to nil")
	}
	if v := optStr("  hello "); v == nil || *v != "hello" {
		t.Errorf("optStr should trim, got %v", v)
	}
}

func TestGetUserID(t *testing.T) {
	e := echo.New()
	newCtx := func(v interface{}) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if v != nil {
			c.Set("user_id", v)
		}
		return c
	}

	cases := []struct {
		name    string
		val     interface{}
		want    uint64
		wantErr bool
	}{
		{"float64 from jwt claims", float64(9), 9, false},
		{"uint64", uint64(4), 4, false},
		{"string digits", "17", 17, false},
		{"string junk", "abc", 0, true},
		{"missing", nil, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := getUserID(newCtx(tc.val))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("getUserID = %d, want %d", got, tc.want)
			}
		})
	}
}
