package handler // handler defines http handlers

import (
    "errors"       // errors provides sentinel values used in getUserID
    "strconv"      // strconv converts strings to numeric types
    "strings"      // strings provides trimming and case helpers

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/wanderium/travel-agency-api/internal/repository" // repository holds data access layer
)

// AdminHandler bundles the repositories the back-office endpoints operate
// on. One handler covers all content resources; the per-resource methods
// live in their own files.
type AdminHandler struct {
    Tours        *repository.TourRepo
    Posts        *repository.BlogPostRepo
    Testimonials *repository.TestimonialRepo
    Categories   *repository.CategoryRepo
    Inquiries    *repository.InquiryRepo
    Content      *repository.ContentRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency is nil.
func NewAdminHandler(tours *repository.TourRepo, posts *repository.BlogPostRepo, testimonials *repository.TestimonialRepo, categories *repository.CategoryRepo, inquiries *repository.InquiryRepo, content *repository.ContentRepo) *AdminHandler {
    if tours == nil || posts == nil || testimonials == nil || categories == nil || inquiries == nil || content == nil {
        panic("nil repository passed to NewAdminHandler")
    }
    return &AdminHandler{
        Tours:        tours,
        Posts:        posts,
        Testimonials: testimonials,
        Categories:   categories,
        Inquiries:    inquiries,
        Content:      content,
    }
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint64, error) {
    return strconv.ParseUint(c.Param("id"), 10, 64)
}

// enabledFilter maps the ?status= query parameter onto the tri-state
// enabled filter the repositories understand: "enabled"/"disabled" filter
// on the flag, anything else (including "all" and absence) means no filter.
func enabledFilter(c echo.Context) *bool {
    switch strings.ToLower(c.QueryParam("status")) {
    case "enabled":
        t := true
        return &t
    case "disabled":
        f := false
        return &f
    }
    return nil
}

// inquiryStatuses is the closed status set an inquiry can be in. Any
// status may move to any other; the set only guards against typos.
var inquiryStatuses = map[string]bool{
    "new":       true,
    "contacted": true,
    "booked":    true,
    "closed":    true,
}

// ValidInquiryStatus reports whether s is one of the known inquiry
// statuses (lowercased exact match).
func ValidInquiryStatus(s string) bool {
    return inquiryStatuses[s]
}

// optStr turns a bound string into a nullable column value: empty or
// whitespace-only input is stored as NULL rather than an empty string.
func optStr(s string) *string {
    s = strings.TrimSpace(s)
    if s == "" {
        return nil
    }
    return &s
}
