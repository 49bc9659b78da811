package handler

// Dashboard statistics. Each figure is a head-only COUNT; no row payloads
// are fetched. A failure on one count fails the whole response rather
// than returning partial numbers.

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type dashboardStats struct {
	Tours        int64 `json:"tours"`
	BlogPosts    int64 `json:"blog_posts"`
	Testimonials int64 `json:"testimonials"`
	Categories   int64 `json:"categories"`
	Inquiries    int64 `json:"inquiries"`
	NewInquiries int64 `json:"new_inquiries"`
}

// GetStats handles GET /v1/admin/stats.
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		s   dashboardStats
		err error
	)
	if s.Tours, err = h.Tours.Count(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if s.BlogPosts, err = h.Posts.Count(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if s.Testimonials, err = h.Testimonials.Count(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if s.Categories, err = h.Categories.Count(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if s.Inquiries, err = h.Inquiries.Count(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if s.NewInquiries, err = h.Inquiries.CountByStatus(ctx, "new"); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, s)
}
