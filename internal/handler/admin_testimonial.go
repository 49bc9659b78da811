package handler

// Back-office testimonial management. Name and text are required; the
// rating must be a whole number between 1 and 5.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

type testimonialReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Tour     string `json:"tour"`
	Image    string `json:"image"`
	Enabled  *bool  `json:"enabled"`
}

func (req *testimonialReq) toTestimonial() (*repository.Testimonial, string) {
	name := strings.TrimSpace(req.Name)
	text := strings.TrimSpace(req.Text)
	if name == "" || text == "" {
		return nil, "name and text are required"
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, "rating must be between 1 and 5"
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	return &repository.Testimonial{
		Name:     name,
		Location: strings.TrimSpace(req.Location),
		Rating:   req.Rating,
		Text:     text,
		Tour:     optStr(req.Tour),
		Image:    optStr(req.Image),
		Enabled:  enabled,
	}, ""
}

// ListTestimonials handles GET /v1/admin/testimonials with ?q= and ?status=.
func (h *AdminHandler) ListTestimonials(c echo.Context) error {
	items, err := h.Testimonials.Search(c.Request().Context(), c.QueryParam("q"), enabledFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// CreateTestimonial handles POST /v1/admin/testimonials.
func (h *AdminHandler) CreateTestimonial(c echo.Context) error {
	var req testimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t, msg := req.toTestimonial()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Testimonials.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create testimonial"})
	}
	return c.JSON(http.StatusCreated, t)
}

// UpdateTestimonial handles PUT /v1/admin/testimonials/:id.
func (h *AdminHandler) UpdateTestimonial(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req testimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t, msg := req.toTestimonial()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Testimonials.Update(c.Request().Context(), id, t); err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Testimonials.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTestimonial handles DELETE /v1/admin/testimonials/:id.
func (h *AdminHandler) DeleteTestimonial(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Testimonials.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
