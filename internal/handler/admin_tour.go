package handler

// Back-office tour management. Staff see every tour regardless of the
// enabled flag; the flag only gates the public site.

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

// tourReq is the editable shape of a tour as submitted by the admin form.
type tourReq struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Location      string   `json:"location"`
	Duration      string   `json:"duration"`
	GroupSize     string   `json:"group_size"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Image         string   `json:"image"`
	CategoryID    *uint64  `json:"category_id"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Highlights    []string `json:"highlights"`
	Description   string   `json:"description"`
	TourType      string   `json:"tour_type"`
	Enabled       *bool    `json:"enabled"`
	Featured      bool     `json:"featured"`
}

// toTour validates the request and converts it into a repository record.
// It returns a user-facing message when a required field is missing.
func (req *tourReq) toTour() (*repository.Tour, string) {
	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	location := strings.TrimSpace(req.Location)
	if title == "" || slug == "" || location == "" {
		return nil, "title, slug and location are required"
	}
	tourType := strings.TrimSpace(req.TourType)
	if tourType == "" {
		tourType = "fixed-departure"
	}
	if tourType != "fixed-departure" && tourType != "customized" {
		return nil, "tour_type must be fixed-departure or customized"
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	highlights := req.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return &repository.Tour{
		Title:         title,
		Slug:          slug,
		Location:      location,
		Duration:      strings.TrimSpace(req.Duration),
		GroupSize:     strings.TrimSpace(req.GroupSize),
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         optStr(req.Image),
		CategoryID:    req.CategoryID,
		Category:      strings.TrimSpace(req.Category),
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Highlights:    highlights,
		Description:   optStr(req.Description),
		TourType:      tourType,
		Enabled:       enabled,
		Featured:      req.Featured,
	}, ""
}

// ListTours handles GET /v1/admin/tours. Supports ?q= text search,
// ?category= by id, ?type= and ?status=enabled|disabled|all.
func (h *AdminHandler) ListTours(c echo.Context) error {
	q := repository.TourQuery{
		Q:        c.QueryParam("q"),
		TourType: strings.TrimSpace(c.QueryParam("type")),
		Enabled:  enabledFilter(c),
	}
	if cat := c.QueryParam("category"); cat != "" {
		id, err := strconv.ParseUint(cat, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
		}
		q.Category = id
	}
	items, err := h.Tours.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// CreateTour handles POST /v1/admin/tours.
func (h *AdminHandler) CreateTour(c echo.Context) error {
	var req tourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	tour, msg := req.toTour()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Tours.Create(c.Request().Context(), tour); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create tour"})
	}
	return c.JSON(http.StatusCreated, tour)
}

// UpdateTour handles PUT /v1/admin/tours/:id. The whole editable record is
// replaced with the submitted draft.
func (h *AdminHandler) UpdateTour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req tourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	tour, msg := req.toTour()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Tours.Update(c.Request().Context(), id, tour); err != nil {
		switch {
		case errors.Is(err, repository.ErrTourNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	updated, err := h.Tours.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTour handles DELETE /v1/admin/tours/:id. Deleting a missing id is
// an error, not a silent success.
func (h *AdminHandler) DeleteTour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Tours.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
