// Package handler exposes HTTP handlers for both the back office and the
// public marketing site. This file defines the public browsing API: the
// routes behind the tour catalog, blog, testimonial carousel and content
// sections. Only records with the enabled flag set are ever returned here;
// disabling a record in the admin panel removes it from these routes
// without deleting anything.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

// PublicHandler aggregates the repositories needed for unauthenticated
// reads.
type PublicHandler struct {
	Tours        *repository.TourRepo
	Posts        *repository.BlogPostRepo
	Testimonials *repository.TestimonialRepo
	Categories   *repository.CategoryRepo
	Content      *repository.ContentRepo
}

func NewPublicHandler(tours *repository.TourRepo, posts *repository.BlogPostRepo, testimonials *repository.TestimonialRepo, categories *repository.CategoryRepo, content *repository.ContentRepo) *PublicHandler {
	if tours == nil || posts == nil || testimonials == nil || categories == nil || content == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{
		Tours:        tours,
		Posts:        posts,
		Testimonials: testimonials,
		Categories:   categories,
		Content:      content,
	}
}

// ListTours handles GET /v1/tours. Optional filters: ?category=<id>,
// ?type=fixed-departure|customized and ?featured=true.
func (h *PublicHandler) ListTours(c echo.Context) error {
	enabled := true
	q := repository.TourQuery{
		TourType: strings.TrimSpace(c.QueryParam("type")),
		Enabled:  &enabled,
	}
	if cat := c.QueryParam("category"); cat != "" {
		id, err := strconv.ParseUint(cat, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
		}
		q.Category = id
	}
	if strings.EqualFold(c.QueryParam("featured"), "true") {
		f := true
		q.Featured = &f
	}
	items, err := h.Tours.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetTour handles GET /v1/tours/:slug. Each successful read bumps the
// tour's view counter; a failed bump is logged and otherwise ignored so a
// statistics hiccup never breaks the page.
func (h *PublicHandler) GetTour(c echo.Context) error {
	slug := c.Param("slug")
	tour, err := h.Tours.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Tours.IncrementViews(c.Request().Context(), tour.ID); err != nil {
		log.Printf("tour views: increment failed for id=%d: %v", tour.ID, err)
	} else {
		tour.Views++
	}
	return c.JSON(http.StatusOK, tour)
}

// ListCategories handles GET /v1/categories.
func (h *PublicHandler) ListCategories(c echo.Context) error {
	enabled := true
	items, err := h.Categories.Search(c.Request().Context(), "", &enabled)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// ListBlogPosts handles GET /v1/blog.
func (h *PublicHandler) ListBlogPosts(c echo.Context) error {
	enabled := true
	items, err := h.Posts.Search(c.Request().Context(), "", &enabled)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetBlogPost handles GET /v1/blog/:slug.
func (h *PublicHandler) GetBlogPost(c echo.Context) error {
	post, err := h.Posts.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, post)
}

// ListTestimonials handles GET /v1/testimonials for the carousel.
func (h *PublicHandler) ListTestimonials(c echo.Context) error {
	enabled := true
	items, err := h.Testimonials.Search(c.Request().Context(), "", &enabled)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetContentSection handles GET /v1/content/:section. The public site
// falls back to built-in defaults on a 404, the same contract the admin
// panel uses.
func (h *PublicHandler) GetContentSection(c echo.Context) error {
	section := c.Param("section")
	if !sectionKeyRe.MatchString(section) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid section"})
	}
	s, err := h.Content.Get(c.Request().Context(), section)
	if err != nil {
		if errors.Is(err, repository.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, s)
}
