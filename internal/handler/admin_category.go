package handler

// Back-office category management. On create, a missing slug is derived
// from the name; on update the slug is taken exactly as submitted, so a
// manually edited slug is never overwritten by a later rename.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
	"github.com/wanderium/travel-agency-api/internal/utils"
)

type categoryReq struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Enabled     *bool  `json:"enabled"`
}

func (req *categoryReq) toCategory(deriveSlug bool) (*repository.Category, string) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, "name is required"
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" && deriveSlug {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return nil, "slug is required"
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	return &repository.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		Image:       optStr(req.Image),
		Enabled:     enabled,
	}, ""
}

// ListCategories handles GET /v1/admin/categories with ?q= and ?status=.
func (h *AdminHandler) ListCategories(c echo.Context) error {
	items, err := h.Categories.Search(c.Request().Context(), c.QueryParam("q"), enabledFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// CreateCategory handles POST /v1/admin/categories. Slug derivation from
// the name only happens here, never on update.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cat, msg := req.toCategory(true)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Categories.Create(c.Request().Context(), cat); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create category"})
	}
	return c.JSON(http.StatusCreated, cat)
}

// UpdateCategory handles PUT /v1/admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cat, msg := req.toCategory(false)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Categories.Update(c.Request().Context(), id, cat); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	updated, err := h.Categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Categories.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
