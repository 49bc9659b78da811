package handler

// Singleton website sections (about, settings, hero, ...). Each section is
// one jsonb blob; the admin page loads the whole blob, edits a local copy
// and writes the whole blob back. A save overwrites whatever is stored —
// last write wins, exactly as the storage layer promises.

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

// Section keys are short lowercase identifiers; anything else in the path
// is rejected before touching the database.
var sectionKeyRe = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,63}$`)

// GetContentSection handles GET /v1/admin/content/:section. A 404 means
// the section has never been saved; the admin UI keeps its hardcoded
// defaults in that case.
func (h *AdminHandler) GetContentSection(c echo.Context) error {
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

// SaveContentSection handles PUT /v1/admin/content/:section. The body is
// the complete new blob; no merge with the stored content happens.
func (h *AdminHandler) SaveContentSection(c echo.Context) error {
	section := c.Param("section")
	if !sectionKeyRe.MatchString(section) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid section"})
	}
	var content json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&content); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json body"})
	}
	s, err := h.Content.Upsert(c.Request().Context(), section, content)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.JSON(http.StatusOK, s)
}
