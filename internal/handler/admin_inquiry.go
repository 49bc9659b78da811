package handler

// Back-office inquiry management (REST facade). Staff list and search
// inquiries, move them between statuses, attach notes, and delete them.
// Inquiries are never created here; they only enter through the public
// form. A second, envelope-style facade over the same repository lives in
// api_inquiry.go.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

// ListInquiries handles GET /v1/admin/inquiries with ?q= and ?status=.
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	if status != "" && status != "all" && !ValidInquiryStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}
	items, err := h.Inquiries.Search(c.Request().Context(), c.QueryParam("q"), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateInquiryStatus handles PATCH /v1/admin/inquiries/:id/status. Every
// (from, to) pair in the status set is legal; there is no ordering.
func (h *AdminHandler) UpdateInquiryStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.ToLower(strings.TrimSpace(body.Status))
	if !ValidInquiryStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}
	if err := h.Inquiries.UpdateStatus(c.Request().Context(), id, status); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "inquiry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Inquiries.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateInquiryNotes handles PUT /v1/admin/inquiries/:id/notes.
func (h *AdminHandler) UpdateInquiryNotes(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Inquiries.UpdateNotes(c.Request().Context(), id, body.Notes); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "inquiry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Inquiries.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteInquiry handles DELETE /v1/admin/inquiries/:id.
func (h *AdminHandler) DeleteInquiry(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Inquiries.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "inquiry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
