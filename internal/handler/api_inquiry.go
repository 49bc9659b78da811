package handler

// Envelope-style inquiry API under /api/admin/inquiries. The admin UI's
// inquiry dashboard consumes this contract: every response is a
// {success, data?, message?} envelope and the target id travels in the
// query string (DELETE) or body (PATCH) instead of the path. It is a
// second facade over the same InquiryRepo as the REST routes; neither is
// deprecated.

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

// envelope is the {success, data?, message?} response wrapper. Callers
// must branch on Success before trusting Data.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(data any) envelope      { return envelope{Success: true, Data: data} }
func okMsg(msg string) envelope { return envelope{Success: true, Message: msg} }
func fail(msg string) envelope  { return envelope{Success: false, Message: msg} }

// APIListInquiries handles GET /api/admin/inquiries.
func (h *AdminHandler) APIListInquiries(c echo.Context) error {
	items, err := h.Inquiries.Search(c.Request().Context(), "", "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to load inquiries"))
	}
	return c.JSON(http.StatusOK, ok(items))
}

// APIUpdateInquiryStatus handles PATCH /api/admin/inquiries with a JSON
// body {id, status}.
func (h *AdminHandler) APIUpdateInquiryStatus(c echo.Context) error {
	var body struct {
		ID     uint64 `json:"id"`
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil || body.ID == 0 {
		return c.JSON(http.StatusBadRequest, fail("id and status are required"))
	}
	status := strings.ToLower(strings.TrimSpace(body.Status))
	if !ValidInquiryStatus(status) {
		return c.JSON(http.StatusBadRequest, fail("unknown status"))
	}
	if err := h.Inquiries.UpdateStatus(c.Request().Context(), body.ID, status); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, fail("inquiry not found"))
		}
		return c.JSON(http.StatusInternalServerError, fail("failed to update inquiry"))
	}
	return c.JSON(http.StatusOK, okMsg("status updated"))
}

// APIDeleteInquiry handles DELETE /api/admin/inquiries?id=<id>.
func (h *AdminHandler) APIDeleteInquiry(c echo.Context) error {
	id, err := strconv.ParseUint(c.QueryParam("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, fail("invalid id"))
	}
	if err := h.Inquiries.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, fail("inquiry not found"))
		}
		return c.JSON(http.StatusInternalServerError, fail("failed to delete inquiry"))
	}
	return c.JSON(http.StatusOK, okMsg("inquiry deleted"))
}
