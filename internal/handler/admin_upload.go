package handler

// Image upload proxy. The admin UI posts multipart form data here; the
// handler forwards the file to the hosting collaborator and returns the
// hosted URL for the form to store on whatever record it is editing.

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/uploader"
)

// UploadHandler wraps the image hosting client.
type UploadHandler struct {
	Uploader *uploader.Client
}

func NewUploadHandler(u *uploader.Client) *UploadHandler {
	return &UploadHandler{Uploader: u}
}

var uploadFolders = map[string]bool{
	"tours":        true,
	"blog":         true,
	"testimonials": true,
	"categories":   true,
	"content":      true,
}

// Upload handles POST /v1/admin/uploads. Expects a multipart form with a
// "file" part and a "folder" field naming the resource the image belongs
// to.
func (h *UploadHandler) Upload(c echo.Context) error {
	if !h.Uploader.Enabled() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "uploads are not configured"})
	}
	folder := strings.ToLower(strings.TrimSpace(c.FormValue("folder")))
	if !uploadFolders[folder] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown folder"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read file"})
	}
	defer src.Close()

	url, err := h.Uploader.Upload(c.Request().Context(), folder, fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upload failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
