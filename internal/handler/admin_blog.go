package handler

// Back-office blog management.

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/repository"
)

// blogPostReq is the editable shape of a post as submitted by the admin
// form. PublishedAt accepts a date in YYYY-MM-DD form; empty means "now".
type blogPostReq struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_at"`
	Enabled     *bool  `json:"enabled"`
	Category    string `json:"category"`
}

func (req *blogPostReq) toPost() (*repository.BlogPost, string) {
	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	if title == "" || slug == "" || strings.TrimSpace(req.Content) == "" {
		return nil, "title, slug and content are required"
	}
	published := time.Now().UTC()
	if s := strings.TrimSpace(req.PublishedAt); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, "published_at must be YYYY-MM-DD"
		}
		published = d
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	return &repository.BlogPost{
		Title:       title,
		Slug:        slug,
		Excerpt:     strings.TrimSpace(req.Excerpt),
		Content:     req.Content,
		Image:       optStr(req.Image),
		Author:      strings.TrimSpace(req.Author),
		PublishedAt: published,
		Enabled:     enabled,
		Category:    optStr(req.Category),
	}, ""
}

// ListBlogPosts handles GET /v1/admin/blog with ?q= and ?status= filters.
func (h *AdminHandler) ListBlogPosts(c echo.Context) error {
	items, err := h.Posts.Search(c.Request().Context(), c.QueryParam("q"), enabledFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// CreateBlogPost handles POST /v1/admin/blog.
func (h *AdminHandler) CreateBlogPost(c echo.Context) error {
	var req blogPostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	post, msg := req.toPost()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Posts.Create(c.Request().Context(), post); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create post"})
	}
	return c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost handles PUT /v1/admin/blog/:id.
func (h *AdminHandler) UpdateBlogPost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req blogPostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	post, msg := req.toPost()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Posts.Update(c.Request().Context(), id, post); err != nil {
		switch {
		case errors.Is(err, repository.ErrBlogPostNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	updated, err := h.Posts.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBlogPost handles DELETE /v1/admin/blog/:id.
func (h *AdminHandler) DeleteBlogPost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Posts.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
