package router

// Back-office routes. Everything here requires a valid staff access token
// with the ADMIN or EDITOR role. Two facades exist for inquiries: the
// plain REST routes under /v1/admin and the envelope API under /api/admin
// consumed by the inquiry dashboard. None of these routes is ever cached.

import (
	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/handler"
	"github.com/wanderium/travel-agency-api/internal/middleware"
)

// RegisterAdmin registers all back-office CRUD endpoints.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, up *handler.UploadHandler, jwtSecret string) {
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN", "EDITOR"))

	// Tours
	admin.GET("/tours", h.ListTours)
	admin.POST("/tours", h.CreateTour)
	admin.PUT("/tours/:id", h.UpdateTour)
	admin.DELETE("/tours/:id", h.DeleteTour)

	// Blog posts
	admin.GET("/blog", h.ListBlogPosts)
	admin.POST("/blog", h.CreateBlogPost)
	admin.PUT("/blog/:id", h.UpdateBlogPost)
	admin.DELETE("/blog/:id", h.DeleteBlogPost)

	// Testimonials
	admin.GET("/testimonials", h.ListTestimonials)
	admin.POST("/testimonials", h.CreateTestimonial)
	admin.PUT("/testimonials/:id", h.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", h.DeleteTestimonial)

	// Tour categories
	admin.GET("/categories", h.ListCategories)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	// Inquiries (REST facade)
	admin.GET("/inquiries", h.ListInquiries)
	admin.PATCH("/inquiries/:id/status", h.UpdateInquiryStatus)
	admin.PUT("/inquiries/:id/notes", h.UpdateInquiryNotes)
	admin.DELETE("/inquiries/:id", h.DeleteInquiry)

	// Singleton content sections
	admin.GET("/content/:section", h.GetContentSection)
	admin.PUT("/content/:section", h.SaveContentSection)

	// Dashboard counters
	admin.GET("/stats", h.GetStats)

	// Image upload proxy
	admin.POST("/uploads", up.Upload)

	// Inquiry dashboard envelope API
	api := e.Group("/api/admin")
	api.Use(middleware.JWTAuth(jwtSecret))
	api.Use(middleware.RequireRole("ADMIN", "EDITOR"))
	api.GET("/inquiries", h.APIListInquiries)
	api.PATCH("/inquiries", h.APIUpdateInquiryStatus)
	api.DELETE("/inquiries", h.APIDeleteInquiry)
}
