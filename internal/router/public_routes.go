package router

// Public marketing routes. These are unauthenticated: the tour catalog,
// blog, testimonial carousel, content sections and the inquiry form. GET
// routes sit behind the Redis response cache; the inquiry form sits behind
// the token-bucket rate limiter instead, since a POST must never be cached.

import (
	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints and the
// inquiry submission endpoint. cacheMW and rateMW may be pass-through
// middleware when Redis is unavailable.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, iq *handler.InquiryHandler, cacheMW, rateMW echo.MiddlewareFunc) {
	// Tour catalog and detail pages
	e.GET("/v1/tours", p.ListTours, cacheMW)
	e.GET("/v1/tours/:slug", p.GetTour, cacheMW)
	// Category strip on the home page
	e.GET("/v1/categories", p.ListCategories, cacheMW)
	// Blog listing and article pages
	e.GET("/v1/blog", p.ListBlogPosts, cacheMW)
	e.GET("/v1/blog/:slug", p.GetBlogPost, cacheMW)
	// Testimonial carousel
	e.GET("/v1/testimonials", p.ListTestimonials, cacheMW)
	// Singleton content sections (about, settings, hero, ...)
	e.GET("/v1/content/:section", p.GetContentSection, cacheMW)

	// The only unauthenticated write in the API
	e.POST("/v1/inquiries", iq.Submit, rateMW)
}
