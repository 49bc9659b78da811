package handler

// Public inquiry form. This is the only unauthenticated write path in the
// whole API. Submissions always start in status "new"; staff pick them up
// from the admin panel. A fire-and-forget event is published for each
// accepted inquiry so staff can be notified without the form waiting on
// the broker.

import (
	"context"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderium/travel-agency-api/internal/queue"
	"github.com/wanderium/travel-agency-api/internal/repository"
	queue_publisher "github.com/wanderium/travel-agency-api/internal/service"
)

// InquiryHandler handles the public inquiry submission.
type InquiryHandler struct {
	Inquiries *repository.InquiryRepo
}

func NewInquiryHandler(inquiries *repository.InquiryRepo) *InquiryHandler {
	if inquiries == nil {
		panic("nil repository passed to NewInquiryHandler")
	}
	return &InquiryHandler{Inquiries: inquiries}
}

type inquiryReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	TourName    string `json:"tour_name"`
	TourType    string `json:"tour_type"`
	Destination string `json:"destination"`
	TravelDates string `json:"travel_dates"`
	GroupSize   string `json:"group_size"`
	Budget      string `json:"budget"`
}

// validateInquiry checks the submitted form and returns a user-facing
// message when it is unacceptable. Only name and a well-formed email are
// required; everything else depends on which form the visitor used.
func validateInquiry(req *inquiryReq) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "email is invalid"
	}
	return ""
}

// Submit handles POST /v1/inquiries.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateInquiry(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	inq := &repository.Inquiry{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       optStr(req.Phone),
		Message:     optStr(req.Message),
		TourName:    optStr(req.TourName),
		TourType:    optStr(req.TourType),
		Destination: optStr(req.Destination),
		TravelDates: optStr(req.TravelDates),
		GroupSize:   optStr(req.GroupSize),
		Budget:      optStr(req.Budget),
		Status:      "new",
	}
	if err := h.Inquiries.Create(c.Request().Context(), inq); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not submit inquiry"})
	}

	// Notify in the background; submission already succeeded and the
	// visitor should not wait on the broker.
	ev := queue.InquiryReceivedEvent{
		InquiryID:   inq.ID,
		Name:        inq.Name,
		Email:       inq.Email,
		TourName:    req.TourName,
		TourType:    req.TourType,
		Destination: req.Destination,
		ReceivedAt:  inq.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := queue_publisher.PublishInquiryReceived(ctx, ev); err != nil {
			log.Printf("inquiry %d: event publish failed: %v", inq.ID, err)
		}
	}()

	return c.JSON(http.StatusCreated, inq)
}
