package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/phongkhamtamthan/clinic-api/internal/handler"
	"github.com/phongkhamtamthan/clinic-api/internal/model"
	bookingService "github.com/phongkhamtamthan/clinic-api/internal/service/booking"
	apperrors "github.com/phongkhamtamthan/clinic-api/pkg/errors"
	apivalidator "github.com/phongkhamtamthan/clinic-api/pkg/validator"
)

const (
	confirmationMessage = "Your booking request has been received. Our staff will contact you within 2 hours to confirm."
	estimatedCallback   = "within 2 business hours"
)

type Handler struct {
	service bookingService.BookingServicer
}

func NewHandler(service bookingService.BookingServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/book", h.CreateBooking)
	// Unauthenticated, like the rest of the API. Known gap, kept as
	// documented behavior.
	r.GET("/bookings", h.ListBookings)
}

type bookingResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	BookingReference  string `json:"booking_reference"`
	EstimatedCallback string `json:"estimated_callback"`
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, handler.Response{
				Status:  "error",
				Message: "validation failed",
				Data:    apivalidator.FormatErrors(validationErrors),
			})
			return
		}
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		Status:            "success",
		Message:           confirmationMessage,
		BookingReference:  record.Reference,
		EstimatedCallback: estimatedCallback,
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	records := h.service.ListBookings(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"total":    len(records),
		"bookings": records,
	})
}
