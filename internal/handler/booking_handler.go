package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medidesk/service-booking/internal/application"
	"github.com/medidesk/service-booking/internal/domain"
	"github.com/medidesk/service-booking/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.AddBooking)
		bookings.PUT("/:id", h.CancelBooking)
		bookings.GET("/patient/:patientId", h.GetAllBookings)
		bookings.GET("/patient/:patientId/next", h.GetNextAppointment)
	}
}

// AddBooking handles POST /api/v1/bookings.
func (h *BookingHandler) AddBooking(c *gin.Context) {
	var req application.AddBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.AddBooking(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c)
}

// CancelBooking handles PUT /api/v1/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c)
}

// GetAllBookings handles GET /api/v1/bookings/patient/:patientId. An unknown
// patient yields an empty list, never an error.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid patient ID")
		return
	}

	resp, err := h.service.GetAllBookings(c.Request.Context(), patientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNextAppointment handles GET /api/v1/bookings/patient/:patientId/next.
// Responds 502 when the patient has no upcoming non-cancelled booking.
func (h *BookingHandler) GetNextAppointment(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid patient ID")
		return
	}

	next, err := h.service.GetNextAppointment(c.Request.Context(), patientID)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "no upcoming appointment"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, next)
}
