package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/service-booking/internal/application"
	"github.com/medidesk/service-booking/internal/response"
)

// DoctorHandler handles HTTP requests for doctor registration and lookup.
type DoctorHandler struct {
	service *application.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(service *application.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// RegisterRoutes registers all doctor routes on the given router group.
func (h *DoctorHandler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/api/v1/doctors")
	{
		doctors.POST("", h.AddDoctor)
		doctors.GET("", h.GetAllDoctors)
	}
}

// AddDoctor handles POST /api/v1/doctors.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var req application.AddDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddDoctor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetAllDoctors handles GET /api/v1/doctors.
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	result, err := h.service.GetAllDoctors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
