package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/service-booking/internal/application"
	"github.com/medidesk/service-booking/internal/response"
)

// ClinicHandler handles HTTP requests for clinic registration and lookup.
type ClinicHandler struct {
	service *application.ClinicService
}

// NewClinicHandler creates a new ClinicHandler.
func NewClinicHandler(service *application.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: service}
}

// RegisterRoutes registers all clinic routes on the given router group.
func (h *ClinicHandler) RegisterRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/api/v1/clinics")
	{
		clinics.POST("", h.AddClinic)
		clinics.GET("", h.GetAllClinics)
	}
}

// AddClinic handles POST /api/v1/clinics.
func (h *ClinicHandler) AddClinic(c *gin.Context) {
	var req application.AddClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddClinic(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetAllClinics handles GET /api/v1/clinics.
func (h *ClinicHandler) GetAllClinics(c *gin.Context) {
	result, err := h.service.GetAllClinics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
