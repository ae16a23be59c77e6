package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medidesk/service-booking/internal/application"
	"github.com/medidesk/service-booking/internal/response"
)

// PatientHandler handles HTTP requests for patient registration and lookup.
type PatientHandler struct {
	service *application.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(service *application.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// RegisterRoutes registers all patient routes on the given router group.
func (h *PatientHandler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/api/v1/patients")
	{
		patients.POST("", h.AddPatient)
		patients.GET("", h.GetAllPatients)
		patients.GET("/:id", h.GetPatient)
	}
}

// AddPatient handles POST /api/v1/patients.
func (h *PatientHandler) AddPatient(c *gin.Context) {
	var req application.AddPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddPatient(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetPatient handles GET /api/v1/patients/:id.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid patient ID")
		return
	}

	result, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAllPatients handles GET /api/v1/patients.
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	result, err := h.service.GetAllPatients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
