package hospital

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/export"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/hospital"
)

type Handler struct {
	service *hospital.Service
}

func NewHandler(service *hospital.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	hospitals := protected.Group("/hospitals")
	{
		hospitals.POST("/add", h.CreateHospital)
		hospitals.PUT("/update/:id", h.UpdateHospital)
		hospitals.DELETE("/delete/:id", h.DeleteHospital)
		hospitals.GET("", h.ListHospitals)
		hospitals.GET("/done-schedules", h.ListDoneScheduleSummary)
		hospitals.GET("/export", h.ExportExcel)
	}
}

func (h *Handler) CreateHospital(c *gin.Context) {
	var req model.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateHospital(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessageResponse("hospital added successfully", created))
}

func (h *Handler) UpdateHospital(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid hospital ID"))
		return
	}

	var req model.UpdateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateHospital(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("hospital updated successfully", updated))
}

func (h *Handler) DeleteHospital(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid hospital ID"))
		return
	}

	if err := h.service.DeleteHospital(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("hospital deleted successfully", nil))
}

func (h *Handler) ListHospitals(c *gin.Context) {
	hospitals, err := h.service.ListHospitals(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(hospitals))
}

func (h *Handler) ListDoneScheduleSummary(c *gin.Context) {
	hospitals, err := h.service.ListDoneScheduleSummary(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(hospitals))
}

func (h *Handler) ExportExcel(c *gin.Context) {
	hospitals, err := h.service.ListHospitals(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.WriteExcel(c, "hospitals.xlsx", export.Hospitals(hospitals))
}
