package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/export"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/report"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	reports := protected.Group("/reports")
	{
		reports.POST("/add", h.CreateReport)
		reports.PUT("/update/:reportId", h.UpdateReport)
		reports.DELETE("/delete/:reportId", h.DeleteReport)
		reports.GET("", h.ListReports)
		reports.GET("/date-range", h.ListReportsByDateRange)
		reports.GET("/export-excel", h.ExportExcel)
	}
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateReport(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessageResponse("report added successfully", created))
}

func (h *Handler) UpdateReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("reportId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid report ID"))
		return
	}

	var req model.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateReport(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("report updated successfully", updated))
}

func (h *Handler) DeleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("reportId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid report ID"))
		return
	}

	if err := h.service.DeleteReport(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("report deleted successfully", nil))
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reports))
}

func (h *Handler) ListReportsByDateRange(c *gin.Context) {
	reports, err := h.service.ListReportsByDateRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reports))
}

func (h *Handler) ExportExcel(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.WriteExcel(c, "reports.xlsx", export.Reports(reports))
}
