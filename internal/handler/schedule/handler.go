package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/export"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/schedule"
)

type Handler struct {
	service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	schedules := protected.Group("/schedules")
	{
		schedules.POST("/create", h.CreateSchedule)
		schedules.PUT("/update/:scheduleId", h.UpdateSchedule)
		schedules.DELETE("/delete/:scheduleId", h.DeleteSchedule)
		schedules.GET("", h.ListSchedules)
		schedules.GET("/date-range", h.ListSchedulesByDateRange)
		schedules.GET("/upcoming-status", h.ListUpcoming)
		schedules.GET("/done-status", h.ListDone)
		schedules.PUT("/:scheduleId/status", h.SetStatus)
		schedules.PUT("/:scheduleId", h.Transfer)
		schedules.GET("/transferred", h.ListTransferred)
		schedules.GET("/transferred/date-range", h.ListTransferredByDateRange)
		schedules.PUT("/retake/:scheduleId", h.Retake)
		schedules.PUT("/:scheduleId/payment", h.UpdatePayment)
		schedules.GET("/export-excel", h.ExportExcel)
	}
}

func scheduleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid schedule ID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req model.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateSchedule(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessageResponse("schedule created successfully", created))
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	var req model.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateSchedule(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("schedule updated successfully", updated))
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("schedule deleted successfully", nil))
}

func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.service.ListSchedules(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}

func (h *Handler) ListSchedulesByDateRange(c *gin.Context) {
	schedules, err := h.service.ListSchedulesByDateRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}

func (h *Handler) ListUpcoming(c *gin.Context) {
	schedules, err := h.service.ListSchedulesByStatus(c.Request.Context(), model.ScheduleStatusUpcoming)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}

func (h *Handler) ListDone(c *gin.Context) {
	schedules, err := h.service.ListSchedulesByStatus(c.Request.Context(), model.ScheduleStatusDone)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	var req model.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("schedule status updated successfully", updated))
}

func (h *Handler) Transfer(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	var req model.TransferScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Transfer(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("schedule transferred successfully", updated))
}

func (h *Handler) ListTransferred(c *gin.Context) {
	schedules, err := h.service.ListTransferred(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}

func (h *Handler) ListTransferredByDateRange(c *gin.Context) {
	schedules, err := h.service.ListTransferredByDateRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedules))
}

func (h *Handler) Retake(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	var req model.RetakeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Retake(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("schedule retaken successfully", updated))
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := scheduleID(c)
	if !ok {
		return
	}

	var req model.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdatePayment(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("payment details updated successfully", updated))
}

func (h *Handler) ExportExcel(c *gin.Context) {
	schedules, err := h.service.ListSchedules(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.WriteExcel(c, "schedules.xlsx", export.Schedules(schedules))
}
