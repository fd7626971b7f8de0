package user

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/export"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/middleware"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/auth"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/user"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

type Handler struct {
	service   *user.Service
	authSvc   *auth.Service
	uploadDir string
}

func NewHandler(service *user.Service, authSvc *auth.Service, uploadDir string) *Handler {
	return &Handler{service: service, authSvc: authSvc, uploadDir: uploadDir}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	open := public.Group("/users")
	{
		open.POST("/add", h.CreateUser)
		open.POST("/login", h.Login)
		open.POST("/refresh-token", h.RefreshToken)
		open.POST("/forget-password", h.ForgetPassword)
		open.POST("/reset-password", h.ResetPassword)
	}

	users := protected.Group("/users")
	{
		users.POST("/logout", h.Logout)
		users.POST("/invite", h.InviteUser)
		users.PUT("/update/:id", h.UpdateUser)
		users.DELETE("/delete/:id", h.DeleteUser)
		users.GET("", h.ListUsers)
		users.GET("/export-excel", h.ExportExcel)
	}
}

// savePhoto stores an optional multipart photo and returns its public path.
// A request without a photo part is not an error.
func (h *Handler) savePhoto(c *gin.Context) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", apperrors.BadRequest("invalid photo upload")
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}
	return "/uploads/" + name, nil
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	photoPath, err := h.savePhoto(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	created, err := h.service.CreateUser(c.Request.Context(), &req, photoPath)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessageResponse("user registered successfully", created))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("login successful", resp))
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	accessToken, err := h.authSvc.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"accessToken": accessToken}))
}

func (h *Handler) Logout(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("logged out successfully", nil))
}

func (h *Handler) ForgetPassword(c *gin.Context) {
	var req model.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.authSvc.ForgetPassword(c.Request.Context(), req.Email); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("password reset email sent", nil))
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("password reset successfully", nil))
}

func (h *Handler) InviteUser(c *gin.Context) {
	var req model.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.authSvc.InviteUser(c.Request.Context(), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("invitation sent successfully", nil))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	photoPath, err := h.savePhoto(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), middleware.ClaimsFromContext(c), id, &req, photoPath)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("user updated successfully", updated))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), middleware.ClaimsFromContext(c), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessageResponse("user deleted successfully", nil))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), middleware.ClaimsFromContext(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) ExportExcel(c *gin.Context) {
	users, err := h.service.ListAllUsers(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	handler.WriteExcel(c, "users.xlsx", export.Users(users))
}
