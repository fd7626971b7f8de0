package handler

import (
	"fmt"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/export"
)

// WriteExcel streams a workbook as a downloadable attachment.
func WriteExcel(c *gin.Context, filename string, file *excelize.File) {
	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(c.Writer); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("failed to write excel export")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("failed to generate excel file"))
	}
}
