package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/report"
)

// ExportAppointments godoc
// @Summary      Download the appointment roster as xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} binary
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/appointments [get]
func (h *Handler) ExportAppointments(c *gin.Context) {
	details, err := h.Store.ListAppointments(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	f, err := report.AppointmentsWorkbook(details)
	if err != nil {
		serverError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="appointments.xlsx"`)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Println("writing workbook:", err)
	}
}
