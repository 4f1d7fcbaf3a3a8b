package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/models"
	"github.com/pmhub/mentor-back/internal/store"
)

type createAppointmentRequest struct {
	GroupName    string `json:"groupName" binding:"required"`
	LeaderLineID string `json:"leaderLineID" binding:"required"`
	CourseCodeID uint   `json:"courseCodeId" binding:"required"`
	SectionID    uint   `json:"sectionId" binding:"required"`
	PeerMentorID uint   `json:"peerMentorId" binding:"required"`
}

type updateAppointmentRequest struct {
	GroupName    *string `json:"groupName"`
	LeaderLineID *string `json:"leaderLineID"`
	CourseCodeID *uint   `json:"courseCodeId"`
	SectionID    *uint   `json:"sectionId"`
	PeerMentorID *uint   `json:"peerMentorId"`
}

// CreateAppointment godoc
// @Summary      Book an appointment
// @Description  Validates the course, section and mentor, then atomically
// @Description  marks the mentor unavailable and creates the appointment.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body  createAppointmentRequest  true  "Appointment"
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Failure      409   {object} ErrorResponse
// @Failure      500   {object} ErrorResponse
// @Router       /appointments [post]
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "groupName, leaderLineID, courseCodeId, sectionId, and peerMentorId are required",
		})
		return
	}

	appt := models.Appointment{
		GroupName:    req.GroupName,
		LeaderLineID: req.LeaderLineID,
		CourseCodeID: req.CourseCodeID,
		SectionID:    req.SectionID,
		PeerMentorID: req.PeerMentorID,
	}
	if err := h.Store.BookAppointment(c.Request.Context(), &appt); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidCourse):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid courseCodeId"})
		case errors.Is(err, store.ErrInvalidSection):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid sectionId"})
		case errors.Is(err, store.ErrMentorUnavailable):
			c.JSON(http.StatusConflict, gin.H{"message": "Selected peer mentor is not available"})
		default:
			serverError(c, err)
		}
		return
	}

	// Re-fetch the joined view rather than echoing the input: the canonical
	// course code, section label and mentor time live in the store.
	detail, err := h.Store.GetAppointment(c.Request.Context(), appt.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Appointment created", "appointment": detail})
}

// GetAppointments godoc
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Success      200 {array} models.AppointmentDetail
// @Security     BearerAuth
// @Router       /appointments [get]
func (h *Handler) GetAppointments(c *gin.Context) {
	details, err := h.Store.ListAppointments(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetAppointment godoc
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id  path  int  true  "Appointment ID"
// @Success      200 {object} models.AppointmentDetail
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /appointments/{id} [get]
func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.Store.GetAppointment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateAppointment godoc
// @Summary      Update an appointment
// @Description  Data-correction path: writes only the supplied fields and
// @Description  never flips mentor availability.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "Appointment ID"
// @Param        body  body  updateAppointmentRequest  true  "Fields to update"
// @Success      200   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Failure      404   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /appointments/{id} [put]
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if req.GroupName != nil {
		fields["group_name"] = *req.GroupName
	}
	if req.LeaderLineID != nil {
		fields["leader_line_id"] = *req.LeaderLineID
	}
	if req.CourseCodeID != nil {
		fields["course_code_id"] = *req.CourseCodeID
	}
	if req.SectionID != nil {
		fields["section_id"] = *req.SectionID
	}
	if req.PeerMentorID != nil {
		fields["peer_mentor_id"] = *req.PeerMentorID
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "At least one field (groupName, leaderLineID, courseCodeId, sectionId, or peerMentorId) is required for update",
		})
		return
	}

	detail, err := h.Store.UpdateAppointment(c.Request.Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		case errors.Is(err, store.ErrInvalidCourse):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid courseCodeId"})
		case errors.Is(err, store.ErrInvalidSection):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid sectionId"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated", "appointment": detail})
}

// DeleteAppointment godoc
// @Summary      Delete an appointment
// @Description  Removes the row only; the mentor stays unavailable until the
// @Description  weekly reset.
// @Tags         appointments
// @Produce      json
// @Param        id  path  int  true  "Appointment ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /appointments/{id} [delete]
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
