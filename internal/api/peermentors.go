package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/models"
	"github.com/pmhub/mentor-back/internal/store"
)

// maxPageSize caps paginated mentor listings.
const maxPageSize = 30

type createMentorRequest struct {
	Name string `json:"name" binding:"required"`
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type updateMentorRequest struct {
	Name *string `json:"name"`
	Day  *string `json:"day"`
	Time *string `json:"time"`
}

type mentorListResponse struct {
	Items []models.PeerMentor `json:"items"`
	Total int64               `json:"total"`
}

// CreatePeerMentor godoc
// @Summary      Create a peer mentor
// @Description  New mentors start out available. Time is normalized to HH:MM.
// @Tags         peermentors
// @Accept       json
// @Produce      json
// @Param        body  body  createMentorRequest  true  "Mentor"
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /peermentors [post]
func (h *Handler) CreatePeerMentor(c *gin.Context) {
	var req createMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Time, day, and name are required"})
		return
	}

	if !validDay(req.Day) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Day must be one of Mon, Tue, Wed, Thu, Fri, Sat, Sun"})
		return
	}
	clock, err := normalizeClock(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time, expected HH:MM"})
		return
	}

	mentor := models.PeerMentor{Name: req.Name, Day: req.Day, Time: clock, IsAvailable: true}
	if err := h.Store.CreatePeerMentor(c.Request.Context(), &mentor); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Peer mentor created", "mentor": mentor})
}

// GetPeerMentors godoc
// @Summary      List peer mentors
// @Description  Newest first, with optional day/time filters and a limit.
// @Tags         peermentors
// @Produce      json
// @Param        day    query  string  false  "Weekday filter"
// @Param        time   query  string  false  "Time filter (HH:MM)"
// @Param        limit  query  int     false  "Max rows"
// @Success      200 {object} mentorListResponse
// @Failure      400 {object} ErrorResponse
// @Router       /peermentors [get]
func (h *Handler) GetPeerMentors(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit value"})
			return
		}
		limit = n
	}

	filter := store.MentorFilter{Day: c.Query("day"), Time: c.Query("time")}
	mentors, total, err := h.Store.ListPeerMentors(c.Request.Context(), filter, limit)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentorListResponse{Items: mentors, Total: total})
}

// GetPaginatedPeerMentors godoc
// @Summary      List peer mentors, paginated
// @Description  Page size is capped at 30.
// @Tags         peermentors
// @Produce      json
// @Param        page      query  int     false  "Page, starting at 1"
// @Param        pageSize  query  int     false  "Rows per page"
// @Param        day       query  string  false  "Weekday filter"
// @Param        time      query  string  false  "Time filter (HH:MM)"
// @Success      200 {object} mentorListResponse
// @Failure      400 {object} ErrorResponse
// @Router       /peermentors/paginated [get]
func (h *Handler) GetPaginatedPeerMentors(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid page number"})
			return
		}
		page = n
	}

	pageSize := 10
	if raw := c.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid page size"})
			return
		}
		pageSize = n
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := store.MentorFilter{Day: c.Query("day"), Time: c.Query("time")}
	mentors, total, err := h.Store.ListPeerMentorsPage(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentorListResponse{Items: mentors, Total: total})
}

// FilterPeerMentors godoc
// @Summary      Find peer mentors by time and day
// @Description  Public availability lookup used by the booking front-end.
// @Tags         peermentors
// @Produce      json
// @Param        time  query  string  true   "Time (HH:MM)"
// @Param        day   query  string  true   "Weekday"
// @Param        name  query  string  false  "Mentor name"
// @Success      200 {array} models.PeerMentor
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /peermentors/filter [get]
func (h *Handler) FilterPeerMentors(c *gin.Context) {
	timeStr := c.Query("time")
	day := c.Query("day")
	if timeStr == "" || day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Time and day are required"})
		return
	}

	filter := store.MentorFilter{Day: day, Time: timeStr, Name: c.Query("name")}
	mentors, err := h.Store.FilterPeerMentors(c.Request.Context(), filter)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(mentors) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "There is no peer mentor available at this time"})
		return
	}

	c.JSON(http.StatusOK, mentors)
}

// GetPeerMentor godoc
// @Summary      Get a peer mentor
// @Tags         peermentors
// @Produce      json
// @Param        id  path  int  true  "Mentor ID"
// @Success      200 {object} models.PeerMentor
// @Failure      404 {object} ErrorResponse
// @Router       /peermentors/{id} [get]
func (h *Handler) GetPeerMentor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	mentor, err := h.Store.GetPeerMentor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Peer mentor not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

// UpdatePeerMentor godoc
// @Summary      Update a peer mentor
// @Description  Writes only the supplied fields. Availability cannot be set
// @Description  here; it changes only through booking and the weekly reset.
// @Tags         peermentors
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Mentor ID"
// @Param        body  body  updateMentorRequest  true  "Fields to update"
// @Success      200   {object} map[string]string
// @Failure      400   {object} ErrorResponse
// @Failure      404   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /peermentors/{id} [put]
func (h *Handler) UpdatePeerMentor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Day != nil {
		if !validDay(*req.Day) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Day must be one of Mon, Tue, Wed, Thu, Fri, Sat, Sun"})
			return
		}
		fields["day"] = *req.Day
	}
	if req.Time != nil {
		clock, err := normalizeClock(*req.Time)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time, expected HH:MM"})
			return
		}
		fields["time"] = clock
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least one field (time, day, or name) is required for update"})
		return
	}

	if _, err := h.Store.UpdatePeerMentor(c.Request.Context(), id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Peer mentor not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Peer mentor updated"})
}

// DeletePeerMentor godoc
// @Summary      Delete a peer mentor
// @Tags         peermentors
// @Produce      json
// @Param        id  path  int  true  "Mentor ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /peermentors/{id} [delete]
func (h *Handler) DeletePeerMentor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Store.DeletePeerMentor(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Peer mentor not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Peer mentor deleted"})
}
