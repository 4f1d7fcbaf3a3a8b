package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/models"
	"github.com/pmhub/mentor-back/internal/store"
)

type sectionRequest struct {
	Section string `json:"section" binding:"required"`
}

// CreateSection godoc
// @Summary      Create a section
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        body  body  sectionRequest  true  "Section"
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Failure      409   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sections [post]
func (h *Handler) CreateSection(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Section is required"})
		return
	}

	sec := models.Section{Section: req.Section}
	if err := h.Store.CreateSection(c.Request.Context(), &sec); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"message": "Section already exists"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Section created", "section": sec})
}

// GetSections godoc
// @Summary      List sections
// @Tags         sections
// @Produce      json
// @Success      200 {array} models.Section
// @Router       /sections [get]
func (h *Handler) GetSections(c *gin.Context) {
	sections, err := h.Store.ListSections(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GetSection godoc
// @Summary      Get a section
// @Tags         sections
// @Produce      json
// @Param        id  path  int  true  "Section ID"
// @Success      200 {object} models.Section
// @Failure      404 {object} ErrorResponse
// @Router       /sections/{id} [get]
func (h *Handler) GetSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sec, err := h.Store.GetSection(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Section not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, sec)
}

// UpdateSection godoc
// @Summary      Update a section label
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Section ID"
// @Param        body  body  sectionRequest  true  "New label"
// @Success      200   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Failure      404   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sections/{id} [put]
func (h *Handler) UpdateSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Section is required"})
		return
	}

	sec, err := h.Store.UpdateSection(c.Request.Context(), id, req.Section)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Section not found"})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"message": "Section already exists"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section updated", "section": sec})
}

// DeleteSection godoc
// @Summary      Delete a section
// @Tags         sections
// @Produce      json
// @Param        id  path  int  true  "Section ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sections/{id} [delete]
func (h *Handler) DeleteSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteSection(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Section not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted"})
}
