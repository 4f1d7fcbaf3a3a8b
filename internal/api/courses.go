package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/models"
	"github.com/pmhub/mentor-back/internal/store"
)

type createCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

type updateCourseRequest struct {
	CourseCode *string `json:"courseCode"`
	Name       *string `json:"name"`
}

// CreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        body  body  createCourseRequest  true  "Course"
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Failure      409   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /courses [post]
func (h *Handler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Both courseCode and name are required"})
		return
	}

	course := models.Course{CourseCode: req.CourseCode, Name: req.Name}
	if err := h.Store.CreateCourse(c.Request.Context(), &course); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"message": "CourseCode already exists"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Course created", "course": course})
}

// GetCourses godoc
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200 {array} models.Course
// @Router       /courses [get]
func (h *Handler) GetCourses(c *gin.Context) {
	courses, err := h.Store.ListCourses(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id  path  int  true  "Course ID"
// @Success      200 {object} models.Course
// @Failure      404 {object} ErrorResponse
// @Router       /courses/{id} [get]
func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	course, err := h.Store.GetCourse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Description  Writes only the supplied fields.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Course ID"
// @Param        body  body  updateCourseRequest  true  "Fields to update"
// @Success      200   {object} map[string]interface{}
// @Failure      400   {object} ErrorResponse
// @Failure      404   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /courses/{id} [put]
func (h *Handler) UpdateCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if req.CourseCode != nil {
		fields["course_code"] = *req.CourseCode
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least one field (courseCode or name) is required for update"})
		return
	}

	course, err := h.Store.UpdateCourse(c.Request.Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"message": "CourseCode already exists"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course updated", "course": course})
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Param        id  path  int  true  "Course ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /courses/{id} [delete]
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteCourse(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
