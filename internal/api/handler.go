package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/store"
)

// Handler holds the store client shared by all resource endpoints.
type Handler struct {
	Store *store.Store
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// weekDays are the accepted values for a mentor's day field.
var weekDays = map[string]bool{
	"Mon": true, "Tue": true, "Wed": true, "Thu": true,
	"Fri": true, "Sat": true, "Sun": true,
}

func validDay(day string) bool {
	return weekDays[day]
}

// normalizeClock parses a time-of-day value and returns it in canonical HH:MM
// form. Seconds are accepted and dropped.
func normalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", s)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// serverError hides the underlying store failure from the caller.
func serverError(c *gin.Context, err error) {
	log.Println("store error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
