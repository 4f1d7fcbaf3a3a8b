package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/config"
	"github.com/pmhub/mentor-back/internal/models"
	"github.com/pmhub/mentor-back/internal/store"
)

// Handler serves the admin account endpoints.
type Handler struct {
	Cfg   *config.Config
	Store *store.Store
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Signup godoc
// @Summary      Register the admin account
// @Description  Creates the single admin account. Rejected once an admin exists.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  credentialsRequest  true  "Admin credentials"
// @Success      201   {object} map[string]string
// @Failure      400   {object} ErrorResponse
// @Failure      409   {object} ErrorResponse
// @Failure      500   {object} ErrorResponse
// @Router       /admin/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		log.Println("hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	admin := models.Admin{Username: req.Username, Password: hash}
	if err := h.Store.CreateAdmin(c.Request.Context(), &admin); err != nil {
		if errors.Is(err, store.ErrAdminExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "Admin already exists"})
			return
		}
		log.Println("creating admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin created"})
}

// Login godoc
// @Summary      Log in the admin
// @Description  Verifies credentials and issues a one-hour bearer token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  credentialsRequest  true  "Admin credentials"
// @Success      200   {object} map[string]string
// @Failure      401   {object} ErrorResponse
// @Failure      500   {object} ErrorResponse
// @Router       /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	admin, err := h.Store.GetAdminByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Println("fetching admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if err != nil || !CheckPassword(admin.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := GenerateToken(h.Cfg.JWTSecret, admin.Username)
	if err != nil {
		log.Println("signing token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout godoc
// @Summary      Log out the admin
// @Description  No server-side state; the client discards the token.
// @Tags         admin
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /admin/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePassword godoc
// @Summary      Change the admin password
// @Description  Requires the correct old password.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  changePasswordRequest  true  "Old and new password"
// @Success      200   {object} map[string]string
// @Failure      401   {object} ErrorResponse
// @Failure      500   {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/change-password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "oldPassword and newPassword are required"})
		return
	}

	username := c.GetString(ContextUsernameKey)

	admin, err := h.Store.GetAdminByUsername(c.Request.Context(), username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Println("fetching admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if err != nil || !CheckPassword(admin.Password, req.OldPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or old password"})
		return
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		log.Println("hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := h.Store.UpdateAdminPassword(c.Request.Context(), username, hash); err != nil {
		log.Println("updating password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
