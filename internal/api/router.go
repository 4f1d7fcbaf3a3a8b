package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/pmhub/mentor-back/docs"
	"github.com/pmhub/mentor-back/internal/auth"
	"github.com/pmhub/mentor-back/internal/config"
	"github.com/pmhub/mentor-back/internal/store"
)

// @title           Peer Mentor Appointment API
// @version         1.0
// @description     Administrative back-end for scheduling peer-mentor appointments.
// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		if err := st.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gate := auth.AdminGate(cfg, st)
	admin := &auth.Handler{Cfg: cfg, Store: st}
	h := &Handler{Store: st}

	api := r.Group("/api")

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/signup", admin.Signup)
		adminGroup.POST("/login", admin.Login)
		adminGroup.POST("/logout", admin.Logout)
		adminGroup.PUT("/change-password", gate, admin.ChangePassword)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", h.GetCourses)
		courses.GET("/:id", h.GetCourse)
		courses.POST("", gate, h.CreateCourse)
		courses.PUT("/:id", gate, h.UpdateCourse)
		courses.DELETE("/:id", gate, h.DeleteCourse)
	}

	sections := api.Group("/sections")
	{
		sections.GET("", h.GetSections)
		sections.GET("/:id", h.GetSection)
		sections.POST("", gate, h.CreateSection)
		sections.PUT("/:id", gate, h.UpdateSection)
		sections.DELETE("/:id", gate, h.DeleteSection)
	}

	mentors := api.Group("/peermentors")
	{
		mentors.GET("", h.GetPeerMentors)
		mentors.GET("/paginated", h.GetPaginatedPeerMentors)
		mentors.GET("/filter", h.FilterPeerMentors)
		mentors.GET("/:id", h.GetPeerMentor)
		mentors.POST("", gate, h.CreatePeerMentor)
		mentors.PUT("/:id", gate, h.UpdatePeerMentor)
		mentors.DELETE("/:id", gate, h.DeletePeerMentor)
	}

	appointments := api.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", gate, h.GetAppointments)
		appointments.GET("/:id", gate, h.GetAppointment)
		appointments.PUT("/:id", gate, h.UpdateAppointment)
		appointments.DELETE("/:id", gate, h.DeleteAppointment)
	}

	api.GET("/reports/appointments", gate, h.ExportAppointments)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
