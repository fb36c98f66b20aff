package routes

import (
	"time"

	"gobookhotel/config"
	"gobookhotel/handlers"
	"gobookhotel/middleware"
	"gobookhotel/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers token issue/clear endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.Auth.IssueTokenHandler)
	r.POST("/logout", hb.Auth.LogoutHandler)
}

// RegisterRoomRoutes registers the public room endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/rooms", hb.Rooms.ListRoomsHandler)
	r.GET("/rooms/:id", hb.Rooms.GetRoomByIDHandler)
}

// RegisterBookingRoutes registers booking endpoints behind the token gate.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.Use(middleware.VerifyToken())
		bookings.GET("", hb.Bookings.ListBookingsHandler)
		bookings.POST("", hb.Bookings.CreateBookingHandler)
		bookings.DELETE("/:id", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterReviewRoutes registers the public review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/reviews", hb.Reviews.SubmitReviewHandler)
	r.GET("/review", hb.Reviews.ListReviewsHandler)
}

// RegisterOpsRoutes registers liveness, health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine) {
	r.GET("/", handlers.LivenessHandler)
	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(utils.MetricsHandler()))
}

// RegisterRoutes centralizes registration of all endpoints and the CORS policy.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Fixed origin allow-list with credentials, so the token cookie is sent
	// on cross-origin requests from the frontend.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterOpsRoutes(r)
}
