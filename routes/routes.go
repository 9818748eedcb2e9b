package routes

import (
	"net/http"
	"time"

	"eventra/config"
	"eventra/handlers"
	"eventra/middleware"
	"eventra/models"
	"eventra/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func authRequired(hb *handlers.HandlerBundle) gin.HandlerFunc {
	return middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache)
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("", authRequired(hb))
		protected.GET("/me", hb.Auth.MeHandler)
		protected.PUT("/profile", hb.Auth.UpdateProfileHandler)
		protected.DELETE("/profile", hb.Auth.DeleteAccountHandler)
		protected.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterProviderRoutes registers provider profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Provider.ListProvidersHandler)
		api.GET("/:id", hb.Provider.GetProviderHandler)

		own := api.Group("/profile", authRequired(hb), middleware.RequireRole(models.RoleProvider))
		own.POST("", hb.Provider.UpsertProfileHandler)
		own.GET("/me", hb.Provider.GetOwnProfileHandler)
		own.POST("/portfolio", hb.Provider.AddPortfolioHandler)
	}
}

// RegisterEventRoutes registers event endpoints. Ownership is checked by the service.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events", authRequired(hb))
	{
		api.POST("", middleware.RequireRole(models.RoleOrganizer), hb.Events.CreateEventHandler)
		api.GET("/myevents", hb.Events.GetMyEventsHandler)
		api.GET("/:id", hb.Events.GetEventHandler)
		api.PUT("/:id", hb.Events.UpdateEventHandler)
		api.DELETE("/:id", hb.Events.DeleteEventHandler)
		api.GET("/:id/budget", hb.Events.BudgetSummaryHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings", authRequired(hb))
	{
		api.POST("", middleware.RequireRole(models.RoleOrganizer), hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id/status", hb.Booking.UpdateStatusHandler)
		api.POST("/:id/payment-intent", middleware.RequireRole(models.RoleOrganizer), hb.Booking.PaymentIntentHandler)
	}
}

// RegisterChatRoutes registers chat endpoints. The WebSocket route
// authenticates from the query string.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chats")
	{
		api.GET("/:id/ws", hb.Chat.SubscribeHandler)

		protected := api.Group("", authRequired(hb))
		protected.POST("", hb.Chat.AccessChatHandler)
		protected.GET("", hb.Chat.FetchChatsHandler)
		protected.POST("/message", hb.Chat.SendMessageHandler)
		protected.GET("/:id/messages", hb.Chat.GetMessagesHandler)
	}
}

// RegisterAIRoutes registers the planning assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/suggest-services", hb.AI.SuggestServicesHandler)
		api.POST("/match-providers", hb.AI.MatchProvidersHandler)
		api.POST("/optimize-budget", hb.AI.OptimizeBudgetHandler)
		api.POST("/timeline", hb.AI.TimelineHandler)
	}
}

// RegisterStorageRoutes registers the media upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/upload", authRequired(hb), hb.Storage.UploadFileHandler)
}

// RegisterHealthRoute registers the banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "EVENTRA API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	corsConfig := cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
