package routes

import (
	"net/http"
	"time"

	"weddify/handlers"
	"weddify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo))
		api.GET("/me", hb.User.GetUserByIDHandler)
		api.PUT("/me", hb.User.UpdateUserHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
		api.DELETE("/me", hb.User.DeleteUserHandler)
		api.POST("/logout", hb.User.RevokeUserAuthTokenHandler)
	}
}

// RegisterVendorRoutes registers vendor account and catalogue endpoints.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.POST("/register", hb.Vendor.RegisterVendorHandler)
		api.POST("/login", hb.Vendor.AuthenticateVendorHandler)
		api.GET("/search", hb.Vendor.SearchVendorsHandler)
		api.GET("/id/:id", hb.Vendor.GetVendorHandler)
		api.GET("/id/:id/packages", hb.Vendor.ListVendorPackagesHandler)
		api.GET("/id/:id/venues", hb.Venue.ListVendorVenuesHandler)

		protected := api.Group("/me")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo), middleware.RequireRole("vendor"))
		protected.PUT("", hb.Vendor.UpdateVendorProfileHandler)
		protected.POST("/packages", hb.Vendor.CreatePackageHandler)
		protected.PUT("/packages/:id", hb.Vendor.UpdatePackageHandler)
		protected.DELETE("/packages/:id", hb.Vendor.DeletePackageHandler)
		protected.POST("/venues", hb.Venue.CreateVenueHandler)
		protected.PUT("/venues/:id", hb.Venue.UpdateVenueHandler)
		protected.DELETE("/venues/:id", hb.Venue.DeleteVenueHandler)
		protected.GET("/bookings", hb.Booking.ListVendorBookingsHandler)
		protected.POST("/bookings/:id/confirm", hb.Booking.ConfirmBookingHandler)
	}
}

// RegisterVenueRoutes registers public venue discovery endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("/search", hb.Venue.SearchVenuesHandler)
		api.GET("/id/:id", hb.Venue.GetVenueHandler)
	}
}

// RegisterPackageRoutes registers public package discovery endpoints.
func RegisterPackageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/packages")
	{
		api.GET("/search", hb.Vendor.SearchPackagesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo))
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.GET("", hb.Booking.ListUserBookingsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterFeedRoutes registers the community feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.GET("", hb.Feed.GetFeedHandler)
		api.GET("/posts/:id/comments", hb.Feed.ListCommentsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo))
		protected.POST("/posts", hb.Feed.CreatePostHandler)
		protected.DELETE("/posts/:id", hb.Feed.DeletePostHandler)
		protected.POST("/posts/:id/like", hb.Feed.LikePostHandler)
		protected.POST("/posts/:id/comments", hb.Feed.AddCommentHandler)
	}
}

// RegisterAssistantRoutes registers AI planning assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo))
		api.POST("/suggest", hb.Assistant.SuggestHandler)
	}
}

// RegisterStorageRoutes registers media storage endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo))
		api.POST("/:bucket", hb.Storage.UploadFileHandler)
		api.DELETE("/:bucket/:publicId", hb.Storage.DeleteFileHandler)
		api.GET("/:bucket/:publicId/secure", hb.Storage.GetSecureDownloadURLHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for platform administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.VendorRepo), middleware.RequireRole("admin"))
		adminGroup.GET("/settings", hb.Admin.GetSettingsHandler)
		adminGroup.PUT("/settings", hb.Admin.UpdateSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Weddify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterPackageRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
