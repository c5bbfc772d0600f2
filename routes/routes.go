package routes

import (
	"SportHub/controllers"
	"SportHub/middleware"
	"SportHub/services/metrics"
	"SportHub/services/redis"
	"database/sql"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, sqlDB *sql.DB, redisClient *redis.RedisClient) {
	// Venue booking keeps the raw SQL controller style
	venueController := &controllers.VenueController{DB: sqlDB}

	router.Use(metrics.RequestCounter())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)
	api.GET("/health", controllers.Health(redisClient))

	api.POST("/login", controllers.Login(db))
	api.POST("/signup", controllers.SignUp(db))
	api.GET("/users/:username", controllers.GetUserPublicInfo(db))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)

		authentication.GET("/me", controllers.GetUserPrivateInfo(db))
	}

	events := api.Group("/api/events")
	{
		events.GET("", controllers.ListEvents(db))
		events.GET("/:id", controllers.GetEvent(db))
	}

	eventsAuth := api.Group("/api/events")
	eventsAuth.Use(middleware.AuthRequired)
	{
		eventsAuth.POST("", controllers.CreateEvent(db))
		eventsAuth.PUT("/:id", controllers.UpdateEvent(db))
		eventsAuth.POST("/:id/join", controllers.JoinEvent(db))
		eventsAuth.POST("/:id/leave", controllers.LeaveEvent(db))
		eventsAuth.POST("/:id/ratings", controllers.RateEvent(db))
	}

	venues := api.Group("/api/venues")
	{
		venues.GET("", venueController.ListVenues)
		venues.GET("/:id", venueController.GetVenueInfo)
	}

	venuesAuth := api.Group("/api")
	venuesAuth.Use(middleware.AuthRequired)
	{
		venuesAuth.POST("/venues/:id/bookings", venueController.CreateBooking)
		venuesAuth.GET("/bookings", venueController.ListBookings)
	}
}
