package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"cleaning-service-server/config"
	"cleaning-service-server/database"
	"cleaning-service-server/jobs"
	"cleaning-service-server/middleware"
	"cleaning-service-server/routes"
	"cleaning-service-server/utils"
	ws "cleaning-service-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register the booking date format on the binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
			_, err := utils.NormalizeDate(fl.Field().String())
			return err == nil
		})
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Audit logging
	router.Use(middleware.AuditLogMiddleware())

	// WebSocket hub for admin console notifications
	hub := ws.NewHub()
	go hub.Run()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	// API routes
	api := router.Group("/api")
	routes.RegisterAuthRoutes(api.Group("/auth"))
	routes.RegisterBookingRoutes(api.Group("/bookings"), hub)
	routes.RegisterServiceRoutes(api.Group("/services"))
	routes.RegisterProductRoutes(api.Group("/products"))
	routes.RegisterOrderRoutes(api.Group("/orders"))
	routes.RegisterPaymentRoutes(api.Group("/payments"))
	routes.RegisterGalleryRoutes(api.Group("/gallery"))
	routes.RegisterAdminRoutes(api.Group("/admin"))

	// Admin console socket
	api.GET("/admin/ws", middleware.WebSocketAuthMiddleware(), ws.HandleAdminSocket(hub))

	// Background jobs
	cleanupJob := jobs.NewResetTokenCleanupJob()
	cleanupJob.Start()
	defer cleanupJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("🚀 Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
