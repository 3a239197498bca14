package routes

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cleaning-service-server/database"
	"cleaning-service-server/models"
	"cleaning-service-server/services"
)

// RegisterServiceRoutes registers the service catalog routes
func RegisterServiceRoutes(router *gin.RouterGroup) {
	// Public catalog
	router.GET("/", listServices)
	router.GET("/:id", getService)

	// Admin management
	admin := router.Group("", AdminAuthMiddleware())
	admin.POST("/", createService)
	admin.PUT("/:id", updateService)
	admin.PATCH("/:id/availability", toggleServiceAvailability)
	admin.POST("/:id/image", uploadServiceImage)
	admin.DELETE("/:id", deleteService)
}

// listServices handles GET /api/services. The public catalog shows only
// available services unless ?all=true (admin screens pass it with a token,
// but the flag itself is harmless since availability is not a secret).
func listServices(c *gin.Context) {
	var items []models.Service
	if err := database.DB.Order("category, name").Find(&items).Error; err != nil {
		internalError(c, "Failed to fetch services", err)
		return
	}

	if c.Query("all") != "true" {
		visible := make([]models.Service, 0, len(items))
		for i := range items {
			if items[i].Available() {
				visible = append(visible, items[i])
			}
		}
		items = visible
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "services": items, "total": len(items)})
}

// getService handles GET /api/services/:id
func getService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
		} else {
			internalError(c, "Failed to fetch service", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

// createService handles POST /api/services
func createService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		internalError(c, "Failed to create service", err)
		return
	}

	log.Printf("✅ Service %d created: %s", service.ID, service.Name)
	c.JSON(http.StatusCreated, gin.H{"success": true, "service": service})
}

// updateService handles PUT /api/services/:id
func updateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
		} else {
			internalError(c, "Failed to fetch service", err)
		}
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Category = req.Category
	service.Duration = req.Duration
	service.BasePrice = req.BasePrice
	if req.ImageURL != "" {
		service.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		service.IsAvailable = req.IsAvailable
	}

	if err := database.DB.Save(&service).Error; err != nil {
		internalError(c, "Failed to update service", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

// toggleServiceAvailability handles PATCH /api/services/:id/availability
func toggleServiceAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "is_available is required"})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
		} else {
			internalError(c, "Failed to fetch service", err)
		}
		return
	}

	service.IsAvailable = req.IsAvailable
	if err := database.DB.Save(&service).Error; err != nil {
		internalError(c, "Failed to update availability", err)
		return
	}

	log.Printf("✅ Service %d availability set to %v", service.ID, *req.IsAvailable)
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

// uploadServiceImage handles POST /api/services/:id/image. The previous
// image is cleaned up best-effort after the new one is stored.
func uploadServiceImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
		} else {
			internalError(c, "Failed to fetch service", err)
		}
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "An image file is required"})
		return
	}

	storage, err := services.GetStorageService()
	if err != nil {
		internalError(c, "Media storage unavailable", err)
		return
	}

	result, err := storage.Upload(c.Request.Context(), header, "services", "image")
	if err != nil {
		internalError(c, "Image upload failed", err)
		return
	}

	oldURL := service.ImageURL
	service.ImageURL = result.URL
	if err := database.DB.Save(&service).Error; err != nil {
		internalError(c, "Failed to update service", err)
		return
	}

	if oldURL != "" {
		go storage.Delete(context.Background(), services.PublicIDFromURL(oldURL))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

// deleteService handles DELETE /api/services/:id
func deleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
		} else {
			internalError(c, "Failed to fetch service", err)
		}
		return
	}

	if err := database.DB.Delete(&service).Error; err != nil {
		internalError(c, "Failed to delete service", err)
		return
	}

	if service.ImageURL != "" {
		if storage, err := services.GetStorageService(); err == nil {
			go storage.Delete(context.Background(), services.PublicIDFromURL(service.ImageURL))
		}
	}

	log.Printf("🗑️ Service %d deleted", service.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted"})
}
