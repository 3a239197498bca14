package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cleaning-service-server/database"
	"cleaning-service-server/models"
	"cleaning-service-server/services"
)

// RegisterGalleryRoutes registers the public gallery routes
func RegisterGalleryRoutes(router *gin.RouterGroup) {
	router.GET("/", listGalleryItems)

	admin := router.Group("", AdminAuthMiddleware())
	admin.POST("/", uploadGalleryItem)
	admin.DELETE("/:id", deleteGalleryItem)
}

// listGalleryItems handles GET /api/gallery with optional type/category
// filters and paging
func listGalleryItems(c *gin.Context) {
	query := database.DB.Model(&models.GalleryItem{})
	if mediaType := c.Query("type"); mediaType != "" {
		query = query.Where("media_type = ?", mediaType)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		internalError(c, "Failed to count gallery items", err)
		return
	}

	page, limit := parsePaging(c)

	var items []models.GalleryItem
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error; err != nil {
		internalError(c, "Failed to fetch gallery items", err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       items,
		"totalPages":  totalPages,
		"currentPage": page,
		"totalItems":  total,
	})
}

// uploadGalleryItem handles POST /api/gallery. Multipart upload with the
// media file plus title/category fields.
func uploadGalleryItem(c *gin.Context) {
	admin := c.MustGet("admin").(models.Admin)

	header, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A media file is required"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title is required"})
		return
	}

	mediaType := c.DefaultPostForm("media_type", "image")
	if mediaType != "image" && mediaType != "video" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "media_type must be image or video"})
		return
	}

	storage, err := services.GetStorageService()
	if err != nil {
		internalError(c, "Media storage unavailable", err)
		return
	}

	result, err := storage.Upload(c.Request.Context(), header, "gallery", mediaType)
	if err != nil {
		internalError(c, "Media upload failed", err)
		return
	}

	item := models.GalleryItem{
		Title:       title,
		Description: strings.TrimSpace(c.PostForm("description")),
		MediaURL:    result.URL,
		MediaType:   mediaType,
		Category:    strings.TrimSpace(c.PostForm("category")),
		UploadedBy:  admin.ID,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		// The record failed, so the just-uploaded blob is orphaned
		go storage.Delete(context.Background(), result.PublicID)
		internalError(c, "Failed to save gallery item", err)
		return
	}

	log.Printf("✅ Gallery item %d uploaded by admin %d", item.ID, admin.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

// deleteGalleryItem handles DELETE /api/gallery/:id. The blob cleanup is
// best-effort: the record is removed even if the blob delete fails.
func deleteGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var item models.GalleryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Gallery item not found"})
		} else {
			internalError(c, "Failed to fetch gallery item", err)
		}
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		internalError(c, "Failed to delete gallery item", err)
		return
	}

	if storage, err := services.GetStorageService(); err == nil {
		go storage.Delete(context.Background(), services.PublicIDFromURL(item.MediaURL))
	}

	log.Printf("🗑️ Gallery item %d deleted", item.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Gallery item deleted"})
}
