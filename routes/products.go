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

// RegisterProductRoutes registers the shop product routes
func RegisterProductRoutes(router *gin.RouterGroup) {
	router.GET("/", listProducts)
	router.GET("/:id", getProduct)

	admin := router.Group("", AdminAuthMiddleware())
	admin.POST("/", createProduct)
	admin.PUT("/:id", updateProduct)
	admin.PATCH("/:id/availability", toggleProductAvailability)
	admin.POST("/:id/image", uploadProductImage)
	admin.DELETE("/:id", deleteProduct)
}

// listProducts handles GET /api/products
func listProducts(c *gin.Context) {
	var items []models.Product
	if err := database.DB.Order("name").Find(&items).Error; err != nil {
		internalError(c, "Failed to fetch products", err)
		return
	}

	if c.Query("all") != "true" {
		visible := make([]models.Product, 0, len(items))
		for i := range items {
			if items[i].Available() {
				visible = append(visible, items[i])
			}
		}
		items = visible
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": items, "total": len(items)})
}

// loadProduct fetches a product by path parameter. A nil return means the
// response has already been written.
func loadProduct(c *gin.Context) *models.Product {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		} else {
			internalError(c, "Failed to fetch product", err)
		}
		return nil
	}
	return &product
}

// getProduct handles GET /api/products/:id
func getProduct(c *gin.Context) {
	product := loadProduct(c)
	if product == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// createProduct handles POST /api/products
func createProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		IsAvailable:   req.IsAvailable,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		internalError(c, "Failed to create product", err)
		return
	}

	log.Printf("✅ Product %d created: %s", product.ID, product.Name)
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// updateProduct handles PUT /api/products/:id
func updateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	product := loadProduct(c)
	if product == nil {
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		product.IsAvailable = req.IsAvailable
	}

	if err := database.DB.Save(product).Error; err != nil {
		internalError(c, "Failed to update product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// toggleProductAvailability handles PATCH /api/products/:id/availability
func toggleProductAvailability(c *gin.Context) {
	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "is_available is required"})
		return
	}

	product := loadProduct(c)
	if product == nil {
		return
	}

	product.IsAvailable = req.IsAvailable
	if err := database.DB.Save(product).Error; err != nil {
		internalError(c, "Failed to update availability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// uploadProductImage handles POST /api/products/:id/image
func uploadProductImage(c *gin.Context) {
	product := loadProduct(c)
	if product == nil {
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

	result, err := storage.Upload(c.Request.Context(), header, "products", "image")
	if err != nil {
		internalError(c, "Image upload failed", err)
		return
	}

	oldURL := product.ImageURL
	product.ImageURL = result.URL
	if err := database.DB.Save(product).Error; err != nil {
		internalError(c, "Failed to update product", err)
		return
	}

	if oldURL != "" {
		go storage.Delete(context.Background(), services.PublicIDFromURL(oldURL))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// deleteProduct handles DELETE /api/products/:id
func deleteProduct(c *gin.Context) {
	product := loadProduct(c)
	if product == nil {
		return
	}

	if err := database.DB.Delete(product).Error; err != nil {
		internalError(c, "Failed to delete product", err)
		return
	}

	if product.ImageURL != "" {
		if storage, err := services.GetStorageService(); err == nil {
			go storage.Delete(context.Background(), services.PublicIDFromURL(product.ImageURL))
		}
	}

	log.Printf("🗑️ Product %d deleted", product.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}
