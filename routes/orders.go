package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cleaning-service-server/database"
	"cleaning-service-server/middleware"
	"cleaning-service-server/models"
	"cleaning-service-server/utils"
)

// RegisterOrderRoutes registers the product order routes
func RegisterOrderRoutes(router *gin.RouterGroup) {
	router.POST("/", middleware.AuthMiddleware(), createOrder)
	router.GET("/my-orders", middleware.AuthMiddleware(), getMyOrders)

	admin := router.Group("", AdminAuthMiddleware())
	admin.GET("/", listOrders)
	admin.GET("/:id", getOrder)
	admin.DELETE("/:id", deleteOrder)
}

type orderRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Date      string `json:"date" binding:"required,bookingdate"`
}

// createOrder handles POST /api/orders
func createOrder(c *gin.Context) {
	customer := c.MustGet("customer").(models.Customer)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		} else {
			internalError(c, "Failed to fetch product", err)
		}
		return
	}

	if !product.Available() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product is currently unavailable"})
		return
	}

	date, err := utils.NormalizeDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format"})
		return
	}

	order := models.Order{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Date:       date,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		internalError(c, "Failed to create order", err)
		return
	}

	order.Customer = &customer
	order.Product = &product

	log.Printf("✅ Order %d created for customer %d (%s)", order.ID, customer.ID, product.Name)
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// getMyOrders handles GET /api/orders/my-orders
func getMyOrders(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var orders []models.Order
	if err := database.DB.Preload("Product").Preload("Payment").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		internalError(c, "Failed to fetch orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "total": len(orders)})
}

// listOrders handles GET /api/orders for the admin console
func listOrders(c *gin.Context) {
	query := database.DB.Preload("Customer").Preload("Product").Preload("Payment")
	if customerID := parseUintQuery(c, "customerId"); customerID != 0 {
		query = query.Where("customer_id = ?", customerID)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		internalError(c, "Failed to fetch orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "total": len(orders)})
}

// getOrder handles GET /api/orders/:id
func getOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := database.DB.Preload("Customer").Preload("Product").Preload("Payment").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		} else {
			internalError(c, "Failed to fetch order", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// deleteOrder handles DELETE /api/orders/:id
func deleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := database.DB.Delete(&models.Order{}, id)
	if result.Error != nil {
		internalError(c, "Failed to delete order", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	log.Printf("🗑️ Order %d deleted", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
}
