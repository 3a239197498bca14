package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cleaning-service-server/database"
	"cleaning-service-server/models"
)

// RegisterPaymentRoutes registers the payment routes (admin console)
func RegisterPaymentRoutes(router *gin.RouterGroup) {
	admin := router.Group("", AdminAuthMiddleware())
	admin.GET("/", listPayments)
	admin.GET("/:id", getPayment)
	admin.POST("/", createPayment)
	admin.PATCH("/:id/status", updatePaymentStatus)
	admin.DELETE("/:id", deletePayment)
}

// listPayments handles GET /api/payments
func listPayments(c *gin.Context) {
	query := database.DB.Preload("Customer")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := parseUintQuery(c, "customerId"); customerID != 0 {
		query = query.Where("customer_id = ?", customerID)
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").Find(&payments).Error; err != nil {
		internalError(c, "Failed to fetch payments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments, "total": len(payments)})
}

// getPayment handles GET /api/payments/:id
func getPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := database.DB.Preload("Customer").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
		} else {
			internalError(c, "Failed to fetch payment", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

// createPayment handles POST /api/payments. A unique reference is assigned
// at creation so every payment can be reconciled against bank statements.
func createPayment(c *gin.Context) {
	var req struct {
		CustomerID uint    `json:"customer_id" binding:"required"`
		OrderID    *uint   `json:"order_id"`
		Amount     float64 `json:"amount" binding:"required,gt=0"`
		Status     string  `json:"status"`
		Method     string  `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		} else {
			internalError(c, "Failed to fetch customer", err)
		}
		return
	}

	status := models.PaymentStatusPending
	if req.Status != "" {
		switch models.PaymentStatus(req.Status) {
		case models.PaymentStatusPending, models.PaymentStatusCompleted,
			models.PaymentStatusConfirmed, models.PaymentStatusFailed,
			models.PaymentStatusRefunded:
			status = models.PaymentStatus(req.Status)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment status: " + req.Status})
			return
		}
	}

	payment := models.Payment{
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
		Status:     status,
		Method:     req.Method,
		Reference:  uuid.New().String(),
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		internalError(c, "Failed to create payment", err)
		return
	}

	// Link the order to its payment when one was supplied
	if req.OrderID != nil {
		if err := database.DB.Model(&models.Order{}).
			Where("id = ?", *req.OrderID).
			Update("payment_id", payment.ID).Error; err != nil {
			log.Printf("⚠️ Failed to link payment %d to order %d: %v", payment.ID, *req.OrderID, err)
		}
	}

	log.Printf("✅ Payment %d recorded: %.2f (%s)", payment.ID, payment.Amount, payment.Reference)
	c.JSON(http.StatusCreated, gin.H{"success": true, "payment": payment})
}

// updatePaymentStatus handles PATCH /api/payments/:id/status
func updatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	switch models.PaymentStatus(req.Status) {
	case models.PaymentStatusPending, models.PaymentStatusCompleted,
		models.PaymentStatusConfirmed, models.PaymentStatusFailed,
		models.PaymentStatusRefunded:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment status: " + req.Status})
		return
	}

	var payment models.Payment
	if err := database.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
		} else {
			internalError(c, "Failed to fetch payment", err)
		}
		return
	}

	payment.Status = models.PaymentStatus(req.Status)
	if err := database.DB.Save(&payment).Error; err != nil {
		internalError(c, "Failed to update payment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

// deletePayment handles DELETE /api/payments/:id
func deletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := database.DB.Delete(&models.Payment{}, id)
	if result.Error != nil {
		internalError(c, "Failed to delete payment", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
		return
	}

	log.Printf("🗑️ Payment %d deleted", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment deleted"})
}
