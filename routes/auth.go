package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cleaning-service-server/config"
	"cleaning-service-server/database"
	"cleaning-service-server/middleware"
	"cleaning-service-server/models"
	"cleaning-service-server/utils"
)

// RegisterAuthRoutes registers customer authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/register", middleware.AuthRateLimitMiddleware(), registerCustomer)
	router.POST("/login", middleware.AuthRateLimitMiddleware(), loginCustomer)
	router.GET("/verify", verifyToken)
	router.POST("/forgot-password", middleware.AuthRateLimitMiddleware(), forgotPassword)
	router.POST("/reset-password", middleware.AuthRateLimitMiddleware(), resetPassword)

	authed := router.Group("", middleware.AuthMiddleware())
	authed.GET("/profile", getProfile)
	authed.PUT("/profile", updateProfile)
	authed.POST("/change-password", changePassword)
}

// registerCustomer handles POST /api/auth/register
func registerCustomer(c *gin.Context) {
	var req struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format", "error": err.Error()})
		return
	}

	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Customer
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "An account with this email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		internalError(c, "Failed to hash password", err)
		return
	}

	customer := models.Customer{
		FullName:     middleware.SanitizeInput(req.FullName),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      middleware.SanitizeInput(req.Address),
		PasswordHash: hash,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		internalError(c, "Failed to create account", err)
		return
	}

	token, err := utils.GenerateToken(customer.ID, "customer")
	if err != nil {
		internalError(c, "Failed to generate token", err)
		return
	}

	log.Printf("✅ Customer %d registered", customer.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "customer": customer})
}

// loginCustomer handles POST /api/auth/login
func loginCustomer(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var customer models.Customer
	if err := database.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		log.Printf("❌ Invalid password for customer %d", customer.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(customer.ID, "customer")
	if err != nil {
		internalError(c, "Failed to generate token", err)
		return
	}

	log.Printf("✅ Customer %d logged in", customer.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "customer": customer})
}

// verifyToken handles GET /api/auth/verify
func verifyToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token required"})
		return
	}

	claims, err := utils.VerifyToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token is invalid or expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
}

// getProfile handles GET /api/auth/profile
func getProfile(c *gin.Context) {
	customer := c.MustGet("customer").(models.Customer)
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

// updateProfile handles PUT /api/auth/profile
func updateProfile(c *gin.Context) {
	customer := c.MustGet("customer").(models.Customer)

	var req struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if req.FullName != nil {
		customer.FullName = middleware.SanitizeInput(*req.FullName)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		customer.Address = middleware.SanitizeInput(*req.Address)
	}

	if err := database.DB.Save(&customer).Error; err != nil {
		internalError(c, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

// changePassword handles POST /api/auth/change-password
func changePassword(c *gin.Context) {
	customer := c.MustGet("customer").(models.Customer)

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, customer.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password is incorrect"})
		return
	}

	if err := utils.ValidatePasswordStrength(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		internalError(c, "Failed to hash password", err)
		return
	}

	customer.PasswordHash = hash
	if err := database.DB.Save(&customer).Error; err != nil {
		internalError(c, "Failed to change password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed"})
}

// forgotPassword handles POST /api/auth/forgot-password. The response never
// reveals whether the email exists. Email dispatch is a best-effort side
// channel; the token is persisted regardless.
func forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	accepted := gin.H{"success": true, "message": "If an account exists for this email, a reset link has been sent"}

	var customer models.Customer
	if err := database.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, accepted)
			return
		}
		internalError(c, "Failed to process request", err)
		return
	}

	token, err := middleware.GenerateSecureToken(32)
	if err != nil {
		internalError(c, "Failed to generate reset token", err)
		return
	}

	reset := models.PasswordReset{
		Token:     token,
		Email:     email,
		Role:      "customer",
		ExpiresAt: time.Now().Add(time.Duration(config.AppConfig.Reset.TokenExpiryMinutes) * time.Minute),
	}
	if err := database.DB.Create(&reset).Error; err != nil {
		internalError(c, "Failed to store reset token", err)
		return
	}

	// Mail delivery runs outside this service. Log so operators can hand
	// the token over manually when SMTP is down.
	log.Printf("📧 Password reset token issued for %s (expires %s)", email, reset.ExpiresAt.Format(time.RFC3339))

	c.JSON(http.StatusOK, accepted)
}

// resetPassword handles POST /api/auth/reset-password
func resetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	var reset models.PasswordReset
	if err := database.DB.First(&reset, "token = ?", req.Token).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired reset token"})
		return
	}

	if reset.Expired(time.Now()) {
		database.DB.Delete(&reset)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired reset token"})
		return
	}

	if err := utils.ValidatePasswordStrength(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var customer models.Customer
	if err := database.DB.Where("email = ?", reset.Email).First(&customer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Account not found"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		internalError(c, "Failed to hash password", err)
		return
	}

	customer.PasswordHash = hash
	if err := database.DB.Save(&customer).Error; err != nil {
		internalError(c, "Failed to reset password", err)
		return
	}

	// One-shot token
	database.DB.Delete(&reset)

	log.Printf("✅ Password reset completed for customer %d", customer.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset"})
}
