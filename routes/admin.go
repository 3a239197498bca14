package routes

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cleaning-service-server/database"
	"cleaning-service-server/models"
	"cleaning-service-server/services"
	"cleaning-service-server/utils"
)

// AdminAuthMiddleware verifies the bearer token and requires an active
// admin account
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			c.Abort()
			return
		}

		// Remove "Bearer " prefix
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			log.Printf("❌ Token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		if claims.Role != string(models.RoleAdmin) && claims.Role != string(models.RoleMainAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
			c.Abort()
			return
		}

		var admin models.Admin
		if err := database.DB.First(&admin, claims.UserID).Error; err != nil {
			log.Printf("❌ Admin not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin not found"})
			c.Abort()
			return
		}

		if !admin.IsActive {
			log.Printf("❌ Admin %d is inactive", admin.ID)
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account is inactive"})
			c.Abort()
			return
		}

		c.Set("admin", admin)
		c.Set("admin_id", admin.ID)
		c.Next()
	}
}

// MainAdminMiddleware gates endpoints reserved for the main admin. Must run
// after AdminAuthMiddleware.
func MainAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := c.MustGet("admin").(models.Admin)
		if !admin.IsMainAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Main admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RegisterAdminRoutes registers the admin console routes
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/login", AdminLogin)

	authed := router.Group("", AdminAuthMiddleware())
	authed.GET("/me", getAdminProfile)
	authed.GET("/dashboard-stats", getDashboardStats)
	authed.GET("/password-status", getPasswordStatus)
	authed.POST("/setup-credentials", setupCredentials)
	authed.POST("/change-password", changeAdminPassword)

	authed.GET("/customers", listCustomers)
	authed.GET("/customers/:id", getCustomer)
	authed.PUT("/customers/:id", updateCustomer)
	authed.DELETE("/customers/:id", deleteCustomer)

	elevated := authed.Group("", MainAdminMiddleware())
	elevated.GET("/admins", listAdmins)
	elevated.POST("/admins", createAdmin)
	elevated.DELETE("/admins/:id", deleteAdmin)
}

// AdminLogin handles admin console login
func AdminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	var admin models.Admin
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&admin).Error; err != nil {
		log.Printf("❌ Admin login failed for %s: %v", req.Username, err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !admin.IsActive {
		log.Printf("❌ Login attempt by inactive admin %d", admin.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account is inactive"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		log.Printf("❌ Invalid password for admin %d", admin.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, string(admin.Role))
	if err != nil {
		internalError(c, "Failed to generate token", err)
		return
	}

	log.Printf("✅ Admin %d logged in", admin.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"token":       token,
		"admin":       admin,
		"first_login": admin.FirstLogin,
	})
}

// getAdminProfile handles GET /api/admin/me
func getAdminProfile(c *gin.Context) {
	admin := c.MustGet("admin").(models.Admin)
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
}

// getDashboardStats handles GET /api/admin/dashboard-stats. Weekly figures
// are only computed for the main admin.
func getDashboardStats(c *gin.Context) {
	admin := c.MustGet("admin").(models.Admin)

	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		internalError(c, "Failed to fetch bookings", err)
		return
	}

	var customers []models.Customer
	if err := database.DB.Find(&customers).Error; err != nil {
		internalError(c, "Failed to fetch customers", err)
		return
	}

	var payments []models.Payment
	if err := database.DB.Find(&payments).Error; err != nil {
		internalError(c, "Failed to fetch payments", err)
		return
	}

	stats := services.ComputeDashboardStats(bookings, customers, payments, admin.IsMainAdmin(), time.Now())
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// getPasswordStatus handles GET /api/admin/password-status
func getPasswordStatus(c *gin.Context) {
	admin := c.MustGet("admin").(models.Admin)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"first_login": admin.FirstLogin,
	})
}

// setupCredentials handles POST /api/admin/setup-credentials, the forced
// credential change on first login.
func setupCredentials(c *gin.Context) {
	admin := c.MustGet("admin").(models.Admin)

	var req struct {
		Username string `json:"username"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if !admin.FirstLogin {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Credentials already set up"})
		return
	}

	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		internalError(c, "Failed to hash password", err)
		return
	}

	admin.PasswordHash = hash
	admin.FirstLogin = false
	if req.Username != "" {
		admin.Username = req.Username
	}

	if err := database.DB.Save(&admin).Error; err != nil {
		internalError(c, "Failed to update credentials", err)
		return
	}

	log.Printf("✅ Admin %d completed first-login setup", admin.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Credentials updated"})
}

// changeAdminPassword handles POST /api/admin/change-password
func changeAdminPassword(c *gin.Context) {
	admin := c.MustGet("admin").(models.Admin)

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, admin.PasswordHash) {
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

	admin.PasswordHash = hash
	if err := database.DB.Save(&admin).Error; err != nil {
		internalError(c, "Failed to change password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed"})
}

// listCustomers handles GET /api/admin/customers
func listCustomers(c *gin.Context) {
	query := database.DB.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var customers []models.Customer
	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		internalError(c, "Failed to fetch customers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customers": customers, "total": len(customers)})
}

// getCustomer handles GET /api/admin/customers/:id
func getCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := database.DB.Preload("Bookings").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		} else {
			internalError(c, "Failed to fetch customer", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

// updateCustomer handles PUT /api/admin/customers/:id
func updateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		} else {
			internalError(c, "Failed to fetch customer", err)
		}
		return
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := database.DB.Save(&customer).Error; err != nil {
		internalError(c, "Failed to update customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

// deleteCustomer handles DELETE /api/admin/customers/:id
func deleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := database.DB.Delete(&models.Customer{}, id)
	if result.Error != nil {
		internalError(c, "Failed to delete customer", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	log.Printf("🗑️ Customer %d deleted by admin", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted"})
}

// listAdmins handles GET /api/admin/admins (main admin only)
func listAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := database.DB.Order("created_at ASC").Find(&admins).Error; err != nil {
		internalError(c, "Failed to fetch admins", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admins": admins})
}

// createAdmin handles POST /api/admin/admins (main admin only). New admins
// start in the first-login state and must change their password.
func createAdmin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
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

	var existing models.Admin
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Admin with this username or email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		internalError(c, "Failed to hash password", err)
		return
	}

	admin := models.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		FirstLogin:   true,
		IsActive:     true,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		internalError(c, "Failed to create admin", err)
		return
	}

	log.Printf("✅ Admin %d created", admin.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "admin": admin})
}

// deleteAdmin handles DELETE /api/admin/admins/:id (main admin only).
// The main admin cannot delete itself.
func deleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller := c.MustGet("admin").(models.Admin)
	if caller.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot delete your own account"})
		return
	}

	result := database.DB.Delete(&models.Admin{}, id)
	if result.Error != nil {
		internalError(c, "Failed to delete admin", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin not found"})
		return
	}

	log.Printf("🗑️ Admin %d deleted by main admin %d", id, caller.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin deleted"})
}
