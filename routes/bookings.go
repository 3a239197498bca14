package routes

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cleaning-service-server/database"
	"cleaning-service-server/middleware"
	"cleaning-service-server/models"
	"cleaning-service-server/services"
	"cleaning-service-server/utils"
	"cleaning-service-server/websocket"
)

var bookingHub *websocket.Hub

// RegisterBookingRoutes registers all booking-related routes
func RegisterBookingRoutes(router *gin.RouterGroup, hub *websocket.Hub) {
	bookingHub = hub

	// Customer-facing endpoints
	router.GET("/check-availability", checkAvailability)
	router.POST("/", createBooking)
	router.GET("/customer/:id", middleware.AuthMiddleware(), getCustomerBookings)

	// Admin console endpoints
	admin := router.Group("", AdminAuthMiddleware())
	admin.GET("/", listBookings)
	admin.GET("/stats", getBookingStats)
	admin.GET("/analytics", getBookingAnalytics)
	admin.GET("/:id", getBooking)
	admin.PUT("/:id", updateBooking)
	admin.DELETE("/:id", deleteBooking)
	admin.PATCH("/:id/status", updateBookingStatus)
	admin.POST("/:id/contacted", markBookingContacted)
	admin.POST("/:id/in-progress", markBookingInProgress)
	admin.POST("/:id/quote", provideBookingQuote)
	admin.PATCH("/:id/quote", updateBookingQuote)
}

// bookingView is a booking response enriched with the customer and service
// summaries. The raw relations are cleared so only the summaries serialize.
type bookingView struct {
	models.Booking
	CustomerInfo *models.CustomerSummary `json:"customer,omitempty"`
	ServiceInfo  *models.ServiceSummary  `json:"service,omitempty"`
}

func newBookingView(b *models.Booking) bookingView {
	v := bookingView{Booking: *b}
	v.CustomerInfo = b.Customer.Summary()
	v.ServiceInfo = b.Service.Summary()
	v.Booking.Customer = nil
	v.Booking.Service = nil
	return v
}

func bookingViews(bookings []models.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, newBookingView(&bookings[i]))
	}
	return views
}

// hasOpenDuplicate checks for an existing booking with the same customer,
// service and date that is still open. The compound index on these columns
// keeps this a single indexed lookup. The read-then-write window is accepted:
// a duplicate slipping through twice is an admin inconvenience, not a
// correctness failure.
func hasOpenDuplicate(customerID, serviceID uint, date string, excludeID uint) (bool, error) {
	query := database.DB.Model(&models.Booking{}).
		Where("customer_id = ? AND service_id = ? AND date = ? AND status NOT IN ?",
			customerID, serviceID, date, models.ClosedStatuses)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// bearerClaims extracts claims from the Authorization header without
// requiring them. Used where a missing customer record can be provisioned
// from the authenticated identity.
func bearerClaims(c *gin.Context) *middleware.Claims {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return nil
	}
	claims, err := utils.VerifyToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// createBooking handles POST /api/bookings. Validation failures are
// reported one at a time, in a fixed order, so the client always sees the
// earliest problem first.
func createBooking(c *gin.Context) {
	var req models.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	claims := bearerClaims(c)
	if req.CustomerID == 0 && claims != nil && claims.Role == "customer" {
		req.CustomerID = claims.UserID
	}
	if req.CustomerID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Customer ID is required"})
		return
	}

	if req.ServiceID == 0 || strings.TrimSpace(req.Date) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Service ID and date are required"})
		return
	}

	if missing := services.ValidateAddress(&req); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Incomplete address",
			"missing": missing,
		})
		return
	}

	date, err := utils.NormalizeDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format"})
		return
	}
	req.Date = date

	if utils.IsPastDate(date, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Booking date cannot be in the past"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, req.CustomerID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			internalError(c, "Failed to look up customer", err)
			return
		}
		// A valid token for an account with no customer record yet means the
		// profile was never completed. Provision a minimal one rather than
		// turning the customer away.
		if claims == nil || claims.Role != "customer" || claims.UserID != req.CustomerID {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
			return
		}
		customer = models.Customer{
			ID:       req.CustomerID,
			FullName: "Customer",
			Email:    fmt.Sprintf("customer-%d@pending.local", req.CustomerID),
		}
		if err := database.DB.Create(&customer).Error; err != nil {
			internalError(c, "Failed to provision customer record", err)
			return
		}
		log.Printf("⚠️ Provisioned customer record %d from token identity", customer.ID)
	}

	var service models.Service
	if err := database.DB.First(&service, req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Service not found"})
			return
		}
		internalError(c, "Failed to look up service", err)
		return
	}

	if !service.Available() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Service is currently unavailable"})
		return
	}

	duplicate, err := hasOpenDuplicate(req.CustomerID, req.ServiceID, date, 0)
	if err != nil {
		internalError(c, "Failed to check for duplicate booking", err)
		return
	}
	if duplicate {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "You already have an active booking for this service on this date",
		})
		return
	}

	booking := services.NewBookingFromRequest(&req, &service)
	if err := database.DB.Create(booking).Error; err != nil {
		internalError(c, "Failed to create booking", err)
		return
	}

	booking.Customer = &customer
	booking.Service = &service
	view := newBookingView(booking)

	log.Printf("✅ Booking %d created for customer %d (%s on %s)", booking.ID, customer.ID, service.Name, booking.Date)

	if bookingHub != nil {
		go bookingHub.NotifyBookingRequest(view)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking request created",
		"booking": view,
	})
}

// checkAvailability handles GET /api/bookings/check-availability. It is
// advisory only: every constraint is evaluated so the client can show all
// problems with a date at once.
func checkAvailability(c *gin.Context) {
	customerID := parseUintQuery(c, "Customer_ID")
	serviceID := parseUintQuery(c, "Service_ID")
	rawDate := c.Query("Date")

	if customerID == 0 || serviceID == 0 || rawDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Customer_ID, Service_ID and Date are required",
		})
		return
	}

	date, err := utils.NormalizeDate(rawDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format"})
		return
	}

	duplicate, err := hasOpenDuplicate(customerID, serviceID, date, 0)
	if err != nil {
		internalError(c, "Failed to check for duplicate booking", err)
		return
	}

	violated := services.CheckAvailability(date, duplicate, time.Now())
	constraints := make([]gin.H, 0, len(violated))
	for _, v := range violated {
		constraints = append(constraints, gin.H{
			"constraint": string(v),
			"message":    services.ConstraintMessage(v),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"available":   len(violated) == 0,
		"date":        date,
		"constraints": constraints,
	})
}

// listBookings handles GET /api/bookings for the admin console. Filtering
// and search run after customer/service enrichment so search can match
// names, then results are sorted and paginated.
func listBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Preload("Customer").Preload("Service").Find(&bookings).Error; err != nil {
		internalError(c, "Failed to fetch bookings", err)
		return
	}

	filter := services.BookingFilter{
		Status:     c.Query("status"),
		CustomerID: parseUintQuery(c, "customerId"),
		ServiceID:  parseUintQuery(c, "serviceId"),
		Search:     c.Query("search"),
	}

	filtered := services.FilterBookings(bookings, filter)
	services.SortBookings(filtered)

	page, limit := parsePaging(c)
	pageItems, totalPages := services.PaginateBookings(filtered, page, limit)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"bookings":      bookingViews(pageItems),
		"totalPages":    totalPages,
		"currentPage":   page,
		"totalBookings": len(filtered),
	})
}

// getCustomerBookings handles GET /api/bookings/customer/:id. Customers can
// only see their own history.
func getCustomerBookings(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	authID := c.GetUint("customer_id")
	if authID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You can only view your own bookings"})
		return
	}

	query := database.DB.Preload("Service").Where("customer_id = ?", customerID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		internalError(c, "Failed to fetch bookings", err)
		return
	}

	services.SortBookings(bookings)
	page, limit := parsePaging(c)
	pageItems, totalPages := services.PaginateBookings(bookings, page, limit)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"bookings":      bookingViews(pageItems),
		"totalPages":    totalPages,
		"currentPage":   page,
		"totalBookings": len(bookings),
	})
}

// loadBooking fetches a booking by path parameter with its relations.
// A nil return means the response has already been written.
func loadBooking(c *gin.Context) *models.Booking {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var booking models.Booking
	if err := database.DB.Preload("Customer").Preload("Service").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		} else {
			internalError(c, "Failed to fetch booking", err)
		}
		return nil
	}
	return &booking
}

// getBooking handles GET /api/bookings/:id
func getBooking(c *gin.Context) {
	booking := loadBooking(c)
	if booking == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": newBookingView(booking)})
}

// saveAndRespond persists a modified booking and writes the standard
// response, notifying connected admin consoles.
func saveAndRespond(c *gin.Context, booking *models.Booking, message string) {
	if err := database.DB.Save(booking).Error; err != nil {
		internalError(c, "Failed to update booking", err)
		return
	}

	view := newBookingView(booking)
	if bookingHub != nil {
		go bookingHub.NotifyBookingUpdate(view)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "booking": view})
}

type statusUpdateRequest struct {
	Status            string  `json:"status"`
	AdminNotes        *string `json:"admin_notes"`
	ContactDate       *string `json:"contact_date"`
	CallNotes         *string `json:"call_notes"`
	NextSteps         *string `json:"next_steps"`
	ConsultationDate  *string `json:"consultation_date"`
	ConsultationType  *string `json:"consultation_type"`
	ConsultationNotes *string `json:"consultation_notes"`
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, utils.DateLayout} {
		if t, err := time.ParseInLocation(layout, *raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp: %s", *raw)
}

// updateBookingStatus handles PATCH /api/bookings/:id/status. Any status
// may be set from any other; each status applies its own side effects.
func updateBookingStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Status) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}
	if !models.IsValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status: " + req.Status})
		return
	}

	booking := loadBooking(c)
	if booking == nil {
		return
	}

	contactDate, err := parseOptionalTime(req.ContactDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid contact_date"})
		return
	}
	consultationDate, err := parseOptionalTime(req.ConsultationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid consultation_date"})
		return
	}

	input := services.TransitionInput{
		ContactDate:       contactDate,
		CallNotes:         req.CallNotes,
		NextSteps:         req.NextSteps,
		ConsultationDate:  consultationDate,
		ConsultationType:  req.ConsultationType,
		ConsultationNotes: req.ConsultationNotes,
		AdminNotes:        req.AdminNotes,
	}

	if err := services.ApplyTransition(booking, models.BookingStatus(req.Status), input, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	log.Printf("✅ Booking %d moved to %s", booking.ID, booking.Status)
	saveAndRespond(c, booking, "Booking status updated")
}

// markBookingContacted handles POST /api/bookings/:id/contacted, the quick
// action for logging the first call.
func markBookingContacted(c *gin.Context) {
	var req struct {
		ContactDate *string `json:"contact_date"`
		CallNotes   *string `json:"call_notes"`
		NextSteps   *string `json:"next_steps"`
		AdminNotes  *string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	booking := loadBooking(c)
	if booking == nil {
		return
	}

	contactDate, err := parseOptionalTime(req.ContactDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid contact_date"})
		return
	}

	input := services.TransitionInput{
		ContactDate: contactDate,
		CallNotes:   req.CallNotes,
		NextSteps:   req.NextSteps,
		AdminNotes:  req.AdminNotes,
	}
	if err := services.ApplyTransition(booking, models.BookingStatusContacted, input, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	saveAndRespond(c, booking, "Booking marked as contacted")
}

// markBookingInProgress handles POST /api/bookings/:id/in-progress,
// optionally recording a scheduled consultation.
func markBookingInProgress(c *gin.Context) {
	var req struct {
		ConsultationDate  *string `json:"consultation_date"`
		ConsultationType  *string `json:"consultation_type"`
		ConsultationNotes *string `json:"consultation_notes"`
		AdminNotes        *string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	booking := loadBooking(c)
	if booking == nil {
		return
	}

	consultationDate, err := parseOptionalTime(req.ConsultationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid consultation_date"})
		return
	}

	input := services.TransitionInput{
		ConsultationDate:  consultationDate,
		ConsultationType:  req.ConsultationType,
		ConsultationNotes: req.ConsultationNotes,
		AdminNotes:        req.AdminNotes,
	}
	if err := services.ApplyTransition(booking, models.BookingStatusInProgress, input, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	saveAndRespond(c, booking, "Booking marked as in progress")
}

type quoteRequest struct {
	QuotedAmount      *float64 `json:"quoted_amount"`
	QuoteBreakdown    *string  `json:"quote_breakdown"`
	QuoteNotes        *string  `json:"quote_notes"`
	QuoteValidityDays *int     `json:"quote_validity_days"`
	AdminNotes        *string  `json:"admin_notes"`
}

// provideBookingQuote handles POST /api/bookings/:id/quote
func provideBookingQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	if req.QuotedAmount == nil || *req.QuotedAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A quoted amount greater than zero is required"})
		return
	}

	booking := loadBooking(c)
	if booking == nil {
		return
	}

	input := services.QuoteInput{
		Amount:       *req.QuotedAmount,
		Breakdown:    req.QuoteBreakdown,
		Notes:        req.QuoteNotes,
		ValidityDays: req.QuoteValidityDays,
		AdminNotes:   req.AdminNotes,
	}
	if err := services.ApplyQuote(booking, input, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	log.Printf("✅ Booking %d quoted at %.2f", booking.ID, *req.QuotedAmount)
	saveAndRespond(c, booking, "Quote provided")
}

// updateBookingQuote handles PATCH /api/bookings/:id/quote. Partial update
// of the quote fields without changing the workflow status.
func updateBookingQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	booking := loadBooking(c)
	if booking == nil {
		return
	}

	if req.QuotedAmount != nil {
		if *req.QuotedAmount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quoted amount must be greater than zero"})
			return
		}
		booking.QuotedAmount = req.QuotedAmount
	}
	if req.QuoteBreakdown != nil {
		booking.QuoteBreakdown = req.QuoteBreakdown
	}
	if req.QuoteNotes != nil {
		booking.QuoteNotes = req.QuoteNotes
	}
	if req.QuoteValidityDays != nil {
		booking.QuoteValidityDays = req.QuoteValidityDays
	}
	if req.AdminNotes != nil {
		booking.AdminNotes = req.AdminNotes
	}

	now := time.Now()
	booking.LastUpdated = &now

	saveAndRespond(c, booking, "Quote updated")
}

type bookingUpdateRequest struct {
	Date                *string  `json:"date"`
	Time                *string  `json:"time"`
	AddressStreet       *string  `json:"address_street"`
	AddressCity         *string  `json:"address_city"`
	AddressState        *string  `json:"address_state"`
	AddressPostalCode   *string  `json:"address_postal_code"`
	SpecialInstructions *string  `json:"special_instructions"`
	PropertyType        *string  `json:"property_type"`
	PropertySize        *string  `json:"property_size"`
	CleaningFrequency   *string  `json:"cleaning_frequency"`
	Duration            *int     `json:"duration"`
	TotalAmount         *float64 `json:"total_amount"`
	AdminNotes          *string  `json:"admin_notes"`
}

// updateBooking handles PUT /api/bookings/:id, the general admin edit.
// Only the supplied fields change.
func updateBooking(c *gin.Context) {
	var req bookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	booking := loadBooking(c)
	if booking == nil {
		return
	}

	if req.Date != nil {
		date, err := utils.NormalizeDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format"})
			return
		}
		booking.Date = date
	}
	if req.Time != nil && strings.TrimSpace(*req.Time) != "" {
		booking.Time = strings.TrimSpace(*req.Time)
	}

	addressChanged := false
	if req.AddressStreet != nil {
		booking.AddressStreet = strings.TrimSpace(*req.AddressStreet)
		addressChanged = true
	}
	if req.AddressCity != nil {
		booking.AddressCity = strings.TrimSpace(*req.AddressCity)
		addressChanged = true
	}
	if req.AddressState != nil {
		booking.AddressState = strings.TrimSpace(*req.AddressState)
		addressChanged = true
	}
	if req.AddressPostalCode != nil {
		booking.AddressPostalCode = strings.TrimSpace(*req.AddressPostalCode)
		addressChanged = true
	}
	if addressChanged {
		if booking.AddressStreet == "" || booking.AddressCity == "" ||
			booking.AddressState == "" || booking.AddressPostalCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Incomplete address"})
			return
		}
		booking.Address = services.FormatAddress(booking.AddressStreet, booking.AddressCity,
			booking.AddressState, booking.AddressPostalCode)
	}

	if req.SpecialInstructions != nil {
		booking.SpecialInstructions = req.SpecialInstructions
	}
	if req.PropertyType != nil {
		booking.PropertyType = req.PropertyType
	}
	if req.PropertySize != nil {
		booking.PropertySize = req.PropertySize
	}
	if req.CleaningFrequency != nil {
		booking.CleaningFrequency = req.CleaningFrequency
	}
	if req.Duration != nil && *req.Duration > 0 {
		booking.Duration = *req.Duration
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = req.TotalAmount
	}
	if req.AdminNotes != nil {
		booking.AdminNotes = req.AdminNotes
	}

	now := time.Now()
	booking.LastUpdated = &now

	saveAndRespond(c, booking, "Booking updated")
}

// deleteBooking handles DELETE /api/bookings/:id
func deleteBooking(c *gin.Context) {
	booking := loadBooking(c)
	if booking == nil {
		return
	}

	if err := database.DB.Delete(booking).Error; err != nil {
		internalError(c, "Failed to delete booking", err)
		return
	}

	log.Printf("🗑️ Booking %d deleted", booking.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}

// getBookingStats handles GET /api/bookings/stats, the workflow counters
// for the bookings screen.
func getBookingStats(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		internalError(c, "Failed to fetch bookings", err)
		return
	}

	counters := services.ComputeBookingCounters(bookings, time.Now())
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": counters})
}

// getBookingAnalytics handles GET /api/bookings/analytics?period=week|month|year
func getBookingAnalytics(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		internalError(c, "Failed to fetch bookings", err)
		return
	}

	analytics := services.ComputeBookingAnalytics(bookings, c.DefaultQuery("period", "week"), time.Now())
	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": analytics})
}
