package models

import (
	"time"
)

// BookingStatus represents the current stage of a quotation request workflow
type BookingStatus string

const (
	BookingStatusRequested  BookingStatus = "requested"
	BookingStatusContacted  BookingStatus = "contacted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusQuoted     BookingStatus = "quoted"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// ClosedStatuses are the states excluded from duplicate detection. The
// rejected/declined values never leave the admin console today but still
// exist on records migrated from the old system.
var ClosedStatuses = []string{"cancelled", "rejected", "declined"}

// IsValidBookingStatus reports whether s is one of the workflow statuses.
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusRequested, BookingStatusContacted, BookingStatusInProgress,
		BookingStatusQuoted, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a customer's quotation request for a cleaning service
// on a specific date and address, tracked through the admin workflow.
// Date is stored as a normalized YYYY-MM-DD string so same-day and past-date
// comparisons never depend on time of day.
type Booking struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	CustomerID uint   `json:"customer_id" gorm:"not null;index:idx_booking_dedup"`
	ServiceID  uint   `json:"service_id" gorm:"not null;index:idx_booking_dedup"`
	Date       string `json:"date" gorm:"type:varchar(10);not null;index:idx_booking_dedup"`
	Time       string `json:"time" gorm:"type:varchar(20);not null;default:'09:00'"`

	// Address is kept both as four fields and as one formatted string.
	AddressStreet     string `json:"address_street" gorm:"type:varchar(255);not null"`
	AddressCity       string `json:"address_city" gorm:"type:varchar(100);not null"`
	AddressState      string `json:"address_state" gorm:"type:varchar(100);not null"`
	AddressPostalCode string `json:"address_postal_code" gorm:"type:varchar(20);not null"`
	Address           string `json:"address" gorm:"type:varchar(500);not null"`

	SpecialInstructions *string `json:"special_instructions" gorm:"type:text"`
	PropertyType        *string `json:"property_type" gorm:"type:varchar(100)"`
	PropertySize        *string `json:"property_size" gorm:"type:varchar(100)"`
	CleaningFrequency   *string `json:"cleaning_frequency" gorm:"type:varchar(100)"`
	Duration            int     `json:"duration" gorm:"type:int"` // minutes

	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'requested'"`
	TotalAmount *float64      `json:"total_amount" gorm:"type:decimal(10,2)"`

	// Quote fields, set when the admin provides a quotation (amounts in ZAR).
	QuotedAmount      *float64 `json:"quoted_amount" gorm:"type:decimal(10,2)"`
	QuoteBreakdown    *string  `json:"quote_breakdown" gorm:"type:text"`
	QuoteNotes        *string  `json:"quote_notes" gorm:"type:text"`
	QuoteValidityDays *int     `json:"quote_validity_days"`

	// Workflow notes supplied by admins along the way.
	AdminNotes        *string `json:"admin_notes" gorm:"type:text"`
	CallNotes         *string `json:"call_notes" gorm:"type:text"`
	NextSteps         *string `json:"next_steps" gorm:"type:text"`
	ConsultationType  *string `json:"consultation_type" gorm:"type:varchar(100)"`
	ConsultationNotes *string `json:"consultation_notes" gorm:"type:text"`

	// Transition timestamps, each set exactly once when the corresponding
	// transition occurs, never backdated or cleared.
	ContactDate      *time.Time `json:"contact_date"`
	ConsultationDate *time.Time `json:"consultation_date"`
	QuotedDate       *time.Time `json:"quoted_date"`
	CompletedDate    *time.Time `json:"completed_date"`
	CancelledDate    *time.Time `json:"cancelled_date"`

	LastUpdated *time.Time `json:"last_updated"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Service  *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BookingCreate represents the request structure for creating a booking
type BookingCreate struct {
	CustomerID          uint    `json:"customer_id"`
	ServiceID           uint    `json:"service_id"`
	Date                string  `json:"date"`
	Time                string  `json:"time"`
	AddressStreet       string  `json:"address_street"`
	AddressCity         string  `json:"address_city"`
	AddressState        string  `json:"address_state"`
	AddressPostalCode   string  `json:"address_postal_code"`
	SpecialInstructions *string `json:"special_instructions"`
	Duration            *int    `json:"duration"`
	PropertyType        *string `json:"property_type"`
	PropertySize        *string `json:"property_size"`
	CleaningFrequency   *string `json:"cleaning_frequency"`
}

// CustomerSummary is the public projection of a customer attached to
// booking responses. Password material never appears here.
type CustomerSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ServiceSummary is the service projection attached to booking responses.
type ServiceSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Summary returns the public projection of a customer.
func (c *Customer) Summary() *CustomerSummary {
	if c == nil {
		return nil
	}
	return &CustomerSummary{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}

// Summary returns the projection of a service used on booking responses.
func (s *Service) Summary() *ServiceSummary {
	if s == nil {
		return nil
	}
	return &ServiceSummary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Duration:    s.Duration,
		ImageURL:    s.ImageURL,
	}
}
