package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cleaning-service-server/models"
	"cleaning-service-server/utils"
)

// DefaultBookingTime is used when the customer does not pick a time slot.
const DefaultBookingTime = "09:00"

// ValidateAddress returns the names of the required address fields that are
// missing or blank. An empty result means the address is complete.
func ValidateAddress(req *models.BookingCreate) []string {
	var missing []string
	if strings.TrimSpace(req.AddressStreet) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(req.AddressCity) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(req.AddressState) == "" {
		missing = append(missing, "state")
	}
	if strings.TrimSpace(req.AddressPostalCode) == "" {
		missing = append(missing, "postal_code")
	}
	return missing
}

// FormatAddress builds the display form of a booking address.
func FormatAddress(street, city, state, postalCode string) string {
	return fmt.Sprintf("%s, %s, %s, %s",
		strings.TrimSpace(street),
		strings.TrimSpace(city),
		strings.TrimSpace(state),
		strings.TrimSpace(postalCode))
}

// IsOpenStatus reports whether a booking in this status still blocks a new
// booking for the same customer, service and date.
func IsOpenStatus(status models.BookingStatus) bool {
	for _, closed := range models.ClosedStatuses {
		if string(status) == closed {
			return false
		}
	}
	return true
}

// AvailabilityConstraint names a reason a date cannot be booked.
type AvailabilityConstraint string

const (
	ConstraintPastDate         AvailabilityConstraint = "past_date"
	ConstraintAfterNoonSameDay AvailabilityConstraint = "after_12pm_same_day"
	ConstraintDuplicateBooking AvailabilityConstraint = "duplicate_booking"
)

// CheckAvailability evaluates every constraint independently and returns all
// that are violated. hasDuplicate is whether an open booking already exists
// for the same customer, service and date.
func CheckAvailability(date string, hasDuplicate bool, now time.Time) []AvailabilityConstraint {
	var violated []AvailabilityConstraint
	if utils.IsPastDate(date, now) {
		violated = append(violated, ConstraintPastDate)
	}
	if utils.IsSameDayAfterNoon(date, now) {
		violated = append(violated, ConstraintAfterNoonSameDay)
	}
	if hasDuplicate {
		violated = append(violated, ConstraintDuplicateBooking)
	}
	return violated
}

// ConstraintMessage returns the customer-facing wording for a constraint.
func ConstraintMessage(c AvailabilityConstraint) string {
	switch c {
	case ConstraintPastDate:
		return "The selected date is in the past"
	case ConstraintAfterNoonSameDay:
		return "Same-day bookings close at 12:00"
	case ConstraintDuplicateBooking:
		return "You already have an active booking for this service on this date"
	default:
		return string(c)
	}
}

// NewBookingFromRequest builds a booking record from a validated request.
// The caller has already resolved the service so the default duration can be
// taken from it when the request does not override it.
func NewBookingFromRequest(req *models.BookingCreate, service *models.Service) *models.Booking {
	bookingTime := strings.TrimSpace(req.Time)
	if bookingTime == "" {
		bookingTime = DefaultBookingTime
	}

	duration := service.Duration
	if req.Duration != nil && *req.Duration > 0 {
		duration = *req.Duration
	}

	return &models.Booking{
		CustomerID:          req.CustomerID,
		ServiceID:           req.ServiceID,
		Date:                req.Date,
		Time:                bookingTime,
		AddressStreet:       strings.TrimSpace(req.AddressStreet),
		AddressCity:         strings.TrimSpace(req.AddressCity),
		AddressState:        strings.TrimSpace(req.AddressState),
		AddressPostalCode:   strings.TrimSpace(req.AddressPostalCode),
		Address:             FormatAddress(req.AddressStreet, req.AddressCity, req.AddressState, req.AddressPostalCode),
		SpecialInstructions: req.SpecialInstructions,
		PropertyType:        req.PropertyType,
		PropertySize:        req.PropertySize,
		CleaningFrequency:   req.CleaningFrequency,
		Duration:            duration,
		Status:              models.BookingStatusRequested,
		TotalAmount:         nil,
	}
}

// TransitionInput carries the optional fields an admin may attach to a
// status transition.
type TransitionInput struct {
	ContactDate       *time.Time
	CallNotes         *string
	NextSteps         *string
	ConsultationDate  *time.Time
	ConsultationType  *string
	ConsultationNotes *string
	AdminNotes        *string
}

// ApplyTransition moves a booking to the target status and applies that
// status's side effects. Transition timestamps are set only the first time a
// booking enters the status, never backdated or cleared.
func ApplyTransition(b *models.Booking, target models.BookingStatus, in TransitionInput, now time.Time) error {
	if !models.IsValidBookingStatus(string(target)) {
		return fmt.Errorf("invalid status: %s", target)
	}

	switch target {
	case models.BookingStatusContacted:
		if b.ContactDate == nil {
			if in.ContactDate != nil {
				b.ContactDate = in.ContactDate
			} else {
				t := now
				b.ContactDate = &t
			}
		}
		if in.CallNotes != nil {
			b.CallNotes = in.CallNotes
		}
		if in.NextSteps != nil {
			b.NextSteps = in.NextSteps
		}
	case models.BookingStatusInProgress:
		// Consultation date is only recorded when one was actually scheduled.
		if in.ConsultationDate != nil && b.ConsultationDate == nil {
			b.ConsultationDate = in.ConsultationDate
		}
		if in.ConsultationType != nil {
			b.ConsultationType = in.ConsultationType
		}
		if in.ConsultationNotes != nil {
			b.ConsultationNotes = in.ConsultationNotes
		}
	case models.BookingStatusCompleted:
		if b.CompletedDate == nil {
			t := now
			b.CompletedDate = &t
		}
	case models.BookingStatusCancelled:
		if b.CancelledDate == nil {
			t := now
			b.CancelledDate = &t
		}
	}

	if in.AdminNotes != nil {
		b.AdminNotes = in.AdminNotes
	}

	b.Status = target
	t := now
	b.LastUpdated = &t
	return nil
}

// QuoteInput carries the fields of an admin quotation.
type QuoteInput struct {
	Amount       float64
	Breakdown    *string
	Notes        *string
	ValidityDays *int
	AdminNotes   *string
}

// ApplyQuote records a quotation on the booking and moves it to quoted.
func ApplyQuote(b *models.Booking, in QuoteInput, now time.Time) error {
	if in.Amount <= 0 {
		return fmt.Errorf("quoted amount must be greater than zero")
	}

	amount := in.Amount
	b.QuotedAmount = &amount
	if in.Breakdown != nil {
		b.QuoteBreakdown = in.Breakdown
	}
	if in.Notes != nil {
		b.QuoteNotes = in.Notes
	}
	if in.ValidityDays != nil {
		b.QuoteValidityDays = in.ValidityDays
	}
	if in.AdminNotes != nil {
		b.AdminNotes = in.AdminNotes
	}

	if b.QuotedDate == nil {
		t := now
		b.QuotedDate = &t
	}
	b.Status = models.BookingStatusQuoted
	t := now
	b.LastUpdated = &t
	return nil
}

// BookingFilter selects bookings for the admin listing. Zero values mean
// "no filter". Search matches after customer and service enrichment so it
// can see names, not just IDs.
type BookingFilter struct {
	Status     string
	CustomerID uint
	ServiceID  uint
	Search     string
}

// MatchBooking reports whether a booking passes the filter.
func MatchBooking(b *models.Booking, f BookingFilter) bool {
	if f.Status != "" && string(b.Status) != f.Status {
		return false
	}
	if f.CustomerID != 0 && b.CustomerID != f.CustomerID {
		return false
	}
	if f.ServiceID != 0 && b.ServiceID != f.ServiceID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(f.Search))
		var haystack strings.Builder
		if b.Customer != nil {
			haystack.WriteString(strings.ToLower(b.Customer.FullName))
			haystack.WriteString(" ")
		}
		if b.Service != nil {
			haystack.WriteString(strings.ToLower(b.Service.Name))
			haystack.WriteString(" ")
		}
		haystack.WriteString(strings.ToLower(b.Address))
		if !strings.Contains(haystack.String(), needle) {
			return false
		}
	}
	return true
}

// FilterBookings returns the bookings matching the filter, preserving order.
func FilterBookings(bookings []models.Booking, f BookingFilter) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		if MatchBooking(&bookings[i], f) {
			out = append(out, bookings[i])
		}
	}
	return out
}

// SortBookings orders bookings by service date, newest first, with creation
// time as the tiebreaker.
func SortBookings(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date > bookings[j].Date
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

// PaginateBookings slices one page out of the sorted results and returns the
// page along with the total page count. Page numbers start at 1.
func PaginateBookings(bookings []models.Booking, page, limit int) ([]models.Booking, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(bookings)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.Booking{}, totalPages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return bookings[start:end], totalPages
}
