package services

import (
	"testing"
	"time"

	"cleaning-service-server/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		req     models.BookingCreate
		missing []string
	}{
		{
			name: "complete address",
			req: models.BookingCreate{
				AddressStreet: "12 Oak Ave", AddressCity: "Cape Town",
				AddressState: "Western Cape", AddressPostalCode: "8001",
			},
			missing: nil,
		},
		{
			name: "whitespace only street",
			req: models.BookingCreate{
				AddressStreet: "   ", AddressCity: "Cape Town",
				AddressState: "Western Cape", AddressPostalCode: "8001",
			},
			missing: []string{"street"},
		},
		{
			name:    "everything missing",
			req:     models.BookingCreate{},
			missing: []string{"street", "city", "state", "postal_code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAddress(&tt.req)
			if len(got) != len(tt.missing) {
				t.Fatalf("missing fields = %v, want %v", got, tt.missing)
			}
			for i := range got {
				if got[i] != tt.missing[i] {
					t.Errorf("missing[%d] = %q, want %q", i, got[i], tt.missing[i])
				}
			}
		})
	}
}

func TestFormatAddress(t *testing.T) {
	got := FormatAddress(" 12 Oak Ave ", "Cape Town", "Western Cape", "8001")
	want := "12 Oak Ave, Cape Town, Western Cape, 8001"
	if got != want {
		t.Errorf("FormatAddress = %q, want %q", got, want)
	}
}

func TestIsOpenStatus(t *testing.T) {
	tests := []struct {
		status models.BookingStatus
		open   bool
	}{
		{models.BookingStatusRequested, true},
		{models.BookingStatusContacted, true},
		{models.BookingStatusQuoted, true},
		{models.BookingStatusConfirmed, true},
		{models.BookingStatusCompleted, true},
		{models.BookingStatusCancelled, false},
		{models.BookingStatus("rejected"), false},
		{models.BookingStatus("declined"), false},
	}
	for _, tt := range tests {
		if got := IsOpenStatus(tt.status); got != tt.open {
			t.Errorf("IsOpenStatus(%s) = %v, want %v", tt.status, got, tt.open)
		}
	}
}

func TestCheckAvailability(t *testing.T) {
	// Fixed clock: 2026-03-10 at 14:00 local
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		date      string
		duplicate bool
		want      []AvailabilityConstraint
	}{
		{
			name: "future date clean",
			date: "2026-03-15",
			want: nil,
		},
		{
			name: "past date",
			date: "2026-03-09",
			want: []AvailabilityConstraint{ConstraintPastDate},
		},
		{
			name: "same day after noon",
			date: "2026-03-10",
			want: []AvailabilityConstraint{ConstraintAfterNoonSameDay},
		},
		{
			name:      "same day after noon with duplicate reports both",
			date:      "2026-03-10",
			duplicate: true,
			want:      []AvailabilityConstraint{ConstraintAfterNoonSameDay, ConstraintDuplicateBooking},
		},
		{
			name:      "past date with duplicate reports both",
			date:      "2026-03-01",
			duplicate: true,
			want:      []AvailabilityConstraint{ConstraintPastDate, ConstraintDuplicateBooking},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAvailability(tt.date, tt.duplicate, now)
			if len(got) != len(tt.want) {
				t.Fatalf("constraints = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("constraint[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckAvailabilitySameDayBeforeNoon(t *testing.T) {
	now := time.Date(2026, 3, 10, 11, 59, 0, 0, time.Local)
	if got := CheckAvailability("2026-03-10", false, now); len(got) != 0 {
		t.Errorf("same day before noon should be available, got %v", got)
	}
}

func TestNewBookingFromRequest(t *testing.T) {
	service := &models.Service{ID: 3, Name: "Deep Clean", Duration: 180}

	t.Run("defaults applied", func(t *testing.T) {
		req := &models.BookingCreate{
			CustomerID: 7, ServiceID: 3, Date: "2026-04-01",
			AddressStreet: "12 Oak Ave", AddressCity: "Cape Town",
			AddressState: "Western Cape", AddressPostalCode: "8001",
		}
		b := NewBookingFromRequest(req, service)

		if b.Status != models.BookingStatusRequested {
			t.Errorf("Status = %s, want requested", b.Status)
		}
		if b.TotalAmount != nil {
			t.Errorf("TotalAmount should be nil at creation, got %v", *b.TotalAmount)
		}
		if b.Time != DefaultBookingTime {
			t.Errorf("Time = %q, want %q", b.Time, DefaultBookingTime)
		}
		if b.Duration != 180 {
			t.Errorf("Duration = %d, want service default 180", b.Duration)
		}
		if b.Address != "12 Oak Ave, Cape Town, Western Cape, 8001" {
			t.Errorf("Address = %q", b.Address)
		}
	})

	t.Run("overrides respected", func(t *testing.T) {
		req := &models.BookingCreate{
			CustomerID: 7, ServiceID: 3, Date: "2026-04-01", Time: "14:30",
			Duration:      intPtr(90),
			AddressStreet: "12 Oak Ave", AddressCity: "Cape Town",
			AddressState: "Western Cape", AddressPostalCode: "8001",
		}
		b := NewBookingFromRequest(req, service)

		if b.Time != "14:30" {
			t.Errorf("Time = %q, want 14:30", b.Time)
		}
		if b.Duration != 90 {
			t.Errorf("Duration = %d, want override 90", b.Duration)
		}
	})
}

func TestApplyTransitionSideEffects(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)

	t.Run("contacted defaults contact date to now", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusRequested}
		if err := ApplyTransition(b, models.BookingStatusContacted, TransitionInput{}, now); err != nil {
			t.Fatal(err)
		}
		if b.ContactDate == nil || !b.ContactDate.Equal(now) {
			t.Errorf("ContactDate = %v, want %v", b.ContactDate, now)
		}
		if b.LastUpdated == nil || !b.LastUpdated.Equal(now) {
			t.Errorf("LastUpdated not set")
		}
	})

	t.Run("contacted honours supplied contact date", func(t *testing.T) {
		supplied := now.Add(-2 * time.Hour)
		b := &models.Booking{Status: models.BookingStatusRequested}
		in := TransitionInput{ContactDate: &supplied, CallNotes: strPtr("left voicemail")}
		if err := ApplyTransition(b, models.BookingStatusContacted, in, now); err != nil {
			t.Fatal(err)
		}
		if !b.ContactDate.Equal(supplied) {
			t.Errorf("ContactDate = %v, want supplied %v", b.ContactDate, supplied)
		}
		if b.CallNotes == nil || *b.CallNotes != "left voicemail" {
			t.Errorf("CallNotes not persisted")
		}
	})

	t.Run("contact date set only once", func(t *testing.T) {
		first := now.Add(-24 * time.Hour)
		b := &models.Booking{Status: models.BookingStatusContacted, ContactDate: &first}
		if err := ApplyTransition(b, models.BookingStatusContacted, TransitionInput{}, now); err != nil {
			t.Fatal(err)
		}
		if !b.ContactDate.Equal(first) {
			t.Errorf("ContactDate rewritten to %v, want original %v", b.ContactDate, first)
		}
	})

	t.Run("in_progress records consultation only when supplied", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusContacted}
		if err := ApplyTransition(b, models.BookingStatusInProgress, TransitionInput{}, now); err != nil {
			t.Fatal(err)
		}
		if b.ConsultationDate != nil {
			t.Errorf("ConsultationDate should stay nil without input")
		}

		consult := now.Add(48 * time.Hour)
		in := TransitionInput{ConsultationDate: &consult, ConsultationType: strPtr("on-site")}
		if err := ApplyTransition(b, models.BookingStatusInProgress, in, now); err != nil {
			t.Fatal(err)
		}
		if b.ConsultationDate == nil || !b.ConsultationDate.Equal(consult) {
			t.Errorf("ConsultationDate = %v, want %v", b.ConsultationDate, consult)
		}
	})

	t.Run("completed stamps completion once", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusConfirmed}
		if err := ApplyTransition(b, models.BookingStatusCompleted, TransitionInput{}, now); err != nil {
			t.Fatal(err)
		}
		if b.CompletedDate == nil || !b.CompletedDate.Equal(now) {
			t.Errorf("CompletedDate = %v, want %v", b.CompletedDate, now)
		}
	})

	t.Run("cancelled stamps cancellation", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusQuoted}
		in := TransitionInput{AdminNotes: strPtr("customer withdrew")}
		if err := ApplyTransition(b, models.BookingStatusCancelled, in, now); err != nil {
			t.Fatal(err)
		}
		if b.CancelledDate == nil {
			t.Errorf("CancelledDate not set")
		}
		if b.AdminNotes == nil || *b.AdminNotes != "customer withdrew" {
			t.Errorf("AdminNotes not persisted")
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusRequested}
		if err := ApplyTransition(b, models.BookingStatus("archived"), TransitionInput{}, now); err == nil {
			t.Errorf("expected error for unknown status")
		}
	})

	t.Run("any status reachable from any other", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusCompleted}
		if err := ApplyTransition(b, models.BookingStatusRequested, TransitionInput{}, now); err != nil {
			t.Errorf("reopening a completed booking should be allowed: %v", err)
		}
		if b.Status != models.BookingStatusRequested {
			t.Errorf("Status = %s, want requested", b.Status)
		}
	})
}

func TestApplyQuote(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)

	t.Run("valid quote", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusInProgress}
		in := QuoteInput{Amount: 1450.50, Breakdown: strPtr("3 rooms + windows"), ValidityDays: intPtr(14)}
		if err := ApplyQuote(b, in, now); err != nil {
			t.Fatal(err)
		}
		if b.Status != models.BookingStatusQuoted {
			t.Errorf("Status = %s, want quoted", b.Status)
		}
		if b.QuotedAmount == nil || *b.QuotedAmount != 1450.50 {
			t.Errorf("QuotedAmount not set")
		}
		if b.QuotedDate == nil || !b.QuotedDate.Equal(now) {
			t.Errorf("QuotedDate = %v, want %v", b.QuotedDate, now)
		}
		if b.QuoteValidityDays == nil || *b.QuoteValidityDays != 14 {
			t.Errorf("QuoteValidityDays not set")
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		b := &models.Booking{Status: models.BookingStatusInProgress}
		if err := ApplyQuote(b, QuoteInput{Amount: 0}, now); err == nil {
			t.Errorf("expected error for zero amount")
		}
		if b.Status == models.BookingStatusQuoted {
			t.Errorf("status must not change on rejected quote")
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		b := &models.Booking{}
		if err := ApplyQuote(b, QuoteInput{Amount: -5}, now); err == nil {
			t.Errorf("expected error for negative amount")
		}
	})
}

func sampleBookings() []models.Booking {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	return []models.Booking{
		{
			ID: 1, CustomerID: 1, ServiceID: 1, Date: "2026-03-05",
			Status:    models.BookingStatusRequested,
			Address:   "12 Oak Ave, Cape Town, Western Cape, 8001",
			CreatedAt: base,
			Customer:  &models.Customer{ID: 1, FullName: "Thandi Nkosi"},
			Service:   &models.Service{ID: 1, Name: "Deep Clean"},
		},
		{
			ID: 2, CustomerID: 2, ServiceID: 2, Date: "2026-03-08",
			Status:    models.BookingStatusConfirmed,
			Address:   "4 Main Rd, Durban, KZN, 4001",
			CreatedAt: base.Add(time.Hour),
			Customer:  &models.Customer{ID: 2, FullName: "Pieter van Wyk"},
			Service:   &models.Service{ID: 2, Name: "Window Cleaning"},
		},
		{
			ID: 3, CustomerID: 1, ServiceID: 2, Date: "2026-03-08",
			Status:    models.BookingStatusCancelled,
			Address:   "12 Oak Ave, Cape Town, Western Cape, 8001",
			CreatedAt: base.Add(2 * time.Hour),
			Customer:  &models.Customer{ID: 1, FullName: "Thandi Nkosi"},
			Service:   &models.Service{ID: 2, Name: "Window Cleaning"},
		},
	}
}

func TestFilterBookings(t *testing.T) {
	bookings := sampleBookings()

	tests := []struct {
		name    string
		filter  BookingFilter
		wantIDs []uint
	}{
		{"no filter", BookingFilter{}, []uint{1, 2, 3}},
		{"by status", BookingFilter{Status: "confirmed"}, []uint{2}},
		{"by customer", BookingFilter{CustomerID: 1}, []uint{1, 3}},
		{"by service", BookingFilter{ServiceID: 2}, []uint{2, 3}},
		{"search customer name case-insensitive", BookingFilter{Search: "THANDI"}, []uint{1, 3}},
		{"search service name", BookingFilter{Search: "window"}, []uint{2, 3}},
		{"search address", BookingFilter{Search: "durban"}, []uint{2}},
		{"combined filters", BookingFilter{CustomerID: 1, Search: "window"}, []uint{3}},
		{"no match", BookingFilter{Search: "johannesburg"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBookings(bookings, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d bookings, want %d", len(got), len(tt.wantIDs))
			}
			for i := range got {
				if got[i].ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %d, want %d", i, got[i].ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestSortBookings(t *testing.T) {
	bookings := sampleBookings()
	SortBookings(bookings)

	// Date desc; 2026-03-08 ties broken by CreatedAt desc (ID 3 created later)
	wantOrder := []uint{3, 2, 1}
	for i, id := range wantOrder {
		if bookings[i].ID != id {
			t.Errorf("position %d = booking %d, want %d", i, bookings[i].ID, id)
		}
	}
}

func TestPaginateBookings(t *testing.T) {
	bookings := make([]models.Booking, 25)
	for i := range bookings {
		bookings[i].ID = uint(i + 1)
	}

	tests := []struct {
		name       string
		page       int
		limit      int
		wantLen    int
		wantPages  int
		wantFirst  uint
	}{
		{"first page", 1, 10, 10, 3, 1},
		{"middle page", 2, 10, 10, 3, 11},
		{"last partial page", 3, 10, 5, 3, 21},
		{"past the end", 4, 10, 0, 3, 0},
		{"invalid page defaults to 1", 0, 10, 10, 3, 1},
		{"invalid limit defaults to 10", 1, -1, 10, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageItems, totalPages := PaginateBookings(bookings, tt.page, tt.limit)
			if len(pageItems) != tt.wantLen {
				t.Errorf("page length = %d, want %d", len(pageItems), tt.wantLen)
			}
			if totalPages != tt.wantPages {
				t.Errorf("totalPages = %d, want %d", totalPages, tt.wantPages)
			}
			if tt.wantLen > 0 && pageItems[0].ID != tt.wantFirst {
				t.Errorf("first ID = %d, want %d", pageItems[0].ID, tt.wantFirst)
			}
		})
	}

	t.Run("empty input still reports one page", func(t *testing.T) {
		pageItems, totalPages := PaginateBookings(nil, 1, 10)
		if len(pageItems) != 0 || totalPages != 1 {
			t.Errorf("got %d items, %d pages; want 0 items, 1 page", len(pageItems), totalPages)
		}
	})
}

// TestBookingWorkflowSequence walks one booking through the full happy path
// and checks every timestamp lands exactly once.
func TestBookingWorkflowSequence(t *testing.T) {
	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	tick := func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}

	service := &models.Service{ID: 1, Name: "Deep Clean", Duration: 120}
	req := &models.BookingCreate{
		CustomerID: 1, ServiceID: 1, Date: "2026-03-20",
		AddressStreet: "12 Oak Ave", AddressCity: "Cape Town",
		AddressState: "Western Cape", AddressPostalCode: "8001",
	}

	b := NewBookingFromRequest(req, service)
	if b.Status != models.BookingStatusRequested {
		t.Fatalf("new booking status = %s", b.Status)
	}

	if err := ApplyTransition(b, models.BookingStatusContacted, TransitionInput{CallNotes: strPtr("spoke to customer")}, tick()); err != nil {
		t.Fatal(err)
	}
	contactAt := *b.ContactDate

	if err := ApplyTransition(b, models.BookingStatusInProgress, TransitionInput{}, tick()); err != nil {
		t.Fatal(err)
	}

	if err := ApplyQuote(b, QuoteInput{Amount: 2100}, tick()); err != nil {
		t.Fatal(err)
	}
	quotedAt := *b.QuotedDate

	if err := ApplyTransition(b, models.BookingStatusConfirmed, TransitionInput{}, tick()); err != nil {
		t.Fatal(err)
	}

	if err := ApplyTransition(b, models.BookingStatusCompleted, TransitionInput{}, tick()); err != nil {
		t.Fatal(err)
	}

	if b.Status != models.BookingStatusCompleted {
		t.Errorf("final status = %s, want completed", b.Status)
	}
	if !b.ContactDate.Equal(contactAt) {
		t.Errorf("ContactDate changed after later transitions")
	}
	if !b.QuotedDate.Equal(quotedAt) {
		t.Errorf("QuotedDate changed after later transitions")
	}
	if b.CompletedDate == nil || !b.CompletedDate.Equal(clock) {
		t.Errorf("CompletedDate = %v, want %v", b.CompletedDate, clock)
	}
	if b.CancelledDate != nil {
		t.Errorf("CancelledDate set on a completed booking")
	}
	if b.QuotedAmount == nil || *b.QuotedAmount != 2100 {
		t.Errorf("QuotedAmount lost along the way")
	}
}
