package services

import (
	"testing"
	"time"

	"cleaning-service-server/models"
)

func TestComputeDashboardStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	weekAgo := now.AddDate(0, 0, -7)

	bookings := []models.Booking{
		{Status: models.BookingStatusRequested},
		{Status: models.BookingStatus("pending")},
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusCompleted},
	}
	customers := []models.Customer{
		{ID: 1, CreatedAt: now.AddDate(0, 0, -30)},
		{ID: 2, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: 3, CreatedAt: now.AddDate(0, 0, -1)},
	}
	payments := []models.Payment{
		{Amount: 100, Status: models.PaymentStatusCompleted, CreatedAt: now.AddDate(0, 0, -30)},
		{Amount: 200, Status: models.PaymentStatusConfirmed, CreatedAt: now.AddDate(0, 0, -1)},
		{Amount: 400, Status: models.PaymentStatusPending, CreatedAt: now},
		{Amount: 800, Status: models.PaymentStatusRefunded, CreatedAt: now},
	}

	t.Run("regular admin", func(t *testing.T) {
		stats := ComputeDashboardStats(bookings, customers, payments, false, now)

		if stats.TotalRevenue != 300 {
			t.Errorf("TotalRevenue = %.2f, want 300 (completed+confirmed only)", stats.TotalRevenue)
		}
		if stats.TotalBookings != 4 {
			t.Errorf("TotalBookings = %d, want 4", stats.TotalBookings)
		}
		if stats.TotalCustomers != 3 {
			t.Errorf("TotalCustomers = %d, want 3", stats.TotalCustomers)
		}
		if stats.PendingBookings != 2 {
			t.Errorf("PendingBookings = %d, want 2 (requested + legacy pending)", stats.PendingBookings)
		}
		if stats.WeeklyRevenue != nil || stats.NewCustomers != nil {
			t.Errorf("weekly figures must be absent for regular admins")
		}
	})

	t.Run("main admin gets weekly figures", func(t *testing.T) {
		stats := ComputeDashboardStats(bookings, customers, payments, true, now)

		if stats.WeeklyRevenue == nil || *stats.WeeklyRevenue != 200 {
			t.Fatalf("WeeklyRevenue = %v, want 200", stats.WeeklyRevenue)
		}
		if stats.NewCustomers == nil || *stats.NewCustomers != 2 {
			t.Fatalf("NewCustomers = %v, want 2", stats.NewCustomers)
		}
	})

	t.Run("week boundary is local midnight", func(t *testing.T) {
		boundary := time.Date(weekAgo.Year(), weekAgo.Month(), weekAgo.Day(), 0, 0, 0, 0, time.Local)
		edge := []models.Payment{
			{Amount: 50, Status: models.PaymentStatusCompleted, CreatedAt: boundary},
			{Amount: 70, Status: models.PaymentStatusCompleted, CreatedAt: boundary.Add(-time.Second)},
		}
		stats := ComputeDashboardStats(nil, nil, edge, true, now)
		if *stats.WeeklyRevenue != 50 {
			t.Errorf("WeeklyRevenue = %.2f, want 50 (boundary inclusive, earlier excluded)", *stats.WeeklyRevenue)
		}
	})
}

func TestComputeBookingCounters(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	completedRecently := now.AddDate(0, 0, -3)
	completedLongAgo := now.AddDate(0, 0, -20)

	bookings := []models.Booking{
		{Status: models.BookingStatusRequested, CreatedAt: now.Add(-time.Hour)},
		{Status: models.BookingStatusRequested, CreatedAt: now.AddDate(0, 0, -5)},
		{Status: models.BookingStatusContacted, CreatedAt: now.AddDate(0, 0, -4)},
		{Status: models.BookingStatusInProgress, CreatedAt: now.AddDate(0, 0, -4)},
		{Status: models.BookingStatusConfirmed, Date: "2026-03-15", CreatedAt: now.AddDate(0, 0, -6)},
		{Status: models.BookingStatusConfirmed, Date: "2026-03-01", CreatedAt: now.AddDate(0, 0, -20)},
		{Status: models.BookingStatusCompleted, CompletedDate: &completedRecently},
		{Status: models.BookingStatusCompleted, CompletedDate: &completedLongAgo},
	}

	counters := ComputeBookingCounters(bookings, now)

	if counters.TodayRequests != 1 {
		t.Errorf("TodayRequests = %d, want 1", counters.TodayRequests)
	}
	if counters.PendingContact != 2 {
		t.Errorf("PendingContact = %d, want 2", counters.PendingContact)
	}
	if counters.PendingQuotation != 2 {
		t.Errorf("PendingQuotation = %d, want 2", counters.PendingQuotation)
	}
	if counters.UpcomingConfirmed != 1 {
		t.Errorf("UpcomingConfirmed = %d, want 1 (past-dated confirmed excluded)", counters.UpcomingConfirmed)
	}
	if counters.CompletedThisWeek != 1 {
		t.Errorf("CompletedThisWeek = %d, want 1", counters.CompletedThisWeek)
	}
}

func TestComputeBookingAnalytics(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	bookings := []models.Booking{
		{Status: models.BookingStatusRequested, CreatedAt: now.AddDate(0, 0, -2)},
		{Status: models.BookingStatusQuoted, CreatedAt: now.AddDate(0, 0, -2)},
		{Status: models.BookingStatusQuoted, CreatedAt: now.AddDate(0, 0, -14)},
		{Status: models.BookingStatusCompleted, CreatedAt: now.AddDate(0, -6, 0)},
	}

	tests := []struct {
		period    string
		wantTotal int
	}{
		{"week", 2},
		{"month", 3},
		{"year", 4},
		{"bogus", 2}, // falls back to week
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got := ComputeBookingAnalytics(bookings, tt.period, now)
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
		})
	}

	t.Run("status buckets", func(t *testing.T) {
		got := ComputeBookingAnalytics(bookings, "month", now)
		if got.ByStatus["quoted"] != 2 {
			t.Errorf("ByStatus[quoted] = %d, want 2", got.ByStatus["quoted"])
		}
		if got.ByStatus["requested"] != 1 {
			t.Errorf("ByStatus[requested] = %d, want 1", got.ByStatus["requested"])
		}
	})
}
