package services

import (
	"time"

	"cleaning-service-server/models"
	"cleaning-service-server/utils"
)

// DashboardStats holds the admin console headline figures. The weekly
// fields are only populated for the main admin.
type DashboardStats struct {
	TotalRevenue    float64  `json:"total_revenue"`
	TotalBookings   int      `json:"total_bookings"`
	TotalCustomers  int      `json:"total_customers"`
	PendingBookings int      `json:"pending_bookings"`
	WeeklyRevenue   *float64 `json:"weekly_revenue,omitempty"`
	NewCustomers    *int     `json:"new_customers,omitempty"`
}

// pendingStatuses counts as awaiting first contact. The legacy "pending"
// value still appears on records migrated from the old system.
var pendingStatuses = map[string]bool{
	string(models.BookingStatusRequested): true,
	"pending":                             true,
}

// ComputeDashboardStats aggregates the headline figures from full table
// snapshots. includeWeekly adds the trailing-week figures, measured from
// local midnight seven days ago.
func ComputeDashboardStats(bookings []models.Booking, customers []models.Customer, payments []models.Payment, includeWeekly bool, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalBookings:  len(bookings),
		TotalCustomers: len(customers),
	}

	for i := range payments {
		if payments[i].CountsTowardsRevenue() {
			stats.TotalRevenue += payments[i].Amount
		}
	}

	for i := range bookings {
		if pendingStatuses[string(bookings[i].Status)] {
			stats.PendingBookings++
		}
	}

	if includeWeekly {
		since := utils.WeekAgo(now)

		var weeklyRevenue float64
		for i := range payments {
			if payments[i].CountsTowardsRevenue() && !payments[i].CreatedAt.Before(since) {
				weeklyRevenue += payments[i].Amount
			}
		}
		stats.WeeklyRevenue = &weeklyRevenue

		newCustomers := 0
		for i := range customers {
			if !customers[i].CreatedAt.Before(since) {
				newCustomers++
			}
		}
		stats.NewCustomers = &newCustomers
	}

	return stats
}

// BookingCounters are the workflow counters shown at the top of the
// bookings screen.
type BookingCounters struct {
	TodayRequests     int `json:"today_requests"`
	PendingContact    int `json:"pending_contact"`
	PendingQuotation  int `json:"pending_quotation"`
	UpcomingConfirmed int `json:"upcoming_confirmed"`
	CompletedThisWeek int `json:"completed_this_week"`
}

// ComputeBookingCounters derives the workflow counters from a bookings
// snapshot.
func ComputeBookingCounters(bookings []models.Booking, now time.Time) BookingCounters {
	today := now.Format(utils.DateLayout)
	weekStart := utils.WeekAgo(now)

	var counters BookingCounters
	for i := range bookings {
		b := &bookings[i]

		if b.CreatedAt.Format(utils.DateLayout) == today {
			counters.TodayRequests++
		}

		switch b.Status {
		case models.BookingStatusRequested:
			counters.PendingContact++
		case models.BookingStatusContacted, models.BookingStatusInProgress:
			counters.PendingQuotation++
		case models.BookingStatusConfirmed:
			if b.Date >= today {
				counters.UpcomingConfirmed++
			}
		case models.BookingStatusCompleted:
			if b.CompletedDate != nil && !b.CompletedDate.Before(weekStart) {
				counters.CompletedThisWeek++
			}
		}
	}
	return counters
}

// BookingAnalytics summarizes bookings created within a reporting period.
type BookingAnalytics struct {
	Period   string         `json:"period"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// PeriodStart returns the inclusive lower bound for an analytics period.
// Unknown periods fall back to the trailing week.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "month":
		return utils.StartOfDay(now).AddDate(0, -1, 0)
	case "year":
		return utils.StartOfDay(now).AddDate(-1, 0, 0)
	default:
		return utils.WeekAgo(now)
	}
}

// ComputeBookingAnalytics buckets bookings created since the period start
// by their current status.
func ComputeBookingAnalytics(bookings []models.Booking, period string, now time.Time) BookingAnalytics {
	if period != "month" && period != "year" {
		period = "week"
	}
	since := PeriodStart(period, now)

	analytics := BookingAnalytics{
		Period:   period,
		ByStatus: make(map[string]int),
	}
	for i := range bookings {
		if bookings[i].CreatedAt.Before(since) {
			continue
		}
		analytics.Total++
		analytics.ByStatus[string(bookings[i].Status)]++
	}
	return analytics
}
