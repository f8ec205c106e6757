package store

import (
	"sort"
	"time"

	"homehub/internal/models"
)

const (
	primaryRoom       = "Living Room"
	upcomingEventsCap = 3
	upcomingBillsCap  = 5
	upcomingWindow    = 7 * 24 * time.Hour
)

// BuildDashboard derives the overview from the collections at the given
// instant. It is pure: same state and clock in, same dashboard out.
func BuildDashboard(now time.Time, s State) models.DashboardData {
	nextWeek := now.Add(upcomingWindow)

	return models.DashboardData{
		CurrentTemperature: currentTemperature(s.TemperatureReadings),
		UpcomingEvents:     upcomingEvents(s.CalendarEvents, now, nextWeek),
		ActiveProjects:     activeProjects(s.Projects),
		OverdueTasks:       overdueTasks(s.MaintenanceTasks, now),
		UpcomingBills:      upcomingBills(s.Bills, nextWeek),
		FinancialSummary:   buildFinancialSummary(now, s.Bills),
	}
}

// currentTemperature prefers the primary room, falling back to the first
// reading. Nil when no readings exist.
func currentTemperature(readings []models.TemperatureReading) *models.TemperatureReading {
	for i := range readings {
		if readings[i].RoomName == primaryRoom {
			r := readings[i]
			return &r
		}
	}
	if len(readings) > 0 {
		r := readings[0]
		return &r
	}
	return nil
}

func upcomingEvents(events []models.CalendarEvent, now, nextWeek time.Time) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0)
	for _, e := range events {
		if !e.StartDate.Before(now) && !e.StartDate.After(nextWeek) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	if len(out) > upcomingEventsCap {
		out = out[:upcomingEventsCap]
	}
	return out
}

func activeProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, 0)
	for _, p := range projects {
		if p.Status == models.ProjectInProgress {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Progress > out[j].Progress
	})
	return out
}

// overdueTasks selects tasks whose due date has passed and that are not
// marked done. Overdue is a view over the stored dates, not a stored flag.
func overdueTasks(tasks []models.MaintenanceTask, now time.Time) []models.MaintenanceTask {
	out := make([]models.MaintenanceTask, 0)
	for _, t := range tasks {
		if t.NextDueDate.Before(now) && t.Status != models.TaskDone {
			out = append(out, t)
		}
	}
	return out
}

func upcomingBills(bills []models.Bill, nextWeek time.Time) []models.Bill {
	out := make([]models.Bill, 0)
	for _, b := range bills {
		if !b.IsPaid && !b.DueDate.After(nextWeek) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if len(out) > upcomingBillsCap {
		out = out[:upcomingBillsCap]
	}
	return out
}

// buildFinancialSummary rolls up bills for the dashboard money widget.
//
// The monthly total intentionally counts every bill due on or after the
// first of the current month, including bills that fall in a later month
// (e.g. next month's mortgage due on the 1st). That matches the shipped
// behavior; tightening the upper bound would change reported totals.
func buildFinancialSummary(now time.Time, bills []models.Bill) models.FinancialSummary {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfWeek := now.Add(upcomingWindow)

	var total, paid, remaining, overdue float64
	week := make([]models.Bill, 0)

	for _, b := range bills {
		if !b.DueDate.Before(startOfMonth) {
			total += b.Amount
			if b.IsPaid {
				paid += b.Amount
			} else {
				remaining += b.Amount
			}
		}
		if !b.IsPaid && b.DueDate.Before(now) {
			overdue += b.Amount
		}
		if !b.IsPaid && !b.DueDate.Before(now) && !b.DueDate.After(endOfWeek) {
			week = append(week, b)
		}
	}

	return models.FinancialSummary{
		TotalMonthlyExpenses: total,
		PaidThisMonth:        paid,
		RemainingThisMonth:   remaining,
		OverdueAmount:        overdue,
		UpcomingWeek:         week,
	}
}
