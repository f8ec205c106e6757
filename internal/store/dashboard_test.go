package store

import (
	"testing"
	"time"

	"homehub/internal/models"
)

func TestBuildFinancialSummary(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	bills := []models.Bill{
		// due the 1st of NEXT month: still counted in the monthly total
		{ID: "mortgage", Amount: 2450, DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		// due in 3 days, unpaid: monthly total + upcoming week
		{ID: "electric", Amount: 125, DueDate: now.AddDate(0, 0, 3)},
		// already paid this month
		{ID: "water", Amount: 60, DueDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), IsPaid: true, Status: models.BillPaid},
		// overdue from this month
		{ID: "internet", Amount: 80, DueDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)},
		// last month, unpaid: excluded from monthly total but still overdue
		{ID: "gas", Amount: 45, DueDate: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)},
	}

	got := buildFinancialSummary(now, bills)

	if want := 2450.0 + 125 + 60 + 80; got.TotalMonthlyExpenses != want {
		t.Fatalf("total: got %v, want %v", got.TotalMonthlyExpenses, want)
	}
	if got.PaidThisMonth != 60 {
		t.Fatalf("paid: got %v, want 60", got.PaidThisMonth)
	}
	if want := 2450.0 + 125 + 80; got.RemainingThisMonth != want {
		t.Fatalf("remaining: got %v, want %v", got.RemainingThisMonth, want)
	}
	if want := 80.0 + 45; got.OverdueAmount != want {
		t.Fatalf("overdue: got %v, want %v", got.OverdueAmount, want)
	}
	if len(got.UpcomingWeek) != 1 || got.UpcomingWeek[0].ID != "electric" {
		t.Fatalf("upcoming week: got %+v", got.UpcomingWeek)
	}
}

func TestBuildFinancialSummaryEmpty(t *testing.T) {
	t.Parallel()
	got := buildFinancialSummary(fixedNow, nil)
	if got.TotalMonthlyExpenses != 0 || got.OverdueAmount != 0 {
		t.Fatalf("expected zero summary: %+v", got)
	}
	if got.UpcomingWeek == nil || len(got.UpcomingWeek) != 0 {
		t.Fatalf("upcoming week should be an empty slice: %#v", got.UpcomingWeek)
	}
}

func TestUpcomingEventsWindowAndCap(t *testing.T) {
	t.Parallel()
	now := fixedNow

	events := []models.CalendarEvent{
		{ID: "past", StartDate: now.AddDate(0, 0, -1)},
		{ID: "d6", StartDate: now.AddDate(0, 0, 6)},
		{ID: "d1", StartDate: now.AddDate(0, 0, 1)},
		{ID: "d8", StartDate: now.AddDate(0, 0, 8)},
		{ID: "d3", StartDate: now.AddDate(0, 0, 3)},
		{ID: "d5", StartDate: now.AddDate(0, 0, 5)},
	}

	got := upcomingEvents(events, now, now.Add(upcomingWindow))

	if len(got) != upcomingEventsCap {
		t.Fatalf("cap: got %d events, want %d", len(got), upcomingEventsCap)
	}
	wantOrder := []string{"d1", "d3", "d5"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("order[%d]: got %q, want %q (all: %+v)", i, got[i].ID, id, got)
		}
	}
}

func TestActiveProjectsSortedByProgress(t *testing.T) {
	t.Parallel()
	projects := []models.Project{
		{ID: "done", Status: "Completed", Progress: 100},
		{ID: "low", Status: models.ProjectInProgress, Progress: 20},
		{ID: "high", Status: models.ProjectInProgress, Progress: 80},
		{ID: "planned", Status: "Planned"},
	}

	got := activeProjects(projects)
	if len(got) != 2 || got[0].ID != "high" || got[1].ID != "low" {
		t.Fatalf("active projects: %+v", got)
	}
}

func TestOverdueTasksSkipsDone(t *testing.T) {
	t.Parallel()
	now := fixedNow
	tasks := []models.MaintenanceTask{
		{ID: "overdue", NextDueDate: now.AddDate(0, 0, -2), Status: models.TaskOverdue},
		{ID: "done-late", NextDueDate: now.AddDate(0, 0, -2), Status: models.TaskDone},
		{ID: "future", NextDueDate: now.AddDate(0, 0, 2), Status: models.TaskUpcoming},
	}

	got := overdueTasks(tasks, now)
	if len(got) != 1 || got[0].ID != "overdue" {
		t.Fatalf("overdue tasks: %+v", got)
	}
}

func TestUpcomingBillsCapAndOrder(t *testing.T) {
	t.Parallel()
	now := fixedNow
	var bills []models.Bill
	for i := 6; i >= 0; i-- {
		bills = append(bills, models.Bill{
			ID:      string(rune('a' + i)),
			DueDate: now.AddDate(0, 0, i),
		})
	}
	bills = append(bills, models.Bill{ID: "paid", DueDate: now, IsPaid: true})

	got := upcomingBills(bills, now.Add(upcomingWindow))
	if len(got) != upcomingBillsCap {
		t.Fatalf("cap: got %d, want %d", len(got), upcomingBillsCap)
	}
	for i := 1; i < len(got); i++ {
		if got[i].DueDate.Before(got[i-1].DueDate) {
			t.Fatalf("bills not sorted by due date: %+v", got)
		}
	}
	for _, b := range got {
		if b.IsPaid {
			t.Fatalf("paid bill leaked into upcoming: %+v", b)
		}
	}
}
