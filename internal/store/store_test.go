package store

import (
	"testing"
	"time"

	"homehub/internal/models"
)

// fixedNow is a Tuesday mid-month, far from any month boundary.
var fixedNow = time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)

func newFixedStore() *Store {
	return NewAt(func() time.Time { return fixedNow })
}

func TestDashboardFollowsEveryMutation(t *testing.T) {
	t.Parallel()
	s := newFixedStore()

	reading := s.AddTemperatureReading(models.TemperatureReading{RoomName: "Living Room", Temperature: 21.5})
	if reading.ID == "" {
		t.Fatal("expected generated id")
	}
	d := s.Dashboard()
	if d.CurrentTemperature == nil || d.CurrentTemperature.Temperature != 21.5 {
		t.Fatalf("dashboard stale after add: %+v", d.CurrentTemperature)
	}

	bill := s.AddBill(models.Bill{Title: "Water", Amount: 40, DueDate: fixedNow.Add(48 * time.Hour)})
	d = s.Dashboard()
	if len(d.UpcomingBills) != 1 || d.UpcomingBills[0].ID != bill.ID {
		t.Fatalf("dashboard stale after bill add: %+v", d.UpcomingBills)
	}

	s.DeleteBill(bill.ID)
	d = s.Dashboard()
	if len(d.UpcomingBills) != 0 {
		t.Fatalf("dashboard stale after bill delete: %+v", d.UpcomingBills)
	}
}

func TestCurrentTemperaturePrefersLivingRoom(t *testing.T) {
	t.Parallel()
	s := newFixedStore()

	s.AddTemperatureReading(models.TemperatureReading{RoomName: "Bedroom", Temperature: 18})
	if got := s.Dashboard().CurrentTemperature; got == nil || got.RoomName != "Bedroom" {
		t.Fatalf("fallback to first reading failed: %+v", got)
	}

	s.AddTemperatureReading(models.TemperatureReading{RoomName: "Living Room", Temperature: 22})
	if got := s.Dashboard().CurrentTemperature; got == nil || got.RoomName != "Living Room" {
		t.Fatalf("primary room not preferred: %+v", got)
	}
}

func TestMarkBillPaidIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newFixedStore()
	b := s.AddBill(models.Bill{Title: "Electric", Amount: 125, DueDate: fixedNow.Add(24 * time.Hour), Status: models.BillDue})

	s.MarkBillPaid(b.ID)
	first := s.Bills()[0]
	if !first.IsPaid || first.Status != models.BillPaid {
		t.Fatalf("not paid after first call: %+v", first)
	}

	s.MarkBillPaid(b.ID)
	second := s.Bills()[0]
	if second != first {
		t.Fatalf("second pay changed the bill: %+v vs %+v", second, first)
	}

	// unknown id is a silent no-op
	s.MarkBillPaid("nope")
	if got := len(s.Bills()); got != 1 {
		t.Fatalf("bill count changed: %d", got)
	}
}

func TestCompleteMaintenanceTask(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		frequency string
		wantDue   time.Time
	}{
		{"weekly", models.FreqWeekly, fixedNow.AddDate(0, 0, 7)},
		{"monthly same day next month", models.FreqMonthly, time.Date(2024, time.April, 12, 10, 0, 0, 0, time.UTC)},
		{"quarterly", models.FreqQuarterly, time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)},
		{"annually", models.FreqAnnually, time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)},
		{"unknown falls back to 30 days", "Fortnightly", fixedNow.AddDate(0, 0, 30)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newFixedStore()
			task := s.AddMaintenanceTask(models.MaintenanceTask{
				Title:       "Gutter Cleaning",
				Frequency:   tc.frequency,
				NextDueDate: fixedNow.AddDate(0, 0, -3),
				Status:      models.TaskOverdue,
			})

			s.CompleteMaintenanceTask(task.ID)

			got := s.MaintenanceTasks()[0]
			if !got.NextDueDate.Equal(tc.wantDue) {
				t.Fatalf("next due: got %v, want %v", got.NextDueDate, tc.wantDue)
			}
			if got.Status != models.TaskUpcoming {
				t.Fatalf("status: got %q, want %q", got.Status, models.TaskUpcoming)
			}
			if got.LastCompletedDate == nil || !got.LastCompletedDate.Equal(fixedNow) {
				t.Fatalf("last completed: got %v", got.LastCompletedDate)
			}
			if len(s.Dashboard().OverdueTasks) != 0 {
				t.Fatal("completed task still listed overdue")
			}
		})
	}
}

func TestMonthEndCompletionNormalizes(t *testing.T) {
	t.Parallel()
	jan31 := time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC)
	s := NewAt(func() time.Time { return jan31 })

	task := s.AddMaintenanceTask(models.MaintenanceTask{Title: "Filter", Frequency: models.FreqMonthly, NextDueDate: jan31})
	s.CompleteMaintenanceTask(task.ID)

	// January 31 + one month normalizes to March 2 in a leap year.
	want := time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC)
	got := s.MaintenanceTasks()[0].NextDueDate
	if !got.Equal(want) {
		t.Fatalf("normalized due date: got %v, want %v", got, want)
	}
}

func TestThreatHistoryCap(t *testing.T) {
	t.Parallel()
	s := newFixedStore()

	for i := 0; i < threatHistoryCap+5; i++ {
		s.PushThreatSummary(models.ThreatSummary{Date: fixedNow.Add(time.Duration(i) * time.Hour), Level: models.ThreatLow})
	}

	got := s.ThreatSummaries()
	if len(got) != threatHistoryCap {
		t.Fatalf("history length: got %d, want %d", len(got), threatHistoryCap)
	}
	// newest first
	if !got[0].Date.After(got[1].Date) {
		t.Fatalf("history not newest-first: %v then %v", got[0].Date, got[1].Date)
	}
}

func TestSubscribeFiresOnlyOnStructuralChange(t *testing.T) {
	t.Parallel()
	s := newFixedStore()

	var calls int
	unsubscribe := s.Subscribe(func(st State, _ models.DashboardData) any {
		return st.Bills
	}, func(any) { calls++ })

	// unrelated mutation: bills unchanged, no callback
	s.AddCalendarEvent(models.CalendarEvent{Title: "HOA"})
	if calls != 0 {
		t.Fatalf("callback fired on unrelated change: %d", calls)
	}

	b := s.AddBill(models.Bill{Title: "Gas", Amount: 60, DueDate: fixedNow})
	if calls != 1 {
		t.Fatalf("callback count after bill add: %d", calls)
	}

	// refresh recomputes but changes nothing structurally
	s.Refresh()
	if calls != 1 {
		t.Fatalf("callback fired on no-op refresh: %d", calls)
	}

	// in-place field update must still register as a change
	amount := 99.0
	s.UpdateBill(b.ID, BillPatch{Amount: &amount})
	if calls != 2 {
		t.Fatalf("callback count after in-place update: %d", calls)
	}

	unsubscribe()
	s.DeleteBill(b.ID)
	if calls != 2 {
		t.Fatalf("callback fired after unsubscribe: %d", calls)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	t.Parallel()
	s := newFixedStore()
	s.AddBill(models.Bill{Title: "Mortgage", Amount: 2450, DueDate: fixedNow})

	snap := s.Snapshot()
	snap.Bills[0].Amount = 1

	if got := s.Bills()[0].Amount; got != 2450 {
		t.Fatalf("snapshot mutation leaked into store: %v", got)
	}
}

func TestReplaceSwapsStateAndRecomputes(t *testing.T) {
	t.Parallel()
	s := newFixedStore()
	s.AddBill(models.Bill{Title: "Old", Amount: 10, DueDate: fixedNow})

	s.Replace(State{
		Bills: []models.Bill{{ID: "b1", Title: "New", Amount: 99, DueDate: fixedNow.Add(24 * time.Hour)}},
	})

	bills := s.Bills()
	if len(bills) != 1 || bills[0].Title != "New" {
		t.Fatalf("replace did not swap bills: %+v", bills)
	}
	d := s.Dashboard()
	if len(d.UpcomingBills) != 1 || d.UpcomingBills[0].ID != "b1" {
		t.Fatalf("dashboard stale after replace: %+v", d.UpcomingBills)
	}
}

func TestPartialUpdateTouchesOnlyPatchedFields(t *testing.T) {
	t.Parallel()
	s := newFixedStore()
	p := s.AddProject(models.Project{Title: "Bathroom Renovation", Status: models.ProjectInProgress, Budget: 12000, Progress: 60})

	progress := 75
	s.UpdateProject(p.ID, ProjectPatch{Progress: &progress})

	got := s.Projects()[0]
	if got.Progress != 75 {
		t.Fatalf("progress not updated: %+v", got)
	}
	if got.Title != "Bathroom Renovation" || got.Budget != 12000 || got.Status != models.ProjectInProgress {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}
