package store

import (
	"reflect"
	"sync"
	"time"

	"homehub/internal/models"

	"github.com/google/uuid"
)

const threatHistoryCap = 10

// State is the full set of authoritative collections. Collections keep
// insertion order; order carries no meaning beyond display.
type State struct {
	TemperatureReadings []models.TemperatureReading `json:"temperature_readings"`
	ClimateSchedules    []models.ClimateSchedule    `json:"climate_schedules"`
	Projects            []models.Project            `json:"projects"`
	MaintenanceTasks    []models.MaintenanceTask    `json:"maintenance_tasks"`
	Bills               []models.Bill               `json:"bills"`
	CalendarEvents      []models.CalendarEvent      `json:"calendar_events"`
	ThreatSummaries     []models.ThreatSummary      `json:"threat_summaries"`
}

// Selector picks a slice of state (or of the derived dashboard) for a
// subscriber. Returned values are compared structurally between
// recomputations; subscribers only hear about actual changes.
type Selector func(s State, d models.DashboardData) any

type subscription struct {
	sel  Selector
	fn   func(any)
	last any
}

// Store is the single-writer state container. Every mutation runs under
// the lock, applies the transition, and then recomputes the derived
// dashboard in one explicit step before notifying subscribers.
type Store struct {
	mu        sync.Mutex
	state     State
	dashboard models.DashboardData

	subs    map[int]*subscription
	nextSub int

	now func() time.Time
}

// New returns an empty store. Use Replace to load a snapshot into it.
func New() *Store {
	s := &Store{
		subs: make(map[int]*subscription),
		now:  time.Now,
	}
	s.dashboard = BuildDashboard(s.now(), s.state)
	return s
}

// NewAt returns a store with a fixed clock, for tests.
func NewAt(now func() time.Time) *Store {
	s := New()
	s.now = now
	s.dashboard = BuildDashboard(s.now(), s.state)
	return s
}

// mutate applies one transition and then runs the explicit recompute step.
// All exported mutators funnel through here so the derived view can never
// go stale relative to the collections.
func (s *Store) mutate(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	s.dashboard = BuildDashboard(s.now(), s.state)
	pending := s.collectNotifications()
	s.mu.Unlock()

	for _, p := range pending {
		p()
	}
}

// collectNotifications evaluates every subscriber's selector against the
// fresh state and queues callbacks for the ones whose value changed.
// Caller holds the lock; callbacks run after it is released.
//
// Selectors see a cloned state: the retained comparison value must not
// alias the live backing arrays, or an in-place element update would
// mutate it and defeat the structural comparison.
func (s *Store) collectNotifications() []func() {
	if len(s.subs) == 0 {
		return nil
	}
	snapshot := cloneState(s.state)
	var pending []func()
	for _, sub := range s.subs {
		val := sub.sel(snapshot, s.dashboard)
		if reflect.DeepEqual(val, sub.last) {
			continue
		}
		sub.last = val
		fn, v := sub.fn, val
		pending = append(pending, func() { fn(v) })
	}
	return pending
}

// Subscribe registers interest in a slice of state. The returned function
// removes the subscription. The selector is evaluated immediately to seed
// change detection; the callback fires only on subsequent changes.
func (s *Store) Subscribe(sel Selector, fn func(any)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = &subscription{sel: sel, fn: fn, last: sel(cloneState(s.state), s.dashboard)}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Refresh recomputes the derived dashboard against the current clock
// without changing any collection.
func (s *Store) Refresh() {
	s.mutate(func(*State) {})
}

// Dashboard returns the derived view as of the last recomputation.
func (s *Store) Dashboard() models.DashboardData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// Snapshot returns a deep copy of the collections for persistence.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Replace swaps in a full state (e.g. a loaded snapshot) and recomputes.
func (s *Store) Replace(st State) {
	s.mutate(func(cur *State) {
		*cur = cloneState(st)
	})
}

// ---- Climate ----

func (s *Store) TemperatureReadings() []models.TemperatureReading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TemperatureReading(nil), s.state.TemperatureReadings...)
}

func (s *Store) AddTemperatureReading(r models.TemperatureReading) models.TemperatureReading {
	r.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.TemperatureReadings = append(st.TemperatureReadings, r)
	})
	return r
}

func (s *Store) ClimateSchedules() []models.ClimateSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ClimateSchedule(nil), s.state.ClimateSchedules...)
}

func (s *Store) AddClimateSchedule(c models.ClimateSchedule) models.ClimateSchedule {
	c.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.ClimateSchedules = append(st.ClimateSchedules, c)
	})
	return c
}

// UpdateClimateSchedule merges the patch into the matching schedule.
// Unknown ids are a silent no-op, mirroring every updater here.
func (s *Store) UpdateClimateSchedule(id string, p ClimateSchedulePatch) {
	s.mutate(func(st *State) {
		for i := range st.ClimateSchedules {
			if st.ClimateSchedules[i].ID == id {
				p.apply(&st.ClimateSchedules[i])
				return
			}
		}
	})
}

func (s *Store) DeleteClimateSchedule(id string) {
	s.mutate(func(st *State) {
		st.ClimateSchedules = deleteByID(st.ClimateSchedules, id, func(c models.ClimateSchedule) string { return c.ID })
	})
}

// ---- Projects ----

func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Project(nil), s.state.Projects...)
}

func (s *Store) AddProject(p models.Project) models.Project {
	p.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.Projects = append(st.Projects, p)
	})
	return p
}

func (s *Store) UpdateProject(id string, p ProjectPatch) {
	s.mutate(func(st *State) {
		for i := range st.Projects {
			if st.Projects[i].ID == id {
				p.apply(&st.Projects[i])
				return
			}
		}
	})
}

func (s *Store) DeleteProject(id string) {
	s.mutate(func(st *State) {
		st.Projects = deleteByID(st.Projects, id, func(p models.Project) string { return p.ID })
	})
}

// ---- Maintenance ----

func (s *Store) MaintenanceTasks() []models.MaintenanceTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MaintenanceTask(nil), s.state.MaintenanceTasks...)
}

func (s *Store) AddMaintenanceTask(t models.MaintenanceTask) models.MaintenanceTask {
	t.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.MaintenanceTasks = append(st.MaintenanceTasks, t)
	})
	return t
}

func (s *Store) UpdateMaintenanceTask(id string, p MaintenanceTaskPatch) {
	s.mutate(func(st *State) {
		for i := range st.MaintenanceTasks {
			if st.MaintenanceTasks[i].ID == id {
				p.apply(&st.MaintenanceTasks[i])
				return
			}
		}
	})
}

func (s *Store) DeleteMaintenanceTask(id string) {
	s.mutate(func(st *State) {
		st.MaintenanceTasks = deleteByID(st.MaintenanceTasks, id, func(t models.MaintenanceTask) string { return t.ID })
	})
}

// CompleteMaintenanceTask stamps the completion time and advances the due
// date by the task's recurrence, resetting the status to Upcoming even if
// the task had gone overdue.
func (s *Store) CompleteMaintenanceTask(id string) {
	s.mutate(func(st *State) {
		for i := range st.MaintenanceTasks {
			if st.MaintenanceTasks[i].ID != id {
				continue
			}
			now := s.now()
			t := &st.MaintenanceTasks[i]
			t.LastCompletedDate = &now
			t.NextDueDate = nextDueDate(now, t.Frequency)
			t.Status = models.TaskUpcoming
			return
		}
	})
}

// nextDueDate advances from now by one recurrence period. Calendar-based
// frequencies keep the same day-of-month (normalized by time.Date for
// short months). Unknown frequencies fall back to 30 days.
func nextDueDate(now time.Time, frequency string) time.Time {
	switch frequency {
	case models.FreqWeekly:
		return now.AddDate(0, 0, 7)
	case models.FreqMonthly:
		return time.Date(now.Year(), now.Month()+1, now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	case models.FreqQuarterly:
		return time.Date(now.Year(), now.Month()+3, now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	case models.FreqAnnually:
		return time.Date(now.Year()+1, now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	default:
		return now.AddDate(0, 0, 30)
	}
}

// ---- Bills ----

func (s *Store) Bills() []models.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Bill(nil), s.state.Bills...)
}

func (s *Store) AddBill(b models.Bill) models.Bill {
	b.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.Bills = append(st.Bills, b)
	})
	return b
}

func (s *Store) UpdateBill(id string, p BillPatch) {
	s.mutate(func(st *State) {
		for i := range st.Bills {
			if st.Bills[i].ID == id {
				p.apply(&st.Bills[i])
				return
			}
		}
	})
}

func (s *Store) DeleteBill(id string) {
	s.mutate(func(st *State) {
		st.Bills = deleteByID(st.Bills, id, func(b models.Bill) string { return b.ID })
	})
}

// MarkBillPaid sets the paid flag and status together so the two can
// never disagree. Calling it twice is the same as calling it once.
func (s *Store) MarkBillPaid(id string) {
	s.mutate(func(st *State) {
		for i := range st.Bills {
			if st.Bills[i].ID == id {
				st.Bills[i].IsPaid = true
				st.Bills[i].Status = models.BillPaid
				return
			}
		}
	})
}

// ---- Calendar ----

func (s *Store) CalendarEvents() []models.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CalendarEvent(nil), s.state.CalendarEvents...)
}

func (s *Store) AddCalendarEvent(e models.CalendarEvent) models.CalendarEvent {
	e.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.CalendarEvents = append(st.CalendarEvents, e)
	})
	return e
}

func (s *Store) UpdateCalendarEvent(id string, p CalendarEventPatch) {
	s.mutate(func(st *State) {
		for i := range st.CalendarEvents {
			if st.CalendarEvents[i].ID == id {
				p.apply(&st.CalendarEvents[i])
				return
			}
		}
	})
}

func (s *Store) DeleteCalendarEvent(id string) {
	s.mutate(func(st *State) {
		st.CalendarEvents = deleteByID(st.CalendarEvents, id, func(e models.CalendarEvent) string { return e.ID })
	})
}

// ---- Threat summaries ----

func (s *Store) ThreatSummaries() []models.ThreatSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ThreatSummary(nil), s.state.ThreatSummaries...)
}

// PushThreatSummary prepends the newest summary and evicts beyond the cap.
func (s *Store) PushThreatSummary(t models.ThreatSummary) models.ThreatSummary {
	t.ID = uuid.NewString()
	s.mutate(func(st *State) {
		st.ThreatSummaries = append([]models.ThreatSummary{t}, st.ThreatSummaries...)
		if len(st.ThreatSummaries) > threatHistoryCap {
			st.ThreatSummaries = st.ThreatSummaries[:threatHistoryCap]
		}
	})
	return t
}

// ---- helpers ----

func deleteByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}

func cloneState(st State) State {
	return State{
		TemperatureReadings: append([]models.TemperatureReading(nil), st.TemperatureReadings...),
		ClimateSchedules:    append([]models.ClimateSchedule(nil), st.ClimateSchedules...),
		Projects:            append([]models.Project(nil), st.Projects...),
		MaintenanceTasks:    append([]models.MaintenanceTask(nil), st.MaintenanceTasks...),
		Bills:               append([]models.Bill(nil), st.Bills...),
		CalendarEvents:      append([]models.CalendarEvent(nil), st.CalendarEvents...),
		ThreatSummaries:     append([]models.ThreatSummary(nil), st.ThreatSummaries...),
	}
}
