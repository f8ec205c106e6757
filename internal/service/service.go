package service

import (
	"context"

	"homehub/internal/hub"
	"homehub/internal/logger"
	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/repository"
	"homehub/internal/store"
	"homehub/internal/threat"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Climate exposes temperature readings and per-room schedules.
type Climate interface {
	Readings(ctx context.Context) []models.TemperatureReading
	AddReading(ctx context.Context, r models.TemperatureReading) models.TemperatureReading
	Schedules(ctx context.Context) []models.ClimateSchedule
	AddSchedule(ctx context.Context, c models.ClimateSchedule) models.ClimateSchedule
	UpdateSchedule(ctx context.Context, id string, p store.ClimateSchedulePatch)
	DeleteSchedule(ctx context.Context, id string)
}

// Projects exposes renovation project tracking.
type Projects interface {
	List(ctx context.Context) []models.Project
	Add(ctx context.Context, p models.Project) models.Project
	Update(ctx context.Context, id string, p store.ProjectPatch)
	Delete(ctx context.Context, id string)
}

// Maintenance exposes recurring chore scheduling.
type Maintenance interface {
	List(ctx context.Context) []models.MaintenanceTask
	Add(ctx context.Context, t models.MaintenanceTask) models.MaintenanceTask
	Update(ctx context.Context, id string, p store.MaintenanceTaskPatch)
	Delete(ctx context.Context, id string)
	Complete(ctx context.Context, id string)
}

// Bills exposes household expense tracking.
type Bills interface {
	List(ctx context.Context) []models.Bill
	Add(ctx context.Context, b models.Bill) models.Bill
	Update(ctx context.Context, id string, p store.BillPatch)
	Delete(ctx context.Context, id string)
	MarkPaid(ctx context.Context, id string)
}

// Calendar exposes household event scheduling.
type Calendar interface {
	List(ctx context.Context) []models.CalendarEvent
	Add(ctx context.Context, e models.CalendarEvent) models.CalendarEvent
	Update(ctx context.Context, id string, p store.CalendarEventPatch)
	Delete(ctx context.Context, id string)
}

// Dashboard exposes the derived overview.
type Dashboard interface {
	Get(ctx context.Context) models.DashboardData
	Refresh(ctx context.Context) models.DashboardData
}

// Scenes exposes lighting scene CRUD plus activation fan-out.
type Scenes interface {
	List(ctx context.Context) []models.LightingScene
	Create(ctx context.Context, s models.LightingScene) (models.LightingScene, error)
	Update(ctx context.Context, id string, p ScenePatch) (models.LightingScene, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (models.LightingScene, int, error)
}

// Threats exposes the aggregated alert feeds and their capped history.
type Threats interface {
	History(ctx context.Context) []models.ThreatSummary
	Refresh(ctx context.Context, lat, lon float64) models.ThreatSummary
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Climate
	Projects
	Maintenance
	Bills
	Calendar
	Dashboard
	Scenes
	Threats
	Authorization
}

// Deps carries everything the services need.
type Deps struct {
	Repos      *repository.Repository
	Store      *store.Store
	Hub        *hub.Hub
	Threat     *threat.Client
	Log        *logger.Logger
	SigningKey string
}

// NewService wires the store, repositories, broadcast hub, and threat
// client into concrete services.
func NewService(d Deps) *Service {
	p := &persister{snapshots: d.Repos.Snapshots, log: d.Log}
	return &Service{
		Climate:       NewClimateService(d.Store, p),
		Projects:      NewProjectService(d.Store, p),
		Maintenance:   NewMaintenanceService(d.Store, p),
		Bills:         NewBillService(d.Store, p),
		Calendar:      NewCalendarService(d.Store, p),
		Dashboard:     NewDashboardService(d.Store),
		Scenes:        NewSceneService(d.Repos.Scenes, d.Hub, d.Log),
		Threats:       NewThreatService(d.Store, d.Threat, p, d.Log),
		Authorization: NewAuthService(d.Repos.Auth, d.SigningKey),
	}
}

// persister writes the store snapshot after each mutation. Persistence is
// best-effort: a failed write is logged and counted, never surfaced, so a
// flaky disk cannot fail a dashboard edit.
type persister struct {
	snapshots repository.SnapshotRepo
	log       *logger.Logger
}

func (p *persister) save(ctx context.Context, st *store.Store) {
	if p == nil || p.snapshots == nil {
		return
	}
	if err := p.snapshots.Save(ctx, st.Snapshot()); err != nil {
		if p.log != nil {
			p.log.Errorw("snapshot_save_failed", "err", err)
		}
		metrics.SnapshotWrites.WithLabelValues("error").Inc()
		return
	}
	metrics.SnapshotWrites.WithLabelValues("ok").Inc()
}
