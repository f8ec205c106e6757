package service

import (
	"context"

	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/store"
)

type MaintenanceService struct {
	store   *store.Store
	persist *persister
}

func NewMaintenanceService(st *store.Store, p *persister) *MaintenanceService {
	return &MaintenanceService{store: st, persist: p}
}

func (s *MaintenanceService) List(ctx context.Context) []models.MaintenanceTask {
	return s.store.MaintenanceTasks()
}

func (s *MaintenanceService) Add(ctx context.Context, t models.MaintenanceTask) models.MaintenanceTask {
	out := s.store.AddMaintenanceTask(t)
	metrics.StoreMutations.WithLabelValues("maintenance_tasks", "add").Inc()
	s.persist.save(ctx, s.store)
	return out
}

func (s *MaintenanceService) Update(ctx context.Context, id string, p store.MaintenanceTaskPatch) {
	s.store.UpdateMaintenanceTask(id, p)
	metrics.StoreMutations.WithLabelValues("maintenance_tasks", "update").Inc()
	s.persist.save(ctx, s.store)
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) {
	s.store.DeleteMaintenanceTask(id)
	metrics.StoreMutations.WithLabelValues("maintenance_tasks", "delete").Inc()
	s.persist.save(ctx, s.store)
}

// Complete stamps the task done now and schedules the next occurrence.
func (s *MaintenanceService) Complete(ctx context.Context, id string) {
	s.store.CompleteMaintenanceTask(id)
	metrics.StoreMutations.WithLabelValues("maintenance_tasks", "complete").Inc()
	s.persist.save(ctx, s.store)
}
