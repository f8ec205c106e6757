package service

import (
	"context"

	"homehub/internal/models"
	"homehub/internal/store"
)

type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// Get returns the derived overview as of the last recomputation.
func (s *DashboardService) Get(ctx context.Context) models.DashboardData {
	return s.store.Dashboard()
}

// Refresh recomputes against the current clock. Time-window membership
// ("due within 7 days") drifts as the clock moves even when no collection
// changes, so clients can force a recompute.
func (s *DashboardService) Refresh(ctx context.Context) models.DashboardData {
	s.store.Refresh()
	return s.store.Dashboard()
}
