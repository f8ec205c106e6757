package service

import (
	"context"

	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/store"
)

type ClimateService struct {
	store   *store.Store
	persist *persister
}

func NewClimateService(st *store.Store, p *persister) *ClimateService {
	return &ClimateService{store: st, persist: p}
}

func (s *ClimateService) Readings(ctx context.Context) []models.TemperatureReading {
	return s.store.TemperatureReadings()
}

func (s *ClimateService) AddReading(ctx context.Context, r models.TemperatureReading) models.TemperatureReading {
	out := s.store.AddTemperatureReading(r)
	metrics.StoreMutations.WithLabelValues("temperature_readings", "add").Inc()
	s.persist.save(ctx, s.store)
	return out
}

func (s *ClimateService) Schedules(ctx context.Context) []models.ClimateSchedule {
	return s.store.ClimateSchedules()
}

func (s *ClimateService) AddSchedule(ctx context.Context, c models.ClimateSchedule) models.ClimateSchedule {
	out := s.store.AddClimateSchedule(c)
	metrics.StoreMutations.WithLabelValues("climate_schedules", "add").Inc()
	s.persist.save(ctx, s.store)
	return out
}

func (s *ClimateService) UpdateSchedule(ctx context.Context, id string, p store.ClimateSchedulePatch) {
	s.store.UpdateClimateSchedule(id, p)
	metrics.StoreMutations.WithLabelValues("climate_schedules", "update").Inc()
	s.persist.save(ctx, s.store)
}

func (s *ClimateService) DeleteSchedule(ctx context.Context, id string) {
	s.store.DeleteClimateSchedule(id)
	metrics.StoreMutations.WithLabelValues("climate_schedules", "delete").Inc()
	s.persist.save(ctx, s.store)
}
