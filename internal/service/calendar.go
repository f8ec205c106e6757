package service

import (
	"context"

	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/store"
)

type CalendarService struct {
	store   *store.Store
	persist *persister
}

func NewCalendarService(st *store.Store, p *persister) *CalendarService {
	return &CalendarService{store: st, persist: p}
}

func (s *CalendarService) List(ctx context.Context) []models.CalendarEvent {
	return s.store.CalendarEvents()
}

func (s *CalendarService) Add(ctx context.Context, e models.CalendarEvent) models.CalendarEvent {
	out := s.store.AddCalendarEvent(e)
	metrics.StoreMutations.WithLabelValues("calendar_events", "add").Inc()
	s.persist.save(ctx, s.store)
	return out
}

func (s *CalendarService) Update(ctx context.Context, id string, p store.CalendarEventPatch) {
	s.store.UpdateCalendarEvent(id, p)
	metrics.StoreMutations.WithLabelValues("calendar_events", "update").Inc()
	s.persist.save(ctx, s.store)
}

func (s *CalendarService) Delete(ctx context.Context, id string) {
	s.store.DeleteCalendarEvent(id)
	metrics.StoreMutations.WithLabelValues("calendar_events", "delete").Inc()
	s.persist.save(ctx, s.store)
}
