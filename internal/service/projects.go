package service

import (
	"context"

	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/store"
)

type ProjectService struct {
	store   *store.Store
	persist *persister
}

func NewProjectService(st *store.Store, p *persister) *ProjectService {
	return &ProjectService{store: st, persist: p}
}

func (s *ProjectService) List(ctx context.Context) []models.Project {
	return s.store.Projects()
}

func (s *ProjectService) Add(ctx context.Context, p models.Project) models.Project {
	out := s.store.AddProject(p)
	metrics.StoreMutations.WithLabelValues("projects", "add").Inc()
	s.persist.save(ctx, s.store)
	return out
}

func (s *ProjectService) Update(ctx context.Context, id string, p store.ProjectPatch) {
	s.store.UpdateProject(id, p)
	metrics.StoreMutations.WithLabelValues("projects", "update").Inc()
	s.persist.save(ctx, s.store)
}

func (s *ProjectService) Delete(ctx context.Context, id string) {
	s.store.DeleteProject(id)
	metrics.StoreMutations.WithLabelValues("projects", "delete").Inc()
	s.persist.save(ctx, s.store)
}
