package service

import (
	"context"

	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/store"
)

type BillService struct {
	store   *store.Store
	persist *persister
}

func NewBillService(st *store.Store, p *persister) *BillService {
	return &BillService{store: st, persist: p}
}

func (s *BillService) List(ctx context.Context) []models.Bill {
	return s.store.Bills()
}

func (s *BillService) Add(ctx context.Context, b models.Bill) models.Bill {
	out := s.store.AddBill(b)
	metrics.StoreMutations.WithLabelValues("bills", "add").Inc()
	s.persist.save(ctx, s.store)
	return out
}

func (s *BillService) Update(ctx context.Context, id string, p store.BillPatch) {
	s.store.UpdateBill(id, p)
	metrics.StoreMutations.WithLabelValues("bills", "update").Inc()
	s.persist.save(ctx, s.store)
}

func (s *BillService) Delete(ctx context.Context, id string) {
	s.store.DeleteBill(id)
	metrics.StoreMutations.WithLabelValues("bills", "delete").Inc()
	s.persist.save(ctx, s.store)
}

func (s *BillService) MarkPaid(ctx context.Context, id string) {
	s.store.MarkBillPaid(id)
	metrics.StoreMutations.WithLabelValues("bills", "mark_paid").Inc()
	s.persist.save(ctx, s.store)
}
