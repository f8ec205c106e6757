package service

import (
	"context"
	"time"

	"homehub/internal/logger"
	"homehub/internal/metrics"
	"homehub/internal/models"
	"homehub/internal/store"
	"homehub/internal/threat"
)

// ThreatFetcher is the slice of the feed client this service needs.
type ThreatFetcher interface {
	FetchWeatherAlerts(ctx context.Context, lat, lon float64) []string
	FetchCrimeReports(ctx context.Context, lat, lon float64) []string
	FetchPowerOutages(ctx context.Context, lat, lon float64) []string
}

type ThreatService struct {
	store   *store.Store
	client  ThreatFetcher
	persist *persister
	log     *logger.Logger
}

func NewThreatService(st *store.Store, client *threat.Client, p *persister, log *logger.Logger) *ThreatService {
	return &ThreatService{store: st, client: client, persist: p, log: log}
}

// NewThreatServiceWith accepts any fetcher, for tests.
func NewThreatServiceWith(st *store.Store, client ThreatFetcher, p *persister, log *logger.Logger) *ThreatService {
	return &ThreatService{store: st, client: client, persist: p, log: log}
}

func (s *ThreatService) History(ctx context.Context) []models.ThreatSummary {
	return s.store.ThreatSummaries()
}

// Refresh queries the three feeds concurrently, scores the combined
// result, and prepends it to the capped history. The feeds are
// independent and degrade to empty on failure, so the operation always
// produces a summary once all three settle.
func (s *ThreatService) Refresh(ctx context.Context, lat, lon float64) models.ThreatSummary {
	var data threat.Data
	done := make(chan struct{}, 3)

	go func() {
		data.WeatherAlerts = s.client.FetchWeatherAlerts(ctx, lat, lon)
		done <- struct{}{}
	}()
	go func() {
		data.CrimeReports = s.client.FetchCrimeReports(ctx, lat, lon)
		done <- struct{}{}
	}()
	go func() {
		data.PowerOutages = s.client.FetchPowerOutages(ctx, lat, lon)
		done <- struct{}{}
	}()
	for i := 0; i < 3; i++ {
		<-done
	}

	level := threat.Summarize(data)
	summary := s.store.PushThreatSummary(models.ThreatSummary{
		Date:          time.Now().UTC(),
		WeatherAlerts: data.WeatherAlerts,
		CrimeReports:  data.CrimeReports,
		PowerOutages:  data.PowerOutages,
		Level:         level,
	})
	metrics.StoreMutations.WithLabelValues("threat_summaries", "push").Inc()
	s.persist.save(ctx, s.store)

	if level == models.ThreatHigh || level == models.ThreatSevere {
		if s.log != nil {
			s.log.Infow("storm_prep",
				"level", level,
				"actions", "charging batteries, closing blinds, cutting irrigation",
			)
		}
	}
	return summary
}
