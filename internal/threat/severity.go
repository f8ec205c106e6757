package threat

import "homehub/internal/models"

// Data holds the three alert feeds for one evaluation.
type Data struct {
	WeatherAlerts []string
	CrimeReports  []string
	PowerOutages  []string
}

// Summarize scores the combined feeds into one ordinal level. Weather
// alerts weigh double; crime only counts once reports pile up.
func Summarize(d Data) string {
	score := 0
	if len(d.WeatherAlerts) > 0 {
		score += 2
	}
	if len(d.CrimeReports) > 2 {
		score++
	}
	if len(d.PowerOutages) > 0 {
		score++
	}

	switch {
	case score >= 3:
		return models.ThreatSevere
	case score == 2:
		return models.ThreatHigh
	case score == 1:
		return models.ThreatModerate
	default:
		return models.ThreatLow
	}
}
