package models

import "time"

// Threat severity levels, lowest to highest.
const (
	ThreatLow      = "Low"
	ThreatModerate = "Moderate"
	ThreatHigh     = "High"
	ThreatSevere   = "Severe"
)

// ThreatSummary combines the three alert feeds for one point in time.
type ThreatSummary struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	WeatherAlerts []string  `json:"weather_alerts"`
	CrimeReports  []string  `json:"crime_reports"`
	PowerOutages  []string  `json:"power_outages"`
	Level         string    `json:"level"` // Low | Moderate | High | Severe
}
