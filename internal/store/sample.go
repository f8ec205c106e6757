package store

import (
	"time"

	"homehub/internal/models"

	"github.com/google/uuid"
)

// SampleState seeds a fresh install with plausible household data. Used
// whenever no valid snapshot exists (first run or discarded blob).
func SampleState(now time.Time) State {
	oneWeek := now.AddDate(0, 0, 7)

	return State{
		TemperatureReadings: []models.TemperatureReading{
			{
				ID:          uuid.NewString(),
				RoomName:    "Living Room",
				Temperature: 72,
				Humidity:    45,
				Timestamp:   now,
			},
			{
				ID:          uuid.NewString(),
				RoomName:    "Bedroom",
				Temperature: 70,
				Humidity:    42,
				Timestamp:   now,
			},
		},
		Projects: []models.Project{
			{
				ID:          uuid.NewString(),
				Title:       "Bathroom Renovation",
				Description: "Complete master bathroom remodel with new fixtures and tile work",
				Status:      models.ProjectInProgress,
				Room:        "Bathroom",
				Budget:      8000,
				ActualCost:  4800,
				StartDate:   now.AddDate(0, 0, -14),
				Notes:       []string{"Tile work started", "Plumbing completed"},
				Progress:    60,
			},
			{
				ID:          uuid.NewString(),
				Title:       "Kitchen Cabinet Update",
				Description: "Replace cabinet hardware and paint cabinets",
				Status:      models.ProjectPlanned,
				Room:        "Kitchen",
				Budget:      1200,
				StartDate:   oneWeek,
				Notes:       []string{"Research cabinet paint options"},
			},
		},
		MaintenanceTasks: []models.MaintenanceTask{
			{
				ID:                uuid.NewString(),
				Title:             "Replace HVAC Filter",
				Description:       "Change air filter in main HVAC unit",
				Frequency:         models.FreqMonthly,
				NextDueDate:       now.AddDate(0, 0, 5),
				Status:            models.TaskUpcoming,
				Category:          "HVAC",
				EstimatedDuration: 15,
				IsRecurring:       true,
			},
			{
				ID:                uuid.NewString(),
				Title:             "Gutter Cleaning",
				Description:       "Clean out gutters and check for damage",
				Frequency:         models.FreqQuarterly,
				NextDueDate:       now.AddDate(0, 0, -2),
				Status:            models.TaskOverdue,
				Category:          "Exterior",
				EstimatedDuration: 120,
				IsRecurring:       true,
				Room:              "Other",
			},
		},
		Bills: []models.Bill{
			{
				ID:          uuid.NewString(),
				Title:       "Mortgage Payment",
				Type:        "Mortgage",
				Amount:      2450,
				DueDate:     time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location()),
				Status:      models.BillDue,
				IsRecurring: true,
				Frequency:   models.FreqMonthly,
			},
			{
				ID:          uuid.NewString(),
				Title:       "Electric Bill",
				Type:        "Utilities",
				Amount:      125,
				DueDate:     now.AddDate(0, 0, 10),
				Status:      models.BillDue,
				IsRecurring: true,
				Frequency:   models.FreqMonthly,
			},
		},
		CalendarEvents: []models.CalendarEvent{
			{
				ID:          uuid.NewString(),
				Title:       "Contractor Visit - Bathroom",
				Description: "Tile installation completion",
				StartDate:   now.AddDate(0, 0, 2),
				EndDate:     now.AddDate(0, 0, 2).Add(4 * time.Hour),
				Type:        "Contractor",
			},
			{
				ID:          uuid.NewString(),
				Title:       "HOA Meeting",
				Description: "Monthly neighborhood meeting",
				StartDate:   oneWeek,
				EndDate:     oneWeek.Add(2 * time.Hour),
				Type:        "HOA",
				Recurring:   true,
				Frequency:   models.FreqMonthly,
			},
		},
	}
}
