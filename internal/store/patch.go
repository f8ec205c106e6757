package store

import (
	"time"

	"homehub/internal/models"
)

// Patch types carry partial updates: nil fields are left untouched, set
// fields overwrite the record. They double as the JSON bodies of the
// update endpoints.

type ClimateSchedulePatch struct {
	RoomName    *string   `json:"room_name,omitempty"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	Days        *[]string `json:"days,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

func (p ClimateSchedulePatch) apply(c *models.ClimateSchedule) {
	if p.RoomName != nil {
		c.RoomName = *p.RoomName
	}
	if p.StartTime != nil {
		c.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		c.EndTime = *p.EndTime
	}
	if p.Temperature != nil {
		c.Temperature = *p.Temperature
	}
	if p.Days != nil {
		c.Days = *p.Days
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

type ProjectPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Room        *string    `json:"room,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	ActualCost  *float64   `json:"actual_cost,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Notes       *[]string  `json:"notes,omitempty"`
	Progress    *int       `json:"progress,omitempty"`
}

func (p ProjectPatch) apply(pr *models.Project) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Room != nil {
		pr.Room = *p.Room
	}
	if p.Budget != nil {
		pr.Budget = *p.Budget
	}
	if p.ActualCost != nil {
		pr.ActualCost = *p.ActualCost
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = p.EndDate
	}
	if p.Notes != nil {
		pr.Notes = *p.Notes
	}
	if p.Progress != nil {
		pr.Progress = *p.Progress
	}
}

type MaintenanceTaskPatch struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Frequency         *string    `json:"frequency,omitempty"`
	NextDueDate       *time.Time `json:"next_due_date,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Category          *string    `json:"category,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"`
	IsRecurring       *bool      `json:"is_recurring,omitempty"`
	Room              *string    `json:"room,omitempty"`
}

func (p MaintenanceTaskPatch) apply(t *models.MaintenanceTask) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Frequency != nil {
		t.Frequency = *p.Frequency
	}
	if p.NextDueDate != nil {
		t.NextDueDate = *p.NextDueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.EstimatedDuration != nil {
		t.EstimatedDuration = *p.EstimatedDuration
	}
	if p.IsRecurring != nil {
		t.IsRecurring = *p.IsRecurring
	}
	if p.Room != nil {
		t.Room = *p.Room
	}
}

type BillPatch struct {
	Title       *string    `json:"title,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsPaid      *bool      `json:"is_paid,omitempty"`
	Status      *string    `json:"status,omitempty"`
	IsRecurring *bool      `json:"is_recurring,omitempty"`
	Frequency   *string    `json:"frequency,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (p BillPatch) apply(b *models.Bill) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.DueDate != nil {
		b.DueDate = *p.DueDate
	}
	if p.IsPaid != nil {
		b.IsPaid = *p.IsPaid
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.IsRecurring != nil {
		b.IsRecurring = *p.IsRecurring
	}
	if p.Frequency != nil {
		b.Frequency = *p.Frequency
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
}

type CalendarEventPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Type        *string    `json:"type,omitempty"`
	AllDay      *bool      `json:"all_day,omitempty"`
	Recurring   *bool      `json:"recurring,omitempty"`
	Frequency   *string    `json:"frequency,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

func (p CalendarEventPatch) apply(e *models.CalendarEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	if p.Recurring != nil {
		e.Recurring = *p.Recurring
	}
	if p.Frequency != nil {
		e.Frequency = *p.Frequency
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
}
