package models

import "time"

// Project status values.
const (
	ProjectPlanned    = "Planned"
	ProjectInProgress = "In Progress"
	ProjectPaused     = "Paused"
	ProjectCompleted  = "Completed"
)

// Maintenance/bill recurrence frequencies.
const (
	FreqWeekly    = "Weekly"
	FreqMonthly   = "Monthly"
	FreqQuarterly = "Quarterly"
	FreqAnnually  = "Annually"
)

// Maintenance task display statuses.
const (
	TaskUpcoming = "Upcoming"
	TaskOverdue  = "Overdue"
	TaskDone     = "Done"
)

// Bill statuses.
const (
	BillDue     = "Due"
	BillPaid    = "Paid"
	BillOverdue = "Overdue"
)

// TemperatureReading is one sensor or manual measurement for a room.
type TemperatureReading struct {
	ID          string    `json:"id"`
	RoomName    string    `json:"room_name"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`
	IsManual    bool      `json:"is_manual"`
}

// ClimateSchedule is a per-room target temperature window.
type ClimateSchedule struct {
	ID          string   `json:"id"`
	RoomName    string   `json:"room_name"`
	StartTime   string   `json:"start_time"` // "HH:MM"
	EndTime     string   `json:"end_time"`
	Temperature float64  `json:"temperature"`
	Days        []string `json:"days"`
	IsActive    bool     `json:"is_active"`
}

// ProjectPhoto is an attachment on a renovation project.
type ProjectPhoto struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectReceipt records a purchase against a project budget.
type ProjectReceipt struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Vendor      string    `json:"vendor"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	FileURL     string    `json:"file_url,omitempty"`
}

// Project is a renovation or improvement project.
type Project struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"` // Planned | In Progress | Paused | Completed
	Room        string           `json:"room"`
	Budget      float64          `json:"budget"`
	ActualCost  float64          `json:"actual_cost"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	Notes       []string         `json:"notes"`
	Photos      []ProjectPhoto   `json:"photos"`
	Receipts    []ProjectReceipt `json:"receipts"`
	Progress    int              `json:"progress"` // 0-100
}

// MaintenanceTask is a recurring chore with a due date.
type MaintenanceTask struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Frequency         string     `json:"frequency"` // Weekly | Monthly | Quarterly | Annually
	NextDueDate       time.Time  `json:"next_due_date"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
	Status            string     `json:"status"` // Upcoming | Overdue | Done
	Category          string     `json:"category"`
	EstimatedDuration int        `json:"estimated_duration"` // minutes
	IsRecurring       bool       `json:"is_recurring"`
	Room              string     `json:"room,omitempty"`
}

// Bill is a household expense with a due date.
type Bill struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // Mortgage | Insurance | HOA | Utilities | Internet | Phone | Other
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	IsPaid      bool      `json:"is_paid"`
	Status      string    `json:"status"` // Paid | Due | Overdue
	IsRecurring bool      `json:"is_recurring"`
	Frequency   string    `json:"frequency,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// CalendarEvent is a scheduled household event.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Type        string    `json:"type"` // Contractor | Cleaning | Maintenance | Personal | HOA | Other
	AllDay      bool      `json:"all_day"`
	Recurring   bool      `json:"recurring"`
	Frequency   string    `json:"frequency,omitempty"`
	Location    string    `json:"location,omitempty"`
}

// LightingScene is a named mood-lighting preset.
type LightingScene struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`       // hex, e.g. "#FFB347"
	Brightness  int    `json:"brightness"`  // 0-100
	Temperature int    `json:"temperature"` // color temperature
}
