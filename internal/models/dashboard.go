package models

// FinancialSummary is the bill rollup shown on the dashboard.
type FinancialSummary struct {
	TotalMonthlyExpenses float64 `json:"total_monthly_expenses"`
	PaidThisMonth        float64 `json:"paid_this_month"`
	RemainingThisMonth   float64 `json:"remaining_this_month"`
	OverdueAmount        float64 `json:"overdue_amount"`
	UpcomingWeek         []Bill  `json:"upcoming_week"`
}

// DashboardData is the derived overview. It is never stored independently:
// it is recomputed from the collections after every mutation.
type DashboardData struct {
	CurrentTemperature *TemperatureReading `json:"current_temperature,omitempty"`
	UpcomingEvents     []CalendarEvent     `json:"upcoming_events"`
	ActiveProjects     []Project           `json:"active_projects"`
	OverdueTasks       []MaintenanceTask   `json:"overdue_tasks"`
	UpcomingBills      []Bill              `json:"upcoming_bills"`
	FinancialSummary   FinancialSummary    `json:"financial_summary"`
}
