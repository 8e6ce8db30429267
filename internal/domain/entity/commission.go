package entity

import "time"

// Commission statuses as reported by the platform API.
const (
	CommissionStatusPending = "pending"
	CommissionStatusPaid    = "paid"
	CommissionStatusWaived  = "waived"
	CommissionStatusOverdue = "overdue"
)

type Commission struct {
	ID        string     `json:"_id"`
	Driver    *User      `json:"driver,omitempty"`
	Month     int        `json:"month"`
	Year      int        `json:"year"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CommissionSummary is the admin aggregate view.
type CommissionSummary struct {
	TotalPending float64 `json:"totalPending"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalWaived  float64 `json:"totalWaived"`
	OverdueCount int     `json:"overdueCount"`
}
