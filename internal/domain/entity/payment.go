package entity

import "time"

// Payment statuses as reported by the platform API.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusCancelled = "cancelled"
)

type Payment struct {
	ID        string    `json:"_id"`
	Sender    *User     `json:"sender,omitempty"`
	Receiver  *User     `json:"receiver,omitempty"`
	Booking   string    `json:"booking,omitempty"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentSummary is the aggregate card shown on the payments screen.
type PaymentSummary struct {
	TotalSent     float64 `json:"totalSent"`
	TotalReceived float64 `json:"totalReceived"`
	PendingCount  int     `json:"pendingCount"`
	RefundedCount int     `json:"refundedCount"`
}
