package entity

import "time"

// Booking statuses as reported by the platform API.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusRejected  = "rejected"
)

type Booking struct {
	ID        string    `json:"_id"`
	Trip      *Trip     `json:"trip,omitempty"`
	Passenger *User     `json:"passenger,omitempty"`
	Seats     int       `json:"seats"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
