package entity

import "time"

// Trip statuses as reported by the platform API.
const (
	TripStatusActive    = "active"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
	TripStatusExpired   = "expired"
)

// Location is an endpoint of a trip.
type Location struct {
	City    string  `json:"city"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

type Trip struct {
	ID             string    `json:"_id"`
	Driver         *User     `json:"driver,omitempty"`
	Origin         Location  `json:"origin"`
	Destination    Location  `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	Price          float64   `json:"price"`
	SeatsTotal     int       `json:"seatsTotal"`
	SeatsAvailable int       `json:"seatsAvailable"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
