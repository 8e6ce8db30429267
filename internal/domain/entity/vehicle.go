package entity

import "time"

type Vehicle struct {
	ID        string    `json:"_id"`
	Owner     string    `json:"owner,omitempty"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Color     string    `json:"color,omitempty"`
	Plate     string    `json:"plate"`
	Seats     int       `json:"seats"`
	Photos    []string  `json:"photos,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
