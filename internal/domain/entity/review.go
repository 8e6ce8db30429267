package entity

import "time"

type Review struct {
	ID        string    `json:"_id"`
	Trip      string    `json:"trip,omitempty"`
	Author    *User     `json:"author,omitempty"`
	Target    *User     `json:"target,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"createdAt"`
}
