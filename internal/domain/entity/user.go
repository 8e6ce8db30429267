// Package entity contains the core business objects of the dashboard,
// mirroring the resources exposed by the platform REST API.
package entity

import "time"

// User is a platform account as seen by the admin dashboard.
type User struct {
	ID         string    `json:"_id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsAdmin    bool      `json:"isAdmin"`
	Avatar     string    `json:"avatar,omitempty"`
	Rating     float64   `json:"rating"`
	TripsCount int       `json:"tripsCount"`
	IsActive   bool      `json:"isActive"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsAdministrator reports whether the user may access admin-only screens.
// The platform marks admins either through the role string or the legacy flag.
func (u *User) IsAdministrator() bool {
	if u == nil {
		return false
	}

	return u.Role == "admin" || u.IsAdmin
}

// FullName joins the name fields for display.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
