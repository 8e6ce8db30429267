package entity

import (
	"net/url"
	"strconv"
)

// Page size options accepted by every list screen.
var allowedLimits = []int{5, 10, 20, 50}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination is the shared page/limit pair of every list filter. Out-of-range
// values are clamped rather than rejected.
type Pagination struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

func (p *Pagination) normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	valid := false
	for _, l := range allowedLimits {
		if p.Limit == l {
			valid = true

			break
		}
	}
	if !valid {
		p.Limit = DefaultLimit
	}
}

func (p Pagination) encode(v url.Values) {
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
}

// Values renders a bare page/limit pair for endpoints with no other filters.
func (p Pagination) Values() url.Values {
	v := url.Values{}
	p.encode(v)

	return v
}

// UserFilters configures the users screen.
type UserFilters struct {
	Search   string `json:"search" query:"search"`
	Status   string `json:"status" query:"status" validate:"omitempty,oneof=active inactive"`
	Verified string `json:"verified" query:"verified" validate:"omitempty,oneof=true false"`
	Pagination
}

// Normalize applies defaults and clamps pagination.
func (f *UserFilters) Normalize() { f.Pagination.normalize() }

// Values renders the filter as upstream query parameters.
func (f UserFilters) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Verified != "" {
		v.Set("verified", f.Verified)
	}
	f.encode(v)

	return v
}

// Signature identifies the filter combination ignoring the page, so that a
// filter change can be told apart from plain pagination.
func (f UserFilters) Signature() string {
	return "search=" + f.Search + "&status=" + f.Status + "&verified=" + f.Verified + "&limit=" + strconv.Itoa(f.Limit)
}

// TripFilters configures the trips screen.
type TripFilters struct {
	Search string `json:"search" query:"search"`
	Status string `json:"status" query:"status" validate:"omitempty,oneof=active completed cancelled expired"`
	Pagination
}

func (f *TripFilters) Normalize() { f.Pagination.normalize() }

func (f TripFilters) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	f.encode(v)

	return v
}

func (f TripFilters) Signature() string {
	return "search=" + f.Search + "&status=" + f.Status + "&limit=" + strconv.Itoa(f.Limit)
}

// BookingFilters configures the bookings screen.
type BookingFilters struct {
	Status string `json:"status" query:"status" validate:"omitempty,oneof=pending confirmed cancelled completed rejected"`
	Pagination
}

func (f *BookingFilters) Normalize() { f.Pagination.normalize() }

func (f BookingFilters) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	f.encode(v)

	return v
}

func (f BookingFilters) Signature() string {
	return "status=" + f.Status + "&limit=" + strconv.Itoa(f.Limit)
}

// PaymentFilters configures the payments screen. Direction selects the
// sent or received listing.
type PaymentFilters struct {
	Direction string `json:"direction" query:"direction" validate:"omitempty,oneof=sent received"`
	Status    string `json:"status" query:"status" validate:"omitempty,oneof=pending completed failed refunded cancelled"`
	Pagination
}

func (f *PaymentFilters) Normalize() { f.Pagination.normalize() }

func (f PaymentFilters) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	f.encode(v)

	return v
}

func (f PaymentFilters) Signature() string {
	return "direction=" + f.Direction + "&status=" + f.Status + "&limit=" + strconv.Itoa(f.Limit)
}

// CommissionFilters configures the commissions screen.
type CommissionFilters struct {
	Status string `json:"status" query:"status" validate:"omitempty,oneof=pending paid waived overdue"`
	Month  int    `json:"month" query:"month" validate:"omitempty,min=1,max=12"`
	Year   int    `json:"year" query:"year" validate:"omitempty,min=2020"`
	Pagination
}

func (f *CommissionFilters) Normalize() { f.Pagination.normalize() }

func (f CommissionFilters) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Month > 0 {
		v.Set("month", strconv.Itoa(f.Month))
	}
	if f.Year > 0 {
		v.Set("year", strconv.Itoa(f.Year))
	}
	f.encode(v)

	return v
}

func (f CommissionFilters) Signature() string {
	return "status=" + f.Status + "&month=" + strconv.Itoa(f.Month) + "&year=" + strconv.Itoa(f.Year) + "&limit=" + strconv.Itoa(f.Limit)
}

// NotificationFilters configures the notifications screen.
type NotificationFilters struct {
	Read string `json:"read" query:"read" validate:"omitempty,oneof=true false"`
	Type string `json:"type" query:"type"`
	Pagination
}

func (f *NotificationFilters) Normalize() { f.Pagination.normalize() }

func (f NotificationFilters) Values() url.Values {
	v := url.Values{}
	if f.Read != "" {
		v.Set("read", f.Read)
	}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	f.encode(v)

	return v
}

func (f NotificationFilters) Signature() string {
	return "read=" + f.Read + "&type=" + f.Type + "&limit=" + strconv.Itoa(f.Limit)
}

// Paged wraps a page of results together with the total count reported by
// the platform API.
type Paged[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
