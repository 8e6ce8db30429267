package impl

import "sync"

// Cache key prefixes, one namespace per resource. Every mutation names the
// exact prefixes it invalidates so the write→read coupling stays auditable.
const (
	usersPrefix         = "users/"
	tripsPrefix         = "trips/"
	bookingsPrefix      = "bookings/"
	paymentsPrefix      = "payments/"
	commissionsPrefix   = "commissions/"
	bannersPrefix       = "banners/"
	notificationsPrefix = "notifications/"
	statsPrefix         = "stats/"
	analyticsPrefix     = "analytics/"
	vehiclesPrefix      = "vehicles/"
	reviewsPrefix       = "reviews/"
)

// filterTracker remembers the last non-page filter combination of one list
// screen. A change means the operator is looking at a different slice of the
// data: the page resets to 1 and the old combination's cached pages are
// dropped rather than left to serve stale mixes.
type filterTracker struct {
	mu   sync.Mutex
	last string
}

// changed records the signature and reports whether it differs from the
// previous one. The very first observation is not a change.
func (t *filterTracker) changed(signature string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.last == "" {
		t.last = signature

		return false
	}
	if t.last == signature {
		return false
	}
	t.last = signature

	return true
}
