package service

import "time"

// Notice levels.
const (
	NoticeError   = "error"
	NoticeWarning = "warning"
	NoticeInfo    = "info"
	NoticeSuccess = "success"
)

// Notice is one transient operator-facing notification (a toast).
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notifier collects transient notices raised anywhere in the request path.
// API call failures are double-reported: once here for global visibility and
// once as the returned error for local handling.
type Notifier interface {
	Notify(level, message string)
	// Drain returns the pending notices and clears them.
	Drain() []Notice
}
