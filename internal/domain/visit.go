package domain

import "time"

// Visit is one logged page visit.
type Visit struct {
	ID        string
	IP        string
	UserAgent string
	VisitedAt time.Time
}
