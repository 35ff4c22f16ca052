package domain

import "time"

// Feedback is a rating for a paid order, at most one per order.
type Feedback struct {
	OrderID   string
	Rating    int
	Feedback  string
	UserEmail string
	CreatedAt time.Time
}
