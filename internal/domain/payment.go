package domain

import "time"

// Payment records the settlement of a single ticket (1:1 at most).
type Payment struct {
	ID       int
	TicketID int
	Amount   float64
	Method   string
	Date     time.Time
}
