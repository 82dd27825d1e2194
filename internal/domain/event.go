package domain

import "time"

// Event is the aggregation root for tickets, sponsors and volunteers. Deleting an
// event cascades over all three (and payments transitively through tickets).
type Event struct {
	ID          int
	Name        string
	Type        string
	Date        time.Time
	Time        string
	VenueID     int
	OrganizerID int
}

// EventHeader is the identity portion of an event summary; derived counters
// are layered on top by the lookup facade.
type EventHeader struct {
	EventName string
	VenueName string
	Capacity  int
}

func (e Event) Validate() error {
	if e.Name == "" {
		return ErrEventNameRequired
	}
	if e.VenueID == 0 {
		return ErrVenueNotFound
	}
	if e.OrganizerID == 0 {
		return ErrOrganizerNotFound
	}
	return nil
}
