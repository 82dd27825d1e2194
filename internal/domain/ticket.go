package domain

type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "Pending"
	TicketStatusConfirmed TicketStatus = "Confirmed"
	TicketStatusCancelled TicketStatus = "Cancelled"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusConfirmed, TicketStatusCancelled:
		return true
	}
	return false
}

// Ticket represents admission for a participant to an event. A ticket owns at
// most one payment and is the unit the capacity guard counts when confirmed.
type Ticket struct {
	ID            int
	EventID       int
	ParticipantID int
	Status        TicketStatus
	Price         float64
}

func (t Ticket) Validate() error {
	if t.Price <= 0 {
		return ErrInvalidPrice
	}
	if !t.Status.Valid() {
		return ErrInvalidStatus
	}
	if t.EventID == 0 {
		return ErrEventNotFound
	}
	if t.ParticipantID == 0 {
		return ErrParticipantNotFound
	}
	return nil
}
