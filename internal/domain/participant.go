package domain

// Participant represents an attendee. Email is unique across participants,
// checked at the application layer.
type Participant struct {
	ID      int
	Name    string
	Email   string
	Contact string
}

func (p Participant) Validate() error {
	if p.Email == "" {
		return ErrEmailRequired
	}
	return nil
}
