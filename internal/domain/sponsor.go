package domain

// Sponsor represents a contribution attached to an event.
type Sponsor struct {
	ID           int
	Name         string
	EventID      int
	Contribution float64
}

func (s Sponsor) Validate() error {
	if s.Contribution < 0 {
		return ErrInvalidContribution
	}
	if s.EventID == 0 {
		return ErrEventNotFound
	}
	return nil
}
