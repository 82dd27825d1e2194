package domain

// Organizer represents a party responsible for running events.
type Organizer struct {
	ID      int
	Name    string
	Contact string
	Email   string
}

func (o Organizer) Validate() error {
	if o.Name == "" {
		return ErrOrganizerNameRequired
	}
	return nil
}

// OrganizerNameUnknown is returned by lookups that cannot resolve an organizer.
const OrganizerNameUnknown = "Unknown"
