package domain

// Volunteer represents event staff. Email is unique across volunteers,
// checked at the application layer.
type Volunteer struct {
	ID      int
	Name    string
	Email   string
	Contact string
	Type    string
	EventID int
}

func (v Volunteer) Validate() error {
	if v.Email == "" {
		return ErrEmailRequired
	}
	if v.EventID == 0 {
		return ErrEventNotFound
	}
	return nil
}
