package domain

// Venue represents a location with a fixed seating capacity.
type Venue struct {
	ID       int
	Name     string
	Location string
	Capacity int
}

func (v Venue) Validate() error {
	if v.Name == "" {
		return ErrVenueNameRequired
	}
	if v.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
