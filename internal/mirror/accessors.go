package mirror

import "github.com/Sathvikar01/Event-Management-System/internal/domain"

// Accessors return copies; callers never see the mirror's backing slices.

func (m *Mirror) Organizers() []domain.Organizer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Organizer, len(m.organizers))
	copy(out, m.organizers)
	return out
}

func (m *Mirror) Venues() []domain.Venue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Venue, len(m.venues))
	copy(out, m.venues)
	return out
}

func (m *Mirror) Events() []domain.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *Mirror) Participants() []domain.Participant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Participant, len(m.participants))
	copy(out, m.participants)
	return out
}

func (m *Mirror) Users() []domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, len(m.users))
	copy(out, m.users)
	return out
}

func (m *Mirror) OrganizerByID(id int) (domain.Organizer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.organizers {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Organizer{}, false
}

func (m *Mirror) VenueByID(id int) (domain.Venue, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.venues {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Venue{}, false
}

func (m *Mirror) EventByID(id int) (domain.Event, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

func (m *Mirror) ParticipantByID(id int) (domain.Participant, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.participants {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Participant{}, false
}

func (m *Mirror) TicketByID(id int) (domain.Ticket, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

func (m *Mirror) TicketsByEvent(eventID int) []domain.Ticket {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Ticket
	for _, t := range m.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

func (m *Mirror) PaymentByTicket(ticketID int) (domain.Payment, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.TicketID == ticketID {
			return p, true
		}
	}
	return domain.Payment{}, false
}

func (m *Mirror) PaymentsByEvent(eventID int) []domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ticketIDs := make(map[int]struct{})
	for _, t := range m.tickets {
		if t.EventID == eventID {
			ticketIDs[t.ID] = struct{}{}
		}
	}
	var out []domain.Payment
	for _, p := range m.payments {
		if _, ok := ticketIDs[p.TicketID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (m *Mirror) SponsorsByEvent(eventID int) []domain.Sponsor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Sponsor
	for _, s := range m.sponsors {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out
}

func (m *Mirror) VolunteersByEvent(eventID int) []domain.Volunteer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Volunteer
	for _, v := range m.volunteers {
		if v.EventID == eventID {
			out = append(out, v)
		}
	}
	return out
}

// EventsByVenue reports whether any event references the venue, for
// delete guards.
func (m *Mirror) EventsByVenue(venueID int) []domain.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Event
	for _, e := range m.events {
		if e.VenueID == venueID {
			out = append(out, e)
		}
	}
	return out
}

func (m *Mirror) EventsByOrganizer(organizerID int) []domain.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Event
	for _, e := range m.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out
}

func (m *Mirror) TicketsByParticipant(participantID int) []domain.Ticket {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Ticket
	for _, t := range m.tickets {
		if t.ParticipantID == participantID {
			out = append(out, t)
		}
	}
	return out
}

// ConfirmedTicketCount is the cached-computation fallback for the confirmed
// counter when storage is unreachable.
func (m *Mirror) ConfirmedTicketCount(eventID int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, t := range m.tickets {
		if t.EventID == eventID && t.Status == domain.TicketStatusConfirmed {
			count++
		}
	}
	return count
}

// AvailableCapacity computes venue capacity minus confirmed tickets from the
// cached snapshot. The second return is false when the event or its venue is
// not present in the mirror.
func (m *Mirror) AvailableCapacity(eventID int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var event *domain.Event
	for i := range m.events {
		if m.events[i].ID == eventID {
			event = &m.events[i]
			break
		}
	}
	if event == nil {
		return 0, false
	}
	capacity := -1
	for _, v := range m.venues {
		if v.ID == event.VenueID {
			capacity = v.Capacity
			break
		}
	}
	if capacity < 0 {
		return 0, false
	}
	confirmed := 0
	for _, t := range m.tickets {
		if t.EventID == eventID && t.Status == domain.TicketStatusConfirmed {
			confirmed++
		}
	}
	return capacity - confirmed, true
}

func (m *Mirror) ParticipantEmailExists(email string, excludeID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.participants {
		if p.Email == email && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (m *Mirror) VolunteerEmailExists(email string, excludeID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.volunteers {
		if v.Email == email && v.ID != excludeID {
			return true
		}
	}
	return false
}

func (m *Mirror) UserByUsername(username string) (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

// Next-ID helpers mimic the registration flows, which assign the next free
// identifier above a per-table floor.

func (m *Mirror) NextParticipantID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := 1001
	for _, p := range m.participants {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func (m *Mirror) NextVolunteerID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := 201
	for _, v := range m.volunteers {
		if v.ID >= next {
			next = v.ID + 1
		}
	}
	return next
}

func (m *Mirror) NextTicketID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := 3001
	for _, t := range m.tickets {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

func (m *Mirror) NextUserID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := 1
	for _, u := range m.users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}
