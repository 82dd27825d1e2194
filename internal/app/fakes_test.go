package app

import (
	"context"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

// fakeReplica is an in-memory stand-in for the mirror, shared by the service
// tests.
type fakeReplica struct {
	organizers   []domain.Organizer
	venues       []domain.Venue
	events       []domain.Event
	participants []domain.Participant
	tickets      []domain.Ticket
	payments     []domain.Payment
	sponsors     []domain.Sponsor
	volunteers   []domain.Volunteer
	users        []domain.User
}

func (f *fakeReplica) OrganizerByID(id int) (domain.Organizer, bool) {
	for _, o := range f.organizers {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Organizer{}, false
}

func (f *fakeReplica) VenueByID(id int) (domain.Venue, bool) {
	for _, v := range f.venues {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Venue{}, false
}

func (f *fakeReplica) EventByID(id int) (domain.Event, bool) {
	for _, e := range f.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

func (f *fakeReplica) ParticipantByID(id int) (domain.Participant, bool) {
	for _, p := range f.participants {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Participant{}, false
}

func (f *fakeReplica) TicketByID(id int) (domain.Ticket, bool) {
	for _, t := range f.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

func (f *fakeReplica) TicketsByEvent(eventID int) []domain.Ticket {
	var out []domain.Ticket
	for _, t := range f.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeReplica) PaymentByTicket(ticketID int) (domain.Payment, bool) {
	for _, p := range f.payments {
		if p.TicketID == ticketID {
			return p, true
		}
	}
	return domain.Payment{}, false
}

func (f *fakeReplica) PaymentsByEvent(eventID int) []domain.Payment {
	var out []domain.Payment
	for _, p := range f.payments {
		if t, ok := f.TicketByID(p.TicketID); ok && t.EventID == eventID {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeReplica) SponsorsByEvent(eventID int) []domain.Sponsor {
	var out []domain.Sponsor
	for _, s := range f.sponsors {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeReplica) VolunteersByEvent(eventID int) []domain.Volunteer {
	var out []domain.Volunteer
	for _, v := range f.volunteers {
		if v.EventID == eventID {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeReplica) EventsByVenue(venueID int) []domain.Event {
	var out []domain.Event
	for _, e := range f.events {
		if e.VenueID == venueID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeReplica) EventsByOrganizer(organizerID int) []domain.Event {
	var out []domain.Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeReplica) TicketsByParticipant(participantID int) []domain.Ticket {
	var out []domain.Ticket
	for _, t := range f.tickets {
		if t.ParticipantID == participantID {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeReplica) ConfirmedTicketCount(eventID int) int {
	count := 0
	for _, t := range f.tickets {
		if t.EventID == eventID && t.Status == domain.TicketStatusConfirmed {
			count++
		}
	}
	return count
}

func (f *fakeReplica) AvailableCapacity(eventID int) (int, bool) {
	e, ok := f.EventByID(eventID)
	if !ok {
		return 0, false
	}
	v, ok := f.VenueByID(e.VenueID)
	if !ok {
		return 0, false
	}
	return v.Capacity - f.ConfirmedTicketCount(eventID), true
}

func (f *fakeReplica) ParticipantEmailExists(email string, excludeID int) bool {
	for _, p := range f.participants {
		if p.Email == email && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (f *fakeReplica) VolunteerEmailExists(email string, excludeID int) bool {
	for _, v := range f.volunteers {
		if v.Email == email && v.ID != excludeID {
			return true
		}
	}
	return false
}

func (f *fakeReplica) UserByUsername(username string) (domain.User, bool) {
	for _, u := range f.users {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

func (f *fakeReplica) NextUserID() int { return nextID(len(f.users), 1, f.maxUserID()) }

func (f *fakeReplica) NextParticipantID() int {
	return nextID(len(f.participants), 1001, f.maxParticipantID())
}

func (f *fakeReplica) NextVolunteerID() int {
	return nextID(len(f.volunteers), 201, f.maxVolunteerID())
}

func (f *fakeReplica) NextTicketID() int { return nextID(len(f.tickets), 3001, f.maxTicketID()) }

func nextID(count, floor, max int) int {
	if count == 0 || max < floor {
		return floor
	}
	return max + 1
}

func (f *fakeReplica) maxUserID() int {
	max := 0
	for _, u := range f.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}

func (f *fakeReplica) maxParticipantID() int {
	max := 0
	for _, p := range f.participants {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

func (f *fakeReplica) maxVolunteerID() int {
	max := 0
	for _, v := range f.volunteers {
		if v.ID > max {
			max = v.ID
		}
	}
	return max
}

func (f *fakeReplica) maxTicketID() int {
	max := 0
	for _, t := range f.tickets {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

type fakeReloader struct {
	calls int
	err   error
}

func (f *fakeReloader) Reload(context.Context) error {
	f.calls++
	return f.err
}

type fakeRecorder struct {
	messages []string
}

func (f *fakeRecorder) Append(_ context.Context, message string) {
	f.messages = append(f.messages, message)
}
