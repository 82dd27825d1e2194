package mirror

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// Loader fetches whole tables from authoritative storage.
type Loader interface {
	LoadOrganizers(ctx context.Context) ([]domain.Organizer, error)
	LoadVenues(ctx context.Context) ([]domain.Venue, error)
	LoadEvents(ctx context.Context) ([]domain.Event, error)
	LoadParticipants(ctx context.Context) ([]domain.Participant, error)
	LoadTickets(ctx context.Context) ([]domain.Ticket, error)
	LoadPayments(ctx context.Context) ([]domain.Payment, error)
	LoadSponsors(ctx context.Context) ([]domain.Sponsor, error)
	LoadVolunteers(ctx context.Context) ([]domain.Volunteer, error)
	LoadUsers(ctx context.Context) ([]domain.User, error)
}

// Mirror is an in-memory replica of every entity table, rebuilt wholesale
// after each committed mutation. It never originates writes and its reads
// never touch storage. The mirror is guaranteed fresh only immediately after
// a successful Reload; readers in between may observe a stale view, which is
// acceptable for reporting but not for admission-control decisions.
type Mirror struct {
	loader Loader
	log    zerolog.Logger

	// reloadMu serializes reloads; mu guards the snapshot swap so readers
	// never block on storage.
	reloadMu sync.Mutex
	mu       sync.RWMutex

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

func New(loader Loader, log zerolog.Logger) *Mirror {
	return &Mirror{loader: loader, log: log.With().Str("component", "mirror").Logger()}
}

// Reload re-fetches every table. A table whose fetch fails keeps its previous
// snapshot (stale but available) rather than being cleared; the joined error
// reports which tables are stale.
func (m *Mirror) Reload(ctx context.Context) error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	var errs []error
	fail := func(table string, err error) {
		m.log.Warn().Err(err).Str("table", table).Msg("refresh failed, keeping previous snapshot")
		errs = append(errs, fmt.Errorf("%s: %w", table, err))
	}

	organizers, organizersErr := m.loader.LoadOrganizers(ctx)
	venues, venuesErr := m.loader.LoadVenues(ctx)
	events, eventsErr := m.loader.LoadEvents(ctx)
	participants, participantsErr := m.loader.LoadParticipants(ctx)
	tickets, ticketsErr := m.loader.LoadTickets(ctx)
	payments, paymentsErr := m.loader.LoadPayments(ctx)
	sponsors, sponsorsErr := m.loader.LoadSponsors(ctx)
	volunteers, volunteersErr := m.loader.LoadVolunteers(ctx)
	users, usersErr := m.loader.LoadUsers(ctx)

	m.mu.Lock()
	if organizersErr == nil {
		m.organizers = organizers
	} else {
		fail("organizer", organizersErr)
	}
	if venuesErr == nil {
		m.venues = venues
	} else {
		fail("venue", venuesErr)
	}
	if eventsErr == nil {
		m.events = events
	} else {
		fail("event", eventsErr)
	}
	if participantsErr == nil {
		m.participants = participants
	} else {
		fail("participants", participantsErr)
	}
	if ticketsErr == nil {
		m.tickets = tickets
	} else {
		fail("ticket", ticketsErr)
	}
	if paymentsErr == nil {
		m.payments = payments
	} else {
		fail("payment", paymentsErr)
	}
	if sponsorsErr == nil {
		m.sponsors = sponsors
	} else {
		fail("sponsor", sponsorsErr)
	}
	if volunteersErr == nil {
		m.volunteers = volunteers
	} else {
		fail("volunteers", volunteersErr)
	}
	if usersErr == nil {
		m.users = users
	} else {
		fail("users", usersErr)
	}
	m.mu.Unlock()

	return errors.Join(errs...)
}
