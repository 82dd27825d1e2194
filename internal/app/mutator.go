package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// MutationRepository is the authoritative write surface. Every method runs a
// single statement or a single transaction; no partial effects survive an
// error.
type MutationRepository interface {
	InsertOrganizer(ctx context.Context, o domain.Organizer) error
	UpdateOrganizer(ctx context.Context, o domain.Organizer) error
	DeleteOrganizer(ctx context.Context, id int) error
	InsertVenue(ctx context.Context, v domain.Venue) error
	UpdateVenue(ctx context.Context, v domain.Venue) error
	DeleteVenue(ctx context.Context, id int) error
	InsertEvent(ctx context.Context, e domain.Event) error
	UpdateEvent(ctx context.Context, e domain.Event) error
	InsertParticipant(ctx context.Context, p domain.Participant) error
	UpdateParticipant(ctx context.Context, p domain.Participant) error
	DeleteParticipant(ctx context.Context, id int) error
	InsertTicket(ctx context.Context, t domain.Ticket) error
	UpdateTicket(ctx context.Context, t domain.Ticket) error
	DeleteTicketWithPayment(ctx context.Context, id int) error
	InsertSponsor(ctx context.Context, s domain.Sponsor) error
	UpdateSponsor(ctx context.Context, s domain.Sponsor) error
	DeleteSponsor(ctx context.Context, id int) error
	InsertVolunteer(ctx context.Context, v domain.Volunteer) error
	UpdateVolunteer(ctx context.Context, v domain.Volunteer) error
	DeleteVolunteer(ctx context.Context, id int) error
	DeleteEventCascade(ctx context.Context, eventID int) error
}

// MutatorReplica is the cached view the mutator consults for referential
// checks, admission control and cascade accounting.
type MutatorReplica interface {
	OrganizerByID(id int) (domain.Organizer, bool)
	VenueByID(id int) (domain.Venue, bool)
	EventByID(id int) (domain.Event, bool)
	ParticipantByID(id int) (domain.Participant, bool)
	TicketByID(id int) (domain.Ticket, bool)
	TicketsByEvent(eventID int) []domain.Ticket
	PaymentsByEvent(eventID int) []domain.Payment
	SponsorsByEvent(eventID int) []domain.Sponsor
	VolunteersByEvent(eventID int) []domain.Volunteer
	EventsByVenue(venueID int) []domain.Event
	EventsByOrganizer(organizerID int) []domain.Event
	TicketsByParticipant(participantID int) []domain.Ticket
	ParticipantEmailExists(email string, excludeID int) bool
	VolunteerEmailExists(email string, excludeID int) bool
}

// CapacityReader is the tiered remaining-capacity lookup, so admission
// consults authoritative storage first and the cached computation last.
type CapacityReader interface {
	AvailableCapacity(ctx context.Context, eventID int) (int, error)
}

// Recorder appends to the audit trail.
type Recorder interface {
	Append(ctx context.Context, message string)
}

// DeleteEventResult counts the rows removed by an event cascade.
type DeleteEventResult struct {
	Tickets    int `json:"tickets"`
	Payments   int `json:"payments"`
	Volunteers int `json:"volunteers"`
	Sponsors   int `json:"sponsors"`
}

// Mutator owns every entity write. It validates against the cached replica
// before touching storage, lets database constraints be the final word, and
// refreshes the replica after each committed change.
type Mutator struct {
	repo     MutationRepository
	replica  MutatorReplica
	capacity CapacityReader
	mirror   Reloader
	audit    Recorder
	log      zerolog.Logger
}

func NewMutator(repo MutationRepository, replica MutatorReplica, capacity CapacityReader, mirror Reloader, audit Recorder, log zerolog.Logger) *Mutator {
	return &Mutator{
		repo:     repo,
		replica:  replica,
		capacity: capacity,
		mirror:   mirror,
		audit:    audit,
		log:      log.With().Str("component", "mutator").Logger(),
	}
}

func (m *Mutator) CreateOrganizer(ctx context.Context, o domain.Organizer) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return m.commit(ctx, m.repo.InsertOrganizer(ctx, o))
}

func (m *Mutator) UpdateOrganizer(ctx context.Context, o domain.Organizer) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return m.commit(ctx, m.repo.UpdateOrganizer(ctx, o))
}

// DeleteOrganizer refuses while any event still references the organizer.
func (m *Mutator) DeleteOrganizer(ctx context.Context, id int) error {
	if len(m.replica.EventsByOrganizer(id)) > 0 {
		return domain.ErrOrganizerInUse
	}
	return m.commit(ctx, m.repo.DeleteOrganizer(ctx, id))
}

func (m *Mutator) CreateVenue(ctx context.Context, v domain.Venue) error {
	if err := v.Validate(); err != nil {
		return err
	}
	return m.commit(ctx, m.repo.InsertVenue(ctx, v))
}

func (m *Mutator) UpdateVenue(ctx context.Context, v domain.Venue) error {
	if err := v.Validate(); err != nil {
		return err
	}
	return m.commit(ctx, m.repo.UpdateVenue(ctx, v))
}

func (m *Mutator) DeleteVenue(ctx context.Context, id int) error {
	if len(m.replica.EventsByVenue(id)) > 0 {
		return domain.ErrVenueInUse
	}
	return m.commit(ctx, m.repo.DeleteVenue(ctx, id))
}

func (m *Mutator) CreateEvent(ctx context.Context, e domain.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, ok := m.replica.VenueByID(e.VenueID); !ok {
		return domain.ErrVenueNotFound
	}
	if _, ok := m.replica.OrganizerByID(e.OrganizerID); !ok {
		return domain.ErrOrganizerNotFound
	}
	return m.commit(ctx, m.repo.InsertEvent(ctx, e))
}

func (m *Mutator) UpdateEvent(ctx context.Context, e domain.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, ok := m.replica.EventByID(e.ID); !ok {
		return domain.ErrEventNotFound
	}
	if _, ok := m.replica.VenueByID(e.VenueID); !ok {
		return domain.ErrVenueNotFound
	}
	if _, ok := m.replica.OrganizerByID(e.OrganizerID); !ok {
		return domain.ErrOrganizerNotFound
	}
	return m.commit(ctx, m.repo.UpdateEvent(ctx, e))
}

func (m *Mutator) CreateParticipant(ctx context.Context, p domain.Participant) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if m.replica.ParticipantEmailExists(p.Email, p.ID) {
		return domain.ErrDuplicateEmail
	}
	return m.commit(ctx, m.repo.InsertParticipant(ctx, p))
}

func (m *Mutator) UpdateParticipant(ctx context.Context, p domain.Participant) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if m.replica.ParticipantEmailExists(p.Email, p.ID) {
		return domain.ErrDuplicateEmail
	}
	return m.commit(ctx, m.repo.UpdateParticipant(ctx, p))
}

func (m *Mutator) DeleteParticipant(ctx context.Context, id int) error {
	if len(m.replica.TicketsByParticipant(id)) > 0 {
		return domain.ErrParticipantInUse
	}
	return m.commit(ctx, m.repo.DeleteParticipant(ctx, id))
}

// CreateTicket admits a confirmed ticket only while the event still has
// capacity. The database trigger enforces the same rule as a backstop; the
// tiered lookup refuses up front and with a precise error.
func (m *Mutator) CreateTicket(ctx context.Context, t domain.Ticket) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := m.replica.EventByID(t.EventID); !ok {
		return domain.ErrEventNotFound
	}
	if _, ok := m.replica.ParticipantByID(t.ParticipantID); !ok {
		return domain.ErrParticipantNotFound
	}
	if t.Status == domain.TicketStatusConfirmed {
		if err := m.admitConfirmed(ctx, t.EventID); err != nil {
			return err
		}
	}
	return m.commit(ctx, m.repo.InsertTicket(ctx, t))
}

// admitConfirmed refuses a seat unless the tiered capacity lookup reports one
// free. Unresolved capacity reads as zero, which refuses.
func (m *Mutator) admitConfirmed(ctx context.Context, eventID int) error {
	available, err := m.capacity.AvailableCapacity(ctx, eventID)
	if err != nil {
		return err
	}
	if available <= 0 {
		return domain.ErrCapacityExhausted
	}
	return nil
}

// UpdateTicket applies the capacity guard only on a transition into the
// confirmed state; a ticket that is already confirmed holds its seat.
func (m *Mutator) UpdateTicket(ctx context.Context, t domain.Ticket) error {
	if err := t.Validate(); err != nil {
		return err
	}
	current, ok := m.replica.TicketByID(t.ID)
	if !ok {
		return domain.ErrTicketNotFound
	}
	if t.Status == domain.TicketStatusConfirmed && current.Status != domain.TicketStatusConfirmed {
		if err := m.admitConfirmed(ctx, t.EventID); err != nil {
			return err
		}
	}
	return m.commit(ctx, m.repo.UpdateTicket(ctx, t))
}

// DeleteTicket removes a ticket and its payment, if any, in one transaction.
func (m *Mutator) DeleteTicket(ctx context.Context, id int) error {
	return m.commit(ctx, m.repo.DeleteTicketWithPayment(ctx, id))
}

func (m *Mutator) CreateSponsor(ctx context.Context, s domain.Sponsor) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := m.replica.EventByID(s.EventID); !ok {
		return domain.ErrEventNotFound
	}
	return m.commit(ctx, m.repo.InsertSponsor(ctx, s))
}

func (m *Mutator) UpdateSponsor(ctx context.Context, s domain.Sponsor) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return m.commit(ctx, m.repo.UpdateSponsor(ctx, s))
}

func (m *Mutator) DeleteSponsor(ctx context.Context, id int) error {
	return m.commit(ctx, m.repo.DeleteSponsor(ctx, id))
}

func (m *Mutator) CreateVolunteer(ctx context.Context, v domain.Volunteer) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if _, ok := m.replica.EventByID(v.EventID); !ok {
		return domain.ErrEventNotFound
	}
	if m.replica.VolunteerEmailExists(v.Email, v.ID) {
		return domain.ErrDuplicateEmail
	}
	return m.commit(ctx, m.repo.InsertVolunteer(ctx, v))
}

func (m *Mutator) UpdateVolunteer(ctx context.Context, v domain.Volunteer) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if m.replica.VolunteerEmailExists(v.Email, v.ID) {
		return domain.ErrDuplicateEmail
	}
	return m.commit(ctx, m.repo.UpdateVolunteer(ctx, v))
}

func (m *Mutator) DeleteVolunteer(ctx context.Context, id int) error {
	return m.commit(ctx, m.repo.DeleteVolunteer(ctx, id))
}

// DeleteEvent removes an event and all dependent rows in a fixed order:
// payments, tickets, volunteers, sponsors, then the event, all in one
// transaction. The audit record is written before the cascade runs and is
// never rolled back, so a failed cascade leaves a trace of the attempt.
func (m *Mutator) DeleteEvent(ctx context.Context, id int) (DeleteEventResult, error) {
	event, ok := m.replica.EventByID(id)
	if !ok {
		return DeleteEventResult{}, domain.ErrEventNotFound
	}

	result := DeleteEventResult{
		Tickets:    len(m.replica.TicketsByEvent(id)),
		Payments:   len(m.replica.PaymentsByEvent(id)),
		Volunteers: len(m.replica.VolunteersByEvent(id)),
		Sponsors:   len(m.replica.SponsorsByEvent(id)),
	}

	m.audit.Append(ctx, fmt.Sprintf("Event %d (%s) was deleted. Volunteers may need re-assignment.", id, event.Name))

	if err := m.repo.DeleteEventCascade(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return DeleteEventResult{}, err
		}
		return DeleteEventResult{}, fmt.Errorf("%w: %v", domain.ErrCascadeFailed, err)
	}

	m.refresh(ctx)
	return result, nil
}

// commit refreshes the replica after a successful write and passes errors
// through untouched.
func (m *Mutator) commit(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	m.refresh(ctx)
	return nil
}

func (m *Mutator) refresh(ctx context.Context) {
	if err := m.mirror.Reload(ctx); err != nil {
		m.log.Warn().Err(err).Msg("replica refresh after write failed")
	}
}
