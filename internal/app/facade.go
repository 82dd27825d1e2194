package app

import (
	"context"
	"errors"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// ProcedureRepository exposes the two storage-backed lookup strategies: a
// server-side routine and an equivalent direct query.
type ProcedureRepository interface {
	RoutineAvailableCapacity(ctx context.Context, eventID int) (int, error)
	QueryAvailableCapacity(ctx context.Context, eventID int) (int, error)
	RoutineConfirmedCount(ctx context.Context, eventID int) (int, error)
	QueryConfirmedCount(ctx context.Context, eventID int) (int, error)
	RoutineOrganizerName(ctx context.Context, organizerID int) (string, error)
	QueryOrganizerName(ctx context.Context, organizerID int) (string, error)
	RoutineEventSummary(ctx context.Context, eventID int) (domain.EventHeader, error)
	QueryEventSummary(ctx context.Context, eventID int) (domain.EventHeader, error)
}

// ReplicaReader is the cached-computation tier, served from the in-memory
// mirror without touching storage.
type ReplicaReader interface {
	AvailableCapacity(eventID int) (int, bool)
	ConfirmedTicketCount(eventID int) int
	EventByID(id int) (domain.Event, bool)
	VenueByID(id int) (domain.Venue, bool)
	OrganizerByID(id int) (domain.Organizer, bool)
}

// EventSummary combines the event header with its derived counters.
type EventSummary struct {
	EventName string `json:"event_name"`
	VenueName string `json:"venue_name"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
	Confirmed int    `json:"confirmed"`
}

// Facade answers derived lookups through a three-tier chain: server-side
// routine, direct query, cached computation. A tier is skipped only when it
// cannot run at all; a definitive answer from any tier, including not-found,
// ends the chain.
type Facade struct {
	procs   ProcedureRepository
	replica ReplicaReader
	log     zerolog.Logger
}

func NewFacade(procs ProcedureRepository, replica ReplicaReader, log zerolog.Logger) *Facade {
	return &Facade{
		procs:   procs,
		replica: replica,
		log:     log.With().Str("component", "facade").Logger(),
	}
}

// AvailableCapacity reports remaining confirmed-seat capacity for an event.
// An unknown event reports zero rather than an error.
func (f *Facade) AvailableCapacity(ctx context.Context, eventID int) (int, error) {
	capacity, err := resolve(ctx,
		func(ctx context.Context) (int, error) {
			return f.procs.RoutineAvailableCapacity(ctx, eventID)
		},
		func(ctx context.Context) (int, error) {
			return f.procs.QueryAvailableCapacity(ctx, eventID)
		},
		func(ctx context.Context) (int, error) {
			v, ok := f.replica.AvailableCapacity(eventID)
			if !ok {
				return 0, domain.ErrEventNotFound
			}
			return v, nil
		},
	)
	if errors.Is(err, domain.ErrEventNotFound) {
		return 0, nil
	}
	return capacity, err
}

// ConfirmedTicketCount reports how many tickets for the event are confirmed.
// An unknown event counts zero.
func (f *Facade) ConfirmedTicketCount(ctx context.Context, eventID int) (int, error) {
	return resolve(ctx,
		func(ctx context.Context) (int, error) {
			return f.procs.RoutineConfirmedCount(ctx, eventID)
		},
		func(ctx context.Context) (int, error) {
			return f.procs.QueryConfirmedCount(ctx, eventID)
		},
		func(ctx context.Context) (int, error) {
			return f.replica.ConfirmedTicketCount(eventID), nil
		},
	)
}

// OrganizerName resolves an organizer's display name, or "Unknown" when the
// organizer does not exist.
func (f *Facade) OrganizerName(ctx context.Context, organizerID int) (string, error) {
	name, err := resolve(ctx,
		func(ctx context.Context) (string, error) {
			return f.procs.RoutineOrganizerName(ctx, organizerID)
		},
		func(ctx context.Context) (string, error) {
			return f.procs.QueryOrganizerName(ctx, organizerID)
		},
		func(ctx context.Context) (string, error) {
			o, ok := f.replica.OrganizerByID(organizerID)
			if !ok {
				return "", domain.ErrOrganizerNotFound
			}
			return o.Name, nil
		},
	)
	if errors.Is(err, domain.ErrOrganizerNotFound) {
		return domain.OrganizerNameUnknown, nil
	}
	return name, err
}

// EventSummary assembles the header plus derived counters for one event.
// Unlike the scalar lookups, an unknown event surfaces as ErrEventNotFound.
func (f *Facade) EventSummary(ctx context.Context, eventID int) (EventSummary, error) {
	header, err := resolve(ctx,
		func(ctx context.Context) (domain.EventHeader, error) {
			return f.procs.RoutineEventSummary(ctx, eventID)
		},
		func(ctx context.Context) (domain.EventHeader, error) {
			return f.procs.QueryEventSummary(ctx, eventID)
		},
		func(ctx context.Context) (domain.EventHeader, error) {
			e, ok := f.replica.EventByID(eventID)
			if !ok {
				return domain.EventHeader{}, domain.ErrEventNotFound
			}
			v, ok := f.replica.VenueByID(e.VenueID)
			if !ok {
				return domain.EventHeader{}, domain.ErrEventNotFound
			}
			return domain.EventHeader{EventName: e.Name, VenueName: v.Name, Capacity: v.Capacity}, nil
		},
	)
	if err != nil {
		return EventSummary{}, err
	}

	available, err := f.AvailableCapacity(ctx, eventID)
	if err != nil {
		return EventSummary{}, err
	}
	confirmed, err := f.ConfirmedTicketCount(ctx, eventID)
	if err != nil {
		return EventSummary{}, err
	}

	return EventSummary{
		EventName: header.EventName,
		VenueName: header.VenueName,
		Capacity:  header.Capacity,
		Available: available,
		Confirmed: confirmed,
	}, nil
}
