package app

import (
	"context"
	"errors"
	"testing"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// fakeProcs answers lookups via function fields; unset fields report the tier
// as unavailable so tests can enable tiers selectively.
type fakeProcs struct {
	routineCapacity func(int) (int, error)
	queryCapacity   func(int) (int, error)
	routineCount    func(int) (int, error)
	queryCount      func(int) (int, error)
	routineName     func(int) (string, error)
	queryName       func(int) (string, error)
	routineSummary  func(int) (domain.EventHeader, error)
	querySummary    func(int) (domain.EventHeader, error)
}

func (f *fakeProcs) RoutineAvailableCapacity(_ context.Context, id int) (int, error) {
	if f.routineCapacity == nil {
		return 0, domain.ErrRoutineUnsupported
	}
	return f.routineCapacity(id)
}

func (f *fakeProcs) QueryAvailableCapacity(_ context.Context, id int) (int, error) {
	if f.queryCapacity == nil {
		return 0, domain.ErrStorageUnavailable
	}
	return f.queryCapacity(id)
}

func (f *fakeProcs) RoutineConfirmedCount(_ context.Context, id int) (int, error) {
	if f.routineCount == nil {
		return 0, domain.ErrRoutineUnsupported
	}
	return f.routineCount(id)
}

func (f *fakeProcs) QueryConfirmedCount(_ context.Context, id int) (int, error) {
	if f.queryCount == nil {
		return 0, domain.ErrStorageUnavailable
	}
	return f.queryCount(id)
}

func (f *fakeProcs) RoutineOrganizerName(_ context.Context, id int) (string, error) {
	if f.routineName == nil {
		return "", domain.ErrRoutineUnsupported
	}
	return f.routineName(id)
}

func (f *fakeProcs) QueryOrganizerName(_ context.Context, id int) (string, error) {
	if f.queryName == nil {
		return "", domain.ErrStorageUnavailable
	}
	return f.queryName(id)
}

func (f *fakeProcs) RoutineEventSummary(_ context.Context, id int) (domain.EventHeader, error) {
	if f.routineSummary == nil {
		return domain.EventHeader{}, domain.ErrRoutineUnsupported
	}
	return f.routineSummary(id)
}

func (f *fakeProcs) QueryEventSummary(_ context.Context, id int) (domain.EventHeader, error) {
	if f.querySummary == nil {
		return domain.EventHeader{}, domain.ErrStorageUnavailable
	}
	return f.querySummary(id)
}

func seededFacadeReplica() *fakeReplica {
	return &fakeReplica{
		organizers: []domain.Organizer{{ID: 1, Name: "Acme Events"}},
		venues:     []domain.Venue{{ID: 10, Name: "Hall A", Capacity: 5}},
		events:     []domain.Event{{ID: 100, Name: "Launch", VenueID: 10, OrganizerID: 1}},
		tickets: []domain.Ticket{
			{ID: 3001, EventID: 100, Status: domain.TicketStatusConfirmed, Price: 25},
			{ID: 3002, EventID: 100, Status: domain.TicketStatusPending, Price: 25},
		},
	}
}

func TestAvailableCapacity_RoutineTierWins(t *testing.T) {
	procs := &fakeProcs{
		routineCapacity: func(int) (int, error) { return 7, nil },
		queryCapacity:   func(int) (int, error) { t.Fatal("query tier must not run"); return 0, nil },
	}
	f := NewFacade(procs, seededFacadeReplica(), zerolog.Nop())

	got, err := f.AvailableCapacity(context.Background(), 100)
	if err != nil {
		t.Fatalf("available capacity: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestAvailableCapacity_FallsThroughToQuery(t *testing.T) {
	procs := &fakeProcs{
		queryCapacity: func(int) (int, error) { return 4, nil },
	}
	f := NewFacade(procs, seededFacadeReplica(), zerolog.Nop())

	got, err := f.AvailableCapacity(context.Background(), 100)
	if err != nil {
		t.Fatalf("available capacity: %v", err)
	}
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestAvailableCapacity_FallsThroughToReplica(t *testing.T) {
	f := NewFacade(&fakeProcs{}, seededFacadeReplica(), zerolog.Nop())

	got, err := f.AvailableCapacity(context.Background(), 100)
	if err != nil {
		t.Fatalf("available capacity: %v", err)
	}
	if got != 4 {
		t.Fatalf("capacity 5 minus 1 confirmed should be 4, got %d", got)
	}
}

func TestAvailableCapacity_UnknownEventReportsZero(t *testing.T) {
	procs := &fakeProcs{
		routineCapacity: func(int) (int, error) { return 0, domain.ErrEventNotFound },
		queryCapacity:   func(int) (int, error) { t.Fatal("not-found must terminate the chain"); return 0, nil },
	}
	f := NewFacade(procs, seededFacadeReplica(), zerolog.Nop())

	got, err := f.AvailableCapacity(context.Background(), 999)
	if err != nil {
		t.Fatalf("available capacity: %v", err)
	}
	if got != 0 {
		t.Fatalf("unknown event must report 0, got %d", got)
	}
}

func TestConfirmedTicketCount_ReplicaFallback(t *testing.T) {
	f := NewFacade(&fakeProcs{}, seededFacadeReplica(), zerolog.Nop())

	got, err := f.ConfirmedTicketCount(context.Background(), 100)
	if err != nil {
		t.Fatalf("confirmed count: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestOrganizerName_UnknownMapsToPlaceholder(t *testing.T) {
	f := NewFacade(&fakeProcs{}, seededFacadeReplica(), zerolog.Nop())

	name, err := f.OrganizerName(context.Background(), 999)
	if err != nil {
		t.Fatalf("organizer name: %v", err)
	}
	if name != domain.OrganizerNameUnknown {
		t.Fatalf("expected %q, got %q", domain.OrganizerNameUnknown, name)
	}
}

func TestOrganizerName_TierEquivalence(t *testing.T) {
	routineOnly := NewFacade(&fakeProcs{
		routineName: func(int) (string, error) { return "Acme Events", nil },
	}, &fakeReplica{}, zerolog.Nop())
	queryOnly := NewFacade(&fakeProcs{
		queryName: func(int) (string, error) { return "Acme Events", nil },
	}, &fakeReplica{}, zerolog.Nop())
	replicaOnly := NewFacade(&fakeProcs{}, seededFacadeReplica(), zerolog.Nop())

	for name, f := range map[string]*Facade{"routine": routineOnly, "query": queryOnly, "replica": replicaOnly} {
		got, err := f.OrganizerName(context.Background(), 1)
		if err != nil {
			t.Fatalf("%s tier: %v", name, err)
		}
		if got != "Acme Events" {
			t.Fatalf("%s tier: expected Acme Events, got %q", name, got)
		}
	}
}

func TestEventSummary_ComposesCounters(t *testing.T) {
	f := NewFacade(&fakeProcs{}, seededFacadeReplica(), zerolog.Nop())

	summary, err := f.EventSummary(context.Background(), 100)
	if err != nil {
		t.Fatalf("event summary: %v", err)
	}
	want := EventSummary{EventName: "Launch", VenueName: "Hall A", Capacity: 5, Available: 4, Confirmed: 1}
	if summary != want {
		t.Fatalf("expected %+v, got %+v", want, summary)
	}
}

func TestEventSummary_UnknownEventSurfaces(t *testing.T) {
	f := NewFacade(&fakeProcs{}, seededFacadeReplica(), zerolog.Nop())

	_, err := f.EventSummary(context.Background(), 999)
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestResolve_RealErrorStopsChain(t *testing.T) {
	boom := errors.New("syntax error")
	procs := &fakeProcs{
		routineCapacity: func(int) (int, error) { return 0, boom },
		queryCapacity:   func(int) (int, error) { t.Fatal("chain must stop on a real error"); return 0, nil },
	}
	f := NewFacade(procs, seededFacadeReplica(), zerolog.Nop())

	_, err := f.AvailableCapacity(context.Background(), 100)
	if !errors.Is(err, boom) {
		t.Fatalf("expected underlying error, got %v", err)
	}
}
