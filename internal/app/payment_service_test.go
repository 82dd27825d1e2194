package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Sathvikar01/Event-Management-System/internal/clock"
	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// fakePaymentRepo keeps tickets and payments in memory and mimics the manual
// write paths. Routine calls are unsupported by default, pushing the service
// down its fallback path.
type fakePaymentRepo struct {
	tickets  map[int]domain.Ticket
	payments map[int]domain.Payment

	routineSupported bool
	storageDown      bool

	inserted []domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		tickets:  make(map[int]domain.Ticket),
		payments: make(map[int]domain.Payment),
	}
}

func (f *fakePaymentRepo) GetTicket(_ context.Context, id int) (domain.Ticket, error) {
	if f.storageDown {
		return domain.Ticket{}, domain.ErrStorageUnavailable
	}
	t, ok := f.tickets[id]
	if !ok {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}
	return t, nil
}

func (f *fakePaymentRepo) GetPaymentByTicket(_ context.Context, ticketID int) (*domain.Payment, error) {
	if f.storageDown {
		return nil, domain.ErrStorageUnavailable
	}
	p, ok := f.payments[ticketID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePaymentRepo) RoutineConfirmPayment(_ context.Context, ticketID int, method string, amount float64) (string, error) {
	if !f.routineSupported {
		return "", domain.ErrRoutineUnsupported
	}
	f.inserted = append(f.inserted, domain.Payment{TicketID: ticketID, Amount: amount, Method: method})
	f.payments[ticketID] = f.inserted[len(f.inserted)-1]
	t := f.tickets[ticketID]
	t.Status = domain.TicketStatusConfirmed
	f.tickets[ticketID] = t
	return "routine: confirmed", nil
}

func (f *fakePaymentRepo) InsertPaymentAndConfirm(_ context.Context, p domain.Payment) error {
	t, ok := f.tickets[p.TicketID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	f.inserted = append(f.inserted, p)
	f.payments[p.TicketID] = p
	t.Status = domain.TicketStatusConfirmed
	f.tickets[p.TicketID] = t
	return nil
}

func (f *fakePaymentRepo) RoutineMarkPending(_ context.Context, ticketID int) (string, error) {
	if !f.routineSupported {
		return "", domain.ErrRoutineUnsupported
	}
	t, ok := f.tickets[ticketID]
	if !ok {
		return "routine: not found", nil
	}
	t.Status = domain.TicketStatusPending
	f.tickets[ticketID] = t
	return "routine: pending", nil
}

func (f *fakePaymentRepo) UpdateTicketStatus(_ context.Context, ticketID int, status domain.TicketStatus) (int64, error) {
	t, ok := f.tickets[ticketID]
	if !ok {
		return 0, nil
	}
	t.Status = status
	f.tickets[ticketID] = t
	return 1, nil
}

func newPaymentService(repo *fakePaymentRepo, replica *fakeReplica, reloader *fakeReloader) *PaymentService {
	clk := clock.NewFixed(time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC))
	return NewPaymentService(repo, replica, reloader, clk, zerolog.Nop())
}

func TestConfirmPayment_CreatesPaymentAndConfirms(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.tickets[3001] = domain.Ticket{ID: 3001, EventID: 100, Status: domain.TicketStatusPending, Price: 25}
	reloader := &fakeReloader{}
	svc := newPaymentService(repo, &fakeReplica{}, reloader)

	result, err := svc.ConfirmPayment(context.Background(), 3001, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Outcome != PaymentCreated {
		t.Fatalf("expected created, got %s", result.Outcome)
	}
	if !strings.Contains(result.Message, "3001") {
		t.Fatalf("message must name the ticket: %q", result.Message)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 payment inserted, got %d", len(repo.inserted))
	}
	if repo.inserted[0].Date != time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("payment date must be the clock's date at midnight, got %v", repo.inserted[0].Date)
	}
	if repo.tickets[3001].Status != domain.TicketStatusConfirmed {
		t.Fatal("ticket must be confirmed")
	}
	if reloader.calls != 1 {
		t.Fatalf("expected one replica refresh, got %d", reloader.calls)
	}
}

func TestConfirmPayment_UnknownTicket(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentService(repo, &fakeReplica{}, &fakeReloader{})

	result, err := svc.ConfirmPayment(context.Background(), 404, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Outcome != PaymentNotFound {
		t.Fatalf("expected not_found, got %s", result.Outcome)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("nothing must be written for an unknown ticket")
	}
}

func TestConfirmPayment_CancelledTicketRejected(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.tickets[3001] = domain.Ticket{ID: 3001, Status: domain.TicketStatusCancelled, Price: 25}
	svc := newPaymentService(repo, &fakeReplica{}, &fakeReloader{})

	result, err := svc.ConfirmPayment(context.Background(), 3001, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Outcome != PaymentRejected {
		t.Fatalf("expected rejected, got %s", result.Outcome)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("a cancelled ticket must not produce a payment")
	}
	if repo.tickets[3001].Status != domain.TicketStatusCancelled {
		t.Fatal("cancelled ticket must stay cancelled")
	}
}

func TestConfirmPayment_AlreadyConfirmedIsIdempotent(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.tickets[3001] = domain.Ticket{ID: 3001, Status: domain.TicketStatusConfirmed, Price: 25}
	repo.payments[3001] = domain.Payment{ID: 1, TicketID: 3001, Amount: 25}
	reloader := &fakeReloader{}
	svc := newPaymentService(repo, &fakeReplica{}, reloader)

	result, err := svc.ConfirmPayment(context.Background(), 3001, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Outcome != PaymentAlreadyConfirmed {
		t.Fatalf("expected already_confirmed, got %s", result.Outcome)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("no duplicate payment may be written")
	}
	if reloader.calls != 0 {
		t.Fatal("no mutation means no refresh")
	}
}

func TestConfirmPayment_PendingWithPaymentFlipsStatusOnly(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.tickets[3001] = domain.Ticket{ID: 3001, Status: domain.TicketStatusPending, Price: 25}
	repo.payments[3001] = domain.Payment{ID: 1, TicketID: 3001, Amount: 25}
	svc := newPaymentService(repo, &fakeReplica{}, &fakeReloader{})

	result, err := svc.ConfirmPayment(context.Background(), 3001, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Outcome != PaymentCreated {
		t.Fatalf("expected created, got %s", result.Outcome)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("existing payment must be reused, not duplicated")
	}
	if !strings.Contains(result.Message, "already on record") {
		t.Fatalf("message must state the payment was reused: %q", result.Message)
	}
	if repo.tickets[3001].Status != domain.TicketStatusConfirmed {
		t.Fatal("ticket must be confirmed")
	}
}

func TestConfirmPayment_RoutineTierPreferred(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.routineSupported = true
	repo.tickets[3001] = domain.Ticket{ID: 3001, Status: domain.TicketStatusPending, Price: 25}
	svc := newPaymentService(repo, &fakeReplica{}, &fakeReloader{})

	result, err := svc.ConfirmPayment(context.Background(), 3001, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Message != "routine: confirmed" {
		t.Fatalf("expected the routine's message, got %q", result.Message)
	}
}

func TestConfirmPayment_ReadsFallBackToReplicaWhenStorageDown(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.storageDown = true
	replica := &fakeReplica{
		tickets: []domain.Ticket{{ID: 3001, Status: domain.TicketStatusCancelled, Price: 25}},
	}
	svc := newPaymentService(repo, replica, &fakeReloader{})

	result, err := svc.ConfirmPayment(context.Background(), 3001, "Card", 25)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.Outcome != PaymentRejected {
		t.Fatalf("cached cancelled ticket must reject, got %s", result.Outcome)
	}
}

func TestMarkTicketPending(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.tickets[3001] = domain.Ticket{ID: 3001, Status: domain.TicketStatusConfirmed, Price: 25}
	reloader := &fakeReloader{}
	svc := newPaymentService(repo, &fakeReplica{}, reloader)

	message, err := svc.MarkTicketPending(context.Background(), 3001)
	if err != nil {
		t.Fatalf("mark pending: %v", err)
	}
	if message != "Ticket 3001 status set to Pending." {
		t.Fatalf("unexpected message %q", message)
	}
	if repo.tickets[3001].Status != domain.TicketStatusPending {
		t.Fatal("ticket must be pending")
	}
	if reloader.calls != 1 {
		t.Fatalf("expected one replica refresh, got %d", reloader.calls)
	}
}

func TestMarkTicketPending_UnknownTicket(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentService(repo, &fakeReplica{}, &fakeReloader{})

	_, err := svc.MarkTicketPending(context.Background(), 404)
	if err != domain.ErrTicketNotFound {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

// The routine answers a missing ticket with prose, so the service must settle
// existence before consulting it; both tiers then agree on the error.
func TestMarkTicketPending_UnknownTicketWithRoutineInstalled(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.routineSupported = true
	reloader := &fakeReloader{}
	svc := newPaymentService(repo, &fakeReplica{}, reloader)

	_, err := svc.MarkTicketPending(context.Background(), 404)
	if !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
	if reloader.calls != 0 {
		t.Fatal("a missing ticket must not refresh the replica")
	}
}
