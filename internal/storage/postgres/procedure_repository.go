package postgres

import (
	"context"
	"fmt"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

// Routine names the facade probes for. Any of them may be absent from a given
// installation; the gateway reports that as ErrRoutineUnsupported and the
// facade falls through to the direct-query tier.
const (
	routineAvailableCapacity = "fn_available_capacity"
	routineConfirmedCount    = "fn_confirmed_ticket_count"
	routineOrganizerName     = "fn_organizer_name"
	routineEventSummary      = "fn_event_summary"
	routineConfirmPayment    = "sp_confirm_payment"
	routineMarkPending       = "sp_mark_ticket_pending"
)

// ProcedureRepository serves the facade's tier-1 (server-side routine) and
// tier-2 (direct query) strategies. Both tiers compute the same formulas.
type ProcedureRepository struct {
	gw *Gateway
}

func NewProcedureRepository(gw *Gateway) *ProcedureRepository {
	return &ProcedureRepository{gw: gw}
}

func (r *ProcedureRepository) RoutineAvailableCapacity(ctx context.Context, eventID int) (int, error) {
	var capacity *int
	if err := r.gw.CallRoutine(ctx, routineAvailableCapacity, []any{eventID}, &capacity); err != nil {
		return 0, fmt.Errorf("routine available capacity: %w", err)
	}
	if capacity == nil {
		return 0, domain.ErrEventNotFound
	}
	return *capacity, nil
}

func (r *ProcedureRepository) QueryAvailableCapacity(ctx context.Context, eventID int) (int, error) {
	const query = `
SELECT v.capacity - COUNT(t.id) FILTER (WHERE t.status = 'Confirmed')
FROM event e
JOIN venue v ON e.venue_id = v.id
LEFT JOIN ticket t ON t.event_id = e.id
WHERE e.id = $1
GROUP BY v.capacity`
	var capacity int
	if err := r.gw.QueryRow(ctx, query, eventID).Scan(&capacity); err != nil {
		if isNoRows(err) {
			return 0, domain.ErrEventNotFound
		}
		return 0, fmt.Errorf("query available capacity: %w", err)
	}
	return capacity, nil
}

func (r *ProcedureRepository) RoutineConfirmedCount(ctx context.Context, eventID int) (int, error) {
	var count *int
	if err := r.gw.CallRoutine(ctx, routineConfirmedCount, []any{eventID}, &count); err != nil {
		return 0, fmt.Errorf("routine confirmed count: %w", err)
	}
	if count == nil {
		return 0, nil
	}
	return *count, nil
}

func (r *ProcedureRepository) QueryConfirmedCount(ctx context.Context, eventID int) (int, error) {
	const query = `SELECT COUNT(*) FROM ticket WHERE event_id = $1 AND status = 'Confirmed'`
	var count int
	if err := r.gw.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("query confirmed count: %w", err)
	}
	return count, nil
}

func (r *ProcedureRepository) RoutineOrganizerName(ctx context.Context, organizerID int) (string, error) {
	var name *string
	if err := r.gw.CallRoutine(ctx, routineOrganizerName, []any{organizerID}, &name); err != nil {
		return "", fmt.Errorf("routine organizer name: %w", err)
	}
	if name == nil {
		return "", domain.ErrOrganizerNotFound
	}
	return *name, nil
}

func (r *ProcedureRepository) QueryOrganizerName(ctx context.Context, organizerID int) (string, error) {
	const query = `SELECT name FROM organizer WHERE id = $1`
	var name string
	if err := r.gw.QueryRow(ctx, query, organizerID).Scan(&name); err != nil {
		if isNoRows(err) {
			return "", domain.ErrOrganizerNotFound
		}
		return "", fmt.Errorf("query organizer name: %w", err)
	}
	return name, nil
}

func (r *ProcedureRepository) RoutineEventSummary(ctx context.Context, eventID int) (domain.EventHeader, error) {
	var h domain.EventHeader
	err := r.gw.CallRoutine(ctx, routineEventSummary, []any{eventID}, &h.EventName, &h.VenueName, &h.Capacity)
	if err != nil {
		if isNoRows(err) {
			return domain.EventHeader{}, domain.ErrEventNotFound
		}
		return domain.EventHeader{}, fmt.Errorf("routine event summary: %w", err)
	}
	return h, nil
}

func (r *ProcedureRepository) QueryEventSummary(ctx context.Context, eventID int) (domain.EventHeader, error) {
	const query = `
SELECT e.name, v.name, v.capacity
FROM event e
JOIN venue v ON e.venue_id = v.id
WHERE e.id = $1`
	var h domain.EventHeader
	if err := r.gw.QueryRow(ctx, query, eventID).Scan(&h.EventName, &h.VenueName, &h.Capacity); err != nil {
		if isNoRows(err) {
			return domain.EventHeader{}, domain.ErrEventNotFound
		}
		return domain.EventHeader{}, fmt.Errorf("query event summary: %w", err)
	}
	return h, nil
}

func (r *ProcedureRepository) GetTicket(ctx context.Context, id int) (domain.Ticket, error) {
	const query = `SELECT id, event_id, participant_id, status, price FROM ticket WHERE id = $1`
	var t domain.Ticket
	var status string
	err := r.gw.QueryRow(ctx, query, id).Scan(&t.ID, &t.EventID, &t.ParticipantID, &status, &t.Price)
	if err != nil {
		if isNoRows(err) {
			return domain.Ticket{}, domain.ErrTicketNotFound
		}
		return domain.Ticket{}, fmt.Errorf("get ticket: %w", err)
	}
	t.Status = domain.TicketStatus(status)
	return t, nil
}

func (r *ProcedureRepository) GetPaymentByTicket(ctx context.Context, ticketID int) (*domain.Payment, error) {
	const query = `SELECT id, ticket_id, amount, method, date FROM payment WHERE ticket_id = $1`
	var p domain.Payment
	err := r.gw.QueryRow(ctx, query, ticketID).Scan(&p.ID, &p.TicketID, &p.Amount, &p.Method, &p.Date)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by ticket: %w", err)
	}
	return &p, nil
}

func (r *ProcedureRepository) RoutineConfirmPayment(ctx context.Context, ticketID int, method string, amount float64) (string, error) {
	var message string
	err := r.gw.CallRoutine(ctx, routineConfirmPayment, []any{ticketID, method, amount}, &message)
	if err != nil {
		if isNoRows(err) {
			return fmt.Sprintf("Ticket %d confirmed and payment recorded.", ticketID), nil
		}
		return "", fmt.Errorf("routine confirm payment: %w", err)
	}
	return message, nil
}

// InsertPaymentAndConfirm is the manual equivalent of the payment routine:
// both writes commit or roll back together.
func (r *ProcedureRepository) InsertPaymentAndConfirm(ctx context.Context, p domain.Payment) error {
	return r.gw.WithTx(ctx, func(txCtx context.Context) error {
		const insert = `INSERT INTO payment (ticket_id, amount, method, date) VALUES ($1, $2, $3, $4)`
		if _, err := r.gw.Exec(txCtx, insert, p.TicketID, p.Amount, p.Method, p.Date); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		const update = `UPDATE ticket SET status = 'Confirmed' WHERE id = $1`
		tag, err := r.gw.Exec(txCtx, update, p.TicketID)
		if err != nil {
			return fmt.Errorf("confirm ticket: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTicketNotFound
		}
		return nil
	})
}

func (r *ProcedureRepository) UpdateTicketStatus(ctx context.Context, ticketID int, status domain.TicketStatus) (int64, error) {
	tag, err := r.gw.Exec(ctx, `UPDATE ticket SET status = $2 WHERE id = $1`, ticketID, string(status))
	if err != nil {
		return 0, fmt.Errorf("update ticket status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ProcedureRepository) RoutineMarkPending(ctx context.Context, ticketID int) (string, error) {
	var message string
	err := r.gw.CallRoutine(ctx, routineMarkPending, []any{ticketID}, &message)
	if err != nil {
		if isNoRows(err) {
			return fmt.Sprintf("Ticket %d status set to Pending.", ticketID), nil
		}
		return "", fmt.Errorf("routine mark pending: %w", err)
	}
	return message, nil
}
