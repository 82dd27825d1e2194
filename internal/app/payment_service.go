package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sathvikar01/Event-Management-System/internal/clock"
	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// PaymentRepository covers the ticket and payment reads and the two
// settlement writes the payment flow needs.
type PaymentRepository interface {
	GetTicket(ctx context.Context, id int) (domain.Ticket, error)
	GetPaymentByTicket(ctx context.Context, ticketID int) (*domain.Payment, error)
	RoutineConfirmPayment(ctx context.Context, ticketID int, method string, amount float64) (string, error)
	InsertPaymentAndConfirm(ctx context.Context, p domain.Payment) error
	RoutineMarkPending(ctx context.Context, ticketID int) (string, error)
	UpdateTicketStatus(ctx context.Context, ticketID int, status domain.TicketStatus) (int64, error)
}

// TicketReplica is the cached fallback for ticket and payment reads when
// storage cannot answer.
type TicketReplica interface {
	TicketByID(id int) (domain.Ticket, bool)
	PaymentByTicket(ticketID int) (domain.Payment, bool)
}

// Reloader refreshes the cached replica after a committed write.
type Reloader interface {
	Reload(ctx context.Context) error
}

// PaymentOutcome classifies how a confirmation request ended.
type PaymentOutcome string

const (
	PaymentCreated          PaymentOutcome = "created"
	PaymentAlreadyConfirmed PaymentOutcome = "already_confirmed"
	PaymentRejected         PaymentOutcome = "rejected"
	PaymentNotFound         PaymentOutcome = "not_found"
)

// PaymentResult reports the outcome plus a human-readable message. Business
// refusals are results, not errors.
type PaymentResult struct {
	Outcome PaymentOutcome `json:"outcome"`
	Message string         `json:"message"`
}

// PaymentService drives ticket settlement: recording payments, confirming
// tickets and reverting them to pending.
type PaymentService struct {
	repo    PaymentRepository
	replica TicketReplica
	mirror  Reloader
	clk     clock.Clock
	log     zerolog.Logger
}

func NewPaymentService(repo PaymentRepository, replica TicketReplica, mirror Reloader, clk clock.Clock, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		repo:    repo,
		replica: replica,
		mirror:  mirror,
		clk:     clk,
		log:     log.With().Str("component", "payments").Logger(),
	}
}

// ConfirmPayment settles a ticket. The decision table:
//
//	unknown ticket            -> not_found, nothing written
//	cancelled ticket          -> rejected, nothing written
//	confirmed with payment    -> already_confirmed, nothing written
//	pending with payment      -> flip status only, no duplicate payment row
//	otherwise                 -> payment insert and confirmation, one transaction
func (s *PaymentService) ConfirmPayment(ctx context.Context, ticketID int, method string, amount float64) (PaymentResult, error) {
	ticket, err := s.lookupTicket(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return PaymentResult{
				Outcome: PaymentNotFound,
				Message: fmt.Sprintf("Ticket %d not found.", ticketID),
			}, nil
		}
		return PaymentResult{}, err
	}

	if ticket.Status == domain.TicketStatusCancelled {
		return PaymentResult{
			Outcome: PaymentRejected,
			Message: fmt.Sprintf("Cannot process payment for cancelled ticket %d.", ticketID),
		}, nil
	}

	payment, err := s.lookupPayment(ctx, ticketID)
	if err != nil {
		return PaymentResult{}, err
	}

	if payment != nil {
		if ticket.Status == domain.TicketStatusConfirmed {
			return PaymentResult{
				Outcome: PaymentAlreadyConfirmed,
				Message: fmt.Sprintf("Ticket %d is already confirmed and paid.", ticketID),
			}, nil
		}
		// Payment on file but the ticket never flipped; finish the job
		// without writing a duplicate payment row.
		rows, err := s.repo.UpdateTicketStatus(ctx, ticketID, domain.TicketStatusConfirmed)
		if err != nil {
			return PaymentResult{}, err
		}
		if rows == 0 {
			return PaymentResult{
				Outcome: PaymentNotFound,
				Message: fmt.Sprintf("Ticket %d not found.", ticketID),
			}, nil
		}
		s.refresh(ctx)
		return PaymentResult{
			Outcome: PaymentCreated,
			Message: fmt.Sprintf("Payment for ticket %d already on record. Ticket confirmed.", ticketID),
		}, nil
	}

	message, err := s.repo.RoutineConfirmPayment(ctx, ticketID, method, amount)
	if tierUnavailable(err) {
		err = s.repo.InsertPaymentAndConfirm(ctx, domain.Payment{
			TicketID: ticketID,
			Amount:   amount,
			Method:   method,
			Date:     clock.Today(s.clk),
		})
		if errors.Is(err, domain.ErrTicketNotFound) {
			return PaymentResult{
				Outcome: PaymentNotFound,
				Message: fmt.Sprintf("Ticket %d not found.", ticketID),
			}, nil
		}
		message = fmt.Sprintf("Ticket %d confirmed and payment recorded.", ticketID)
	}
	if err != nil {
		return PaymentResult{}, err
	}

	s.refresh(ctx)
	return PaymentResult{Outcome: PaymentCreated, Message: message}, nil
}

// MarkTicketPending reverts a ticket to the pending state. Any prior payment
// row is left untouched. Existence is checked up front: the server-side
// routine answers a missing ticket with prose, so both tiers must agree on
// ErrTicketNotFound before the routine is consulted.
func (s *PaymentService) MarkTicketPending(ctx context.Context, ticketID int) (string, error) {
	if _, err := s.lookupTicket(ctx, ticketID); err != nil {
		return "", err
	}

	message, err := s.repo.RoutineMarkPending(ctx, ticketID)
	if tierUnavailable(err) {
		var rows int64
		rows, err = s.repo.UpdateTicketStatus(ctx, ticketID, domain.TicketStatusPending)
		if err == nil && rows == 0 {
			return "", domain.ErrTicketNotFound
		}
		message = fmt.Sprintf("Ticket %d status set to Pending.", ticketID)
	}
	if err != nil {
		return "", err
	}

	s.refresh(ctx)
	return message, nil
}

// lookupTicket reads from storage, falling back to the cached replica only
// when storage cannot answer at all.
func (s *PaymentService) lookupTicket(ctx context.Context, ticketID int) (domain.Ticket, error) {
	ticket, err := s.repo.GetTicket(ctx, ticketID)
	if tierUnavailable(err) {
		cached, ok := s.replica.TicketByID(ticketID)
		if !ok {
			return domain.Ticket{}, domain.ErrTicketNotFound
		}
		return cached, nil
	}
	return ticket, err
}

func (s *PaymentService) lookupPayment(ctx context.Context, ticketID int) (*domain.Payment, error) {
	payment, err := s.repo.GetPaymentByTicket(ctx, ticketID)
	if tierUnavailable(err) {
		cached, ok := s.replica.PaymentByTicket(ticketID)
		if !ok {
			return nil, nil
		}
		return &cached, nil
	}
	return payment, err
}

func (s *PaymentService) refresh(ctx context.Context) {
	if err := s.mirror.Reload(ctx); err != nil {
		s.log.Warn().Err(err).Msg("replica refresh after write failed")
	}
}
