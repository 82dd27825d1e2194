package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

// MutationRepository issues all entity writes. Referential and business checks
// live in the application layer; this repository only translates storage-level
// failures (foreign keys, guard triggers, unique indexes) into domain errors.
type MutationRepository struct {
	gw *Gateway
}

func NewMutationRepository(gw *Gateway) *MutationRepository {
	return &MutationRepository{gw: gw}
}

func (r *MutationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.gw.WithTx(ctx, fn)
}

func (r *MutationRepository) InsertOrganizer(ctx context.Context, o domain.Organizer) error {
	const stmt = `INSERT INTO organizer (id, name, contact, email) VALUES ($1, $2, $3, $4)`
	if _, err := r.gw.Exec(ctx, stmt, o.ID, o.Name, o.Contact, o.Email); err != nil {
		return fmt.Errorf("insert organizer: %w", mapWriteError(err))
	}
	return nil
}

func (r *MutationRepository) UpdateOrganizer(ctx context.Context, o domain.Organizer) error {
	const stmt = `UPDATE organizer SET name = $2, contact = $3, email = $4 WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, o.ID, o.Name, o.Contact, o.Email)
	if err != nil {
		return fmt.Errorf("update organizer: %w", mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrganizerNotFound
	}
	return nil
}

func (r *MutationRepository) DeleteOrganizer(ctx context.Context, id int) error {
	tag, err := r.gw.Exec(ctx, `DELETE FROM organizer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organizer: %w", fkToInUse(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrganizerNotFound
	}
	return nil
}

func (r *MutationRepository) InsertVenue(ctx context.Context, v domain.Venue) error {
	const stmt = `INSERT INTO venue (id, name, location, capacity) VALUES ($1, $2, $3, $4)`
	if _, err := r.gw.Exec(ctx, stmt, v.ID, v.Name, v.Location, v.Capacity); err != nil {
		return fmt.Errorf("insert venue: %w", mapWriteError(err))
	}
	return nil
}

func (r *MutationRepository) UpdateVenue(ctx context.Context, v domain.Venue) error {
	const stmt = `UPDATE venue SET name = $2, location = $3, capacity = $4 WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, v.ID, v.Name, v.Location, v.Capacity)
	if err != nil {
		return fmt.Errorf("update venue: %w", mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

func (r *MutationRepository) DeleteVenue(ctx context.Context, id int) error {
	tag, err := r.gw.Exec(ctx, `DELETE FROM venue WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", fkToInUse(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

func (r *MutationRepository) InsertEvent(ctx context.Context, e domain.Event) error {
	const stmt = `
INSERT INTO event (id, name, type, date, time, venue_id, organizer_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.gw.Exec(ctx, stmt, e.ID, e.Name, e.Type, e.Date, e.Time, e.VenueID, e.OrganizerID); err != nil {
		return fmt.Errorf("insert event: %w", fkToNotFound(mapWriteError(err)))
	}
	return nil
}

func (r *MutationRepository) UpdateEvent(ctx context.Context, e domain.Event) error {
	const stmt = `
UPDATE event SET name = $2, type = $3, date = $4, time = $5, venue_id = $6, organizer_id = $7
WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, e.ID, e.Name, e.Type, e.Date, e.Time, e.VenueID, e.OrganizerID)
	if err != nil {
		return fmt.Errorf("update event: %w", fkToNotFound(mapWriteError(err)))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *MutationRepository) InsertParticipant(ctx context.Context, p domain.Participant) error {
	const stmt = `INSERT INTO participants (id, name, email, contact) VALUES ($1, $2, $3, $4)`
	if _, err := r.gw.Exec(ctx, stmt, p.ID, p.Name, p.Email, p.Contact); err != nil {
		return fmt.Errorf("insert participant: %w", mapWriteError(err))
	}
	return nil
}

func (r *MutationRepository) UpdateParticipant(ctx context.Context, p domain.Participant) error {
	const stmt = `UPDATE participants SET name = $2, email = $3, contact = $4 WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, p.ID, p.Name, p.Email, p.Contact)
	if err != nil {
		return fmt.Errorf("update participant: %w", mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *MutationRepository) DeleteParticipant(ctx context.Context, id int) error {
	tag, err := r.gw.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete participant: %w", fkToInUse(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *MutationRepository) InsertTicket(ctx context.Context, t domain.Ticket) error {
	const stmt = `
INSERT INTO ticket (id, event_id, participant_id, status, price)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.gw.Exec(ctx, stmt, t.ID, t.EventID, t.ParticipantID, string(t.Status), t.Price); err != nil {
		return fmt.Errorf("insert ticket: %w", fkToNotFound(mapWriteError(err)))
	}
	return nil
}

func (r *MutationRepository) UpdateTicket(ctx context.Context, t domain.Ticket) error {
	const stmt = `
UPDATE ticket SET event_id = $2, participant_id = $3, status = $4, price = $5
WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, t.ID, t.EventID, t.ParticipantID, string(t.Status), t.Price)
	if err != nil {
		return fmt.Errorf("update ticket: %w", fkToNotFound(mapWriteError(err)))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

// DeleteTicketWithPayment removes a ticket and its payment (1:1 cleanup) as one
// unit; the payment row must go first.
func (r *MutationRepository) DeleteTicketWithPayment(ctx context.Context, id int) error {
	return r.gw.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := r.gw.Exec(txCtx, `DELETE FROM payment WHERE ticket_id = $1`, id); err != nil {
			return fmt.Errorf("delete payment for ticket: %w", err)
		}
		tag, err := r.gw.Exec(txCtx, `DELETE FROM ticket WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete ticket: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTicketNotFound
		}
		return nil
	})
}

func (r *MutationRepository) InsertSponsor(ctx context.Context, s domain.Sponsor) error {
	const stmt = `INSERT INTO sponsor (id, name, event_id, contribution) VALUES ($1, $2, $3, $4)`
	if _, err := r.gw.Exec(ctx, stmt, s.ID, s.Name, s.EventID, s.Contribution); err != nil {
		return fmt.Errorf("insert sponsor: %w", fkToNotFound(mapWriteError(err)))
	}
	return nil
}

func (r *MutationRepository) UpdateSponsor(ctx context.Context, s domain.Sponsor) error {
	const stmt = `UPDATE sponsor SET name = $2, event_id = $3, contribution = $4 WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, s.ID, s.Name, s.EventID, s.Contribution)
	if err != nil {
		return fmt.Errorf("update sponsor: %w", fkToNotFound(mapWriteError(err)))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSponsorNotFound
	}
	return nil
}

func (r *MutationRepository) DeleteSponsor(ctx context.Context, id int) error {
	tag, err := r.gw.Exec(ctx, `DELETE FROM sponsor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sponsor: %w", mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSponsorNotFound
	}
	return nil
}

func (r *MutationRepository) InsertVolunteer(ctx context.Context, v domain.Volunteer) error {
	const stmt = `
INSERT INTO volunteers (id, name, email, contact, type, event_id)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.gw.Exec(ctx, stmt, v.ID, v.Name, v.Email, v.Contact, v.Type, v.EventID); err != nil {
		return fmt.Errorf("insert volunteer: %w", fkToNotFound(mapWriteError(err)))
	}
	return nil
}

func (r *MutationRepository) UpdateVolunteer(ctx context.Context, v domain.Volunteer) error {
	const stmt = `
UPDATE volunteers SET name = $2, email = $3, contact = $4, type = $5, event_id = $6
WHERE id = $1`
	tag, err := r.gw.Exec(ctx, stmt, v.ID, v.Name, v.Email, v.Contact, v.Type, v.EventID)
	if err != nil {
		return fmt.Errorf("update volunteer: %w", fkToNotFound(mapWriteError(err)))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVolunteerNotFound
	}
	return nil
}

func (r *MutationRepository) DeleteVolunteer(ctx context.Context, id int) error {
	tag, err := r.gw.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete volunteer: %w", mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVolunteerNotFound
	}
	return nil
}

func (r *MutationRepository) InsertUser(ctx context.Context, u domain.User) error {
	const stmt = `
INSERT INTO users (id, username, password, fullname, email, role)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.gw.Exec(ctx, stmt, u.ID, u.Username, u.Password, u.Fullname, u.Email, u.Role); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", mapWriteError(err))
	}
	return nil
}

func (r *MutationRepository) GetUserByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	const query = `
SELECT id, username, password, fullname, email, role
FROM users
WHERE username = $1 AND password = $2`
	var u domain.User
	err := r.gw.QueryRow(ctx, query, username, password).
		Scan(&u.ID, &u.Username, &u.Password, &u.Fullname, &u.Email, &u.Role)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by credentials: %w", err)
	}
	return &u, nil
}

// DeleteEventCascade removes an event and everything it owns inside a single
// transaction. The statement order is fixed: payment references ticket and
// ticket/volunteers/sponsor reference event, so dependents go first.
func (r *MutationRepository) DeleteEventCascade(ctx context.Context, eventID int) error {
	return r.gw.WithTx(ctx, func(txCtx context.Context) error {
		const deletePayments = `
DELETE FROM payment
WHERE ticket_id IN (SELECT id FROM ticket WHERE event_id = $1)`
		if _, err := r.gw.Exec(txCtx, deletePayments, eventID); err != nil {
			return fmt.Errorf("cascade delete payments: %w", err)
		}
		if _, err := r.gw.Exec(txCtx, `DELETE FROM ticket WHERE event_id = $1`, eventID); err != nil {
			return fmt.Errorf("cascade delete tickets: %w", err)
		}
		if _, err := r.gw.Exec(txCtx, `DELETE FROM volunteers WHERE event_id = $1`, eventID); err != nil {
			return fmt.Errorf("cascade delete volunteers: %w", err)
		}
		if _, err := r.gw.Exec(txCtx, `DELETE FROM sponsor WHERE event_id = $1`, eventID); err != nil {
			return fmt.Errorf("cascade delete sponsors: %w", err)
		}
		tag, err := r.gw.Exec(txCtx, `DELETE FROM event WHERE id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("cascade delete event: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEventNotFound
		}
		return nil
	})
}

// mapWriteError translates storage-level rejections (guard triggers, CHECK
// constraints) into domain errors so the boundary reports the same violation
// whether the application or the database caught it first.
func mapWriteError(err error) error {
	if msg, ok := raisedMessage(err); ok {
		switch {
		case strings.Contains(msg, "capacity"):
			return domain.ErrCapacityExhausted
		case strings.Contains(msg, "price"):
			return domain.ErrInvalidPrice
		}
		return err
	}
	switch {
	case isCheckViolation(err, "capacity"):
		return domain.ErrInvalidCapacity
	case isCheckViolation(err, "price"):
		return domain.ErrInvalidPrice
	case isCheckViolation(err, "contribution"):
		return domain.ErrInvalidContribution
	}
	return err
}

// fkToNotFound maps a foreign-key violation on an insert/update to the missing
// referenced entity. Constraint names follow <table>_<column>_fkey, so the
// column prefix identifies the referenced side.
func fkToNotFound(err error) error {
	constraint, ok := foreignKeyConstraint(err)
	if !ok {
		return err
	}
	switch {
	case strings.Contains(constraint, "venue_id"):
		return domain.ErrVenueNotFound
	case strings.Contains(constraint, "organizer_id"):
		return domain.ErrOrganizerNotFound
	case strings.Contains(constraint, "participant_id"):
		return domain.ErrParticipantNotFound
	case strings.Contains(constraint, "event_id"):
		return domain.ErrEventNotFound
	case strings.Contains(constraint, "ticket_id"):
		return domain.ErrTicketNotFound
	}
	return err
}

// fkToInUse maps a foreign-key violation on a parent delete to the dependents
// still referencing it.
func fkToInUse(err error) error {
	constraint, ok := foreignKeyConstraint(err)
	if !ok {
		return err
	}
	switch {
	case strings.Contains(constraint, "venue_id"):
		return domain.ErrVenueInUse
	case strings.Contains(constraint, "organizer_id"):
		return domain.ErrOrganizerInUse
	case strings.Contains(constraint, "participant_id"):
		return domain.ErrParticipantInUse
	}
	return err
}
