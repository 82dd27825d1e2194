package postgres

import (
	"context"
	"fmt"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

// SnapshotRepository serves the cache mirror with wholesale table reads and the
// audit log with its persistence. It never writes entity rows.
type SnapshotRepository struct {
	gw *Gateway
}

func NewSnapshotRepository(gw *Gateway) *SnapshotRepository {
	return &SnapshotRepository{gw: gw}
}

func (r *SnapshotRepository) LoadOrganizers(ctx context.Context) ([]domain.Organizer, error) {
	const query = `SELECT id, name, contact, email FROM organizer ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load organizers: %w", err)
	}
	defer rows.Close()

	var out []domain.Organizer
	for rows.Next() {
		var o domain.Organizer
		if err := rows.Scan(&o.ID, &o.Name, &o.Contact, &o.Email); err != nil {
			return nil, fmt.Errorf("scan organizer: %w", err)
		}
		out = append(out, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate organizers: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadVenues(ctx context.Context) ([]domain.Venue, error) {
	const query = `SELECT id, name, location, capacity FROM venue ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		out = append(out, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate venues: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `SELECT id, name, type, date, time, venue_id, organizer_id FROM event ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Date, &e.Time, &e.VenueID, &e.OrganizerID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadParticipants(ctx context.Context) ([]domain.Participant, error) {
	const query = `SELECT id, name, email, contact FROM participants ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Contact); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate participants: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadTickets(ctx context.Context) ([]domain.Ticket, error) {
	const query = `SELECT id, event_id, participant_id, status, price FROM ticket ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	defer rows.Close()

	var out []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		var status string
		if err := rows.Scan(&t.ID, &t.EventID, &t.ParticipantID, &status, &t.Price); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.Status = domain.TicketStatus(status)
		out = append(out, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate tickets: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadPayments(ctx context.Context) ([]domain.Payment, error) {
	const query = `SELECT id, ticket_id, amount, method, date FROM payment ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TicketID, &p.Amount, &p.Method, &p.Date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate payments: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	const query = `SELECT id, name, event_id, contribution FROM sponsor ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load sponsors: %w", err)
	}
	defer rows.Close()

	var out []domain.Sponsor
	for rows.Next() {
		var s domain.Sponsor
		if err := rows.Scan(&s.ID, &s.Name, &s.EventID, &s.Contribution); err != nil {
			return nil, fmt.Errorf("scan sponsor: %w", err)
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate sponsors: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	const query = `SELECT id, name, email, contact, type, event_id FROM volunteers ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load volunteers: %w", err)
	}
	defer rows.Close()

	var out []domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Contact, &v.Type, &v.EventID); err != nil {
			return nil, fmt.Errorf("scan volunteer: %w", err)
		}
		out = append(out, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate volunteers: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadUsers(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT id, username, password, fullname, email, role FROM users ORDER BY id`
	rows, err := r.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Fullname, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate users: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) LoadRecentLogs(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	const query = `SELECT timestamp, message FROM log ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.gw.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("load logs: %w", err)
	}
	defer rows.Close()

	var out []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		if err := rows.Scan(&e.Timestamp, &e.Message); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate logs: %w", rows.Err())
	}
	return out, nil
}

func (r *SnapshotRepository) InsertLog(ctx context.Context, message string) error {
	const stmt = `INSERT INTO log (message) VALUES ($1)`
	if _, err := r.gw.Exec(ctx, stmt, message); err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}
