package app

import (
	"context"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// registrationTicketPrice is the placeholder price for the pending ticket a
// self-registration creates; the real price is settled at payment time.
const registrationTicketPrice = 0.01

// PortalRepository covers the writes the self-service portal performs.
type PortalRepository interface {
	InsertUser(ctx context.Context, u domain.User) error
	GetUserByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	InsertParticipant(ctx context.Context, p domain.Participant) error
	InsertTicket(ctx context.Context, t domain.Ticket) error
	InsertVolunteer(ctx context.Context, v domain.Volunteer) error
}

// PortalReplica is the cached view used for uniqueness checks and identifier
// assignment during registration.
type PortalReplica interface {
	UserByUsername(username string) (domain.User, bool)
	EventByID(id int) (domain.Event, bool)
	ParticipantEmailExists(email string, excludeID int) bool
	VolunteerEmailExists(email string, excludeID int) bool
	NextUserID() int
	NextParticipantID() int
	NextVolunteerID() int
	NextTicketID() int
}

// PortalService handles account creation, login and self-service event
// registration for participants and volunteers.
type PortalService struct {
	repo    PortalRepository
	replica PortalReplica
	mirror  Reloader
	log     zerolog.Logger
}

func NewPortalService(repo PortalRepository, replica PortalReplica, mirror Reloader, log zerolog.Logger) *PortalService {
	return &PortalService{
		repo:    repo,
		replica: replica,
		mirror:  mirror,
		log:     log.With().Str("component", "portal").Logger(),
	}
}

func (s *PortalService) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	if err := u.Validate(); err != nil {
		return domain.User{}, err
	}
	if _, exists := s.replica.UserByUsername(u.Username); exists {
		return domain.User{}, domain.ErrDuplicateUsername
	}
	u.ID = s.replica.NextUserID()
	if err := s.repo.InsertUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	s.refresh(ctx)
	return u, nil
}

// Authenticate checks credentials against the cached replica first; storage
// is consulted only when the replica has no matching account, so a fresh
// registration on another node can still log in.
func (s *PortalService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	if cached, ok := s.replica.UserByUsername(username); ok {
		if cached.Password != password {
			return domain.User{}, domain.ErrUserNotFound
		}
		return cached, nil
	}

	user, err := s.repo.GetUserByCredentials(ctx, username, password)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

// RegisterParticipant creates the attendee record plus a pending ticket for
// the chosen event. The ticket carries a placeholder price until payment.
func (s *PortalService) RegisterParticipant(ctx context.Context, p domain.Participant, eventID int) (domain.Participant, domain.Ticket, error) {
	if err := p.Validate(); err != nil {
		return domain.Participant{}, domain.Ticket{}, err
	}
	if _, ok := s.replica.EventByID(eventID); !ok {
		return domain.Participant{}, domain.Ticket{}, domain.ErrEventNotFound
	}
	if s.replica.ParticipantEmailExists(p.Email, 0) {
		return domain.Participant{}, domain.Ticket{}, domain.ErrDuplicateEmail
	}

	p.ID = s.replica.NextParticipantID()
	if err := s.repo.InsertParticipant(ctx, p); err != nil {
		return domain.Participant{}, domain.Ticket{}, err
	}

	ticket := domain.Ticket{
		ID:            s.replica.NextTicketID(),
		EventID:       eventID,
		ParticipantID: p.ID,
		Status:        domain.TicketStatusPending,
		Price:         registrationTicketPrice,
	}
	if err := s.repo.InsertTicket(ctx, ticket); err != nil {
		return domain.Participant{}, domain.Ticket{}, err
	}

	s.refresh(ctx)
	return p, ticket, nil
}

// RegisterVolunteer signs a volunteer up for an event. An empty type defaults
// to General.
func (s *PortalService) RegisterVolunteer(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error) {
	if v.Type == "" {
		v.Type = "General"
	}
	if err := v.Validate(); err != nil {
		return domain.Volunteer{}, err
	}
	if _, ok := s.replica.EventByID(v.EventID); !ok {
		return domain.Volunteer{}, domain.ErrEventNotFound
	}
	if s.replica.VolunteerEmailExists(v.Email, 0) {
		return domain.Volunteer{}, domain.ErrDuplicateEmail
	}

	v.ID = s.replica.NextVolunteerID()
	if err := s.repo.InsertVolunteer(ctx, v); err != nil {
		return domain.Volunteer{}, err
	}

	s.refresh(ctx)
	return v, nil
}

func (s *PortalService) refresh(ctx context.Context) {
	if err := s.mirror.Reload(ctx); err != nil {
		s.log.Warn().Err(err).Msg("replica refresh after write failed")
	}
}
