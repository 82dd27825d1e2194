package http

import (
	"context"

	"github.com/Sathvikar01/Event-Management-System/internal/app"
	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

// MutatorAPI is the entity write surface the handlers call.
type MutatorAPI interface {
	CreateOrganizer(ctx context.Context, o domain.Organizer) error
	UpdateOrganizer(ctx context.Context, o domain.Organizer) error
	DeleteOrganizer(ctx context.Context, id int) error
	CreateVenue(ctx context.Context, v domain.Venue) error
	UpdateVenue(ctx context.Context, v domain.Venue) error
	DeleteVenue(ctx context.Context, id int) error
	CreateParticipant(ctx context.Context, p domain.Participant) error
	UpdateParticipant(ctx context.Context, p domain.Participant) error
	DeleteParticipant(ctx context.Context, id int) error
	CreateEvent(ctx context.Context, e domain.Event) error
	UpdateEvent(ctx context.Context, e domain.Event) error
	DeleteEvent(ctx context.Context, id int) (app.DeleteEventResult, error)
	CreateTicket(ctx context.Context, t domain.Ticket) error
	UpdateTicket(ctx context.Context, t domain.Ticket) error
	DeleteTicket(ctx context.Context, id int) error
	CreateSponsor(ctx context.Context, s domain.Sponsor) error
	UpdateSponsor(ctx context.Context, s domain.Sponsor) error
	DeleteSponsor(ctx context.Context, id int) error
	CreateVolunteer(ctx context.Context, v domain.Volunteer) error
	UpdateVolunteer(ctx context.Context, v domain.Volunteer) error
	DeleteVolunteer(ctx context.Context, id int) error
}

// LookupAPI answers the derived read endpoints.
type LookupAPI interface {
	AvailableCapacity(ctx context.Context, eventID int) (int, error)
	ConfirmedTicketCount(ctx context.Context, eventID int) (int, error)
	OrganizerName(ctx context.Context, organizerID int) (string, error)
	EventSummary(ctx context.Context, eventID int) (app.EventSummary, error)
}

// PaymentAPI drives ticket settlement endpoints.
type PaymentAPI interface {
	ConfirmPayment(ctx context.Context, ticketID int, method string, amount float64) (app.PaymentResult, error)
	MarkTicketPending(ctx context.Context, ticketID int) (string, error)
}

// PortalAPI serves the self-service endpoints.
type PortalAPI interface {
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	RegisterParticipant(ctx context.Context, p domain.Participant, eventID int) (domain.Participant, domain.Ticket, error)
	RegisterVolunteer(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error)
}
