package http

import (
	"net/http"

	"github.com/Sathvikar01/Event-Management-System/internal/audit"
	"github.com/Sathvikar01/Event-Management-System/internal/mirror"
	"github.com/rs/zerolog"
)

// Services bundles everything the router exposes.
type Services struct {
	Mutator  MutatorAPI
	Lookups  LookupAPI
	Payments PaymentAPI
	Portal   PortalAPI
	Mirror   *mirror.Mirror
	Audit    *audit.Log
}

// NewRouter wires every endpoint behind request logging and CORS.
func NewRouter(s Services, log zerolog.Logger, allowedOrigins []string) http.Handler {
	admin := NewAdminHandlers(s.Mutator, s.Mirror, s.Audit)
	events := NewEventHandlers(s.Mutator, s.Lookups, s.Mirror)
	tickets := NewTicketHandlers(s.Mutator, s.Payments, s.Mirror)
	portal := NewPortalHandlers(s.Portal)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", HealthHandler)

	mux.HandleFunc("/admin/organizers", admin.Organizers)
	mux.HandleFunc("/admin/organizers/", admin.OrganizerItem)
	mux.HandleFunc("/admin/venues", admin.Venues)
	mux.HandleFunc("/admin/venues/", admin.VenueItem)
	mux.HandleFunc("/admin/participants", admin.Participants)
	mux.HandleFunc("/admin/participants/", admin.ParticipantItem)
	mux.HandleFunc("/admin/logs", admin.Logs)

	mux.HandleFunc("/events", events.Events)
	mux.HandleFunc("/events/", events.EventItem)
	mux.HandleFunc("/organizers/", events.OrganizerName)

	mux.HandleFunc("/tickets", tickets.Tickets)
	mux.HandleFunc("/tickets/", tickets.TicketItem)
	mux.HandleFunc("/sponsors", tickets.Sponsors)
	mux.HandleFunc("/sponsors/", tickets.SponsorItem)
	mux.HandleFunc("/volunteers", tickets.Volunteers)
	mux.HandleFunc("/volunteers/", tickets.VolunteerItem)

	mux.HandleFunc("/portal/users", portal.Users)
	mux.HandleFunc("/portal/login", portal.Login)
	mux.HandleFunc("/portal/register/participant", portal.RegisterParticipant)
	mux.HandleFunc("/portal/register/volunteer", portal.RegisterVolunteer)

	mux.Handle("/", NotFoundHandler())

	return RequestLogger(log, CORS(allowedOrigins, mux))
}
