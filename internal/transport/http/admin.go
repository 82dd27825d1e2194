package http

import (
	"net/http"
	"time"

	"github.com/Sathvikar01/Event-Management-System/internal/audit"
	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/Sathvikar01/Event-Management-System/internal/mirror"
)

type organizerPayload struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type venuePayload struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type participantPayload struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type logEntryPayload struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// AdminHandlers serves the back-office CRUD for organizers, venues and
// participants, plus the audit trail.
type AdminHandlers struct {
	mutator MutatorAPI
	mirror  *mirror.Mirror
	audit   *audit.Log
}

func NewAdminHandlers(mutator MutatorAPI, m *mirror.Mirror, a *audit.Log) *AdminHandlers {
	return &AdminHandlers{mutator: mutator, mirror: m, audit: a}
}

func (h *AdminHandlers) Organizers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		organizers := h.mirror.Organizers()
		out := make([]organizerPayload, 0, len(organizers))
		for _, o := range organizers {
			out = append(out, organizerPayload{ID: o.ID, Name: o.Name, Contact: o.Contact, Email: o.Email})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var p organizerPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		o := domain.Organizer{ID: p.ID, Name: p.Name, Contact: p.Contact, Email: p.Email}
		if err := h.mutator.CreateOrganizer(r.Context(), o); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *AdminHandlers) OrganizerItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/admin/organizers/")
	if !ok || tail != "" {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid organizer id")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var p organizerPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		o := domain.Organizer{ID: id, Name: p.Name, Contact: p.Contact, Email: p.Email}
		if err := h.mutator.UpdateOrganizer(r.Context(), o); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := h.mutator.DeleteOrganizer(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *AdminHandlers) Venues(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		venues := h.mirror.Venues()
		out := make([]venuePayload, 0, len(venues))
		for _, v := range venues {
			out = append(out, venuePayload{ID: v.ID, Name: v.Name, Location: v.Location, Capacity: v.Capacity})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var p venuePayload
		if !decodeJSON(w, r, &p) {
			return
		}
		v := domain.Venue{ID: p.ID, Name: p.Name, Location: p.Location, Capacity: p.Capacity}
		if err := h.mutator.CreateVenue(r.Context(), v); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *AdminHandlers) VenueItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/admin/venues/")
	if !ok || tail != "" {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid venue id")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var p venuePayload
		if !decodeJSON(w, r, &p) {
			return
		}
		v := domain.Venue{ID: id, Name: p.Name, Location: p.Location, Capacity: p.Capacity}
		if err := h.mutator.UpdateVenue(r.Context(), v); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := h.mutator.DeleteVenue(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *AdminHandlers) Participants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		participants := h.mirror.Participants()
		out := make([]participantPayload, 0, len(participants))
		for _, p := range participants {
			out = append(out, participantPayload{ID: p.ID, Name: p.Name, Email: p.Email, Contact: p.Contact})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var p participantPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		participant := domain.Participant{ID: p.ID, Name: p.Name, Email: p.Email, Contact: p.Contact}
		if err := h.mutator.CreateParticipant(r.Context(), participant); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *AdminHandlers) ParticipantItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/admin/participants/")
	if !ok || tail != "" {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid participant id")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var p participantPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		participant := domain.Participant{ID: id, Name: p.Name, Email: p.Email, Contact: p.Contact}
		if err := h.mutator.UpdateParticipant(r.Context(), participant); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := h.mutator.DeleteParticipant(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *AdminHandlers) Logs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	entries := h.audit.Recent()
	out := make([]logEntryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, logEntryPayload{Timestamp: e.Timestamp, Message: e.Message})
	}
	writeJSON(w, http.StatusOK, out)
}
