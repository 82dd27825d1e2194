package http

import (
	"net/http"
	"time"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/Sathvikar01/Event-Management-System/internal/mirror"
)

const dateLayout = "2006-01-02"

type eventPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	VenueID     int    `json:"venue_id"`
	OrganizerID int    `json:"organizer_id"`
}

func toEventPayload(e domain.Event) eventPayload {
	return eventPayload{
		ID:          e.ID,
		Name:        e.Name,
		Type:        e.Type,
		Date:        e.Date.Format(dateLayout),
		Time:        e.Time,
		VenueID:     e.VenueID,
		OrganizerID: e.OrganizerID,
	}
}

func (p eventPayload) toDomain(w http.ResponseWriter) (domain.Event, bool) {
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "date must be YYYY-MM-DD")
		return domain.Event{}, false
	}
	return domain.Event{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Date:        date,
		Time:        p.Time,
		VenueID:     p.VenueID,
		OrganizerID: p.OrganizerID,
	}, true
}

type deleteEventResponse struct {
	Message    string `json:"message"`
	Tickets    int    `json:"tickets"`
	Payments   int    `json:"payments"`
	Volunteers int    `json:"volunteers"`
	Sponsors   int    `json:"sponsors"`
}

// EventHandlers serves event CRUD plus the derived lookups.
type EventHandlers struct {
	mutator MutatorAPI
	lookups LookupAPI
	mirror  *mirror.Mirror
}

func NewEventHandlers(mutator MutatorAPI, lookups LookupAPI, m *mirror.Mirror) *EventHandlers {
	return &EventHandlers{mutator: mutator, lookups: lookups, mirror: m}
}

func (h *EventHandlers) Events(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		events := h.mirror.Events()
		out := make([]eventPayload, 0, len(events))
		for _, e := range events {
			out = append(out, toEventPayload(e))
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var p eventPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		event, ok := p.toDomain(w)
		if !ok {
			return
		}
		if err := h.mutator.CreateEvent(r.Context(), event); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *EventHandlers) EventItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/events/")
	if !ok {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid event id")
		return
	}

	switch tail {
	case "":
		h.event(w, r, id)
	case "/summary":
		h.summary(w, r, id)
	case "/capacity":
		h.capacity(w, r, id)
	case "/confirmed":
		h.confirmed(w, r, id)
	default:
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	}
}

func (h *EventHandlers) event(w http.ResponseWriter, r *http.Request, id int) {
	switch r.Method {
	case http.MethodGet:
		e, ok := h.mirror.EventByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, domain.ErrEventNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, toEventPayload(e))
	case http.MethodPut:
		var p eventPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		event, ok := p.toDomain(w)
		if !ok {
			return
		}
		event.ID = id
		if err := h.mutator.UpdateEvent(r.Context(), event); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		event, _ := h.mirror.EventByID(id)
		result, err := h.mutator.DeleteEvent(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deleteEventResponse{
			Message:    "Event " + event.Name + " deleted.",
			Tickets:    result.Tickets,
			Payments:   result.Payments,
			Volunteers: result.Volunteers,
			Sponsors:   result.Sponsors,
		})
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *EventHandlers) summary(w http.ResponseWriter, r *http.Request, id int) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	summary, err := h.lookups.EventSummary(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *EventHandlers) capacity(w http.ResponseWriter, r *http.Request, id int) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	available, err := h.lookups.AvailableCapacity(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"available": available})
}

func (h *EventHandlers) confirmed(w http.ResponseWriter, r *http.Request, id int) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	count, err := h.lookups.ConfirmedTicketCount(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"confirmed": count})
}

// OrganizerName resolves /organizers/{id}/name through the lookup chain.
func (h *EventHandlers) OrganizerName(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/organizers/")
	if !ok || tail != "/name" {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid organizer id")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	name, err := h.lookups.OrganizerName(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}
