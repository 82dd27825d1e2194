package http

import (
	"net/http"

	"github.com/Sathvikar01/Event-Management-System/internal/app"
	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/Sathvikar01/Event-Management-System/internal/mirror"
)

type ticketPayload struct {
	ID            int     `json:"id"`
	EventID       int     `json:"event_id"`
	ParticipantID int     `json:"participant_id"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
}

type sponsorPayload struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	EventID      int     `json:"event_id"`
	Contribution float64 `json:"contribution"`
}

type volunteerPayload struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Type    string `json:"type"`
	EventID int    `json:"event_id"`
}

type confirmPaymentRequest struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// TicketHandlers serves ticket lifecycle endpoints plus sponsor and volunteer
// CRUD.
type TicketHandlers struct {
	mutator  MutatorAPI
	payments PaymentAPI
	mirror   *mirror.Mirror
}

func NewTicketHandlers(mutator MutatorAPI, payments PaymentAPI, m *mirror.Mirror) *TicketHandlers {
	return &TicketHandlers{mutator: mutator, payments: payments, mirror: m}
}

func (h *TicketHandlers) Tickets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var p ticketPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	ticket := domain.Ticket{
		ID:            p.ID,
		EventID:       p.EventID,
		ParticipantID: p.ParticipantID,
		Status:        domain.TicketStatus(p.Status),
		Price:         p.Price,
	}
	if err := h.mutator.CreateTicket(r.Context(), ticket); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *TicketHandlers) TicketItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/tickets/")
	if !ok {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid ticket id")
		return
	}

	switch tail {
	case "":
		h.ticket(w, r, id)
	case "/confirm":
		h.confirm(w, r, id)
	case "/pending":
		h.pending(w, r, id)
	default:
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	}
}

func (h *TicketHandlers) ticket(w http.ResponseWriter, r *http.Request, id int) {
	switch r.Method {
	case http.MethodGet:
		t, ok := h.mirror.TicketByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, domain.ErrTicketNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, ticketPayload{
			ID:            t.ID,
			EventID:       t.EventID,
			ParticipantID: t.ParticipantID,
			Status:        string(t.Status),
			Price:         t.Price,
		})
	case http.MethodPut:
		var p ticketPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		ticket := domain.Ticket{
			ID:            id,
			EventID:       p.EventID,
			ParticipantID: p.ParticipantID,
			Status:        domain.TicketStatus(p.Status),
			Price:         p.Price,
		}
		if err := h.mutator.UpdateTicket(r.Context(), ticket); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := h.mutator.DeleteTicket(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *TicketHandlers) confirm(w http.ResponseWriter, r *http.Request, id int) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var req confirmPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.payments.ConfirmPayment(r.Context(), id, req.Method, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	status := http.StatusOK
	switch result.Outcome {
	case app.PaymentCreated:
		status = http.StatusCreated
	case app.PaymentNotFound:
		status = http.StatusNotFound
	case app.PaymentRejected:
		status = http.StatusConflict
	}
	writeJSON(w, status, result)
}

func (h *TicketHandlers) pending(w http.ResponseWriter, r *http.Request, id int) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	message, err := h.payments.MarkTicketPending(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *TicketHandlers) Sponsors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var p sponsorPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	s := domain.Sponsor{ID: p.ID, Name: p.Name, EventID: p.EventID, Contribution: p.Contribution}
	if err := h.mutator.CreateSponsor(r.Context(), s); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *TicketHandlers) SponsorItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/sponsors/")
	if !ok || tail != "" {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid sponsor id")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var p sponsorPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		s := domain.Sponsor{ID: id, Name: p.Name, EventID: p.EventID, Contribution: p.Contribution}
		if err := h.mutator.UpdateSponsor(r.Context(), s); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := h.mutator.DeleteSponsor(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func (h *TicketHandlers) Volunteers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var p volunteerPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	v := domain.Volunteer{ID: p.ID, Name: p.Name, Email: p.Email, Contact: p.Contact, Type: p.Type, EventID: p.EventID}
	if err := h.mutator.CreateVolunteer(r.Context(), v); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *TicketHandlers) VolunteerItem(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := splitID(r.URL.Path, "/volunteers/")
	if !ok || tail != "" {
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid volunteer id")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var p volunteerPayload
		if !decodeJSON(w, r, &p) {
			return
		}
		v := domain.Volunteer{ID: id, Name: p.Name, Email: p.Email, Contact: p.Contact, Type: p.Type, EventID: p.EventID}
		if err := h.mutator.UpdateVolunteer(r.Context(), v); err != nil {
			writeDomainError(w, err)
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := h.mutator.DeleteVolunteer(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}
