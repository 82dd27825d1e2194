package http

import (
	"net/http"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

type userPayload struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerParticipantRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	EventID int    `json:"event_id"`
}

type registerParticipantResponse struct {
	ParticipantID int    `json:"participant_id"`
	TicketID      int    `json:"ticket_id"`
	Status        string `json:"status"`
}

type registerVolunteerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Type    string `json:"type"`
	EventID int    `json:"event_id"`
}

// PortalHandlers serves account signup, login and self-registration.
type PortalHandlers struct {
	portal PortalAPI
}

func NewPortalHandlers(portal PortalAPI) *PortalHandlers {
	return &PortalHandlers{portal: portal}
}

func (h *PortalHandlers) Users(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var p userPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	user, err := h.portal.CreateUser(r.Context(), domain.User{
		Username: p.Username,
		Password: p.Password,
		Fullname: p.Fullname,
		Email:    p.Email,
		Role:     p.Role,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userPayload{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
		Email:    user.Email,
		Role:     user.Role,
	})
}

func (h *PortalHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.portal.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userPayload{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
		Email:    user.Email,
		Role:     user.Role,
	})
}

func (h *PortalHandlers) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var req registerParticipantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	participant, ticket, err := h.portal.RegisterParticipant(r.Context(), domain.Participant{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	}, req.EventID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registerParticipantResponse{
		ParticipantID: participant.ID,
		TicketID:      ticket.ID,
		Status:        string(ticket.Status),
	})
}

func (h *PortalHandlers) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	var req registerVolunteerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	volunteer, err := h.portal.RegisterVolunteer(r.Context(), domain.Volunteer{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
		Type:    req.Type,
		EventID: req.EventID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, volunteerPayload{
		ID:      volunteer.ID,
		Name:    volunteer.Name,
		Email:   volunteer.Email,
		Contact: volunteer.Contact,
		Type:    volunteer.Type,
		EventID: volunteer.EventID,
	})
}
