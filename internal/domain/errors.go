package domain

import "errors"

var (
	ErrOrganizerNotFound     = errors.New("organizer not found")
	ErrVenueNotFound         = errors.New("venue not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrParticipantNotFound   = errors.New("participant not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrSponsorNotFound       = errors.New("sponsor not found")
	ErrVolunteerNotFound     = errors.New("volunteer not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrOrganizerNameRequired = errors.New("organizer name required")
	ErrVenueNameRequired     = errors.New("venue name required")
	ErrEventNameRequired     = errors.New("event name required")
	ErrUsernameRequired      = errors.New("username required")
	ErrEmailRequired         = errors.New("email required")
	ErrInvalidCapacity       = errors.New("venue capacity must be greater than zero")
	ErrInvalidPrice          = errors.New("ticket price must be greater than zero")
	ErrInvalidContribution   = errors.New("sponsor contribution must not be negative")
	ErrInvalidStatus         = errors.New("invalid ticket status")
	ErrCapacityExhausted     = errors.New("event capacity is full")
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrPaymentExists         = errors.New("payment already exists for ticket")
	ErrTicketCancelled       = errors.New("cannot process payment for cancelled ticket")
	ErrVenueInUse            = errors.New("venue is referenced by existing events")
	ErrOrganizerInUse        = errors.New("organizer is referenced by existing events")
	ErrParticipantInUse      = errors.New("participant is referenced by existing tickets")

	// ErrRoutineUnsupported marks a server-side routine that does not exist; it is
	// absorbed by the tier chain and never surfaced to callers.
	ErrRoutineUnsupported = errors.New("server-side routine unsupported")

	// ErrStorageUnavailable marks a statement that failed after the reconnect retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCascadeFailed marks a multi-step deletion that was rolled back.
	ErrCascadeFailed = errors.New("cascade delete failed")
)

// Kind classifies an error into the categories the outward boundary reports.
type Kind string

const (
	KindNone                Kind = ""
	KindNotFound            Kind = "not_found"
	KindConstraintViolation Kind = "constraint_violation"
	KindConnectionFailure   Kind = "connection_failure"
	KindCascadeFailure      Kind = "cascade_failure"
	KindUnsupported         Kind = "unsupported"
)

// KindOf maps an error to its kind. Wrapped sentinels classify the same as bare ones.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrOrganizerNotFound),
		errors.Is(err, ErrVenueNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrParticipantNotFound),
		errors.Is(err, ErrTicketNotFound),
		errors.Is(err, ErrSponsorNotFound),
		errors.Is(err, ErrVolunteerNotFound),
		errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrOrganizerNameRequired),
		errors.Is(err, ErrVenueNameRequired),
		errors.Is(err, ErrEventNameRequired),
		errors.Is(err, ErrUsernameRequired),
		errors.Is(err, ErrEmailRequired),
		errors.Is(err, ErrInvalidCapacity),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidContribution),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrCapacityExhausted),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrPaymentExists),
		errors.Is(err, ErrTicketCancelled),
		errors.Is(err, ErrVenueInUse),
		errors.Is(err, ErrOrganizerInUse),
		errors.Is(err, ErrParticipantInUse):
		return KindConstraintViolation
	case errors.Is(err, ErrCascadeFailed):
		return KindCascadeFailure
	case errors.Is(err, ErrRoutineUnsupported):
		return KindUnsupported
	case errors.Is(err, ErrStorageUnavailable):
		return KindConnectionFailure
	default:
		return KindConnectionFailure
	}
}
