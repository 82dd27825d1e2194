package domain

import (
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{ErrEventNotFound, KindNotFound},
		{ErrTicketNotFound, KindNotFound},
		{ErrCapacityExhausted, KindConstraintViolation},
		{ErrDuplicateEmail, KindConstraintViolation},
		{ErrVenueInUse, KindConstraintViolation},
		{ErrCascadeFailed, KindCascadeFailure},
		{ErrRoutineUnsupported, KindUnsupported},
		{ErrStorageUnavailable, KindConnectionFailure},
		{fmt.Errorf("context: %w", ErrEventNotFound), KindNotFound},
		{fmt.Errorf("%w: deadlock", ErrCascadeFailed), KindCascadeFailure},
		{fmt.Errorf("unclassified failure"), KindConnectionFailure},
	}

	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestTicketValidate(t *testing.T) {
	valid := Ticket{ID: 1, EventID: 100, ParticipantID: 1001, Status: TicketStatusPending, Price: 25}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid ticket rejected: %v", err)
	}

	bad := valid
	bad.Price = 0
	if err := bad.Validate(); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	bad = valid
	bad.Status = "Unknown"
	if err := bad.Validate(); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestVenueValidate(t *testing.T) {
	if err := (Venue{ID: 1, Name: "Hall", Capacity: 0}).Validate(); err != ErrInvalidCapacity {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
	if err := (Venue{ID: 1, Name: "", Capacity: 5}).Validate(); err != ErrVenueNameRequired {
		t.Fatalf("expected ErrVenueNameRequired, got %v", err)
	}
}
