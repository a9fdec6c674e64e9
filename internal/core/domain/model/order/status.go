package order

import (
	"errors"
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
)

// ErrTransitionNotAllowed is matched with errors.Is by callers that need to tell an
// illegal status change apart from other validation failures.
var ErrTransitionNotAllowed = errors.New("status transition is not allowed")

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──> PREPARING ──> READY_FOR_PICKUP ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │
//	   └──> REFUSED
//
// DELIVERED and REFUSED are terminal.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Pending
	Preparing
	ReadyForPickup
	OutForDelivery
	Delivered
	Refused
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Preparing:      "PREPARING",
		ReadyForPickup: "READY_FOR_PICKUP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Refused:        "REFUSED",
	}
}

// getAllowedTransitions is the complete edge set of the state machine.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Pending:        {Preparing, Refused},
		Preparing:      {ReadyForPickup},
		ReadyForPickup: {OutForDelivery},
		OutForDelivery: {Delivered},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, ReadyForPickup, OutForDelivery, Delivered, Refused}
}

// StatusFromString parses names such as "READY_FOR_PICKUP" (case-insensitive).
func StatusFromString(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Refused
}

// IsActive reports whether the order is still being worked on.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// NextStatuses returns the statuses reachable from s in one step.
func (s Status) NextStatuses() []Status {
	next := getAllowedTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo returns a *TransitionError unless s -> next is an edge of the state machine.
func (s Status) CanTransitionTo(next Status) error {
	for _, candidate := range getAllowedTransitions()[s] {
		if candidate == next {
			return nil
		}
	}
	return &TransitionError{From: s, To: next}
}

// Accept moves PENDING to PREPARING.
func (s Status) Accept() (Status, error) {
	return s.transition(Preparing)
}

// Refuse moves PENDING to REFUSED.
func (s Status) Refuse() (Status, error) {
	return s.transition(Refused)
}

// MarkReady moves PREPARING to READY_FOR_PICKUP.
func (s Status) MarkReady() (Status, error) {
	return s.transition(ReadyForPickup)
}

// StartDelivery moves READY_FOR_PICKUP to OUT_FOR_DELIVERY.
func (s Status) StartDelivery() (Status, error) {
	return s.transition(OutForDelivery)
}

// Deliver moves OUT_FOR_DELIVERY to DELIVERED.
func (s Status) Deliver() (Status, error) {
	return s.transition(Delivered)
}

// ReaffirmDelivery is the pickup confirmation: it leaves OUT_FOR_DELIVERY unchanged
// and fails from any other status.
func (s Status) ReaffirmDelivery() (Status, error) {
	if s != OutForDelivery {
		return 0, &TransitionError{From: s, To: OutForDelivery}
	}
	return OutForDelivery, nil
}

func (s Status) transition(next Status) (Status, error) {
	if err := s.CanTransitionTo(next); err != nil {
		return 0, err
	}
	return next, nil
}

// TransitionError describes a rejected status change. It matches both
// ErrTransitionNotAllowed and errs.ErrValueIsInvalid.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrTransitionNotAllowed, e.From, e.To)
}

func (e *TransitionError) Unwrap() []error {
	return []error{ErrTransitionNotAllowed, errs.ErrValueIsInvalid}
}
