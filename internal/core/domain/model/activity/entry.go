package activity

import (
	"errors"
	"strings"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one line of the audit trail: who did what, with free-text details.
type Entry struct {
	id        kernel.UUID
	actor     string
	action    string
	details   string
	createdAt time.Time

	isConstructed bool
}

// NewEntry builds an immutable log line. Details may be empty.
func NewEntry(id kernel.UUID, actor string, action string, details string, createdAt time.Time) (*Entry, error) {
	e := &Entry{
		details:       strings.TrimSpace(details),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setActor(actor),
		e.setAction(action),
		e.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Actor() string {
	return e.actor
}

func (e *Entry) Action() string {
	return e.action
}

func (e *Entry) Details() string {
	return e.details
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	e.actor = actor
	return nil
}

func (e *Entry) setAction(action string) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}

func (e *Entry) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	e.createdAt = at
	return nil
}
