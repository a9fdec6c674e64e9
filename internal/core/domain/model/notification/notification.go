package notification

import (
	"errors"
	"strings"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is an immutable message addressed to one role. It is appended to the
// notification log whether or not anybody is looking at that role's view.
type Notification struct {
	id         kernel.UUID
	targetRole kernel.Role
	title      string
	message    string
	severity   Severity
	createdAt  time.Time

	isConstructed bool
}

// NewNotification validates and builds a notification. It is also used to rehydrate
// stored notifications, since nothing about them changes after creation.
func NewNotification(
	id kernel.UUID,
	targetRole kernel.Role,
	title string,
	message string,
	severity Severity,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setTargetRole(targetRole),
		n.setTitle(title),
		n.setMessage(message),
		n.setSeverity(severity),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) TargetRole() kernel.Role {
	return n.targetRole
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Severity() Severity {
	return n.severity
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsVisibleTo reports whether a viewer acting as role sees this notification.
func (n *Notification) IsVisibleTo(role kernel.Role) bool {
	return role.Receives(n.targetRole)
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setTargetRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	n.targetRole = role
	return nil
}

func (n *Notification) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setSeverity(severity Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}
	n.severity = severity
	return nil
}

func (n *Notification) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	n.createdAt = at
	return nil
}
