// Package session holds the per-process view state: which role is acting and the single
// toast currently shown. It stands in for the logged-in screen of the mobile client.
package session

import (
	"log/slog"
	"sync"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
)

// DefaultToastTTL is how long a toast stays visible unless dismissed.
const DefaultToastTTL = 5 * time.Second

// Toast is a snapshot of the notification being shown.
type Toast struct {
	NotificationID kernel.UUID
	TargetRole     kernel.Role
	Title          string
	Message        string
	Severity       notification.Severity
	ShownAt        time.Time
	ExpiresAt      time.Time
}

// Session is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	role   kernel.Role
	toast  *Toast
	ttl    time.Duration
	clock  kernel.Clock
	logger *slog.Logger
}

// NewSession starts acting as initialRole. A non-positive ttl uses DefaultToastTTL.
func NewSession(initialRole kernel.Role, ttl time.Duration, clock kernel.Clock, logger *slog.Logger) (*Session, error) {
	if err := initialRole.Validate(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		role:   initialRole,
		ttl:    ttl,
		clock:  clock,
		logger: logger.With("component", "session"),
	}, nil
}

// ActiveRole returns the role currently acting.
func (s *Session) ActiveRole() kernel.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SwitchRole changes the acting role and returns the previous one. The toast is kept.
func (s *Session) SwitchRole(role kernel.Role) (kernel.Role, error) {
	if err := role.Validate(); err != nil {
		return kernel.UnknownRole, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.role
	s.role = role
	s.logger.Info("role switched", "from", previous.String(), "to", role.String())
	return previous, nil
}

// Surface shows n as the toast if the acting role receives it, replacing whatever was
// shown before. It reports whether the toast changed.
func (s *Session) Surface(n *notification.Notification) bool {
	if n.Validate() != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !n.IsVisibleTo(s.role) {
		return false
	}

	now := s.clock.Now()
	s.toast = &Toast{
		NotificationID: n.ID(),
		TargetRole:     n.TargetRole(),
		Title:          n.Title(),
		Message:        n.Message(),
		Severity:       n.Severity(),
		ShownAt:        now,
		ExpiresAt:      now.Add(s.ttl),
	}
	return true
}

// ActiveToast returns the toast unless none is shown or it has expired.
func (s *Session) ActiveToast() (Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.toast == nil || !s.clock.Now().Before(s.toast.ExpiresAt) {
		return Toast{}, false
	}
	return *s.toast, true
}

// Dismiss clears the toast. It reports whether one was shown.
func (s *Session) Dismiss() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	shown := s.toast != nil
	s.toast = nil
	return shown
}

// DismissExpired clears the toast if its time is up.
func (s *Session) DismissExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.toast == nil || s.clock.Now().Before(s.toast.ExpiresAt) {
		return false
	}
	s.logger.Debug("toast expired", "notification_id", s.toast.NotificationID.String())
	s.toast = nil
	return true
}
