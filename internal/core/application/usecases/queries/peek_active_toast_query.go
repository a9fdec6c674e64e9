package queries

import (
	"context"
	"errors"

	"mozdelivery/internal/core/application/session"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/guard"
)

var ErrPeekActiveToastQueryIsNotConstructed = errors.New(
	"PeekActiveToastQuery must be created via NewPeekActiveToastQuery constructor",
)

// ToastReader is implemented by session.Session.
type ToastReader interface {
	ActiveRole() kernel.Role
	ActiveToast() (session.Toast, bool)
}

type PeekActiveToastQuery struct {
	guard guard.ConstructorGuard
}

func NewPeekActiveToastQuery() PeekActiveToastQuery {
	return PeekActiveToastQuery{guard: guard.NewConstructorGuard()}
}

func (q PeekActiveToastQuery) Validate() error {
	return q.guard.Validate(ErrPeekActiveToastQueryIsNotConstructed)
}

// SessionResponse is the acting role and, when one is shown, its toast.
type SessionResponse struct {
	ActiveRole kernel.Role
	Toast      *session.Toast
}

type PeekActiveToastQueryHandler struct {
	session ToastReader
}

func NewPeekActiveToastQueryHandler(session ToastReader) PeekActiveToastQueryHandler {
	return PeekActiveToastQueryHandler{session: session}
}

// Handle never returns an expired toast.
func (h PeekActiveToastQueryHandler) Handle(_ context.Context, query PeekActiveToastQuery) (SessionResponse, error) {
	if err := query.Validate(); err != nil {
		return SessionResponse{}, err
	}

	resp := SessionResponse{ActiveRole: h.session.ActiveRole()}
	if toast, ok := h.session.ActiveToast(); ok {
		resp.Toast = &toast
	}
	return resp, nil
}
