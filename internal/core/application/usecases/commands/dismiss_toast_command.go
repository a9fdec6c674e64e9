package commands

import "context"

// DismissToastCommandHandler clears the toast on user request.
type DismissToastCommandHandler struct {
	session ToastDismisser
}

func NewDismissToastCommandHandler(session ToastDismisser) DismissToastCommandHandler {
	return DismissToastCommandHandler{session: session}
}

// Handle reports whether a toast was shown.
func (h *DismissToastCommandHandler) Handle(_ context.Context) bool {
	return h.session.Dismiss()
}

// DismissExpiredToastCommandHandler clears the toast once its time to live has passed.
// The scheduler runs it every second.
type DismissExpiredToastCommandHandler struct {
	session ToastDismisser
}

func NewDismissExpiredToastCommandHandler(session ToastDismisser) DismissExpiredToastCommandHandler {
	return DismissExpiredToastCommandHandler{session: session}
}

func (h *DismissExpiredToastCommandHandler) Handle(_ context.Context) bool {
	return h.session.DismissExpired()
}
