package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/activity"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/core/domain/services"
)

type logRepoFactory interface {
	NotificationRepoFactory
	ActivityRepoFactory
}

// recordOutcome appends the planned notifications and the single activity entry inside
// the caller's transaction. The returned notifications are surfaced after commit.
func recordOutcome(
	ctx context.Context,
	uow logRepoFactory,
	clock kernel.Clock,
	outcome services.Outcome,
) ([]*notification.Notification, error) {
	now := clock.Now()

	notifications := make([]*notification.Notification, 0, len(outcome.Notifications))
	for _, draft := range outcome.Notifications {
		n, err := notification.NewNotification(kernel.NewUUID(), draft.Target, draft.Title, draft.Message, draft.Severity, now)
		if err != nil {
			return nil, err
		}
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := recordActivity(ctx, uow, clock, outcome.Activity); err != nil {
		return nil, err
	}

	return notifications, nil
}

func recordActivity(ctx context.Context, uow ActivityRepoFactory, clock kernel.Clock, draft services.ActivityDraft) error {
	entry, err := activity.NewEntry(kernel.NewUUID(), draft.Actor, draft.Action, draft.Details, clock.Now())
	if err != nil {
		return err
	}
	return uow.ActivityRepository().Add(ctx, entry)
}

// surface offers each notification to the session in order; the last visible one wins.
func surface(toasts ToastSurface, notifications []*notification.Notification) {
	if toasts == nil {
		return
	}
	for _, n := range notifications {
		toasts.Surface(n)
	}
}
