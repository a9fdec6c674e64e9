package services

import (
	"fmt"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/core/domain/model/order"
)

// NotificationDraft is a notification waiting for an id and a timestamp.
type NotificationDraft struct {
	Target   kernel.Role
	Title    string
	Message  string
	Severity notification.Severity
}

// ActivityDraft is an activity log line waiting for an id and a timestamp.
type ActivityDraft struct {
	Actor   string
	Action  string
	Details string
}

// Outcome is everything a successful order operation must record: the status change,
// the notifications for each affected role and exactly one activity entry.
type Outcome struct {
	Transition    order.Transition
	Notifications []NotificationDraft
	Activity      ActivityDraft
}

// OrderDispatcher is the domain service that drives an order through its lifecycle and
// decides who gets told about it.
//
// Business rules:
//   - every successful operation produces exactly one activity draft
//   - activity details for status changes embed the previous and new status
//   - a wrong confirmation code produces no outcome at all
//   - soft delete is logged but notifies nobody
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	outcome, err := dispatcher.Dispatch(o, order.Preparing, order.Metadata{PrepTime: p}, kernel.Manager)
//	if err != nil {
//	    // illegal transition, order untouched
//	}
//	// persist o, then outcome.Notifications and outcome.Activity
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Place describes a freshly created order. Dispatch is told about it together with the
// confirmation code, since the manager view is expected to see it.
func (d OrderDispatcher) Place(o *order.Order) Outcome {
	return Outcome{
		Transition: order.Transition{From: order.Unknown, To: o.Status()},
		Notifications: []NotificationDraft{
			{
				Target:   kernel.Manager,
				Title:    "New order!",
				Message:  fmt.Sprintf("Customer %s placed an order. Code: %s", o.CustomerName(), o.ConfirmationCode()),
				Severity: notification.Success,
			},
		},
		Activity: ActivityDraft{
			Actor:   kernel.Customer.String(),
			Action:  "New order",
			Details: fmt.Sprintf("Order #%s at %s (%s)", o.ID(), o.RestaurantName(), o.Status()),
		},
	}
}

// Dispatch applies a dispatch or driver status change requested by actor.
// On error the order is untouched and the outcome is empty.
func (d OrderDispatcher) Dispatch(o *order.Order, next order.Status, meta order.Metadata, actor kernel.Role) (Outcome, error) {
	tr, err := o.Apply(next, meta)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Transition:    tr,
		Notifications: d.statusNotifications(o, tr),
		Activity: ActivityDraft{
			Actor:   actor.String(),
			Action:  "Status changed",
			Details: fmt.Sprintf("Order #%s: %s", o.ID(), tr),
		},
	}, nil
}

// ConfirmPickup re-notifies dispatch and the customer that the assigned driver has the
// food. The status stays OUT_FOR_DELIVERY.
func (d OrderDispatcher) ConfirmPickup(o *order.Order, driverID string) (Outcome, error) {
	tr, err := o.ConfirmPickup(driverID)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Transition: tr,
		Notifications: []NotificationDraft{
			{
				Target:   kernel.Manager,
				Title:    "Pickup complete",
				Message:  fmt.Sprintf("Driver %s picked up order #%s.", o.DriverID(), o.ID()),
				Severity: notification.Success,
			},
			{
				Target:   kernel.Customer,
				Title:    "Order on the way!",
				Message:  "The driver just collected your meal at the restaurant.",
				Severity: notification.Success,
			},
		},
		Activity: ActivityDraft{
			Actor:   kernel.Driver.String(),
			Action:  "Pickup confirmed",
			Details: fmt.Sprintf("Order #%s: %s", o.ID(), tr),
		},
	}, nil
}

// ConfirmDelivery checks the customer's code. ok is false on a mismatch, in which case
// the outcome is empty and nothing should be recorded.
func (d OrderDispatcher) ConfirmDelivery(o *order.Order, code string) (bool, Outcome, error) {
	ok, tr, err := o.ConfirmDelivery(code)
	if err != nil || !ok {
		return false, Outcome{}, err
	}

	return true, Outcome{
		Transition: tr,
		Notifications: []NotificationDraft{
			{
				Target:   kernel.Manager,
				Title:    "Delivery confirmed by customer",
				Message:  fmt.Sprintf("The customer confirmed receipt of order #%s and validated the payment.", o.ID()),
				Severity: notification.Success,
			},
			{
				Target:   kernel.Driver,
				Title:    "Delivery complete",
				Message:  fmt.Sprintf("The customer validated the code for order #%s. Good job!", o.ID()),
				Severity: notification.Success,
			},
		},
		Activity: ActivityDraft{
			Actor:   kernel.Customer.String(),
			Action:  "Delivery confirmed",
			Details: fmt.Sprintf("Order #%s: %s", o.ID(), tr),
		},
	}, nil
}

// HideFromCustomer soft-deletes the order from the customer's history.
func (d OrderDispatcher) HideFromCustomer(o *order.Order) Outcome {
	o.HideFromCustomer()

	return Outcome{
		Transition: order.Transition{From: o.Status(), To: o.Status()},
		Activity: ActivityDraft{
			Actor:   kernel.Customer.String(),
			Action:  "Order deleted",
			Details: fmt.Sprintf("Customer hid order #%s", o.ID()),
		},
	}
}

func (d OrderDispatcher) statusNotifications(o *order.Order, tr order.Transition) []NotificationDraft {
	//nolint:exhaustive // DELIVERED goes through ConfirmDelivery
	switch tr.To {
	case order.Preparing:
		return []NotificationDraft{{
			Target:   kernel.Customer,
			Title:    "Order confirmed!",
			Message:  fmt.Sprintf("Your meal is being prepared. Estimated time: %s", o.PrepTime()),
			Severity: notification.Success,
		}}
	case order.Refused:
		return []NotificationDraft{{
			Target:   kernel.Customer,
			Title:    "We are sorry",
			Message:  fmt.Sprintf("%s could not process your order right now.", o.RestaurantName()),
			Severity: notification.Warning,
		}}
	case order.ReadyForPickup:
		return []NotificationDraft{{
			Target:   kernel.Driver,
			Title:    "Pickup available",
			Message:  fmt.Sprintf("Order from %s is ready for pickup.", o.RestaurantName()),
			Severity: notification.Warning,
		}}
	case order.OutForDelivery:
		return []NotificationDraft{
			{
				Target:   kernel.Manager,
				Title:    "Driver on the way!",
				Message:  fmt.Sprintf("Driver %s accepted order #%s and is heading to the restaurant.", o.DriverID(), o.ID()),
				Severity: notification.Info,
			},
			{
				Target:   kernel.Customer,
				Title:    "Driver assigned!",
				Message:  "A driver accepted your order and is on the way to the restaurant.",
				Severity: notification.Success,
			},
		}
	default:
		return nil
	}
}
