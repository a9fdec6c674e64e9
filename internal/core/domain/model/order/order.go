package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCartIsEmpty is returned by NewOrder when no items are supplied.
	ErrCartIsEmpty = errs.NewValueIsInvalidErrorWithCause("items", errors.New("cart is empty"))

	// ErrDeliveryRequiresCode is returned when DELIVERED is requested through Apply.
	// The only way to deliver an order is ConfirmDelivery with the customer's code.
	ErrDeliveryRequiresCode = errs.NewValueIsInvalidErrorWithCause(
		"status", errors.New("DELIVERED is only reachable through the confirmation code"),
	)

	// ErrDriverMismatch is returned when a driver confirms pickup for an order
	// assigned to somebody else.
	ErrDriverMismatch = errs.NewValueIsInvalidErrorWithCause(
		"driverId", errors.New("order is assigned to another driver"),
	)
)

// Details is the customer-supplied part of a new order.
type Details struct {
	CustomerName   string
	RestaurantName string
	PaymentMethod  PaymentMethod
	Neighborhood   string
}

// Metadata carries the optional inputs of a status change: the prep time chosen when
// dispatch accepts, and the driver who takes the order out for delivery.
type Metadata struct {
	PrepTime PrepTime
	DriverID string
}

// Transition records the status before and after an operation. From equals To for
// the pickup re-affirmation.
type Transition struct {
	From Status
	To   Status
}

func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// Order is the aggregate root of the ledger. Orders are only ever appended and patched,
// never removed.
//
// Order follows these invariants:
//   - total equals the items subtotal plus the delivery fee and is computed once
//   - the confirmation code and creation timestamp never change
//   - status only moves along the edges of the Status state machine
//   - DELIVERED is only reachable through ConfirmDelivery
type Order struct {
	id                  kernel.UUID
	customerName        string
	restaurantName      string
	items               []Item
	deliveryFee         int
	total               int
	status              Status
	paymentMethod       PaymentMethod
	neighborhood        string
	prepTime            PrepTime
	driverID            string
	placedAt            time.Time
	confirmationCode    ConfirmationCode
	isDeletedByCustomer bool

	isConstructed bool
}

// NewOrder creates a PENDING order from a non-empty cart.
//
// The total is the sum of item subtotals plus deliveryFee, computed here and never again.
//
// Example:
//
//	item, _ := order.NewItem("m1", "Frango à Zambeziana", 450, 1)
//	o, err := order.NewOrder(kernel.NewUUID(), details, []order.Item{item}, 50, code, clock.Now())
func NewOrder(
	id kernel.UUID,
	details Details,
	items []Item,
	deliveryFee int,
	code ConfirmationCode,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(details.CustomerName),
		o.setRestaurantName(details.RestaurantName),
		o.setPaymentMethod(details.PaymentMethod),
		o.setNeighborhood(details.Neighborhood),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
		o.setConfirmationCode(code),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	o.total = o.Subtotal() + o.deliveryFee
	return o, nil
}

// RestoreParams is the persisted state of an order.
type RestoreParams struct {
	ID                  kernel.UUID
	Details             Details
	Items               []Item
	DeliveryFee         int
	Total               int
	Status              Status
	PrepTime            PrepTime
	DriverID            string
	PlacedAt            time.Time
	ConfirmationCode    ConfirmationCode
	IsDeletedByCustomer bool
}

// RestoreOrder rebuilds an order from storage. The stored total is kept as is.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		total:               p.Total,
		prepTime:            p.PrepTime,
		driverID:            strings.TrimSpace(p.DriverID),
		isDeletedByCustomer: p.IsDeletedByCustomer,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerName(p.Details.CustomerName),
		o.setRestaurantName(p.Details.RestaurantName),
		o.setPaymentMethod(p.Details.PaymentMethod),
		o.setNeighborhood(p.Details.Neighborhood),
		o.setItems(p.Items),
		o.setDeliveryFee(p.DeliveryFee),
		o.setConfirmationCode(p.ConfirmationCode),
		o.setPlacedAt(p.PlacedAt),
		o.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// Items returns a copy of the order lines in cart order.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal is the sum of item subtotals, without the delivery fee.
func (o *Order) Subtotal() int {
	sum := 0
	for _, item := range o.items {
		sum += item.Subtotal()
	}
	return sum
}

func (o *Order) DeliveryFee() int {
	return o.deliveryFee
}

func (o *Order) Total() int {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) Neighborhood() string {
	return o.neighborhood
}

// PrepTime is zero until dispatch accepts the order.
func (o *Order) PrepTime() PrepTime {
	return o.prepTime
}

// DriverID is empty until a driver takes the order.
func (o *Order) DriverID() string {
	return o.driverID
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) ConfirmationCode() ConfirmationCode {
	return o.confirmationCode
}

func (o *Order) IsDeletedByCustomer() bool {
	return o.isDeletedByCustomer
}

// Apply performs a dispatch or driver status change.
//
// Business rules:
//   - PREPARING requires a prep time, which is stored on the order
//   - OUT_FOR_DELIVERY requires a driver id, which is stored on the order
//   - DELIVERED is rejected with ErrDeliveryRequiresCode
//   - any other edge not in the state machine fails with a *TransitionError
//
// On failure the order is left untouched.
func (o *Order) Apply(next Status, meta Metadata) (Transition, error) {
	if err := next.Validate(); err != nil {
		return Transition{}, err
	}

	from := o.status

	//nolint:exhaustive // remaining statuses are rejected below
	switch next {
	case Preparing:
		if err := meta.PrepTime.Validate(); err != nil {
			return Transition{}, err
		}
		to, err := o.status.Accept()
		if err != nil {
			return Transition{}, err
		}
		o.status = to
		o.prepTime = meta.PrepTime
	case Refused:
		to, err := o.status.Refuse()
		if err != nil {
			return Transition{}, err
		}
		o.status = to
	case ReadyForPickup:
		to, err := o.status.MarkReady()
		if err != nil {
			return Transition{}, err
		}
		o.status = to
	case OutForDelivery:
		driverID := strings.TrimSpace(meta.DriverID)
		if driverID == "" {
			return Transition{}, errs.NewValueIsRequiredError("driverId")
		}
		to, err := o.status.StartDelivery()
		if err != nil {
			return Transition{}, err
		}
		o.status = to
		o.driverID = driverID
	case Delivered:
		return Transition{}, ErrDeliveryRequiresCode
	default:
		return Transition{}, &TransitionError{From: from, To: next}
	}

	return Transition{From: from, To: o.status}, nil
}

// ConfirmPickup re-affirms OUT_FOR_DELIVERY for the assigned driver. It never changes
// the status; the returned transition has From == To.
func (o *Order) ConfirmPickup(driverID string) (Transition, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return Transition{}, errs.NewValueIsRequiredError("driverId")
	}

	to, err := o.status.ReaffirmDelivery()
	if err != nil {
		return Transition{}, err
	}
	if o.driverID != driverID {
		return Transition{}, ErrDriverMismatch
	}

	return Transition{From: o.status, To: to}, nil
}

// ConfirmDelivery checks the code the customer typed. A mismatch returns false with a nil
// error and leaves the order untouched, so the customer can retry. An order that is not
// OUT_FOR_DELIVERY fails with a *TransitionError.
func (o *Order) ConfirmDelivery(input string) (bool, Transition, error) {
	if err := o.status.CanTransitionTo(Delivered); err != nil {
		return false, Transition{}, err
	}
	if !o.confirmationCode.Matches(input) {
		return false, Transition{}, nil
	}

	from := o.status
	to, err := o.status.Deliver()
	if err != nil {
		return false, Transition{}, err
	}
	o.status = to

	return true, Transition{From: from, To: to}, nil
}

// HideFromCustomer soft-deletes the order from the customer's history. Every other
// projection keeps seeing it. Calling it twice is harmless.
func (o *Order) HideFromCustomer() {
	o.isDeletedByCustomer = true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setRestaurantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}
	o.restaurantName = name
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setNeighborhood(neighborhood string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}
	o.neighborhood = neighborhood
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryFee(fee int) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee is invalid", fmt.Errorf("%d is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setConfirmationCode(code ConfirmationCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.confirmationCode = code
	return nil
}

func (o *Order) setPlacedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	o.placedAt = at
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
