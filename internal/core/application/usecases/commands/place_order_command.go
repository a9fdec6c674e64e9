package commands

import (
	"errors"
	"fmt"
	"strings"

	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// CartLine is one entry of the customer's cart as submitted.
type CartLine struct {
	MenuItemID string
	Name       string
	UnitPrice  int
	Quantity   int
}

// PlaceOrderCommand is the customer's checkout.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("Ana", "Cantinho do Sabor", []CartLine{
//	    {MenuItemID: "m1", Name: "Frango à Zambeziana", UnitPrice: 450, Quantity: 1},
//	}, "MPESA", "Central")
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerName   string
	restaurantName string
	items          []order.Item
	paymentMethod  order.PaymentMethod
	neighborhood   string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	customerName string,
	restaurantName string,
	cart []CartLine,
	paymentMethod string,
	neighborhood string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setRestaurantName(restaurantName),
		cmd.setItems(cart),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setNeighborhood(neighborhood),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Details() order.Details {
	return order.Details{
		CustomerName:   c.customerName,
		RestaurantName: c.restaurantName,
		PaymentMethod:  c.paymentMethod,
		Neighborhood:   c.neighborhood,
	}
}

func (c PlaceOrderCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c PlaceOrderCommand) Neighborhood() string {
	return c.neighborhood
}

func (c *PlaceOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = name
	return nil
}

func (c *PlaceOrderCommand) setRestaurantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}
	c.restaurantName = name
	return nil
}

func (c *PlaceOrderCommand) setItems(cart []CartLine) error {
	if len(cart) == 0 {
		return order.ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(cart))
	var problems []error
	for idx, line := range cart {
		item, err := order.NewItem(line.MenuItemID, line.Name, line.UnitPrice, line.Quantity)
		if err != nil {
			problems = append(problems, fmt.Errorf("item %d: %w", idx, err))
			continue
		}
		items = append(items, item)
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method string) error {
	parsed, err := order.PaymentMethodFromString(method)
	if err != nil {
		return err
	}
	c.paymentMethod = parsed
	return nil
}

func (c *PlaceOrderCommand) setNeighborhood(neighborhood string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}
	c.neighborhood = neighborhood
	return nil
}
