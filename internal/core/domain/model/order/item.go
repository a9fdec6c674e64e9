package order

import (
	"errors"
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one cart line frozen into the order: the menu item it came from, the name and
// unit price at the moment of purchase, and how many were ordered.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID string
	name       string
	unitPrice  int
	quantity   int

	guard guard.ConstructorGuard
}

// NewItem validates a cart line. Prices are whole meticais; quantity must be at least 1.
func NewItem(menuItemID string, name string, unitPrice int, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) MenuItemID() string {
	return i.menuItemID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() int {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() int {
	return i.unitPrice * i.quantity
}

func (i *Item) setMenuItemID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("menuItemId")
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid", fmt.Errorf("%d is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
