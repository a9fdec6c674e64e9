package partner

import (
	"errors"
	"fmt"
	"strings"

	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a dish or product a partner sells. Its id is what order items refer to.
type MenuItem struct {
	id          string
	name        string
	price       int
	description string
	image       string

	guard guard.ConstructorGuard
}

func NewMenuItem(id string, name string, price int, description string, image string) (MenuItem, error) {
	item := MenuItem{
		description: strings.TrimSpace(description),
		image:       strings.TrimSpace(image),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m MenuItem) ID() string {
	return m.id
}

func (m MenuItem) Name() string {
	return m.name
}

func (m MenuItem) Price() int {
	return m.price
}

func (m MenuItem) Description() string {
	return m.description
}

func (m MenuItem) Image() string {
	return m.image
}

func (m *MenuItem) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	m.price = price
	return nil
}
