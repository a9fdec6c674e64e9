package commands

import (
	"errors"
	"fmt"

	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/pkg/guard"
)

var ErrAddPartnerCommandIsNotConstructed = errors.New(
	"AddPartnerCommand must be created via NewAddPartnerCommand constructor",
)

// MenuLine is one dish submitted with a new partner.
type MenuLine struct {
	ID          string
	Name        string
	Price       int
	Description string
	Image       string
}

// AddPartnerCommand is the owner registering a restaurant, market or takeaway.
type AddPartnerCommand struct { //nolint:recvcheck //using for validation
	profile partner.Profile
	menu    []partner.MenuItem

	guard guard.ConstructorGuard
}

// NewAddPartnerCommand validates the profile fields and the menu. kind is
// RESTAURANT, MARKET or TAKEAWAY.
func NewAddPartnerCommand(
	name, category string,
	rating float64,
	deliveryTime, landmark, image, kind string,
	menu []MenuLine,
) (AddPartnerCommand, error) {
	cmd := AddPartnerCommand{
		profile: partner.Profile{
			Name:         name,
			Category:     category,
			Rating:       rating,
			DeliveryTime: deliveryTime,
			Landmark:     landmark,
			Image:        image,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setMenu(menu),
	); err != nil {
		return AddPartnerCommand{}, err
	}

	return cmd, nil
}

func (c AddPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAddPartnerCommandIsNotConstructed)
}

func (c AddPartnerCommand) Profile() partner.Profile {
	return c.profile
}

func (c AddPartnerCommand) Menu() []partner.MenuItem {
	out := make([]partner.MenuItem, len(c.menu))
	copy(out, c.menu)
	return out
}

func (c *AddPartnerCommand) setKind(kind string) error {
	parsed, err := partner.KindFromString(kind)
	if err != nil {
		return err
	}
	c.profile.Kind = parsed
	return nil
}

func (c *AddPartnerCommand) setMenu(lines []MenuLine) error {
	items := make([]partner.MenuItem, 0, len(lines))
	var problems []error
	for idx, line := range lines {
		item, err := partner.NewMenuItem(line.ID, line.Name, line.Price, line.Description, line.Image)
		if err != nil {
			problems = append(problems, fmt.Errorf("menu item %d: %w", idx, err))
			continue
		}
		items = append(items, item)
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}
	c.menu = items
	return nil
}
