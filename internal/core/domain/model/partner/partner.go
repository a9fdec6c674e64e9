package partner

import (
	"errors"
	"fmt"
	"strings"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// Profile is the descriptive part of a partner.
type Profile struct {
	Name         string
	Category     string
	Rating       float64
	DeliveryTime string
	Landmark     string
	Image        string
	Kind         Kind
}

// Partner is a restaurant, market or takeaway listed in the catalogue. The owner adds
// and removes partners; customers order from their menus.
type Partner struct {
	id      kernel.UUID
	profile Profile
	menu    []MenuItem

	isConstructed bool
}

func NewPartner(id kernel.UUID, profile Profile, menu []MenuItem) (*Partner, error) {
	p := &Partner{isConstructed: true}

	profile.Category = strings.TrimSpace(profile.Category)
	profile.DeliveryTime = strings.TrimSpace(profile.DeliveryTime)
	profile.Landmark = strings.TrimSpace(profile.Landmark)
	profile.Image = strings.TrimSpace(profile.Image)

	if err := errors.Join(
		p.setID(id),
		p.setProfile(profile),
		p.setMenu(menu),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Profile() Profile {
	return p.profile
}

func (p *Partner) Name() string {
	return p.profile.Name
}

// Menu returns a copy of the partner's menu in display order.
func (p *Partner) Menu() []MenuItem {
	out := make([]MenuItem, len(p.menu))
	copy(out, p.menu)
	return out
}

// MenuItem looks up a dish by id.
func (p *Partner) MenuItem(id string) (MenuItem, bool) {
	for _, item := range p.menu {
		if item.ID() == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setProfile(profile Profile) error {
	var problems []error

	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if profile.Rating < MinRating || profile.Rating > MaxRating {
		problems = append(problems, errs.NewValueIsOutOfRangeError("rating", profile.Rating, MinRating, MaxRating))
	}
	if err := profile.Kind.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	p.profile = profile
	return nil
}

func (p *Partner) setMenu(menu []MenuItem) error {
	seen := make(map[string]struct{}, len(menu))
	for idx, item := range menu {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("menu item %d: %w", idx, err)
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("menu", fmt.Errorf("duplicate menu item id %q", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}
	p.menu = make([]MenuItem, len(menu))
	copy(p.menu, menu)
	return nil
}
