package cmd

import (
	"context"
	"fmt"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/core/domain/model/staff"
)

type seedMenuItem struct {
	id, name           string
	price              int
	description, image string
}

type seedPartner struct {
	profile partner.Profile
	menu    []seedMenuItem
}

type seedUser struct {
	name  string
	role  kernel.Role
	email string
}

func referencePartners() []seedPartner {
	return []seedPartner{
		{
			profile: partner.Profile{
				Name: "Cantinho do Sabor", Category: "Moçambicana", Rating: 4.8, DeliveryTime: "20-30 min",
				Landmark: "Centro da Cidade", Image: "https://picsum.photos/seed/sabor/400/250", Kind: partner.Restaurant,
			},
			menu: []seedMenuItem{
				{"m1", "Frango à Zambeziana", 450, "Frango grelhado com coco e pimenta.", "https://picsum.photos/seed/frango/100/100"},
				{"m2", "Matapa com Camarão", 380, "Folhas de mandioquinha com amendoim e camarão.", "https://picsum.photos/seed/matapa/100/100"},
			},
		},
		{
			profile: partner.Profile{
				Name: "White Lounge", Category: "Internacional", Rating: 4.5, DeliveryTime: "35-45 min",
				Landmark: "Bairro Central", Image: "https://picsum.photos/seed/white/400/250", Kind: partner.Restaurant,
			},
			menu: []seedMenuItem{
				{"m3", "Hambúrguer Gourmet", 550, "Carne bovina 180g, queijo cheddar e bacon.", "https://picsum.photos/seed/burger/100/100"},
				{"m4", "Pizza Margherita", 600, "Molho de tomate fresco e manjericão.", "https://picsum.photos/seed/pizza/100/100"},
			},
		},
		{
			profile: partner.Profile{
				Name: "MOOD BLACKSHEEP", Category: "Bebidas & Petiscos", Rating: 4.7, DeliveryTime: "15-25 min",
				Landmark: "Muhala Extension", Image: "https://picsum.photos/seed/mood/400/250", Kind: partner.Restaurant,
			},
			menu: []seedMenuItem{
				{"m5", "Combo de Cervejas (6x)", 900, "Balde com 6 Laurentinas geladas.", "https://picsum.photos/seed/beer/100/100"},
				{"m6", "Asinhas Picantes", 320, "Asinhas de frango com molho de piripiri.", "https://picsum.photos/seed/wings/100/100"},
			},
		},
	}
}

func referenceUsers() []seedUser {
	return []seedUser{
		{name: "Nunes Junior", role: kernel.Owner, email: "nunes@moz.com"},
		{name: "João Estafeta", role: kernel.Driver, email: "joao@moz.com"},
		{name: "Maria Gestora", role: kernel.Manager, email: "maria@moz.com"},
	}
}

// SeedReferenceData loads the launch catalogue and staff accounts into an empty store.
// It writes straight through the repositories, so the activity log stays empty.
func (c *CompositionRoot) SeedReferenceData(ctx context.Context) error {
	query, err := queries.NewListPartnersQuery(partner.UnknownKind)
	if err != nil {
		return err
	}

	existing, err := c.CreateListPartnersQueryHandler().Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to inspect catalogue: %w", err)
	}
	if len(existing) > 0 {
		c.logger.InfoContext(ctx, "Reference data already present, skipping seed", "partners", len(existing))
		return nil
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	for _, seed := range referencePartners() {
		var menu []partner.MenuItem
		for _, line := range seed.menu {
			item, itemErr := partner.NewMenuItem(line.id, line.name, line.price, line.description, line.image)
			if itemErr != nil {
				return itemErr
			}
			menu = append(menu, item)
		}

		p, partnerErr := partner.NewPartner(kernel.NewUUID(), seed.profile, menu)
		if partnerErr != nil {
			return partnerErr
		}
		if err = uow.PartnerRepository().Add(ctx, p); err != nil {
			return err
		}
	}

	for _, seed := range referenceUsers() {
		u, userErr := staff.NewUser(kernel.NewUUID(), seed.name, seed.role, seed.email)
		if userErr != nil {
			return userErr
		}
		if err = uow.UserRepository().Add(ctx, u); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Reference data seeded",
		"partners", len(referencePartners()), "users", len(referenceUsers()))
	return nil
}
