package queries_test

import (
	"context"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/core/domain/model/staff"
)

type CatalogueQueriesTestSuite struct {
	ledgerSuite
}

func (s *CatalogueQueriesTestSuite) menuItem(id, name string, price int) partner.MenuItem {
	item, err := partner.NewMenuItem(id, name, price, "", "")
	s.Require().NoError(err)
	return item
}

func (s *CatalogueQueriesTestSuite) TestListPartners() {
	sabor := s.addPartner("Cantinho do Sabor", partner.Restaurant,
		s.menuItem("m1", "Frango à Zambeziana", 450),
		s.menuItem("m2", "Matapa com Caranguejo", 380),
	)
	s.addPartner("Mercado Central", partner.Market)

	query, err := queries.NewListPartnersQuery(partner.UnknownKind)
	s.Require().NoError(err)

	result, err := queries.NewListPartnersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(result, 2)

	s.True(result[0].ID.IsEqual(sabor.ID()))
	s.Require().Len(result[0].Menu, 2)
	s.Equal("m1", result[0].Menu[0].ID)
	s.Equal(380, result[0].Menu[1].Price)
	s.NotNil(result[1].Menu)
	s.Empty(result[1].Menu)

	query, err = queries.NewListPartnersQuery(partner.Market)
	s.Require().NoError(err)
	markets, err := queries.NewListPartnersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(markets, 1)
	s.Equal("Mercado Central", markets[0].Name)
}

func (s *CatalogueQueriesTestSuite) TestListStaffUsers() {
	s.addUser("joao", kernel.Driver, true)
	s.addUser("maria", kernel.Manager, false)

	result, err := queries.NewListStaffUsersQueryHandler(s.db).Handle(context.Background(), queries.NewListStaffUsersQuery())
	s.Require().NoError(err)
	s.Require().Len(result, 2)

	s.Equal("joao", result[0].Name)
	s.Equal(kernel.Driver, result[0].Role)
	s.Equal(staff.Active, result[0].Status)
	s.Equal(staff.Inactive, result[1].Status)
	s.Equal("maria@mozdelivery.co.mz", result[1].Email)
}
