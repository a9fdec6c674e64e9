package http

import (
	"net/http"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetPartners handles GET /api/v1/partners.
func (s *Server) GetPartners(ctx echo.Context, params servers.GetPartnersParams) error {
	kind := partner.UnknownKind
	if params.Kind != nil {
		var err error
		if kind, err = partner.KindFromString(string(*params.Kind)); err != nil {
			return fail(ctx, err, "Invalid partner kind")
		}
	}

	query, err := queries.NewListPartnersQuery(kind)
	if err != nil {
		return fail(ctx, err, "Invalid partner kind")
	}

	partners, err := s.queries.ListPartners.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, "Failed to retrieve partners")
	}

	response := make([]servers.Partner, len(partners))
	for i, p := range partners {
		response[i] = toPartner(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddPartner handles POST /api/v1/partners.
func (s *Server) AddPartner(ctx echo.Context) error {
	var body servers.NewPartner
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var menu []commands.MenuLine
	for _, item := range deref(body.Menu) {
		menu = append(menu, commands.MenuLine{
			ID:          item.Id,
			Name:        item.Name,
			Price:       item.Price,
			Description: deref(item.Description),
			Image:       deref(item.Image),
		})
	}

	cmd, err := commands.NewAddPartnerCommand(
		body.Name,
		deref(body.Category),
		float64(deref(body.Rating)),
		deref(body.DeliveryTime),
		deref(body.Landmark),
		deref(body.Image),
		string(body.Kind),
		menu,
	)
	if err != nil {
		return fail(ctx, err, "Invalid partner data")
	}

	added, err := s.commands.AddPartner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, "Failed to add partner")
	}

	profile := added.Profile()
	response := queries.PartnerResponse{
		ID:           added.ID(),
		Name:         profile.Name,
		Category:     profile.Category,
		Rating:       profile.Rating,
		DeliveryTime: profile.DeliveryTime,
		Landmark:     profile.Landmark,
		Image:        profile.Image,
		Kind:         profile.Kind,
	}
	for _, item := range added.Menu() {
		response.Menu = append(response.Menu, queries.MenuItemResponse{
			ID:          item.ID(),
			Name:        item.Name(),
			Price:       item.Price(),
			Description: item.Description(),
			Image:       item.Image(),
		})
	}

	return ctx.JSON(http.StatusCreated, toPartner(response))
}

// RemovePartner handles DELETE /api/v1/partners/{partnerId}.
func (s *Server) RemovePartner(ctx echo.Context, partnerId openapi_types.UUID) error {
	id, err := toKernelUUID(partnerId)
	if err != nil {
		return fail(ctx, err, "Invalid partner id")
	}

	cmd, err := commands.NewRemovePartnerCommand(id)
	if err != nil {
		return fail(ctx, err, "Invalid partner id")
	}

	if err = s.commands.RemovePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err, "Failed to remove partner")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStaff handles GET /api/v1/staff.
func (s *Server) GetStaff(ctx echo.Context) error {
	users, err := s.queries.ListStaffUsers.Handle(ctx.Request().Context(), queries.NewListStaffUsersQuery())
	if err != nil {
		return fail(ctx, err, "Failed to retrieve staff")
	}

	response := make([]servers.StaffUser, len(users))
	for i, u := range users {
		response[i] = toStaffUser(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddStaffUser handles POST /api/v1/staff.
func (s *Server) AddStaffUser(ctx echo.Context) error {
	var body servers.NewStaffUser
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddStaffUserCommand(body.Name, string(body.Role), string(body.Email))
	if err != nil {
		return fail(ctx, err, "Invalid staff user data")
	}

	added, err := s.commands.AddStaffUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, "Failed to add staff user")
	}

	return ctx.JSON(http.StatusCreated, toStaffUser(queries.StaffUserResponse{
		ID:     added.ID(),
		Name:   added.Name(),
		Role:   added.Role(),
		Status: added.Status(),
		Email:  added.Email(),
	}))
}

// ToggleStaffUserStatus handles POST /api/v1/staff/{userId}/status.
func (s *Server) ToggleStaffUserStatus(ctx echo.Context, userId openapi_types.UUID) error {
	id, err := toKernelUUID(userId)
	if err != nil {
		return fail(ctx, err, "Invalid user id")
	}

	cmd, err := commands.NewToggleStaffUserStatusCommand(id)
	if err != nil {
		return fail(ctx, err, "Invalid user id")
	}

	status, err := s.commands.ToggleStaffUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, "Failed to toggle staff user")
	}

	return ctx.JSON(http.StatusOK, servers.StaffStatusChange{
		Id:     userId,
		Status: servers.StaffStatus(status.String()),
	})
}
