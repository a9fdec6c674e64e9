package http

import (
	"net/http"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetSession handles GET /api/v1/session.
func (s *Server) GetSession(ctx echo.Context) error {
	state, err := s.queries.PeekActiveToast.Handle(ctx.Request().Context(), queries.NewPeekActiveToastQuery())
	if err != nil {
		return fail(ctx, err, "Failed to read session")
	}
	return ctx.JSON(http.StatusOK, toSession(state))
}

// SwitchRole handles PUT /api/v1/session/role.
func (s *Server) SwitchRole(ctx echo.Context) error {
	var body servers.RoleSwitch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSwitchRoleCommand(string(body.Role))
	if err != nil {
		return fail(ctx, err, "Invalid role")
	}

	if _, err = s.commands.SwitchRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err, "Failed to switch role")
	}

	return s.GetSession(ctx)
}

// DismissToast handles DELETE /api/v1/session/toast. Dismissing when nothing is shown
// is not an error.
func (s *Server) DismissToast(ctx echo.Context) error {
	s.commands.DismissToast.Handle(ctx.Request().Context())
	return ctx.NoContent(http.StatusNoContent)
}

// GetBoard handles GET /api/v1/board.
func (s *Server) GetBoard(ctx echo.Context) error {
	view, err := s.boards.For(s.roles.ActiveRole())
	if err != nil {
		return fail(ctx, err, "No board for the active role")
	}

	board, err := view.Board(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err, "Failed to build board")
	}

	return ctx.JSON(http.StatusOK, toBoard(board))
}
