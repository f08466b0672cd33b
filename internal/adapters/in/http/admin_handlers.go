package http

import (
	"net/http"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	stats, err := s.h.AdminStats.Handle(ctx.Request().Context(), queries.NewAdminStatsQuery(actor(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIAdminStats(stats))
}

// ListUsers handles GET /api/v1/admin/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.h.ListUsers.Handle(ctx.Request().Context(), queries.NewListUsersQuery(actor(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIUsers(users))
}

// DeleteUser handles DELETE /api/v1/admin/users/{userId}.
func (s *Server) DeleteUser(ctx echo.Context, userId openapi_types.UUID) error {
	id, err := fromAPIID(userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(actor(ctx), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
