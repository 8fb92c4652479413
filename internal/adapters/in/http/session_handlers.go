package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Entry routes where the client lands right after signing in. A session
// opened from anywhere else means the user already navigated on their own.
var entryRoutes = map[string]struct{}{
	"":       {},
	"/":      {},
	"/auth":  {},
	"/login": {},
}

type SessionResponse struct {
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	LandingRoute string `json:"landing_route"`
	RedirectTo   string `json:"redirect_to,omitempty"`
}

// GetSession handles GET /api/v1/session?from=<current route>.
func (s *Server) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	sess, err := s.sessions.Open(ctx, currentUser(c))
	if err != nil {
		return s.fail(c, err)
	}
	if _, atEntry := entryRoutes[c.QueryParam("from")]; !atEntry {
		sess.MarkNavigated()
	}

	snapshot := sess.Snapshot()
	resp := SessionResponse{
		UserID:       snapshot.UserID.String(),
		Role:         snapshot.Role.String(),
		LandingRoute: snapshot.Role.LandingRoute(),
	}
	if route, ok := sess.Redirect(); ok {
		resp.RedirectTo = route
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteSession handles DELETE /api/v1/session.
func (s *Server) DeleteSession(c echo.Context) error {
	if err := s.sessions.SignOut(c.Request().Context(), currentUser(c)); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(c echo.Context) error {
	query, err := queries.NewGetProfileQuery(currentUser(c))
	if err != nil {
		return badRequest(c, err)
	}

	view, err := s.handlers.GetProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newProfileResponse(view))
}

type UpdateProfileRequest struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	HostelName string `json:"hostel_name"`
	RoomNumber string `json:"room_number"`
}

// UpdateProfile handles PUT /api/v1/profile.
func (s *Server) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(currentUser(c), req.FullName, req.Phone, req.HostelName, req.RoomNumber)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.Profiles.UpdateDetails(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newProfileResponse(profileViewOf(updated)))
}
