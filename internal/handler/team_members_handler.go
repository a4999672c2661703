package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/repository"
	"github.com/octobees/partner-intelligence/api/internal/service"
)

// TeamMembersHandler exposes the sales team roster endpoints.
type TeamMembersHandler struct {
	team *service.TeamService
}

// NewTeamMembersHandler creates a new handler instance.
func NewTeamMembersHandler(team *service.TeamService) *TeamMembersHandler {
	return &TeamMembersHandler{team: team}
}

// List handles GET /team-members requests.
func (h *TeamMembersHandler) List(c echo.Context) error {
	members, err := h.team.ListTeamMembers(c.Request().Context())
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusOK, "team members retrieved", members)
}

// Create handles POST /team-members requests.
func (h *TeamMembersHandler) Create(c echo.Context) error {
	var req dto.CreateTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request payload")
	}

	member, err := h.team.CreateTeamMember(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrMemberEmailTaken) {
			return Error(c, http.StatusConflict, "email already in use")
		}
		return ServiceError(c, err)
	}
	return Success(c, http.StatusCreated, "team member created", member)
}
