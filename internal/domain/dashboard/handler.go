package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/calendar"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard", h.GetSummary, auth.RequireRole(auth.StaffRoles...))
}

// GetSummary serves the home stats. ?date= overrides the schedule day.
func (h *Handler) GetSummary(c echo.Context) error {
	day := h.svc.DefaultDay()
	if raw := c.QueryParam("date"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		day = d
	}
	s, err := h.svc.Summary(c.Request().Context(), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, s)
}
