package scheduling

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/submission"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole(auth.StaffRoles...))
	read.GET("/appointments", h.ListDay)
	read.GET("/appointments/timeline", h.GetTimeline)

	write := api.Group("", auth.RequireRole(auth.ClinicalRoles...))
	write.POST("/appointments", h.SubmitAppointment)
}

func (h *Handler) dayParam(c echo.Context) (calendar.Date, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return h.svc.DefaultDay(), nil
	}
	day, err := calendar.ParseDate(raw)
	if err != nil {
		return calendar.Date{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date: want YYYY-MM-DD")
	}
	return day, nil
}

func (h *Handler) ListDay(c echo.Context) error {
	day, err := h.dayParam(c)
	if err != nil {
		return err
	}
	d, err := h.svc.Day(c.Request().Context(), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetTimeline(c echo.Context) error {
	day, err := h.dayParam(c)
	if err != nil {
		return err
	}
	tl, err := h.svc.Timeline(c.Request().Context(), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tl)
}

func (h *Handler) SubmitAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	receipt, err := h.svc.Submit(c.Request().Context(), &a)
	if errors.Is(err, submission.ErrInvalid) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusAccepted, map[string]interface{}{"receipt": receipt, "appointment": &a})
}
