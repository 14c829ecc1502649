package chat

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/chat", auth.RequireRole(auth.StaffRoles...))
	g.GET("/channels", h.ListChannels)
	g.GET("/channels/:id/messages", h.ListMessages)
	g.POST("/channels/:id/messages", h.SendMessage)
}

func (h *Handler) ListChannels(c echo.Context) error {
	channels, err := h.svc.ListChannels(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if channels == nil {
		channels = []*Channel{}
	}
	return c.JSON(http.StatusOK, channels)
}

func (h *Handler) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()
	msgs, err := h.svc.Messages(ctx, c.Param("id"), auth.UserIDFromContext(ctx))
	if errors.Is(err, db.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "channel not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, msgs)
}

type sendRequest struct {
	Content string `json:"content"`
}

func (h *Handler) SendMessage(c echo.Context) error {
	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Send(c.Request().Context(), c.Param("id"), req.Content)
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "channel not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}
