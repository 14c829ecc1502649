package task

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/db"
	"github.com/ehr/opsboard/internal/platform/submission"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole(auth.StaffRoles...)

	read := api.Group("", role)
	read.GET("/tasks/board", h.GetBoard)

	write := api.Group("", role)
	write.POST("/tasks", h.SubmitTask)
	write.PATCH("/tasks/:id/status", h.UpdateStatus)
}

func (h *Handler) GetBoard(c echo.Context) error {
	b, err := h.svc.Board(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

type statusRequest struct {
	Status Status `json:"status"`
}

type moveResponse struct {
	Task  Card  `json:"task"`
	Board Board `json:"board"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t, board, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, submission.ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, moveResponse{
		Task:  Card{Task: t, PriorityVariant: t.Priority.Variant()},
		Board: board,
	})
}

func (h *Handler) SubmitTask(c echo.Context) error {
	var t Task
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	receipt, err := h.svc.Submit(c.Request().Context(), &t)
	if errors.Is(err, submission.ErrInvalid) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusAccepted, map[string]interface{}{"receipt": receipt, "task": &t})
}
