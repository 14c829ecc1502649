package inventory

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/db"
	"github.com/ehr/opsboard/internal/platform/submission"
	"github.com/ehr/opsboard/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole(auth.StaffRoles...))
	read.GET("/inventory", h.ListItems)
	read.GET("/inventory/summary", h.GetSummary)
	read.GET("/inventory/:id", h.GetItem)

	write := api.Group("", auth.RequireRole("pharmacist", "staff"))
	write.POST("/inventory", h.SubmitItem)
}

type submitResponse struct {
	Receipt submission.Receipt `json:"receipt"`
	Item    *Item              `json:"item"`
}

func (h *Handler) ListItems(c echo.Context) error {
	pg := pagination.FromContext(c)
	rows, err := h.svc.ListRows(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.Page(rows, pg))
}

func (h *Handler) GetItem(c echo.Context) error {
	it, err := h.svc.GetItem(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "inventory item not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, NewRow(*it, h.svc.Reference()))
}

func (h *Handler) GetSummary(c echo.Context) error {
	sum, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) SubmitItem(c echo.Context) error {
	var it Item
	if err := c.Bind(&it); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	receipt, err := h.svc.Submit(c.Request().Context(), &it)
	if errors.Is(err, submission.ErrInvalid) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusAccepted, submitResponse{Receipt: receipt, Item: &it})
}
