package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"whitecoat-backend/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	dto, err := h.uc.Overview(c.Request().Context(), userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
