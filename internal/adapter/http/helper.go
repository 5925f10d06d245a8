package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	domainApplication "whitecoat-backend/internal/domain/application"
	domainDeal "whitecoat-backend/internal/domain/deal"
	domainInvestment "whitecoat-backend/internal/domain/investment"
	domainUser "whitecoat-backend/internal/domain/user"
	"whitecoat-backend/internal/finance"
	ucDeal "whitecoat-backend/internal/usecase/deal"
	ucInvestment "whitecoat-backend/internal/usecase/investment"
	"whitecoat-backend/pkg/id"
)

// HeaderUserID carries the caller's public id, set by the upstream
// identity layer after session verification.
const HeaderUserID = "Ax-User-Id"

func callerID(c echo.Context) (string, bool) {
	uid := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	if !id.Valid(uid) {
		return "", false
	}
	return uid, true
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderUserID})
}

// writeDomainError maps domain and usecase errors to HTTP responses. The
// core never logs or retries; mapping is the handler's job.
func writeDomainError(c echo.Context, err error) error {
	var belowMin *domainDeal.BelowMinimumError
	switch {
	case errors.As(err, &belowMin):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: belowMin.Error()})
	case errors.Is(err, domainDeal.ErrNotOpen),
		errors.Is(err, finance.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ucInvestment.ErrOnlyInvestors),
		errors.Is(err, ucDeal.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainUser.ErrNotFound),
		errors.Is(err, domainDeal.ErrNotFound),
		errors.Is(err, domainApplication.ErrNotFound),
		errors.Is(err, domainApplication.ErrProposalNotFound),
		errors.Is(err, domainInvestment.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
