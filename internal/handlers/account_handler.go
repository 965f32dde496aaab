package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apierrors "debt-portal/internal/errors"
	"debt-portal/internal/models"
	"debt-portal/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves account records through the record gateway
type AccountHandler struct {
	gateway services.RecordGatewayInterface
}

func NewAccountHandler(gateway services.RecordGatewayInterface) *AccountHandler {
	return &AccountHandler{gateway: gateway}
}

// GetAccount returns one account record
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account number"
// @Success 200 {object} models.AccountRecord
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Upstream unavailable and no fallback record"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /account/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID := c.Param("accountId")
	if accountID == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("accountId is required"))
	}

	account, err := h.gateway.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			return SendError(c, apierrors.AccountNotFound)
		case errors.Is(err, services.ErrServiceUnavailable):
			return SendError(c, apierrors.SystemServiceUnavailable)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, account)
}

// UpdateAccount applies an allow-listed partial update
// @Summary Update account contact details
// @Description Only email, phone, address1, address2, city, state, zipCode and taxpayerId are applied; other keys are ignored.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account number"
// @Success 200 {object} models.AccountRecord
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - JSON body is not an object"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /account/{accountId} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID := c.Param("accountId")
	if accountID == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("accountId is required"))
	}

	// Bodies that are not declared as JSON carry no fields, the same as an
	// empty object. A declared JSON body must be an object.
	var raw map[string]json.RawMessage
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := (&echo.DefaultBinder{}).BindBody(c, &raw); err != nil {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Request body must be a JSON object"))
		}
	}

	account, err := h.gateway.UpdateAccount(c.Request().Context(), accountID, models.FilterAccountUpdate(raw))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}
