package handlers

import (
	"errors"
	"net/http"

	apierrors "debt-portal/internal/errors"
	"debt-portal/internal/services"

	"github.com/labstack/echo/v4"
)

type DebtHandler struct {
	gateway services.RecordGatewayInterface
}

func NewDebtHandler(gateway services.RecordGatewayInterface) *DebtHandler {
	return &DebtHandler{gateway: gateway}
}

// GetDebts returns the debt summary for an account. Unknown accounts get an
// empty summary rather than an error.
// @Summary Get debts for account
// @Tags Debts
// @Produce json
// @Param accountId path string true "Account number"
// @Success 200 {object} models.DebtSummary
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /debts/{accountId} [get]
func (h *DebtHandler) GetDebts(c echo.Context) error {
	accountID := c.Param("accountId")
	if accountID == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("accountId is required"))
	}

	summary, err := h.gateway.GetDebts(c.Request().Context(), accountID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetDebt returns one debt from the fallback store
// @Summary Get debt detail
// @Tags Debts
// @Produce json
// @Param debtId path string true "Debt identifier"
// @Success 200 {object} models.DebtRecord
// @Failure 404 {object} errors.ErrorResponse "DEBT_001 - Debt not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /debt/{debtId} [get]
func (h *DebtHandler) GetDebt(c echo.Context) error {
	debtID := c.Param("debtId")
	if debtID == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("debtId is required"))
	}

	debt, err := h.gateway.GetDebtDetail(c.Request().Context(), debtID)
	if err != nil {
		if errors.Is(err, services.ErrDebtNotFound) {
			return SendError(c, apierrors.DebtNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, debt)
}
