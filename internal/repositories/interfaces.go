package repositories

import (
	"debt-portal/internal/models"
)

// FallbackStoreInterface holds the records served when the upstream cannot answer.
// Implementations return copies; callers never alias stored records.
type FallbackStoreInterface interface {
	GetAccount(accountID string) (*models.AccountRecord, error)
	MergeAccount(accountID string, update models.AccountUpdate) (*models.AccountRecord, error)
	GetDebtSummary(accountID string) (*models.DebtSummary, error)
	FindDebt(debtID string) (*models.DebtRecord, error)
	Seed(accounts []models.AccountRecord, summaries []models.DebtSummary) error
}
