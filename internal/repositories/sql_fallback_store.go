package repositories

import (
	"errors"
	"fmt"

	"debt-portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sqlFallbackStore keeps fallback records in a gorm database. The service
// runs it against in-memory sqlite, so records still live only as long as
// the process.
type sqlFallbackStore struct {
	db *gorm.DB
}

// NewSQLFallbackStore creates a fallback store backed by db. Tables must
// already be migrated.
func NewSQLFallbackStore(db *gorm.DB) FallbackStoreInterface {
	return &sqlFallbackStore{db: db}
}

func (r *sqlFallbackStore) Seed(accounts []models.AccountRecord, summaries []models.DebtSummary) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range accounts {
			account := accounts[i]
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&account).Error; err != nil {
				return fmt.Errorf("failed to seed account %s: %w", account.AccountNumber, err)
			}
		}

		for i := range summaries {
			summary := summaries[i].Clone()
			debts := summary.Debts
			summary.Debts = nil

			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit(clause.Associations).Create(summary).Error; err != nil {
				return fmt.Errorf("failed to seed debt summary %s: %w", summary.AccountNumber, err)
			}

			for j := range debts {
				debts[j].AccountNumber = summary.AccountNumber
				debts[j].Position = j
				if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&debts[j]).Error; err != nil {
					return fmt.Errorf("failed to seed debt %s: %w", debts[j].DebtID, err)
				}
			}
		}

		return nil
	})
}

func (r *sqlFallbackStore) GetAccount(accountID string) (*models.AccountRecord, error) {
	var account models.AccountRecord
	if err := r.db.Where("account_number = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get fallback account: %w", err)
	}
	return &account, nil
}

// MergeAccount overwrites only the updated columns. Concurrent merges are not
// versioned; the last statement to run wins per column.
func (r *sqlFallbackStore) MergeAccount(accountID string, update models.AccountUpdate) (*models.AccountRecord, error) {
	var merged models.AccountRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.AccountRecord{}).Where("account_number = ?", accountID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check fallback account: %w", err)
		}
		if exists == 0 {
			return ErrAccountNotFound
		}

		if columns := update.Columns(); len(columns) > 0 {
			if err := tx.Model(&models.AccountRecord{}).Where("account_number = ?", accountID).Updates(columns).Error; err != nil {
				return fmt.Errorf("failed to merge fallback account: %w", err)
			}
		}

		return tx.Where("account_number = ?", accountID).First(&merged).Error
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &merged, nil
}

func (r *sqlFallbackStore) GetDebtSummary(accountID string) (*models.DebtSummary, error) {
	var summary models.DebtSummary
	err := r.db.
		Preload("Debts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("account_number = ?", accountID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtsNotFound
		}
		return nil, fmt.Errorf("failed to get fallback debts: %w", err)
	}

	if summary.Debts == nil {
		summary.Debts = []models.DebtRecord{}
	}
	return &summary, nil
}

func (r *sqlFallbackStore) FindDebt(debtID string) (*models.DebtRecord, error) {
	var debt models.DebtRecord
	if err := r.db.Where("debt_id = ?", debtID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("failed to find fallback debt: %w", err)
	}
	return &debt, nil
}
