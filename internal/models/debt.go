package models

import (
	"github.com/shopspring/decimal"
)

const (
	DebtStatusActive        = "Active"
	DebtStatusPaid          = "Paid"
	DebtStatusInGarnishment = "In Garnishment"
)

// DebtRecord is one delinquent obligation associated with an account.
type DebtRecord struct {
	DebtID          string          `gorm:"column:debt_id;type:varchar(64);primaryKey" json:"debtId"`
	AccountNumber   string          `gorm:"column:account_number;type:varchar(32);index;not null" json:"-"`
	Position        int             `gorm:"column:position;not null;default:0" json:"-"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(15,2);not null;default:0" json:"amount"`
	DueDate         *Date           `gorm:"column:due_date" json:"dueDate,omitempty"`
	Status          string          `gorm:"column:status;type:varchar(50)" json:"status"`
	DateIncurred    Date            `gorm:"column:date_incurred" json:"dateIncurred"`
	DatePlaced      Date            `gorm:"column:date_placed" json:"datePlaced"`
	ReferringAgency string          `gorm:"column:referring_agency;type:varchar(255)" json:"referringAgency"`
	Description     string          `gorm:"column:description;type:varchar(255)" json:"description,omitempty"`
}

func (DebtRecord) TableName() string {
	return "fallback_debts"
}

// IsPaid reports whether the debt has been settled in full.
func (d *DebtRecord) IsPaid() bool {
	return d.Status == DebtStatusPaid
}

// DebtSummary is the ordered list of debts for one account plus the total owed.
type DebtSummary struct {
	AccountNumber string          `gorm:"column:account_number;type:varchar(32);primaryKey" json:"-"`
	Debts         []DebtRecord    `gorm:"foreignKey:AccountNumber;references:AccountNumber" json:"debts"`
	TotalDebt     decimal.Decimal `gorm:"column:total_debt;type:decimal(15,2);not null;default:0" json:"totalDebt"`
}

func (DebtSummary) TableName() string {
	return "fallback_debt_summaries"
}

// EmptyDebtSummary is what callers get when an account has no known debts.
func EmptyDebtSummary() *DebtSummary {
	return &DebtSummary{
		Debts:     []DebtRecord{},
		TotalDebt: decimal.Zero,
	}
}

// Clone returns a deep copy of the summary.
func (s *DebtSummary) Clone() *DebtSummary {
	if s == nil {
		return nil
	}
	clone := &DebtSummary{
		AccountNumber: s.AccountNumber,
		Debts:         make([]DebtRecord, len(s.Debts)),
		TotalDebt:     s.TotalDebt,
	}
	copy(clone.Debts, s.Debts)
	for i := range clone.Debts {
		if due := clone.Debts[i].DueDate; due != nil {
			d := *due
			clone.Debts[i].DueDate = &d
		}
	}
	return clone
}
