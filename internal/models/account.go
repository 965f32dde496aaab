package models

import (
	"github.com/shopspring/decimal"
)

const (
	AccountStatusActive = "Active"

	// PlaceholderValue is what the upstream mapping substitutes for missing text fields.
	PlaceholderValue = "N/A"
)

// AccountRecord is the identity and contact profile for one account.
// AccountNumber never changes after creation; only the allow-listed
// contact fields can be rewritten through AccountUpdate.
type AccountRecord struct {
	AccountNumber  string          `gorm:"column:account_number;type:varchar(32);primaryKey" json:"accountNumber"`
	AccountHolder  string          `gorm:"column:account_holder;type:varchar(255)" json:"accountHolder"`
	Status         string          `gorm:"column:status;type:varchar(50)" json:"status"`
	Email          string          `gorm:"column:email;type:varchar(255)" json:"email"`
	Phone          string          `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Address1       string          `gorm:"column:address1;type:varchar(255)" json:"address1"`
	Address2       string          `gorm:"column:address2;type:varchar(255)" json:"address2"`
	City           string          `gorm:"column:city;type:varchar(100)" json:"city"`
	State          string          `gorm:"column:state;type:varchar(50)" json:"state"`
	ZipCode        string          `gorm:"column:zip_code;type:varchar(20)" json:"zipCode"`
	TaxpayerID     string          `gorm:"column:taxpayer_id;type:varchar(20)" json:"taxpayerId"`
	CurrentBalance decimal.Decimal `gorm:"column:current_balance;type:decimal(15,2);not null;default:0" json:"currentBalance"`
}

func (AccountRecord) TableName() string {
	return "fallback_accounts"
}

// Clone returns a copy that shares no state with the receiver.
func (a *AccountRecord) Clone() *AccountRecord {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

// Apply overwrites exactly the fields present in the update.
func (a *AccountRecord) Apply(update AccountUpdate) {
	for field, value := range update {
		if f, ok := updatableAccountFields[field]; ok {
			f.set(a, value)
		}
	}
}
