package repositories

import (
	"time"

	"debt-portal/internal/models"

	"github.com/shopspring/decimal"
)

// SeedAccountID is the only account with fallback data.
const SeedAccountID = "12345"

// SeedAccounts returns the fixed fallback account records.
func SeedAccounts() []models.AccountRecord {
	return []models.AccountRecord{
		{
			AccountNumber:  SeedAccountID,
			AccountHolder:  "John Doe",
			Status:         models.AccountStatusActive,
			Email:          "john.doe@example.com",
			Phone:          "+1 (555) 123-4567",
			Address1:       "123 Main Street",
			Address2:       "Apt 4B",
			City:           "Springfield",
			State:          "VA",
			ZipCode:        "22150",
			TaxpayerID:     "123-45-6789",
			CurrentBalance: decimal.RequireFromString("1250.50"),
		},
	}
}

// SeedDebtSummaries returns the fixed fallback debts, one summary per account.
func SeedDebtSummaries() []models.DebtSummary {
	return []models.DebtSummary{
		{
			AccountNumber: SeedAccountID,
			Debts: []models.DebtRecord{
				{
					DebtID:          "DEBT001",
					Amount:          decimal.RequireFromString("850.25"),
					DueDate:         models.DatePtr(models.NewDate(2024, time.February, 15)),
					Status:          models.DebtStatusActive,
					DateIncurred:    models.NewDate(2023, time.December, 1),
					DatePlaced:      models.NewDate(2024, time.January, 5),
					ReferringAgency: "Consumer Finance Bureau",
				},
				{
					DebtID:          "DEBT002",
					Amount:          decimal.RequireFromString("400.25"),
					DueDate:         models.DatePtr(models.NewDate(2024, time.February, 20)),
					Status:          models.DebtStatusActive,
					DateIncurred:    models.NewDate(2023, time.November, 10),
					DatePlaced:      models.NewDate(2023, time.December, 15),
					ReferringAgency: "Treasury Collections",
				},
				{
					DebtID:          "DEBT003",
					Amount:          decimal.Zero,
					Status:          models.DebtStatusPaid,
					DateIncurred:    models.NewDate(2023, time.October, 1),
					DatePlaced:      models.NewDate(2023, time.November, 1),
					ReferringAgency: "Treasury Collections",
				},
				{
					DebtID:          "DEBT004",
					Amount:          decimal.RequireFromString("600.00"),
					DueDate:         models.DatePtr(models.NewDate(2024, time.March, 10)),
					Status:          models.DebtStatusInGarnishment,
					DateIncurred:    models.NewDate(2023, time.September, 15),
					DatePlaced:      models.NewDate(2024, time.February, 20),
					ReferringAgency: "Treasury Collections",
				},
			},
			TotalDebt: decimal.RequireFromString("1850.50"),
		},
	}
}

// SeedStore loads the fixed fallback records into store.
func SeedStore(store FallbackStoreInterface) error {
	return store.Seed(SeedAccounts(), SeedDebtSummaries())
}
