package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.February, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-15"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDate_ZeroMarshalsNull(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_UnmarshalAcceptsTimestamps(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-12-01T10:30:00Z"`), &d))
	assert.Equal(t, "2023-12-01", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20231201`), &d))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-05", d.String())

	require.NoError(t, d.Scan("2023-11-10"))
	assert.Equal(t, "2023-11-10", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDebtRecord_JSONShape(t *testing.T) {
	debt := DebtRecord{
		DebtID:          "DEBT003",
		AccountNumber:   "12345",
		Amount:          decimal.Zero,
		Status:          DebtStatusPaid,
		DateIncurred:    NewDate(2023, time.October, 1),
		DatePlaced:      NewDate(2023, time.November, 1),
		ReferringAgency: "Treasury Collections",
	}

	data, err := json.Marshal(debt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "DEBT003", decoded["debtId"])
	assert.Equal(t, "2023-10-01", decoded["dateIncurred"])
	assert.NotContains(t, decoded, "dueDate")
	assert.NotContains(t, decoded, "AccountNumber")
	assert.True(t, debt.IsPaid())
}

func TestEmptyDebtSummary_MarshalsEmptyArray(t *testing.T) {
	data, err := json.Marshal(EmptyDebtSummary())
	require.NoError(t, err)

	var decoded struct {
		Debts     []DebtRecord    `json:"debts"`
		TotalDebt decimal.Decimal `json:"totalDebt"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotNil(t, decoded.Debts)
	assert.Empty(t, decoded.Debts)
	assert.True(t, decoded.TotalDebt.IsZero())
	assert.Contains(t, string(data), `"debts":[]`)
}

func TestDebtSummary_CloneIsDeep(t *testing.T) {
	due := NewDate(2024, time.February, 20)
	original := &DebtSummary{
		AccountNumber: "12345",
		Debts:         []DebtRecord{{DebtID: "DEBT001", DueDate: &due}},
		TotalDebt:     decimal.RequireFromString("850.25"),
	}

	clone := original.Clone()
	clone.Debts[0].DebtID = "CHANGED"
	*clone.Debts[0].DueDate = NewDate(2030, time.January, 1)

	assert.Equal(t, "DEBT001", original.Debts[0].DebtID)
	assert.Equal(t, "2024-02-20", original.Debts[0].DueDate.String())
}

func TestConnectivityResult_Detail(t *testing.T) {
	assert.Equal(t, "401", ConnectivityResult{Reachable: true, StatusCode: 401}.Detail())
	assert.Equal(t, "connection refused", ConnectivityResult{Error: "connection refused"}.Detail())
	assert.Equal(t, "not configured", ConnectivityResult{Reason: "not configured"}.Detail())
}
