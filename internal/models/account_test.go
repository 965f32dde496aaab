package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestFilterAccountUpdate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected AccountUpdate
	}{
		{
			name:     "keeps allow-listed fields",
			body:     `{"email":"a@b.com","zipCode":"22150"}`,
			expected: AccountUpdate{"email": "a@b.com", "zipCode": "22150"},
		},
		{
			name:     "drops unknown and protected fields",
			body:     `{"email":"a@b.com","bogusField":"x","accountNumber":"999","currentBalance":0,"status":"Closed"}`,
			expected: AccountUpdate{"email": "a@b.com"},
		},
		{
			name:     "null becomes empty string",
			body:     `{"address2":null}`,
			expected: AccountUpdate{"address2": ""},
		},
		{
			name:     "non-string values keep their JSON text",
			body:     `{"zipCode":22150,"phone":true}`,
			expected: AccountUpdate{"zipCode": "22150", "phone": "true"},
		},
		{
			name:     "empty object",
			body:     `{}`,
			expected: AccountUpdate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterAccountUpdate(decodeRaw(t, tt.body)))
		})
	}
}

func TestIsUpdatableAccountField(t *testing.T) {
	allowed := []string{"address1", "address2", "city", "email", "phone", "state", "taxpayerId", "zipCode"}
	for _, field := range allowed {
		assert.True(t, IsUpdatableAccountField(field), field)
	}
	assert.Len(t, updatableAccountFields, len(allowed))

	for _, field := range []string{"accountNumber", "accountHolder", "status", "currentBalance", "Email", ""} {
		assert.False(t, IsUpdatableAccountField(field), field)
	}
}

func TestAccountRecord_Apply(t *testing.T) {
	account := &AccountRecord{
		AccountNumber:  "12345",
		AccountHolder:  "John Doe",
		Email:          "john.doe@example.com",
		City:           "Springfield",
		CurrentBalance: decimal.RequireFromString("1250.50"),
	}

	account.Apply(AccountUpdate{
		"email":      "new@example.com",
		"zipCode":    "10001",
		"taxpayerId": "987-65-4321",
	})

	assert.Equal(t, "new@example.com", account.Email)
	assert.Equal(t, "10001", account.ZipCode)
	assert.Equal(t, "987-65-4321", account.TaxpayerID)
	assert.Equal(t, "Springfield", account.City)
	assert.Equal(t, "12345", account.AccountNumber)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(account.CurrentBalance))
}

func TestAccountRecord_ApplyIgnoresUnknownKeys(t *testing.T) {
	account := &AccountRecord{AccountNumber: "12345", Status: AccountStatusActive}

	account.Apply(AccountUpdate{"accountNumber": "99999", "status": "Closed"})

	assert.Equal(t, "12345", account.AccountNumber)
	assert.Equal(t, AccountStatusActive, account.Status)
}

func TestAccountRecord_Clone(t *testing.T) {
	original := &AccountRecord{AccountNumber: "12345", Email: "a@b.com"}
	clone := original.Clone()
	clone.Email = "changed@b.com"

	assert.Equal(t, "a@b.com", original.Email)
	assert.Nil(t, (*AccountRecord)(nil).Clone())
}

func TestAccountUpdate_Columns(t *testing.T) {
	update := AccountUpdate{"zipCode": "22150", "taxpayerId": "1", "address1": "x"}

	assert.Equal(t, map[string]interface{}{
		"zip_code":    "22150",
		"taxpayer_id": "1",
		"address1":    "x",
	}, update.Columns())
	assert.Equal(t, []string{"address1", "taxpayerId", "zipCode"}, update.Fields())
}
