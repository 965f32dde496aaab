package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"debt-portal/internal/models"

	"github.com/shopspring/decimal"
)

// The upstream is inconsistent about key casing. Each canonical field lists
// the source keys it accepts in priority order; the first non-empty value wins.
//
// Mapping is best effort: a value of the wrong shape falls back to the
// field's default and is reported as an issue, so one bad field never
// discards an otherwise good upstream answer.

type textMapping[T any] struct {
	keys     []string
	fallback func(requestedID string) string
	target   func(record *T) *string
}

type amountMapping[T any] struct {
	keys   []string
	target func(record *T) *decimal.Decimal
}

func placeholder(string) string { return models.PlaceholderValue }
func blank(string) string       { return "" }
func requestedID(id string) string {
	return id
}

var accountTextMappings = []textMapping[models.AccountRecord]{
	{keys: []string{"AccountNumber", "accountNumber"}, fallback: requestedID, target: func(a *models.AccountRecord) *string { return &a.AccountNumber }},
	{keys: []string{"AccountHolder", "accountHolder"}, fallback: placeholder, target: func(a *models.AccountRecord) *string { return &a.AccountHolder }},
	{keys: []string{"Status", "status"}, fallback: func(string) string { return models.AccountStatusActive }, target: func(a *models.AccountRecord) *string { return &a.Status }},
	{keys: []string{"Email", "email"}, fallback: placeholder, target: func(a *models.AccountRecord) *string { return &a.Email }},
	{keys: []string{"Phone", "phone"}, fallback: placeholder, target: func(a *models.AccountRecord) *string { return &a.Phone }},
	{keys: []string{"Address1", "address1"}, fallback: blank, target: func(a *models.AccountRecord) *string { return &a.Address1 }},
	{keys: []string{"Address2", "address2"}, fallback: blank, target: func(a *models.AccountRecord) *string { return &a.Address2 }},
	{keys: []string{"City", "city"}, fallback: blank, target: func(a *models.AccountRecord) *string { return &a.City }},
	{keys: []string{"State", "state"}, fallback: blank, target: func(a *models.AccountRecord) *string { return &a.State }},
	{keys: []string{"ZipCode", "zipCode"}, fallback: blank, target: func(a *models.AccountRecord) *string { return &a.ZipCode }},
	{keys: []string{"TaxpayerId", "taxpayerId"}, fallback: blank, target: func(a *models.AccountRecord) *string { return &a.TaxpayerID }},
}

var accountAmountMappings = []amountMapping[models.AccountRecord]{
	{keys: []string{"CurrentBalance", "currentBalance"}, target: func(a *models.AccountRecord) *decimal.Decimal { return &a.CurrentBalance }},
}

var debtTextMappings = []textMapping[models.DebtRecord]{
	{keys: []string{"DebtId", "debtId", "id"}, fallback: blank, target: func(d *models.DebtRecord) *string { return &d.DebtID }},
	{keys: []string{"Status", "status"}, fallback: blank, target: func(d *models.DebtRecord) *string { return &d.Status }},
	{keys: []string{"ReferringAgency", "referringAgency"}, fallback: blank, target: func(d *models.DebtRecord) *string { return &d.ReferringAgency }},
	{keys: []string{"Description", "description"}, fallback: blank, target: func(d *models.DebtRecord) *string { return &d.Description }},
}

var debtAmountMappings = []amountMapping[models.DebtRecord]{
	{keys: []string{"Amount", "amount"}, target: func(d *models.DebtRecord) *decimal.Decimal { return &d.Amount }},
}

var (
	debtDueDateKeys      = []string{"DueDate", "dueDate"}
	debtDateIncurredKeys = []string{"DateIncurred", "dateIncurred"}
	debtDatePlacedKeys   = []string{"DatePlaced", "datePlaced"}

	summaryDebtsKeys = []string{"debts", "Debts"}
	summaryTotalKeys = []string{"totalDebt", "TotalDebt"}
)

var errNotAnObject = errors.New("upstream body is not a JSON object")

type rawRecord map[string]any

func decodeRawRecord(body []byte) (rawRecord, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode upstream body: %w", err)
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, errNotAnObject
	}
	return rawRecord(object), nil
}

// first returns the value of the first candidate key that is present and
// non-empty. Empty means null, "", false or a numeric zero.
func (r rawRecord) first(keys []string) (any, bool) {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || isEmptyValue(value) {
			continue
		}
		return value, true
	}
	return nil, false
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return err == nil && d.IsZero()
	default:
		return false
	}
}

// mappingIssues collects fields that could not be used as sent.
type mappingIssues []string

func (m *mappingIssues) add(format string, args ...any) {
	*m = append(*m, fmt.Sprintf(format, args...))
}

func (r rawRecord) text(keys []string, issues *mappingIssues) (string, bool) {
	value, ok := r.first(keys)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return "true", true
	default:
		issues.add("field %s: expected text, got %T", keys[0], value)
		return "", false
	}
}

// parseAmount accepts plain numbers and display strings such as "$1,250.50".
func parseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(text))
	return decimal.NewFromString(cleaned)
}

func (r rawRecord) amount(keys []string, issues *mappingIssues) decimal.Decimal {
	value, ok := r.first(keys)
	if !ok {
		return decimal.Zero
	}

	var text string
	switch v := value.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = v
	default:
		issues.add("field %s: expected number, got %T", keys[0], value)
		return decimal.Zero
	}

	d, err := parseAmount(text)
	if err != nil {
		issues.add("field %s: %q is not an amount", keys[0], text)
		return decimal.Zero
	}
	return d
}

func (r rawRecord) date(keys []string, issues *mappingIssues) *models.Date {
	text, ok := r.text(keys, issues)
	if !ok {
		return nil
	}
	d, err := models.ParseDate(text)
	if err != nil {
		issues.add("field %s: %q is not a date", keys[0], text)
		return nil
	}
	return &d
}

func applyMappings[T any](raw rawRecord, record *T, requested string, texts []textMapping[T], amounts []amountMapping[T], issues *mappingIssues) {
	for _, m := range texts {
		value, ok := raw.text(m.keys, issues)
		if !ok {
			value = m.fallback(requested)
		}
		*m.target(record) = value
	}

	for _, m := range amounts {
		*m.target(record) = raw.amount(m.keys, issues)
	}
}

func mapAccount(raw rawRecord, accountID string) (*models.AccountRecord, mappingIssues) {
	var issues mappingIssues
	account := &models.AccountRecord{}
	applyMappings(raw, account, accountID, accountTextMappings, accountAmountMappings, &issues)
	return account, issues
}

func mapDebt(raw rawRecord, issues *mappingIssues) models.DebtRecord {
	var debt models.DebtRecord
	applyMappings(raw, &debt, "", debtTextMappings, debtAmountMappings, issues)

	debt.DueDate = raw.date(debtDueDateKeys, issues)
	if incurred := raw.date(debtDateIncurredKeys, issues); incurred != nil {
		debt.DateIncurred = *incurred
	}
	if placed := raw.date(debtDatePlacedKeys, issues); placed != nil {
		debt.DatePlaced = *placed
	}
	return debt
}

// mapDebtSummary keeps every debt entry that is an object, in upstream order.
func mapDebtSummary(raw rawRecord, accountID string) (*models.DebtSummary, mappingIssues) {
	var issues mappingIssues
	summary := models.EmptyDebtSummary()
	summary.AccountNumber = accountID

	if value, ok := raw.first(summaryDebtsKeys); ok {
		items, isArray := value.([]any)
		if !isArray {
			issues.add("field %s: expected array, got %T", summaryDebtsKeys[0], value)
		}
		for i, item := range items {
			object, isObject := item.(map[string]any)
			if !isObject {
				issues.add("debts[%d]: expected object, got %T", i, item)
				continue
			}
			debt := mapDebt(rawRecord(object), &issues)
			debt.AccountNumber = accountID
			debt.Position = len(summary.Debts)
			summary.Debts = append(summary.Debts, debt)
		}
	}

	summary.TotalDebt = raw.amount(summaryTotalKeys, &issues)
	return summary, issues
}
