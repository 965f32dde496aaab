package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// AccountUpdate maps allow-listed JSON field names to their new values.
type AccountUpdate map[string]string

type updatableField struct {
	column string
	set    func(*AccountRecord, string)
}

// updatableAccountFields is the allow-list for partial account updates.
// Anything not listed here is dropped before it reaches a store or the upstream.
var updatableAccountFields = map[string]updatableField{
	"email":      {column: "email", set: func(a *AccountRecord, v string) { a.Email = v }},
	"phone":      {column: "phone", set: func(a *AccountRecord, v string) { a.Phone = v }},
	"address1":   {column: "address1", set: func(a *AccountRecord, v string) { a.Address1 = v }},
	"address2":   {column: "address2", set: func(a *AccountRecord, v string) { a.Address2 = v }},
	"city":       {column: "city", set: func(a *AccountRecord, v string) { a.City = v }},
	"state":      {column: "state", set: func(a *AccountRecord, v string) { a.State = v }},
	"zipCode":    {column: "zip_code", set: func(a *AccountRecord, v string) { a.ZipCode = v }},
	"taxpayerId": {column: "taxpayer_id", set: func(a *AccountRecord, v string) { a.TaxpayerID = v }},
}

// IsUpdatableAccountField reports whether field may be changed by a partial update.
func IsUpdatableAccountField(field string) bool {
	_, ok := updatableAccountFields[field]
	return ok
}

// FilterAccountUpdate keeps only allow-listed keys from a decoded JSON object.
// JSON strings are taken verbatim, null becomes the empty string and any other
// JSON value keeps its literal text.
func FilterAccountUpdate(raw map[string]json.RawMessage) AccountUpdate {
	update := make(AccountUpdate)
	for field, value := range raw {
		if !IsUpdatableAccountField(field) {
			continue
		}
		update[field] = coerceJSONValue(value)
	}
	return update
}

func coerceJSONValue(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// Fields returns the updated field names in sorted order.
func (u AccountUpdate) Fields() []string {
	fields := make([]string, 0, len(u))
	for field := range u {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Columns converts the update into a column-keyed map for SQL stores.
func (u AccountUpdate) Columns() map[string]interface{} {
	columns := make(map[string]interface{}, len(u))
	for field, value := range u {
		if f, ok := updatableAccountFields[field]; ok {
			columns[f.column] = value
		}
	}
	return columns
}
