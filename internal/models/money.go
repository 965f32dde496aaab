package models

import "github.com/shopspring/decimal"

// Balances, debt amounts and totals go over the wire as JSON numbers; the
// portal formats them with toLocaleString. Decoding accepts either form.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
