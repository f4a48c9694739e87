package model

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places stored for every amount.
const MoneyScale int32 = 2

// maxAmount is the first value that no longer fits NUMERIC(14,2).
var maxAmount = decimal.New(1, 12)

// ValidAmount reports whether d is a positive amount in whole cents that fits the money columns.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(MoneyScale)) && d.LessThan(maxAmount)
}
