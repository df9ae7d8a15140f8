package utils

import (
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals every displayed amount carries.
const DisplayPrecision = 2

// Placeholder is shown in place of an amount that cannot be computed.
const Placeholder = "--"

// FormatRate renders the exchange rate with the local currency prefix.
// Example: 36.5 returns "Bs 36.50", an unset rate returns "Bs --"
func FormatRate(rate decimal.NullDecimal) string {
	symbol := domain.CurrencyLocal.Symbol()
	if !rate.Valid {
		return symbol + " " + Placeholder
	}
	return symbol + " " + FormatWithPrecision(rate.Decimal, DisplayPrecision)
}

// FormatAmount renders a reference-currency amount in the requested display currency.
// Local amounts are converted with rate and need it to be set and positive.
// Example: 1.5 in local at rate 36.5 returns "Bs 54.75"
// Example: 1.5 in reference returns "$ 1.50" whatever the rate
func FormatAmount(amount decimal.NullDecimal, currency domain.DisplayCurrency, rate decimal.NullDecimal) string {
	if !amount.Valid {
		return Placeholder
	}
	symbol := currency.Symbol()
	if currency == domain.CurrencyReference {
		return symbol + " " + FormatWithPrecision(amount.Decimal, DisplayPrecision)
	}
	if !rate.Valid || !rate.Decimal.IsPositive() {
		return symbol + " " + Placeholder
	}
	return symbol + " " + FormatWithPrecision(amount.Decimal.Mul(rate.Decimal), DisplayPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
