package domain

// DisplayCurrency selects which of the two supported currencies amounts are shown in.
type DisplayCurrency string

const (
	CurrencyLocal     DisplayCurrency = "local"     // Bolivars, converted with the exchange rate
	CurrencyReference DisplayCurrency = "reference" // Dollars, the canonical pricing currency
)

const (
	LocalSymbol     = "Bs"
	ReferenceSymbol = "$"
	RateLabel       = "BCV"
)

// ParseDisplayCurrency maps a stored tag to a DisplayCurrency.
// Anything other than the reference tag reads as local.
func ParseDisplayCurrency(tag string) DisplayCurrency {
	if tag == string(CurrencyReference) {
		return CurrencyReference
	}
	return CurrencyLocal
}

// Toggle returns the other currency.
func (c DisplayCurrency) Toggle() DisplayCurrency {
	if c == CurrencyReference {
		return CurrencyLocal
	}
	return CurrencyReference
}

// Symbol is the prefix used when formatting amounts.
func (c DisplayCurrency) Symbol() string {
	if c == CurrencyReference {
		return ReferenceSymbol
	}
	return LocalSymbol
}

// Label is the short name shown next to the toggle.
func (c DisplayCurrency) Label() string {
	if c == CurrencyReference {
		return "USD"
	}
	return LocalSymbol
}

// RateDisplay carries the strings of the exchange-rate widget.
type RateDisplay struct {
	RateLabel     string          `json:"rateLabel"`
	RateValue     string          `json:"rateValue"`
	RawRate       string          `json:"rawRate"`
	Currency      DisplayCurrency `json:"currency"`
	CurrencyLabel string          `json:"currencyLabel"`
	ToggleLabel   string          `json:"toggleLabel"`
	TogglePressed bool            `json:"togglePressed"`
}

// ToggleLabel is the caption of the button that switches away from c.
func (c DisplayCurrency) ToggleLabel() string {
	if c == CurrencyReference {
		return "Show in bolivars"
	}
	return "Show in dollars"
}
