package models

// Currency is the active display currency for prices.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// currencies is the fixed catalog offered by the dashboard.
var currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
}

// Currencies returns a copy of the supported currency catalog.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// CurrencyByCode looks up a catalog entry by its ISO code.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// DefaultCurrency is used when no currency has been persisted yet.
func DefaultCurrency() Currency {
	return currencies[0]
}
