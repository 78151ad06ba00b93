package enums

import (
	"fmt"
	"slices"
	"strings"
)

// Currency is the ISO code checkout totals are quoted in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
)

var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyINR: "₹",
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol is the display prefix for prices, falling back to the code itself.
func (c Currency) Symbol() string {
	if sym, ok := currencySymbols[c]; ok {
		return sym
	}
	return string(c)
}

// ParseCurrency accepts codes in any case.
func ParseCurrency(value string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(value)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid currency %q (want one of %s)", value, strings.Join(currencyCodes(), ", "))
	}
	return c, nil
}

func currencyCodes() []string {
	codes := make([]string, 0, len(currencySymbols))
	for c := range currencySymbols {
		codes = append(codes, string(c))
	}
	slices.Sort(codes)
	return codes
}
