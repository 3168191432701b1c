package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatEther renders a base-unit amount as a decimal ether string.
// At least one fractional digit is kept, so 1e18 renders as "1.0".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return ""
	}
	return FormatUnits(wei, ETHER_DECIMALS)
}

// FormatUnits renders a base-unit amount with the given number of decimals
func FormatUnits(amount *big.Int, decimals int) string {
	negative := amount.Sign() < 0
	abs := new(big.Int).Abs(amount)

	base := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(abs, base, new(big.Int))

	fracStr := frac.String()
	if decimals > 0 {
		fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	result := whole.String() + "." + fracStr
	if negative {
		return "-" + result
	}
	return result
}

// ParseEther parses a decimal ether string into base units
func ParseEther(value string) (*big.Int, error) {
	return ParseUnits(value, ETHER_DECIMALS)
}

// ParseUnits parses a non-negative decimal string into base units with the given decimals
func ParseUnits(value string, decimals int) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %s has more than %d decimals", value, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	amount, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok || amount.Sign() < 0 || strings.ContainsAny(whole+frac, "+-") {
		return nil, fmt.Errorf("invalid amount: %s", value)
	}
	return amount, nil
}
