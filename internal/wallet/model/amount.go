package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountDecimals is the number of fractional digits of one coin.
const AmountDecimals = 12

// FormatAmount renders atomic units as a fixed-point coin amount.
func FormatAmount(atomic uint64) string {
	return decimal.NewFromUint64(atomic).Shift(-AmountDecimals).StringFixed(AmountDecimals)
}

// ParseAmount converts a decimal coin amount into atomic units.
func ParseAmount(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.Sign() <= 0 {
		return 0, fmt.Errorf("amount %q must be positive", s)
	}
	atomic := d.Shift(AmountDecimals)
	if !atomic.Equal(atomic.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than %d decimals", s, AmountDecimals)
	}
	if atomic.GreaterThan(decimal.NewFromUint64(^uint64(0))) {
		return 0, fmt.Errorf("amount %q overflows", s)
	}
	return atomic.BigInt().Uint64(), nil
}
