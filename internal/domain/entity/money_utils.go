package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MoneyUtils contains utility functions for handling monetary values

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParsePrice validates a string price and converts it to a decimal
// The value must be non-negative with at most two decimal places
func ParsePrice(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidPrice)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidPrice, err.Error())
	}
	if value.IsNegative() {
		return decimal.Zero, errs.ErrInvalidPrice
	}
	if -value.Exponent() > MaxDecimalPlaces && !value.Equal(value.Round(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidPrice, MaxDecimalPlaces)
	}

	return value.Round(MaxDecimalPlaces), nil
}

// RoundMoney rounds half away from zero to two decimal places
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MaxDecimalPlaces)
}

// FormatMoney renders an amount with exactly 2 decimal places
// For example:
// - 5 becomes "5.00"
// - 1.25 becomes "1.25"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// CostForHours multiplies hours by the hourly price and rounds the result to cents
func CostForHours(hours float64, pricePerHour decimal.Decimal) decimal.Decimal {
	if hours <= 0 {
		return decimal.Zero
	}
	return RoundMoney(decimal.NewFromFloat(hours).Mul(pricePerHour))
}
