package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a NUMERIC(10,2) amount stored as hundredths.
type Price int64

// MaxPrice is the largest value a NUMERIC(10,2) column holds.
const MaxPrice Price = 99_999_999_99

const (
	pricePlaces      = 2
	priceWholeDigits = 8
)

var maxPriceDecimal = decimal.New(int64(MaxPrice), -pricePlaces)

// PriceError reports a price literal that cannot be represented.
type PriceError struct {
	Msg string
}

func (e *PriceError) Error() string { return e.Msg }

var (
	errPriceSyntax    = &PriceError{Msg: "A valid number is required."}
	errPricePrecision = &PriceError{Msg: "Ensure that there are no more than 2 decimal places."}
	errPriceDigits    = &PriceError{Msg: "Ensure that there are no more than 10 digits in total."}
)

// ParsePrice parses a decimal literal such as "12", "12.5", "-0.99" or "1e2".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errPriceSyntax
	}
	return PriceFromDecimal(d)
}

// PriceFromDecimal checks that d fits NUMERIC(10,2) and converts it.
func PriceFromDecimal(d decimal.Decimal) (Price, error) {
	if d.IsZero() {
		return 0, nil
	}
	// Exponents are bounded before rescaling so "1e999999999" stays cheap.
	if d.Exponent() > priceWholeDigits {
		return 0, errPriceDigits
	}
	if d.Exponent() < -pricePlaces && int(-pricePlaces-d.Exponent()) > d.NumDigits() {
		return 0, errPricePrecision
	}
	if !d.Equal(d.Round(pricePlaces)) {
		return 0, errPricePrecision
	}
	if d.Abs().GreaterThan(maxPriceDecimal) {
		return 0, errPriceDigits
	}
	return Price(d.Shift(pricePlaces).IntPart()), nil
}

// Decimal returns the price with two decimal places.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -pricePlaces)
}

func (p Price) String() string {
	return p.Decimal().StringFixed(pricePlaces)
}

// MarshalJSON renders the price as a fixed two-decimal string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return errPriceSyntax
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errPriceSyntax
	}
	v, err := PriceFromDecimal(d)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Scan implements sql.Scanner. NUMERIC arrives as text from the pgx stdlib driver.
func (p *Price) Scan(src any) error {
	if src == nil {
		*p = 0
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("cannot scan %T into Price: %w", src, err)
	}
	v, err := PriceFromDecimal(d)
	if err != nil {
		return fmt.Errorf("scan price %s: %w", d, err)
	}
	*p = v
	return nil
}

// Value implements driver.Valuer.
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}
