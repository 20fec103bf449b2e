package units

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is an ether denomination.
type Unit string

const (
	Wei    Unit = "wei"
	Kwei   Unit = "kwei"
	Mwei   Unit = "mwei"
	Gwei   Unit = "gwei"
	Szabo  Unit = "szabo"
	Finney Unit = "finney"
	Ether  Unit = "ether"
)

// exponents maps each denomination to its power-of-ten scale relative to wei
// (1 ether = 10^18 wei).
var exponents = map[Unit]int32{
	Wei:    0,
	Kwei:   3,
	Mwei:   6,
	Gwei:   9,
	Szabo:  12,
	Finney: 15,
	Ether:  18,
}

// Valid reports whether u names a known denomination.
func Valid(u Unit) bool {
	_, ok := exponents[u]
	return ok
}

// Parse returns the denomination named by s, case-insensitively.
func Parse(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !Valid(u) {
		return "", fmt.Errorf("unknown denomination %q", s)
	}
	return u, nil
}

// Convert rescales a numeric string from one denomination to another.
// The arithmetic is exact decimal, never floating point: wei amounts carry
// up to 18 fractional digits once expressed in ether and a float64 cannot
// hold them.
func Convert(value string, from, to Unit) (string, error) {
	fromExp, ok := exponents[from]
	if !ok {
		return "", fmt.Errorf("unknown denomination %q", from)
	}
	toExp, ok := exponents[to]
	if !ok {
		return "", fmt.Errorf("unknown denomination %q", to)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("parse amount %q: %w", value, err)
	}
	return d.Shift(fromExp - toExp).String(), nil
}
