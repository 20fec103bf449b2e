// Package hexutil encodes and decodes the 0x-prefixed hex quantities used by
// the Ethereum JSON-RPC wire format.
package hexutil

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// EncodeUint64 returns the 0x-prefixed lowercase hex form of v.
// EncodeUint64(0) == "0x0".
func EncodeUint64(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// EncodeBig returns the 0x-prefixed lowercase hex form of v.
// A nil or zero value encodes as "0x0".
func EncodeBig(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "0x0"
	}
	return "0x" + v.Text(16)
}

// DecodeUint64 parses a hex quantity, case-insensitively and with or without
// the 0x prefix.
func DecodeUint64(h string) (uint64, error) {
	h = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(h)), "0x")
	if h == "" {
		return 0, fmt.Errorf("empty hex quantity")
	}
	return strconv.ParseUint(h, 16, 64)
}

// DecodeBig parses a hex quantity of arbitrary width (balances and gas
// prices exceed 64 bits on the wire).
func DecodeBig(h string) (*big.Int, error) {
	h = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(h)), "0x")
	if h == "" {
		return nil, fmt.Errorf("empty hex quantity")
	}
	bi, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity: %s", h)
	}
	return bi, nil
}
