package etherscan

import (
	"context"
	"encoding/json"
	"errors"
)

// GetContractABI returns the ABI of a verified contract. The service wraps
// the ABI as a JSON-encoded string inside result; the returned message is
// the unwrapped JSON array.
func (c *Client) GetContractABI(ctx context.Context, address string) (json.RawMessage, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}

	raw, err := c.call(ctx, "contract", "getabi", map[string]string{
		"address": address,
	})
	if err != nil {
		return nil, err
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, &TransportError{Op: "contract/getabi", Err: err}
	}
	if !json.Valid([]byte(encoded)) {
		return nil, &TransportError{Op: "contract/getabi", Err: errors.New("ABI payload is not valid JSON")}
	}
	return json.RawMessage(encoded), nil
}

// GetContractSourceCode returns the verified source of a contract. The
// service always responds with a one-element slice for a single address.
func (c *Client) GetContractSourceCode(ctx context.Context, address string) ([]SourceCode, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}

	var sources []SourceCode
	err := c.callInto(ctx, "contract", "getsourcecode", map[string]string{
		"address": address,
	}, &sources)
	if err != nil {
		return nil, err
	}
	return sources, nil
}
