package etherscan

import (
	"context"

	"github.com/fystack/etherscan-client/pkg/common/units"
)

// GetEtherPrice returns the latest ether price in BTC and USD.
func (c *Client) GetEtherPrice(ctx context.Context) (*EtherPrice, error) {
	var price EtherPrice
	if err := c.callInto(ctx, "stats", "ethprice", nil, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

// GetEtherSupply returns the total ether supply, expressed in the given
// denomination.
func (c *Client) GetEtherSupply(ctx context.Context, unit units.Unit) (string, error) {
	if !units.Valid(unit) {
		return "", invalidArgf("unknown denomination %q", unit)
	}

	var wei string
	if err := c.callInto(ctx, "stats", "ethsupply", nil, &wei); err != nil {
		return "", err
	}
	return convertWei("stats/ethsupply", wei, unit)
}

// GetTokenSupply returns the total supply of an ERC-20 token in its own base
// unit.
func (c *Client) GetTokenSupply(ctx context.Context, contractAddress string) (string, error) {
	if err := checkAddress(contractAddress); err != nil {
		return "", err
	}

	var supply string
	err := c.callInto(ctx, "stats", "tokensupply", map[string]string{
		"contractaddress": contractAddress,
	}, &supply)
	if err != nil {
		return "", err
	}
	return supply, nil
}
