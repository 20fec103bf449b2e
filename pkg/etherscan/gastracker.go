package etherscan

import (
	"context"
	"strconv"
)

// GetGasOracle returns the current safe, proposed and fast gas prices.
func (c *Client) GetGasOracle(ctx context.Context) (*GasOracle, error) {
	var oracle GasOracle
	if err := c.callInto(ctx, "gastracker", "gasoracle", nil, &oracle); err != nil {
		return nil, err
	}
	return &oracle, nil
}

// GetGasEstimate returns the estimated confirmation time in seconds for a
// gas price given in wei.
func (c *Client) GetGasEstimate(ctx context.Context, gasPriceWei uint64) (string, error) {
	var seconds string
	err := c.callInto(ctx, "gastracker", "gasestimate", map[string]string{
		"gasprice": strconv.FormatUint(gasPriceWei, 10),
	}, &seconds)
	if err != nil {
		return "", err
	}
	return seconds, nil
}
