package etherscan

import (
	"context"
	"fmt"
	"strconv"
)

// GetBlockReward returns the block reward and any uncle rewards for a block.
func (c *Client) GetBlockReward(ctx context.Context, blockNumber uint64) (*BlockReward, error) {
	var reward BlockReward
	err := c.callInto(ctx, "block", "getblockreward", map[string]string{
		"blockno": strconv.FormatUint(blockNumber, 10),
	}, &reward)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// GetBlockCountdown estimates the remaining time until a future block.
func (c *Client) GetBlockCountdown(ctx context.Context, blockNumber uint64) (*BlockCountdown, error) {
	var countdown BlockCountdown
	err := c.callInto(ctx, "block", "getblockcountdown", map[string]string{
		"blockno": strconv.FormatUint(blockNumber, 10),
	}, &countdown)
	if err != nil {
		return nil, err
	}
	return &countdown, nil
}

// GetBlockNumberByTime returns the number of the block mined closest to a
// unix timestamp. closest is "before" or "after"; empty defaults to
// "before".
func (c *Client) GetBlockNumberByTime(ctx context.Context, unixTime int64, closest string) (uint64, error) {
	switch closest {
	case "":
		closest = "before"
	case "before", "after":
	default:
		return 0, invalidArgf("closest must be %q or %q, got %q", "before", "after", closest)
	}

	var blockStr string
	err := c.callInto(ctx, "block", "getblocknobytime", map[string]string{
		"timestamp": strconv.FormatInt(unixTime, 10),
		"closest":   closest,
	}, &blockStr)
	if err != nil {
		return 0, err
	}

	block, err := strconv.ParseUint(blockStr, 10, 64)
	if err != nil {
		return 0, &TransportError{Op: "block/getblocknobytime", Err: fmt.Errorf("parse block number: %w", err)}
	}
	return block, nil
}
