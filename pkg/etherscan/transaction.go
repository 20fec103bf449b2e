package etherscan

import "context"

// GetContractExecutionStatus returns whether a transaction's contract
// execution errored, and the error description when it did.
func (c *Client) GetContractExecutionStatus(ctx context.Context, txHash string) (*ExecutionStatus, error) {
	if err := checkTxHash(txHash); err != nil {
		return nil, err
	}

	var status ExecutionStatus
	err := c.callInto(ctx, "transaction", "getstatus", map[string]string{
		"txhash": txHash,
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetTransactionReceiptStatus reports whether a post-Byzantium transaction
// succeeded.
func (c *Client) GetTransactionReceiptStatus(ctx context.Context, txHash string) (bool, error) {
	if err := checkTxHash(txHash); err != nil {
		return false, err
	}

	var result struct {
		Status string `json:"status"`
	}
	err := c.callInto(ctx, "transaction", "gettxreceiptstatus", map[string]string{
		"txhash": txHash,
	}, &result)
	if err != nil {
		return false, err
	}
	return result.Status == "1", nil
}
