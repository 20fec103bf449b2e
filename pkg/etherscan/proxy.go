package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fystack/etherscan-client/pkg/common/hexutil"
	"github.com/fystack/etherscan-client/pkg/common/units"
)

// Proxy-module methods mirror raw Ethereum JSON-RPC calls through the
// service. They carry no status/message envelope, and a null result means
// "not found": object-returning methods come back (nil, nil) in that case.

// BlockNumber returns the number of the most recent block.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	hex, err := c.callProxyString(ctx, "eth_blockNumber", nil)
	if err != nil {
		return 0, err
	}
	return c.decodeQuantity("eth_blockNumber", hex)
}

// GetBlockByNumber returns a block by number, with transaction hashes or
// full transaction objects depending on fullTx. A nil block means the block
// does not exist.
func (c *Client) GetBlockByNumber(ctx context.Context, number uint64, fullTx bool) (*ProxyBlock, error) {
	raw, err := c.callProxy(ctx, "eth_getBlockByNumber", map[string]string{
		"tag":     hexutil.EncodeUint64(number),
		"boolean": fmt.Sprintf("%t", fullTx),
	})
	if err != nil || raw == nil {
		return nil, err
	}

	var block ProxyBlock
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, &TransportError{Op: "proxy/eth_getBlockByNumber", Err: err}
	}
	return &block, nil
}

// GetUncleByBlockNumberAndIndex returns an uncle block by its parent's
// number and the uncle's index position.
func (c *Client) GetUncleByBlockNumberAndIndex(ctx context.Context, number, index uint64) (*ProxyBlock, error) {
	raw, err := c.callProxy(ctx, "eth_getUncleByBlockNumberAndIndex", map[string]string{
		"tag":   hexutil.EncodeUint64(number),
		"index": hexutil.EncodeUint64(index),
	})
	if err != nil || raw == nil {
		return nil, err
	}

	var uncle ProxyBlock
	if err := json.Unmarshal(raw, &uncle); err != nil {
		return nil, &TransportError{Op: "proxy/eth_getUncleByBlockNumberAndIndex", Err: err}
	}
	return &uncle, nil
}

// GetBlockTransactionCountByNumber returns the number of transactions in a
// block.
func (c *Client) GetBlockTransactionCountByNumber(ctx context.Context, number uint64) (uint64, error) {
	hex, err := c.callProxyString(ctx, "eth_getBlockTransactionCountByNumber", map[string]string{
		"tag": hexutil.EncodeUint64(number),
	})
	if err != nil || hex == "" {
		return 0, err
	}
	return c.decodeQuantity("eth_getBlockTransactionCountByNumber", hex)
}

// GetTransactionByHash returns a transaction by hash, or nil if the node
// does not know it.
func (c *Client) GetTransactionByHash(ctx context.Context, txHash string) (*ProxyTransaction, error) {
	if err := checkTxHash(txHash); err != nil {
		return nil, err
	}

	raw, err := c.callProxy(ctx, "eth_getTransactionByHash", map[string]string{
		"txhash": txHash,
	})
	if err != nil || raw == nil {
		return nil, err
	}

	var tx ProxyTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, &TransportError{Op: "proxy/eth_getTransactionByHash", Err: err}
	}
	return &tx, nil
}

// GetTransactionByBlockNumberAndIndex returns a transaction by its block
// number and index position, or nil if there is none.
func (c *Client) GetTransactionByBlockNumberAndIndex(ctx context.Context, number, index uint64) (*ProxyTransaction, error) {
	raw, err := c.callProxy(ctx, "eth_getTransactionByBlockNumberAndIndex", map[string]string{
		"tag":   hexutil.EncodeUint64(number),
		"index": hexutil.EncodeUint64(index),
	})
	if err != nil || raw == nil {
		return nil, err
	}

	var tx ProxyTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, &TransportError{Op: "proxy/eth_getTransactionByBlockNumberAndIndex", Err: err}
	}
	return &tx, nil
}

// GetTransactionCount returns the nonce of an address at the given block
// tag (defaults to latest).
func (c *Client) GetTransactionCount(ctx context.Context, address, tag string) (uint64, error) {
	if err := checkAddress(address); err != nil {
		return 0, err
	}

	hex, err := c.callProxyString(ctx, "eth_getTransactionCount", map[string]string{
		"address": address,
		"tag":     blockTag(tag),
	})
	if err != nil {
		return 0, err
	}
	return c.decodeQuantity("eth_getTransactionCount", hex)
}

// SendRawTransaction submits a signed, RLP-encoded transaction and returns
// the transaction hash the service responds with.
func (c *Client) SendRawTransaction(ctx context.Context, signedTxHex string) (string, error) {
	if !strings.HasPrefix(signedTxHex, "0x") {
		return "", invalidArgf("signed transaction must be 0x-prefixed hex")
	}
	return c.callProxyString(ctx, "eth_sendRawTransaction", map[string]string{
		"hex": signedTxHex,
	})
}

// GetTransactionReceipt returns the receipt of a mined transaction, or nil
// while the transaction is pending or unknown.
func (c *Client) GetTransactionReceipt(ctx context.Context, txHash string) (*ProxyReceipt, error) {
	if err := checkTxHash(txHash); err != nil {
		return nil, err
	}

	raw, err := c.callProxy(ctx, "eth_getTransactionReceipt", map[string]string{
		"txhash": txHash,
	})
	if err != nil || raw == nil {
		return nil, err
	}

	var receipt ProxyReceipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return nil, &TransportError{Op: "proxy/eth_getTransactionReceipt", Err: err}
	}
	return &receipt, nil
}

// Call executes a read-only contract call and returns the hex-encoded
// return data.
func (c *Client) Call(ctx context.Context, to, data, tag string) (string, error) {
	if err := checkAddress(to); err != nil {
		return "", err
	}
	return c.callProxyString(ctx, "eth_call", map[string]string{
		"to":   to,
		"data": data,
		"tag":  blockTag(tag),
	})
}

// GetCode returns the hex-encoded bytecode at an address.
func (c *Client) GetCode(ctx context.Context, address, tag string) (string, error) {
	if err := checkAddress(address); err != nil {
		return "", err
	}
	return c.callProxyString(ctx, "eth_getCode", map[string]string{
		"address": address,
		"tag":     blockTag(tag),
	})
}

// GetStorageAt returns the hex-encoded storage word at a position.
func (c *Client) GetStorageAt(ctx context.Context, address string, position uint64, tag string) (string, error) {
	if err := checkAddress(address); err != nil {
		return "", err
	}
	return c.callProxyString(ctx, "eth_getStorageAt", map[string]string{
		"address":  address,
		"position": hexutil.EncodeUint64(position),
		"tag":      blockTag(tag),
	})
}

// GasPrice returns the current gas price, expressed in the given
// denomination.
func (c *Client) GasPrice(ctx context.Context, unit units.Unit) (string, error) {
	if !units.Valid(unit) {
		return "", invalidArgf("unknown denomination %q", unit)
	}

	hex, err := c.callProxyString(ctx, "eth_gasPrice", nil)
	if err != nil {
		return "", err
	}

	wei, err := hexutil.DecodeBig(hex)
	if err != nil {
		return "", &TransportError{Op: "proxy/eth_gasPrice", Err: err}
	}
	return convertWei("proxy/eth_gasPrice", wei.String(), unit)
}

// CallMsg describes a transaction to estimate. Value, GasPrice and Gas are
// 0x hex quantities; empty fields are omitted from the request.
type CallMsg struct {
	To       string
	Data     string
	Value    string
	GasPrice string
	Gas      string
}

// EstimateGas estimates the gas needed to execute a transaction.
func (c *Client) EstimateGas(ctx context.Context, msg CallMsg) (uint64, error) {
	if err := checkAddress(msg.To); err != nil {
		return 0, err
	}

	hex, err := c.callProxyString(ctx, "eth_estimateGas", map[string]string{
		"to":       msg.To,
		"data":     msg.Data,
		"value":    msg.Value,
		"gasPrice": msg.GasPrice,
		"gas":      msg.Gas,
	})
	if err != nil {
		return 0, err
	}
	return c.decodeQuantity("eth_estimateGas", hex)
}

func (c *Client) decodeQuantity(action, hex string) (uint64, error) {
	v, err := hexutil.DecodeUint64(hex)
	if err != nil {
		return 0, &TransportError{Op: "proxy/" + action, Err: err}
	}
	return v, nil
}
