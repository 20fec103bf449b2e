package etherscan

import (
	"context"
	"strconv"
	"strings"

	"github.com/fystack/etherscan-client/pkg/common/units"
)

// maxMultiBalanceAddresses is the service-documented cap on one balancemulti
// request.
const maxMultiBalanceAddresses = 20

// GetBalance returns the ether balance of an address at the latest block,
// expressed in the given denomination.
func (c *Client) GetBalance(ctx context.Context, address string, unit units.Unit) (string, error) {
	if err := checkAddress(address); err != nil {
		return "", err
	}
	if !units.Valid(unit) {
		return "", invalidArgf("unknown denomination %q", unit)
	}

	var wei string
	err := c.callInto(ctx, "account", "balance", map[string]string{
		"address": address,
		"tag":     "latest",
	}, &wei)
	if err != nil {
		return "", err
	}
	return convertWei("account/balance", wei, unit)
}

// GetMultiBalance returns the balances of up to 20 addresses in one request,
// each expressed in the given denomination. Exceeding the cap fails before
// any request is sent.
func (c *Client) GetMultiBalance(ctx context.Context, addresses []string, unit units.Unit) ([]AccountBalance, error) {
	if len(addresses) == 0 {
		return nil, invalidArgf("at least one address is required")
	}
	if len(addresses) > maxMultiBalanceAddresses {
		return nil, invalidArgf("balancemulti accepts at most %d addresses, got %d",
			maxMultiBalanceAddresses, len(addresses))
	}
	for _, addr := range addresses {
		if err := checkAddress(addr); err != nil {
			return nil, err
		}
	}
	if !units.Valid(unit) {
		return nil, invalidArgf("unknown denomination %q", unit)
	}

	var balances []AccountBalance
	err := c.callInto(ctx, "account", "balancemulti", map[string]string{
		"address": strings.Join(addresses, ","),
		"tag":     "latest",
	}, &balances)
	if err != nil {
		return nil, err
	}

	for i := range balances {
		converted, err := convertWei("account/balancemulti", balances[i].Balance, unit)
		if err != nil {
			return nil, err
		}
		balances[i].Balance = converted
	}
	return balances, nil
}

// GetTransactions returns the normal transactions of an address between two
// blocks, oldest first unless sort says otherwise. An endBlock of 0 means
// the latest block.
func (c *Client) GetTransactions(ctx context.Context, address string, startBlock, endBlock uint64, sort Sort) ([]Transaction, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}

	var txs []Transaction
	err := c.callInto(ctx, "account", "txlist", map[string]string{
		"address":    address,
		"startblock": strconv.FormatUint(startBlock, 10),
		"endblock":   formatEndBlock(endBlock),
		"sort":       string(sortOrDefault(sort)),
	}, &txs)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// GetInternalTransactions returns the internal (message-call) transactions
// of an address between two blocks.
func (c *Client) GetInternalTransactions(ctx context.Context, address string, startBlock, endBlock uint64, sort Sort) ([]InternalTransaction, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}

	var txs []InternalTransaction
	err := c.callInto(ctx, "account", "txlistinternal", map[string]string{
		"address":    address,
		"startblock": strconv.FormatUint(startBlock, 10),
		"endblock":   formatEndBlock(endBlock),
		"sort":       string(sortOrDefault(sort)),
	}, &txs)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// GetInternalTransactionsByHash returns the internal transactions performed
// within one transaction.
func (c *Client) GetInternalTransactionsByHash(ctx context.Context, txHash string) ([]InternalTransaction, error) {
	if err := checkTxHash(txHash); err != nil {
		return nil, err
	}

	var txs []InternalTransaction
	err := c.callInto(ctx, "account", "txlistinternal", map[string]string{
		"txhash": txHash,
	}, &txs)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTokenTransfers returns ERC-20 transfer events filtered by holder
// address, token contract, or both. At least one filter is required.
func (c *Client) GetTokenTransfers(ctx context.Context, address, contractAddress string, startBlock, endBlock uint64, sort Sort) ([]TokenTransfer, error) {
	return c.tokenTransfers(ctx, "tokentx", address, contractAddress, startBlock, endBlock, sort)
}

// GetNFTTransfers returns ERC-721 transfer events filtered by holder
// address, token contract, or both. At least one filter is required.
func (c *Client) GetNFTTransfers(ctx context.Context, address, contractAddress string, startBlock, endBlock uint64, sort Sort) ([]TokenTransfer, error) {
	return c.tokenTransfers(ctx, "tokennfttx", address, contractAddress, startBlock, endBlock, sort)
}

func (c *Client) tokenTransfers(ctx context.Context, action, address, contractAddress string, startBlock, endBlock uint64, sort Sort) ([]TokenTransfer, error) {
	if address == "" && contractAddress == "" {
		return nil, invalidArgf("either address or contract address is required")
	}
	if address != "" {
		if err := checkAddress(address); err != nil {
			return nil, err
		}
	}
	if contractAddress != "" {
		if err := checkAddress(contractAddress); err != nil {
			return nil, err
		}
	}

	var transfers []TokenTransfer
	err := c.callInto(ctx, "account", action, map[string]string{
		"address":         address,
		"contractaddress": contractAddress,
		"startblock":      strconv.FormatUint(startBlock, 10),
		"endblock":        formatEndBlock(endBlock),
		"sort":            string(sortOrDefault(sort)),
	}, &transfers)
	if err != nil {
		return nil, err
	}
	return transfers, nil
}

// GetMinedBlocks returns the canonical blocks validated by an address.
func (c *Client) GetMinedBlocks(ctx context.Context, address string) ([]MinedBlock, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}

	var blocks []MinedBlock
	err := c.callInto(ctx, "account", "getminedblocks", map[string]string{
		"address":   address,
		"blocktype": "blocks",
	}, &blocks)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetTokenBalance returns the ERC-20 balance of an address at the latest
// block, in the token's own base unit.
func (c *Client) GetTokenBalance(ctx context.Context, contractAddress, address string) (string, error) {
	if err := checkAddress(contractAddress); err != nil {
		return "", err
	}
	if err := checkAddress(address); err != nil {
		return "", err
	}

	var balance string
	err := c.callInto(ctx, "account", "tokenbalance", map[string]string{
		"contractaddress": contractAddress,
		"address":         address,
		"tag":             "latest",
	}, &balance)
	if err != nil {
		return "", err
	}
	return balance, nil
}

func sortOrDefault(s Sort) Sort {
	if s == "" {
		return SortAsc
	}
	return s
}

// formatEndBlock maps the zero value to the symbolic latest tag.
func formatEndBlock(endBlock uint64) string {
	if endBlock == 0 {
		return "latest"
	}
	return strconv.FormatUint(endBlock, 10)
}
