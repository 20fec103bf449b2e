package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fystack/etherscan-client/pkg/common/units"
)

func TestGetBalance(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, "1000000000000000000"))

	balance, err := client.GetBalance(context.Background(), testAddr, units.Ether)
	require.NoError(t, err)
	require.Equal(t, "1", balance)
}

func TestGetBalanceUnits(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, "1500000000"))

	balance, err := client.GetBalance(context.Background(), testAddr, units.Gwei)
	require.NoError(t, err)
	require.Equal(t, "1.5", balance)
}

func TestGetBalanceInvalidArgs(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	ctx := context.Background()

	var argErr *InvalidArgumentError

	_, err := client.GetBalance(ctx, "not-an-address", units.Ether)
	require.ErrorAs(t, err, &argErr)

	_, err = client.GetBalance(ctx, testAddr, "parsec")
	require.ErrorAs(t, err, &argErr)

	require.Zero(t, requests, "precondition failures must not reach the network")
}

func TestGetMultiBalance(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, []map[string]string{
		{"account": testAddr, "balance": "1000000000000000000"},
		{"account": testAddr2, "balance": "2500000000000000000"},
	}))

	balances, err := client.GetMultiBalance(context.Background(), []string{testAddr, testAddr2}, units.Ether)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	require.Equal(t, "1", balances[0].Balance)
	require.Equal(t, "2.5", balances[1].Balance)
	require.Equal(t, testAddr, balances[0].Account)
}

func TestGetMultiBalanceCap(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	addresses := make([]string, 21)
	for i := range addresses {
		addresses[i] = fmt.Sprintf("0x%040x", i+1)
	}

	_, err := client.GetMultiBalance(context.Background(), addresses, units.Wei)

	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Zero(t, requests, "an oversized batch must fail before any request")

	_, err = client.GetMultiBalance(context.Background(), nil, units.Wei)
	require.ErrorAs(t, err, &argErr)
	require.Zero(t, requests)
}

func TestGetTransactions(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, []map[string]string{
		{
			"blockNumber": "47884",
			"hash":        testHash,
			"from":        testAddr,
			"to":          testAddr2,
			"value":       "5000000000000000000",
			"isError":     "0",
		},
	}))

	txs, err := client.GetTransactions(context.Background(), testAddr, 0, 0, SortAsc)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "47884", txs[0].BlockNumber)
	require.Equal(t, testHash, txs[0].Hash)
	require.Equal(t, "5000000000000000000", txs[0].Value)
}

func TestGetTransactionsParams(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "1", "message": "OK", "result": []any{}})
	}))

	_, err := client.GetTransactions(context.Background(), testAddr, 100, 200, SortDesc)
	require.NoError(t, err)
	require.Equal(t, []string{"100"}, query["startblock"])
	require.Equal(t, []string{"200"}, query["endblock"])
	require.Equal(t, []string{"desc"}, query["sort"])

	// Zero end block means latest; empty sort defaults to asc.
	_, err = client.GetTransactions(context.Background(), testAddr, 0, 0, "")
	require.NoError(t, err)
	require.Equal(t, []string{"latest"}, query["endblock"])
	require.Equal(t, []string{"asc"}, query["sort"])
}

func TestGetTokenTransfersRequiresFilter(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, []any{}))

	_, err := client.GetTokenTransfers(context.Background(), "", "", 0, 0, SortAsc)
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestGetTokenBalance(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, "135499"))

	balance, err := client.GetTokenBalance(context.Background(), testAddr2, testAddr)
	require.NoError(t, err)
	require.Equal(t, "135499", balance)
}

func TestGetMinedBlocks(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, []map[string]string{
		{"blockNumber": "3462296", "timeStamp": "1491118514", "blockReward": "5194770940000000000"},
	}))

	blocks, err := client.GetMinedBlocks(context.Background(), testAddr)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Equal(t, "3462296", blocks[0].BlockNumber)
}

func TestGetInternalTransactionsByHash(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, []map[string]string{
		{"blockNumber": "1743059", "from": testAddr, "to": testAddr2, "value": "7106740000000000", "isError": "0"},
	}))

	txs, err := client.GetInternalTransactionsByHash(context.Background(), testHash)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "7106740000000000", txs[0].Value)

	_, err = client.GetInternalTransactionsByHash(context.Background(), "0x123")
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}
