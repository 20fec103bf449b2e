package etherscan

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fystack/etherscan-client/pkg/common/units"
)

func proxyHandler(t *testing.T, result any) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      83,
			"result":  result,
		})
	})
}

func TestBlockNumber(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, "0x10"))

	number, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(16), number)
}

func TestGetBlockByNumber(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, map[string]any{
		"number":       "0x10d4f",
		"hash":         "0x1e2910a262b1008d0616a0beb24c1a491d78771baa54a33e66065e03b1f46bc1",
		"gasUsed":      "0x9f759",
		"timestamp":    "0x54e34e8e",
		"transactions": []string{testHash},
	}))

	block, err := client.GetBlockByNumber(context.Background(), 68943, false)
	require.NoError(t, err)
	require.NotNil(t, block)
	require.Equal(t, "0x10d4f", block.Number)

	hashes, err := block.TransactionHashes()
	require.NoError(t, err)
	require.Equal(t, []string{testHash}, hashes)
}

func TestProxyNullResultIsNotFound(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, nil))
	ctx := context.Background()

	block, err := client.GetBlockByNumber(ctx, 999999999, false)
	require.NoError(t, err)
	require.Nil(t, block)

	tx, err := client.GetTransactionByHash(ctx, testHash)
	require.NoError(t, err)
	require.Nil(t, tx)

	receipt, err := client.GetTransactionReceipt(ctx, testHash)
	require.NoError(t, err)
	require.Nil(t, receipt)
}

func TestProxyRPCError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32000, "message": "execution reverted"},
		})
	}))

	_, err := client.Call(context.Background(), testAddr, "0x", "")
	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "execution reverted", apiErr.Message)
}

func TestGetTransactionByHash(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, map[string]any{
		"hash":        testHash,
		"from":        testAddr,
		"to":          testAddr2,
		"value":       "0xde0b6b3a7640000",
		"blockNumber": "0x10d4f",
	}))

	tx, err := client.GetTransactionByHash(context.Background(), testHash)
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Equal(t, testHash, tx.Hash)
	require.Equal(t, "0xde0b6b3a7640000", tx.Value)
}

func TestGetTransactionCount(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": 1, "result": "0xa"})
	}))

	count, err := client.GetTransactionCount(context.Background(), testAddr, "")
	require.NoError(t, err)
	require.Equal(t, uint64(10), count)
	require.Equal(t, []string{"latest"}, query["tag"], "empty tag defaults to latest")
}

func TestSendRawTransaction(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, testHash))

	hash, err := client.SendRawTransaction(context.Background(), "0xf86d808504a817c800825208")
	require.NoError(t, err)
	require.Equal(t, testHash, hash)

	_, err = client.SendRawTransaction(context.Background(), "f86d8085")
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestGasPrice(t *testing.T) {
	// 0x4a817c800 = 20000000000 wei = 20 gwei.
	client := newTestClient(t, proxyHandler(t, "0x4a817c800"))

	price, err := client.GasPrice(context.Background(), units.Gwei)
	require.NoError(t, err)
	require.Equal(t, "20", price)

	price, err = client.GasPrice(context.Background(), units.Wei)
	require.NoError(t, err)
	require.Equal(t, "20000000000", price)
}

func TestEstimateGas(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, "0x5208"))

	gas, err := client.EstimateGas(context.Background(), CallMsg{
		To:    testAddr,
		Value: "0xde0b6b3a7640000",
	})
	require.NoError(t, err)
	require.Equal(t, uint64(21000), gas)
}

func TestGetCode(t *testing.T) {
	client := newTestClient(t, proxyHandler(t, "0x6060604052"))

	code, err := client.GetCode(context.Background(), testAddr, "")
	require.NoError(t, err)
	require.Equal(t, "0x6060604052", code)
}

func TestGetStorageAt(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": 1, "result": "0x0"})
	}))

	word, err := client.GetStorageAt(context.Background(), testAddr, 3, "")
	require.NoError(t, err)
	require.Equal(t, "0x0", word)
	require.Equal(t, []string{"0x3"}, query["position"], "position crosses the wire hex-encoded")
}
