package etherscan

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetContractABI(t *testing.T) {
	// The service returns the ABI as a JSON-encoded string inside result.
	client := newTestClient(t, envelopeHandler(t, `[{"type":"function"}]`))

	abi, err := client.GetContractABI(context.Background(), testAddr)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(abi, &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "function", decoded[0]["type"])
}

func TestGetContractABIMalformedPayload(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, "this is not json"))

	_, err := client.GetContractABI(context.Background(), testAddr)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestGetContractABIUnverified(t *testing.T) {
	// Unverified contracts come back as a status "0" envelope.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "0",
			"message": "Contract source code not verified",
			"result":  "",
		})
	}))

	_, err := client.GetContractABI(context.Background(), testAddr)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Contract source code not verified", apiErr.Message)
}

func TestGetContractSourceCode(t *testing.T) {
	client := newTestClient(t, envelopeHandler(t, []map[string]string{
		{
			"SourceCode":      "contract Example {}",
			"ABI":             `[]`,
			"ContractName":    "Example",
			"CompilerVersion": "v0.8.24+commit.e11b9ed9",
			"Proxy":           "0",
		},
	}))

	sources, err := client.GetContractSourceCode(context.Background(), testAddr)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Equal(t, "Example", sources[0].ContractName)
	require.Equal(t, "contract Example {}", sources[0].SourceCode)
}
