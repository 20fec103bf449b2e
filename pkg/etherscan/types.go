package etherscan

import "encoding/json"

// Sort orders list endpoints by block number.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// Numeric fields below stay strings: the service returns every number as a
// decimal string (or a 0x hex quantity on proxy actions) and values like wei
// balances exceed uint64.
type (
	// AccountBalance is one entry of a balancemulti response.
	AccountBalance struct {
		Account string `json:"account"`
		Balance string `json:"balance"`
	}

	// Transaction is a normal (external) transaction from txlist.
	Transaction struct {
		BlockNumber       string `json:"blockNumber"`
		TimeStamp         string `json:"timeStamp"`
		Hash              string `json:"hash"`
		Nonce             string `json:"nonce"`
		BlockHash         string `json:"blockHash"`
		TransactionIndex  string `json:"transactionIndex"`
		From              string `json:"from"`
		To                string `json:"to"`
		Value             string `json:"value"`
		Gas               string `json:"gas"`
		GasPrice          string `json:"gasPrice"`
		IsError           string `json:"isError"`
		TxReceiptStatus   string `json:"txreceipt_status"`
		Input             string `json:"input"`
		ContractAddress   string `json:"contractAddress"`
		CumulativeGasUsed string `json:"cumulativeGasUsed"`
		GasUsed           string `json:"gasUsed"`
		Confirmations     string `json:"confirmations"`
	}

	// InternalTransaction is a message-call trace from txlistinternal.
	InternalTransaction struct {
		BlockNumber     string `json:"blockNumber"`
		TimeStamp       string `json:"timeStamp"`
		Hash            string `json:"hash"`
		From            string `json:"from"`
		To              string `json:"to"`
		Value           string `json:"value"`
		ContractAddress string `json:"contractAddress"`
		Input           string `json:"input"`
		Type            string `json:"type"`
		Gas             string `json:"gas"`
		GasUsed         string `json:"gasUsed"`
		TraceID         string `json:"traceId"`
		IsError         string `json:"isError"`
		ErrCode         string `json:"errCode"`
	}

	// TokenTransfer is an ERC-20 (tokentx) or ERC-721 (tokennfttx) transfer
	// event. Value is set for fungible transfers, TokenID for NFTs.
	TokenTransfer struct {
		BlockNumber       string `json:"blockNumber"`
		TimeStamp         string `json:"timeStamp"`
		Hash              string `json:"hash"`
		Nonce             string `json:"nonce"`
		BlockHash         string `json:"blockHash"`
		From              string `json:"from"`
		ContractAddress   string `json:"contractAddress"`
		To                string `json:"to"`
		Value             string `json:"value"`
		TokenID           string `json:"tokenID"`
		TokenName         string `json:"tokenName"`
		TokenSymbol       string `json:"tokenSymbol"`
		TokenDecimal      string `json:"tokenDecimal"`
		TransactionIndex  string `json:"transactionIndex"`
		Gas               string `json:"gas"`
		GasPrice          string `json:"gasPrice"`
		GasUsed           string `json:"gasUsed"`
		CumulativeGasUsed string `json:"cumulativeGasUsed"`
		Confirmations     string `json:"confirmations"`
	}

	// MinedBlock is one entry of a getminedblocks response.
	MinedBlock struct {
		BlockNumber string `json:"blockNumber"`
		TimeStamp   string `json:"timeStamp"`
		BlockReward string `json:"blockReward"`
	}

	// SourceCode is one entry of a getsourcecode response.
	SourceCode struct {
		SourceCode           string `json:"SourceCode"`
		ABI                  string `json:"ABI"`
		ContractName         string `json:"ContractName"`
		CompilerVersion      string `json:"CompilerVersion"`
		OptimizationUsed     string `json:"OptimizationUsed"`
		Runs                 string `json:"Runs"`
		ConstructorArguments string `json:"ConstructorArguments"`
		EVMVersion           string `json:"EVMVersion"`
		Library              string `json:"Library"`
		LicenseType          string `json:"LicenseType"`
		Proxy                string `json:"Proxy"`
		Implementation       string `json:"Implementation"`
		SwarmSource          string `json:"SwarmSource"`
	}

	// ExecutionStatus is the result of transaction/getstatus.
	ExecutionStatus struct {
		IsError        string `json:"isError"`
		ErrDescription string `json:"errDescription"`
	}

	// BlockReward is the result of block/getblockreward.
	BlockReward struct {
		BlockNumber          string        `json:"blockNumber"`
		TimeStamp            string        `json:"timeStamp"`
		BlockMiner           string        `json:"blockMiner"`
		BlockReward          string        `json:"blockReward"`
		Uncles               []UncleReward `json:"uncles"`
		UncleInclusionReward string        `json:"uncleInclusionReward"`
	}

	UncleReward struct {
		Miner         string `json:"miner"`
		UnclePosition string `json:"unclePosition"`
		BlockReward   string `json:"blockreward"`
	}

	// BlockCountdown is the result of block/getblockcountdown.
	BlockCountdown struct {
		CurrentBlock      string `json:"CurrentBlock"`
		CountdownBlock    string `json:"CountdownBlock"`
		RemainingBlock    string `json:"RemainingBlock"`
		EstimateTimeInSec string `json:"EstimateTimeInSec"`
	}

	// EtherPrice is the result of stats/ethprice.
	EtherPrice struct {
		EthBTC          string `json:"ethbtc"`
		EthBTCTimestamp string `json:"ethbtc_timestamp"`
		EthUSD          string `json:"ethusd"`
		EthUSDTimestamp string `json:"ethusd_timestamp"`
	}

	// GasOracle is the result of gastracker/gasoracle. Prices are in gwei.
	GasOracle struct {
		LastBlock       string `json:"LastBlock"`
		SafeGasPrice    string `json:"SafeGasPrice"`
		ProposeGasPrice string `json:"ProposeGasPrice"`
		FastGasPrice    string `json:"FastGasPrice"`
		SuggestBaseFee  string `json:"suggestBaseFee"`
		GasUsedRatio    string `json:"gasUsedRatio"`
	}

	// Log is one event log from logs/getLogs.
	Log struct {
		Address          string   `json:"address"`
		Topics           []string `json:"topics"`
		Data             string   `json:"data"`
		BlockNumber      string   `json:"blockNumber"`
		TimeStamp        string   `json:"timeStamp"`
		GasPrice         string   `json:"gasPrice"`
		GasUsed          string   `json:"gasUsed"`
		LogIndex         string   `json:"logIndex"`
		TransactionHash  string   `json:"transactionHash"`
		TransactionIndex string   `json:"transactionIndex"`
	}
)

// Proxy-module types mirror the raw Ethereum JSON-RPC schemas; all
// quantities are 0x hex strings.
type (
	ProxyBlock struct {
		Number           string   `json:"number"`
		Hash             string   `json:"hash"`
		ParentHash       string   `json:"parentHash"`
		Nonce            string   `json:"nonce"`
		Miner            string   `json:"miner"`
		Difficulty       string   `json:"difficulty"`
		Size             string   `json:"size"`
		GasLimit         string   `json:"gasLimit"`
		GasUsed          string   `json:"gasUsed"`
		Timestamp        string   `json:"timestamp"`
		Uncles           []string `json:"uncles"`
		BaseFeePerGas    string   `json:"baseFeePerGas"`
		// Transactions holds hashes or full objects depending on the fullTx
		// flag; decode with TransactionHashes or FullTransactions.
		Transactions json.RawMessage `json:"transactions"`
	}

	ProxyTransaction struct {
		BlockHash        string `json:"blockHash"`
		BlockNumber      string `json:"blockNumber"`
		From             string `json:"from"`
		Gas              string `json:"gas"`
		GasPrice         string `json:"gasPrice"`
		Hash             string `json:"hash"`
		Input            string `json:"input"`
		Nonce            string `json:"nonce"`
		To               string `json:"to"`
		TransactionIndex string `json:"transactionIndex"`
		Value            string `json:"value"`
		V                string `json:"v"`
		R                string `json:"r"`
		S                string `json:"s"`
	}

	ProxyReceipt struct {
		BlockHash         string     `json:"blockHash"`
		BlockNumber       string     `json:"blockNumber"`
		ContractAddress   string     `json:"contractAddress"`
		CumulativeGasUsed string     `json:"cumulativeGasUsed"`
		EffectiveGasPrice string     `json:"effectiveGasPrice"`
		From              string     `json:"from"`
		To                string     `json:"to"`
		GasUsed           string     `json:"gasUsed"`
		Logs              []ProxyLog `json:"logs"`
		LogsBloom         string     `json:"logsBloom"`
		Status            string     `json:"status"`
		TransactionHash   string     `json:"transactionHash"`
		TransactionIndex  string     `json:"transactionIndex"`
	}

	ProxyLog struct {
		Address          string   `json:"address"`
		Topics           []string `json:"topics"`
		Data             string   `json:"data"`
		BlockNumber      string   `json:"blockNumber"`
		TransactionHash  string   `json:"transactionHash"`
		LogIndex         string   `json:"logIndex"`
		Removed          bool     `json:"removed"`
	}
)

// TransactionHashes decodes the block's transaction list as hashes
// (fullTx=false).
func (b *ProxyBlock) TransactionHashes() ([]string, error) {
	if len(b.Transactions) == 0 {
		return nil, nil
	}
	var hashes []string
	if err := json.Unmarshal(b.Transactions, &hashes); err != nil {
		return nil, err
	}
	return hashes, nil
}

// FullTransactions decodes the block's transaction list as full objects
// (fullTx=true).
func (b *ProxyBlock) FullTransactions() ([]ProxyTransaction, error) {
	if len(b.Transactions) == 0 {
		return nil, nil
	}
	var txs []ProxyTransaction
	if err := json.Unmarshal(b.Transactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
