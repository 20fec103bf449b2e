package etherscan

import (
	"context"
	"fmt"
	"strconv"
)

// LogsQuery filters logs/getLogs. Topics are positional (topic0..topic3);
// empty entries are skipped. Operators joins adjacent topic filters and
// holds "and"/"or" for each consecutive pair, matching the service's
// topicN_N+1_opr parameters.
type LogsQuery struct {
	FromBlock uint64
	ToBlock   uint64 // 0 means latest
	Address   string
	Topics    []string
	Operators []string
}

// GetLogs returns event logs matching the query. At least an address or one
// topic filter is required.
func (c *Client) GetLogs(ctx context.Context, q LogsQuery) ([]Log, error) {
	if q.Address == "" && len(q.Topics) == 0 {
		return nil, invalidArgf("either an address or a topic filter is required")
	}
	if q.Address != "" {
		if err := checkAddress(q.Address); err != nil {
			return nil, err
		}
	}
	if len(q.Topics) > 4 {
		return nil, invalidArgf("at most 4 topic filters are supported, got %d", len(q.Topics))
	}

	params := map[string]string{
		"fromBlock": strconv.FormatUint(q.FromBlock, 10),
		"toBlock":   formatEndBlock(q.ToBlock),
		"address":   q.Address,
	}
	for i, topic := range q.Topics {
		params[fmt.Sprintf("topic%d", i)] = topic
	}
	for i, op := range q.Operators {
		if op == "" {
			continue
		}
		if op != "and" && op != "or" {
			return nil, invalidArgf("topic operator must be %q or %q, got %q", "and", "or", op)
		}
		params[fmt.Sprintf("topic%d_%d_opr", i, i+1)] = op
	}

	var logs []Log
	if err := c.callInto(ctx, "logs", "getLogs", params, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
