package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

const TIMEOUT time.Duration = 8 * time.Second

// NodeClient talks to a single NEAR JSON-RPC node. The underlying
// connection is dialed lazily on first use and reused afterwards.
type NodeClient struct {
	nodeName string
	nodeURL  string
	client   *gethrpc.Client
	mu       sync.Mutex
}

func NewNodeClient(name, url string) *NodeClient {
	return &NodeClient{
		nodeName: name,
		nodeURL:  url,
		client:   nil,
	}
}

func (nc *NodeClient) NodeName() string {
	return nc.nodeName
}

func (nc *NodeClient) NodeURL() string {
	return nc.nodeURL
}

func (nc *NodeClient) Client() (*gethrpc.Client, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if nc.client != nil {
		return nc.client, nil
	}
	client, err := gethrpc.Dial(nc.nodeURL)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", nc.nodeName, err)
	}
	nc.client = client
	return nc.client, nil
}

type callFunctionResult struct {
	Result      []byte   `json:"result"`
	Logs        []string `json:"logs"`
	Error       string   `json:"error"`
	BlockHeight uint64   `json:"block_height"`
	BlockHash   string   `json:"block_hash"`
}

// callRaw performs the view call and returns the raw result bytes.
// argsBase64 is the base64 encoded JSON argument object.
func (nc *NodeClient) callRaw(ctx context.Context, accountID, method, argsBase64 string) ([]byte, error) {
	client, err := nc.Client()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()
	// the client marshals params positionally, and NEAR rejects its named
	// params object when it arrives wrapped in an array, so we speak the
	// equivalent positional query form: ["call/<account_id>/<method>",
	// "<args_base64>"]
	var res callFunctionResult
	err = client.CallContext(
		timeout,
		&res,
		"query",
		fmt.Sprintf("call/%s/%s", accountID, method),
		argsBase64,
	)
	if err != nil {
		return nil, fmt.Errorf("calling %s on %s: %w", method, accountID, err)
	}
	// contract execution failures come back inside the result envelope,
	// not as a JSON-RPC error
	if res.Error != "" {
		return nil, fmt.Errorf("calling %s on %s: %s", method, accountID, res.Error)
	}
	return res.Result, nil
}

// CallFunction calls a read-only contract function and JSON-decodes the
// result into out. nil args is sent as an empty argument object, nil out
// discards the result.
func (nc *NodeClient) CallFunction(ctx context.Context, accountID, method string, args any, out any) error {
	argsBase64, err := encodeArgs(args)
	if err != nil {
		return err
	}
	result, err := nc.callRaw(ctx, accountID, method, argsBase64)
	if err != nil {
		return err
	}
	return decodeResult(result, out)
}

func encodeArgs(args any) (string, error) {
	if args == nil {
		args = struct{}{}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("couldn't encode call args: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodeResult(result []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("couldn't decode call result: %w", err)
	}
	return nil
}
