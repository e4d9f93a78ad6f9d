package rpc_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leasewatch/nftenant/rpc"
)

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type callResult struct {
	Result      []int    `json:"result"`
	Logs        []string `json:"logs"`
	Error       string   `json:"error,omitempty"`
	BlockHeight uint64   `json:"block_height"`
	BlockHash   string   `json:"block_hash"`
}

// newRPCServer runs a JSON-RPC server answering NEAR view calls with
// whatever handler returns: the result payload bytes, or a contract error
// string. It insists on the positional query form NEAR actually accepts:
// ["call/<account_id>/<method>", "<args_base64>"].
func newRPCServer(t *testing.T, handler func(path, argsBase64 string) ([]byte, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "query", req.Method)
		require.Len(t, req.Params, 2)

		var path, argsBase64 string
		require.NoError(t, json.Unmarshal(req.Params[0], &path))
		require.NoError(t, json.Unmarshal(req.Params[1], &argsBase64))
		require.Regexp(t, `^call/[^/]+/[^/]+$`, path)

		payload, contractErr := handler(path, argsBase64)
		// NEAR returns the result as an array of byte values
		result := callResult{
			Result:      []int{},
			Logs:        []string{},
			Error:       contractErr,
			BlockHeight: 123456,
			BlockHash:   "9wQ2y8DVXkzUwTkCXo4qRRSrX9qKYQyGLCjR3hERqrYA",
		}
		for _, b := range payload {
			result.Result = append(result.Result, int(b))
		}

		response := map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
}

func TestNodeClientCallFunction(t *testing.T) {
	server := newRPCServer(t, func(path, argsBase64 string) ([]byte, string) {
		assert.Equal(t, "call/nft.contract/nft_token", path)

		args, err := base64.StdEncoding.DecodeString(argsBase64)
		require.NoError(t, err)
		assert.JSONEq(t, `{"token_id": "42"}`, string(args))

		return []byte(`{"token_id": "42", "owner_id": "alice"}`), ""
	})
	defer server.Close()

	node := rpc.NewNodeClient("test-node", server.URL)
	assert.Equal(t, "test-node", node.NodeName())
	assert.Equal(t, server.URL, node.NodeURL())

	var out struct {
		TokenID string `json:"token_id"`
		OwnerID string `json:"owner_id"`
	}
	err := node.CallFunction(
		context.Background(),
		"nft.contract",
		"nft_token",
		map[string]string{"token_id": "42"},
		&out,
	)
	require.NoError(t, err)
	assert.Equal(t, "42", out.TokenID)
	assert.Equal(t, "alice", out.OwnerID)
}

func TestNodeClientNilArgs(t *testing.T) {
	server := newRPCServer(t, func(path, argsBase64 string) ([]byte, string) {
		assert.Equal(t, "call/some.contract/ping", path)

		args, err := base64.StdEncoding.DecodeString(argsBase64)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(args))
		return []byte(`"pong"`), ""
	})
	defer server.Close()

	node := rpc.NewNodeClient("test-node", server.URL)

	var out string
	err := node.CallFunction(context.Background(), "some.contract", "ping", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestNodeClientContractError(t *testing.T) {
	server := newRPCServer(t, func(path, argsBase64 string) ([]byte, string) {
		return nil, "wasm execution failed with error: MethodResolveError(MethodNotFound)"
	})
	defer server.Close()

	node := rpc.NewNodeClient("test-node", server.URL)

	var out any
	err := node.CallFunction(context.Background(), "some.contract", "nope", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MethodNotFound")
}

func TestReaderFirstSuccess(t *testing.T) {
	server := newRPCServer(t, func(path, argsBase64 string) ([]byte, string) {
		assert.Equal(t, "call/rental.proxy/get_borrower", path)
		return []byte(`"bob"`), ""
	})
	defer server.Close()

	// one node is unreachable, the reader must still answer from the
	// healthy one
	reader := rpc.NewReader(map[string]string{
		"dead-node": "http://127.0.0.1:1",
		"good-node": server.URL,
	})

	var out string
	err := reader.CallFunction(context.Background(), "rental.proxy", "get_borrower", map[string]string{
		"contract_id": "nft.contract",
		"token_id":    "42",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "bob", out)
}

func TestReaderAllNodesFail(t *testing.T) {
	reader := rpc.NewReader(map[string]string{
		"dead-node-1": "http://127.0.0.1:1",
		"dead-node-2": "http://127.0.0.1:2",
	})

	var out string
	err := reader.CallFunction(context.Background(), "some.contract", "ping", nil, &out)
	require.Error(t, err)
	// errors are named after the node they came from
	assert.Contains(t, err.Error(), "dead-node-1")
	assert.Contains(t, err.Error(), "dead-node-2")
}

func TestReaderNoNodes(t *testing.T) {
	reader := rpc.NewReader(map[string]string{})

	var out string
	err := reader.CallFunction(context.Background(), "some.contract", "ping", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rpc nodes configured")
}
