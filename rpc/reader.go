package rpc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/leasewatch/nftenant/networks"
)

// Reader fans read-only calls out to a set of nodes concurrently and takes
// the first successful answer.
type Reader struct {
	nodes map[string]*NodeClient
}

func NewReader(nodes map[string]string) *Reader {
	ns := map[string]*NodeClient{}
	for name, url := range nodes {
		ns[name] = NewNodeClient(name, url)
	}
	return &Reader{nodes: ns}
}

// NewReaderForNetwork builds a Reader using the network's node env var
// override when it is set, the network's default nodes otherwise.
func NewReaderForNetwork(n networks.Network) *Reader {
	customNode := strings.Trim(os.Getenv(n.GetNodeVariableName()), " ")
	if customNode != "" {
		return NewReader(map[string]string{"custom-node": customNode})
	}
	return NewReader(n.GetDefaultNodes())
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type callResult struct {
	Result []byte
	Error  error
}

func (r *Reader) callRaw(ctx context.Context, accountID, method, argsBase64 string) ([]byte, error) {
	if len(r.nodes) == 0 {
		return nil, fmt.Errorf("no rpc nodes configured")
	}
	resCh := make(chan callResult, len(r.nodes))
	for i := range r.nodes {
		n := r.nodes[i]
		go func() {
			result, err := n.callRaw(ctx, accountID, method, argsBase64)
			resCh <- callResult{
				Result: result,
				Error:  wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(r.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Result, nil
		}
		errs = append(errs, result.Error)
	}
	return nil, errors.Join(errs...)
}

// CallFunction calls a read-only contract function on the first node that
// answers and JSON-decodes the result into out.
func (r *Reader) CallFunction(ctx context.Context, accountID, method string, args any, out any) error {
	argsBase64, err := encodeArgs(args)
	if err != nil {
		return err
	}
	result, err := r.callRaw(ctx, accountID, method, argsBase64)
	if err != nil {
		return err
	}
	return decodeResult(result, out)
}
