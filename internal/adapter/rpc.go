package adapter

import (
	"context"

	"github.com/ethereum/go-ethereum/rpc"
)

// RPCClient defines an interface for raw JSON-RPC calls to enable mocking.
// It is used for methods the typed ethclient does not expose, such as
// account listing and transaction submission on a key-holding node.
//
//go:generate mockgen -source=rpc.go -destination=../mocks/rpc.go -package=mocks -mock_names=RPCClient=MockRPCClient
type RPCClient interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	Close()
}

// DialRPC connects to a JSON-RPC endpoint
func DialRPC(ctx context.Context, rawurl string) (RPCClient, error) {
	return rpc.DialContext(ctx, rawurl)
}
