package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
)

// ErrNoAccount is returned when the signing node exposes no account
var ErrNoAccount = errors.New("wallet has no unlocked account")

// TxRequest is an unsigned transaction handed to the wallet for signing
type TxRequest struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Data  []byte
}

// Wallet is the signing collaborator: it knows the active account and submits
// transactions on its behalf. Key material never leaves the wallet.
//
//go:generate mockgen -source=wallet.go -destination=../../mocks/wallet.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// Account returns the active account address
	Account(ctx context.Context) (common.Address, error)

	// SendTransaction signs and broadcasts a transaction, returning its hash
	SendTransaction(ctx context.Context, tx TxRequest) (common.Hash, error)
}

// rpcWallet talks to a node or signer that holds the keys (eth_accounts / eth_sendTransaction)
type rpcWallet struct {
	client adapter.RPCClient
}

// NewRPCWallet creates a wallet backed by a key-holding JSON-RPC endpoint
func NewRPCWallet(client adapter.RPCClient) Wallet {
	return &rpcWallet{client: client}
}

func (w *rpcWallet) Account(ctx context.Context) (common.Address, error) {
	var accounts []common.Address
	if err := w.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return common.Address{}, domain.NewChainQueryError("eth_accounts", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, domain.NewChainQueryError("eth_accounts", ErrNoAccount)
	}
	return accounts[0], nil
}

func (w *rpcWallet) SendTransaction(ctx context.Context, tx TxRequest) (common.Hash, error) {
	args := map[string]interface{}{
		"from": tx.From,
		"to":   tx.To,
		"data": hexutil.Bytes(tx.Data),
	}
	if tx.Value != nil && tx.Value.Sign() > 0 {
		args["value"] = (*hexutil.Big)(tx.Value)
	}

	var hash common.Hash
	if err := w.client.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return hash, nil
}
