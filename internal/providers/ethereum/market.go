package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// ErrTransactionReverted is returned when a mined transaction has a failed status
var ErrTransactionReverted = errors.New("transaction reverted")

// TxResult describes a mined marketplace transaction
type TxResult struct {
	TxHash      string   `json:"tx_hash"`
	BlockNumber uint64   `json:"block_number"`
	From        string   `json:"from"`
	TokenID     *big.Int `json:"token_id,omitempty"`
}

// Market submits marketplace writes through the wallet and waits for them to be mined.
// Rejections and reverts are returned as *domain.ChainQueryError, never swallowed.
//
//go:generate mockgen -source=market.go -destination=../../mocks/market.go -package=mocks -mock_names=Market=MockMarket
type Market interface {
	// ListingPrice returns the fee charged for listing a token, in wei
	ListingPrice(ctx context.Context) (*big.Int, error)

	// CreateToken mints a token for tokenURI and lists it at price, paying the listing fee
	CreateToken(ctx context.Context, tokenURI string, price *big.Int) (*TxResult, error)

	// ResellToken relists an owned token at price, paying the listing fee
	ResellToken(ctx context.Context, tokenID *big.Int, price *big.Int) (*TxResult, error)

	// ExecuteSale buys a listed token, paying price.
	// A nil price pays the price currently listed in the registry.
	ExecuteSale(ctx context.Context, tokenID *big.Int, price *big.Int) (*TxResult, error)

	// SetApprovalForAll grants or revokes operator rights over the caller's tokens
	SetApprovalForAll(ctx context.Context, operator string, approved bool) (*TxResult, error)
}

// MarketConfig holds market configuration
type MarketConfig struct {
	// ReceiptTimeout bounds how long to wait for a transaction to be mined
	ReceiptTimeout time.Duration
	// PollInterval is the initial delay between receipt polls
	PollInterval time.Duration
}

type market struct {
	registry Registry
	wallet   Wallet
	client   adapter.EthClient
	abi      abi.ABI
	address  common.Address
	config   MarketConfig
}

// NewMarket creates a marketplace writer
func NewMarket(registry Registry, wallet Wallet, client adapter.EthClient, registryAddress string, cfg MarketConfig) (Market, error) {
	if !common.IsHexAddress(registryAddress) {
		return nil, fmt.Errorf("%w: registry address %s", domain.ErrInvalidAddress, registryAddress)
	}
	parsed, err := RegistryABI(registry.Shape())
	if err != nil {
		return nil, err
	}
	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = 2 * time.Minute
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}

	return &market{
		registry: registry,
		wallet:   wallet,
		client:   client,
		abi:      parsed,
		address:  common.HexToAddress(registryAddress),
		config:   cfg,
	}, nil
}

func (m *market) ListingPrice(ctx context.Context) (*big.Int, error) {
	return m.registry.ListingPrice(ctx)
}

func (m *market) CreateToken(ctx context.Context, tokenURI string, price *big.Int) (*TxResult, error) {
	listingPrice, err := m.registry.ListingPrice(ctx)
	if err != nil {
		return nil, err
	}

	result, receipt, err := m.transact(ctx, "createToken", listingPrice, tokenURI, price)
	if err != nil {
		return nil, err
	}
	result.TokenID = m.mintedTokenID(receipt)
	return result, nil
}

func (m *market) ResellToken(ctx context.Context, tokenID *big.Int, price *big.Int) (*TxResult, error) {
	listingPrice, err := m.registry.ListingPrice(ctx)
	if err != nil {
		return nil, err
	}

	result, _, err := m.transact(ctx, "resellToken", listingPrice, tokenID, price)
	if err != nil {
		return nil, err
	}
	result.TokenID = tokenID
	return result, nil
}

func (m *market) ExecuteSale(ctx context.Context, tokenID *big.Int, price *big.Int) (*TxResult, error) {
	if price == nil {
		listed, err := m.registry.ListedTokenForID(ctx, tokenID)
		if err != nil {
			return nil, err
		}
		price = listed.Price
	}

	result, _, err := m.transact(ctx, "executeSale", price, tokenID)
	if err != nil {
		return nil, err
	}
	result.TokenID = tokenID
	return result, nil
}

func (m *market) SetApprovalForAll(ctx context.Context, operator string, approved bool) (*TxResult, error) {
	if !common.IsHexAddress(operator) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, operator)
	}

	result, _, err := m.transact(ctx, "setApprovalForAll", nil, common.HexToAddress(operator), approved)
	return result, err
}

// transact packs a call, submits it through the wallet and waits for a successful receipt
func (m *market) transact(ctx context.Context, method string, value *big.Int, args ...interface{}) (*TxResult, *types.Receipt, error) {
	data, err := m.abi.Pack(method, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	from, err := m.wallet.Account(ctx)
	if err != nil {
		return nil, nil, err
	}

	hash, err := m.wallet.SendTransaction(ctx, TxRequest{
		From:  from,
		To:    m.address,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, nil, domain.NewChainQueryError(method, err)
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("method", method),
		zap.String("tx_hash", hash.Hex()),
		zap.String("from", from.Hex()))

	receipt, err := m.waitReceipt(ctx, hash)
	if err != nil {
		return nil, nil, domain.NewChainQueryError(method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, nil, domain.NewChainQueryError(method, fmt.Errorf("%w: %s", ErrTransactionReverted, hash.Hex()))
	}

	result := &TxResult{
		TxHash: hash.Hex(),
		From:   from.Hex(),
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result, receipt, nil
}

// waitReceipt polls for a receipt with exponential backoff until it is mined or the timeout elapses
func (m *market) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	operation := func() error {
		r, err := m.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return err
			}
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.config.PollInterval
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = m.config.ReceiptTimeout
	b.Multiplier = 1.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", hash.Hex(), err)
	}
	return receipt, nil
}

// mintedTokenID finds the token id of the mint Transfer emitted by the registry
func (m *market) mintedTokenID(receipt *types.Receipt) *big.Int {
	for _, vLog := range receipt.Logs {
		if vLog == nil || vLog.Address != m.address {
			continue
		}
		event, ok := parseTransferLog(*vLog)
		if !ok || !event.IsMint() {
			continue
		}
		return new(big.Int).SetBytes(vLog.Topics[3].Bytes())
	}
	return nil
}
