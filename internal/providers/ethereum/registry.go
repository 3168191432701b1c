package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// defaultLogStepSize is the initial block span of one eth_getLogs request
const defaultLogStepSize = uint64(1000000)

// Registry reads token state from the on-chain marketplace contract.
// Every failure is returned as *domain.ChainQueryError and nothing is cached.
//
//go:generate mockgen -source=registry.go -destination=../../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Shape returns the contract version the registry was configured for
	Shape() domain.RegistryShape

	// AllTokens returns every token record in registry order
	AllTokens(ctx context.Context) ([]domain.TokenRecord, error)

	// TokensOfOwner returns the records owned or listed by owner
	TokensOfOwner(ctx context.Context, owner string) ([]domain.TokenRecord, error)

	// ListedTokenForID returns a single token record
	ListedTokenForID(ctx context.Context, tokenID *big.Int) (*domain.TokenRecord, error)

	// TokenURI returns the metadata locator of a token
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)

	// ListingPrice returns the fee charged for listing a token, in wei
	ListingPrice(ctx context.Context) (*big.Int, error)

	// TransferLogs returns the Transfer events of a token in log order, without timestamps
	TransferLogs(ctx context.Context, tokenID *big.Int) ([]domain.TransferEvent, error)
}

// soldFlagToken mirrors the registry tuple of the sold-flag contract
type soldFlagToken struct {
	TokenId *big.Int //nolint:revive,stylecheck
	Owner   common.Address
	Seller  common.Address
	Price   *big.Int
	Sold    bool
}

// legacyToken mirrors the registry tuple of the legacy contract
type legacyToken struct {
	TokenId         *big.Int //nolint:revive,stylecheck
	Owner           common.Address
	Seller          common.Address
	Price           *big.Int
	CurrentlyListed bool
}

type registry struct {
	client    adapter.EthClient
	address   common.Address
	shape     domain.RegistryShape
	abi       abi.ABI
	fromBlock uint64
	stepSize  uint64
}

// RegistryConfig holds registry configuration
type RegistryConfig struct {
	Address   string
	Shape     domain.RegistryShape
	FromBlock uint64
}

// NewRegistry creates a registry reader bound to a contract address and shape
func NewRegistry(client adapter.EthClient, cfg RegistryConfig) (Registry, error) {
	if !common.IsHexAddress(cfg.Address) {
		return nil, fmt.Errorf("%w: registry address %s", domain.ErrInvalidAddress, cfg.Address)
	}
	if !cfg.Shape.Valid() {
		return nil, fmt.Errorf("unknown registry shape: %s", cfg.Shape)
	}

	parsed, err := RegistryABI(cfg.Shape)
	if err != nil {
		return nil, err
	}

	return &registry{
		client:    client,
		address:   common.HexToAddress(cfg.Address),
		shape:     cfg.Shape,
		abi:       parsed,
		fromBlock: cfg.FromBlock,
		stepSize:  defaultLogStepSize,
	}, nil
}

func (r *registry) Shape() domain.RegistryShape {
	return r.shape
}

// call packs, executes and unpacks a read-only contract call
func (r *registry) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &r.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	out, err := r.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result")
	}

	return out, nil
}

func (r *registry) AllTokens(ctx context.Context) ([]domain.TokenRecord, error) {
	out, err := r.call(ctx, "getAllTokens")
	if err != nil {
		return nil, domain.NewChainQueryError("getAllTokens", err)
	}

	records, err := r.decodeTokens(out[0])
	if err != nil {
		return nil, domain.NewChainQueryError("getAllTokens", err)
	}
	return records, nil
}

func (r *registry) TokensOfOwner(ctx context.Context, owner string) ([]domain.TokenRecord, error) {
	if !common.IsHexAddress(owner) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, owner)
	}

	out, err := r.call(ctx, "getTokensOfOwner", common.HexToAddress(owner))
	if err != nil {
		return nil, domain.NewChainQueryError("getTokensOfOwner", err)
	}

	records, err := r.decodeTokens(out[0])
	if err != nil {
		return nil, domain.NewChainQueryError("getTokensOfOwner", err)
	}
	return records, nil
}

func (r *registry) ListedTokenForID(ctx context.Context, tokenID *big.Int) (*domain.TokenRecord, error) {
	out, err := r.call(ctx, "getListedTokenForId", tokenID)
	if err != nil {
		return nil, domain.NewChainQueryError("getListedTokenForId", err)
	}

	var record domain.TokenRecord
	switch r.shape {
	case domain.RegistryShapeLegacy:
		t, err := convertTuple[legacyToken](out[0])
		if err != nil {
			return nil, domain.NewChainQueryError("getListedTokenForId", err)
		}
		record = legacyRecord(t)
	default:
		t, err := convertTuple[soldFlagToken](out[0])
		if err != nil {
			return nil, domain.NewChainQueryError("getListedTokenForId", err)
		}
		record = soldFlagRecord(t)
	}

	// unused slots come back zeroed
	if !record.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotFound, tokenID)
	}
	return &record, nil
}

func (r *registry) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	out, err := r.call(ctx, "tokenURI", tokenID)
	if err != nil {
		return "", domain.NewChainQueryError("tokenURI", err)
	}

	uri, ok := out[0].(string)
	if !ok {
		return "", domain.NewChainQueryError("tokenURI", fmt.Errorf("unexpected result type %T", out[0]))
	}
	return uri, nil
}

func (r *registry) ListingPrice(ctx context.Context) (*big.Int, error) {
	out, err := r.call(ctx, "getListingPrice")
	if err != nil {
		return nil, domain.NewChainQueryError("getListingPrice", err)
	}

	price, ok := out[0].(*big.Int)
	if !ok {
		return nil, domain.NewChainQueryError("getListingPrice", fmt.Errorf("unexpected result type %T", out[0]))
	}
	return price, nil
}

func (r *registry) TransferLogs(ctx context.Context, tokenID *big.Int) ([]domain.TransferEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(r.fromBlock),
		Addresses: []common.Address{r.address},
		Topics: [][]common.Hash{
			{TransferEventSignature},
			nil,
			nil,
			{common.BigToHash(tokenID)},
		},
	}

	logs, err := r.filterLogsWithPagination(ctx, query)
	if err != nil {
		return nil, domain.NewChainQueryError("getLogs", err)
	}

	events := make([]domain.TransferEvent, 0, len(logs))
	for _, vLog := range logs {
		event, ok := parseTransferLog(vLog)
		if !ok {
			logger.WarnCtx(ctx, "Skipping malformed transfer log",
				zap.String("tx_hash", vLog.TxHash.Hex()),
				zap.Uint("log_index", vLog.Index))
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// parseTransferLog converts a Transfer log; removed (reorged) logs are rejected
func parseTransferLog(vLog types.Log) (domain.TransferEvent, bool) {
	if vLog.Removed || len(vLog.Topics) != 4 || vLog.Topics[0] != TransferEventSignature {
		return domain.TransferEvent{}, false
	}

	from := common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
	to := common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()

	return domain.TransferEvent{
		From:            from,
		To:              to,
		Kind:            domain.TransferEventType(from, to),
		TransactionHash: vLog.TxHash.Hex(),
		LogIndex:        vLog.Index,
		BlockNumber:     vLog.BlockNumber,
	}, true
}

// filterLogsWithPagination splits a log query into block ranges to stay under
// provider result limits, halving the range when a provider rejects it
func (r *registry) filterLogsWithPagination(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	fromBlock := big.NewInt(0)
	if query.FromBlock != nil {
		fromBlock = query.FromBlock
	}

	toBlock := query.ToBlock
	if toBlock == nil {
		latest, err := r.client.HeaderByNumber(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest block: %w", err)
		}
		toBlock = latest.Number
	}

	stepSize := r.stepSize
	var allLogs []types.Log
	currentFrom := new(big.Int).Set(fromBlock)

	for currentFrom.Cmp(toBlock) <= 0 {
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(stepSize-1))
		if currentTo.Cmp(toBlock) > 0 {
			currentTo.Set(toBlock)
		}

		rangeQuery := query
		rangeQuery.FromBlock = new(big.Int).Set(currentFrom)
		rangeQuery.ToBlock = new(big.Int).Set(currentTo)

		logs, err := r.client.FilterLogs(ctx, rangeQuery)
		if err != nil {
			if !isTooManyResultsError(err) || stepSize == 1 {
				return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom.Uint64(), currentTo.Uint64(), err)
			}

			stepSize = stepSize / 2
			logger.Warn("Too many results, reducing step size",
				zap.Uint64("oldStepSize", stepSize*2),
				zap.Uint64("newStepSize", stepSize),
				zap.Uint64("fromBlock", currentFrom.Uint64()),
				zap.Uint64("toBlock", currentTo.Uint64()))
			continue
		}

		allLogs = append(allLogs, logs...)
		currentFrom.SetUint64(currentTo.Uint64() + 1)
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

func (r *registry) decodeTokens(out interface{}) ([]domain.TokenRecord, error) {
	switch r.shape {
	case domain.RegistryShapeLegacy:
		tokens, err := convertTuple[[]legacyToken](out)
		if err != nil {
			return nil, err
		}
		records := make([]domain.TokenRecord, 0, len(tokens))
		for _, t := range tokens {
			records = append(records, legacyRecord(t))
		}
		return records, nil
	default:
		tokens, err := convertTuple[[]soldFlagToken](out)
		if err != nil {
			return nil, err
		}
		records := make([]domain.TokenRecord, 0, len(tokens))
		for _, t := range tokens {
			records = append(records, soldFlagRecord(t))
		}
		return records, nil
	}
}

// convertTuple copies an ABI-decoded anonymous struct into T
func convertTuple[T any](in interface{}) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to decode tuple: %v", r)
		}
	}()

	converted, ok := abi.ConvertType(in, new(T)).(*T)
	if !ok {
		return out, fmt.Errorf("unexpected tuple type %T", in)
	}
	return *converted, nil
}

func soldFlagRecord(t soldFlagToken) domain.TokenRecord {
	if zeroSlot(t.TokenId, t.Price, t.Seller, t.Owner) {
		return domain.TokenRecord{TokenID: t.TokenId, Price: t.Price}
	}
	sold := t.Sold
	return domain.TokenRecord{
		TokenID: t.TokenId,
		Price:   t.Price,
		Seller:  t.Seller.Hex(),
		Owner:   t.Owner.Hex(),
		Sold:    &sold,
	}
}

func legacyRecord(t legacyToken) domain.TokenRecord {
	if zeroSlot(t.TokenId, t.Price, t.Seller, t.Owner) {
		return domain.TokenRecord{TokenID: t.TokenId, Price: t.Price}
	}
	return domain.TokenRecord{
		TokenID: t.TokenId,
		Price:   t.Price,
		Seller:  t.Seller.Hex(),
		Owner:   t.Owner.Hex(),
	}
}

// zeroSlot reports whether a decoded tuple is an unwritten storage slot.
// Such records keep empty addresses and fail validation; a zero address
// inside an otherwise populated record is kept as is.
func zeroSlot(tokenID, price *big.Int, seller, owner common.Address) bool {
	return (tokenID == nil || tokenID.Sign() == 0) &&
		(price == nil || price.Sign() == 0) &&
		seller == (common.Address{}) &&
		owner == (common.Address{})
}
