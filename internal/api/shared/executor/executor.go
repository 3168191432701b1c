package executor

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/history"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
	"github.com/feral-file/ff-catalog/internal/publish"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetCatalog syncs the whole catalog; highlights > 0 returns that many entries, newest first
	GetCatalog(ctx context.Context, listedOnly bool, highlights int) (*dto.CatalogResponse, error)

	// GetOwnerCatalog syncs the tokens owned or listed by owner
	GetOwnerCatalog(ctx context.Context, owner string, listedOnly bool) (*dto.CatalogResponse, error)

	// GetTokenHistory reconciles the ownership history of a token
	GetTokenHistory(ctx context.Context, tokenID *big.Int, showAll bool) (*dto.HistoryResponse, error)

	// PublishFile pins an uploaded file
	PublishFile(ctx context.Context, file publish.FileUpload) (*publish.FileResult, error)

	// PublishMetadata pins a token metadata document
	PublishMetadata(ctx context.Context, draft publish.MetadataDraft) (*publish.MetadataResult, error)

	// GetPinStatus returns the pin job status of a content hash
	GetPinStatus(ctx context.Context, hash string) (*dto.PinStatusResponse, error)

	// CreateToken mints and lists a token
	CreateToken(ctx context.Context, tokenURI string, price *big.Int) (*dto.TransactionResponse, error)

	// ExecuteSale buys a listed token; a nil price pays the listed price
	ExecuteSale(ctx context.Context, tokenID *big.Int, price *big.Int) (*dto.TransactionResponse, error)

	// ResellToken relists an owned token
	ResellToken(ctx context.Context, tokenID *big.Int, price *big.Int) (*dto.TransactionResponse, error)

	// SetApproval grants or revokes an operator's rights over the wallet's tokens
	SetApproval(ctx context.Context, operator string, approved bool) (*dto.TransactionResponse, error)
}

type executor struct {
	catalog   catalog.Synchronizer
	history   history.Reconciler
	publisher publish.Service
	market    ethereum.Market
}

// NewExecutor creates the executor. market may be nil when no signing wallet is configured.
func NewExecutor(synchronizer catalog.Synchronizer, reconciler history.Reconciler, publisher publish.Service, market ethereum.Market) Executor {
	return &executor{
		catalog:   synchronizer,
		history:   reconciler,
		publisher: publisher,
		market:    market,
	}
}

func (e *executor) GetCatalog(ctx context.Context, listedOnly bool, highlights int) (*dto.CatalogResponse, error) {
	entries, err := e.catalog.Sync(ctx, catalog.AllTokens())
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to sync catalog")
	}

	if listedOnly {
		entries = catalog.ListedOnly(entries)
	}
	if highlights > 0 {
		entries = catalog.Highlights(entries, highlights)
	}

	return &dto.CatalogResponse{Items: entries, Total: len(entries)}, nil
}

func (e *executor) GetOwnerCatalog(ctx context.Context, owner string, listedOnly bool) (*dto.CatalogResponse, error) {
	entries, err := e.catalog.Sync(ctx, catalog.OwnedBy(owner))
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to sync owner catalog")
	}

	if listedOnly {
		entries = catalog.ListedOnly(entries)
	}

	return &dto.CatalogResponse{Items: entries, Total: len(entries)}, nil
}

func (e *executor) GetTokenHistory(ctx context.Context, tokenID *big.Int, showAll bool) (*dto.HistoryResponse, error) {
	h, err := e.history.Fetch(ctx, tokenID)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to fetch token history")
	}
	return dto.MapHistoryToDTO(h, showAll), nil
}

func (e *executor) PublishFile(ctx context.Context, file publish.FileUpload) (*publish.FileResult, error) {
	result, err := e.publisher.PublishFile(ctx, file)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to publish file")
	}
	return result, nil
}

func (e *executor) PublishMetadata(ctx context.Context, draft publish.MetadataDraft) (*publish.MetadataResult, error) {
	result, err := e.publisher.PublishMetadata(ctx, draft)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to publish metadata")
	}
	return result, nil
}

func (e *executor) GetPinStatus(ctx context.Context, hash string) (*dto.PinStatusResponse, error) {
	status, err := e.publisher.PinStatus(ctx, hash)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to get pin status")
	}
	return &dto.PinStatusResponse{Hash: hash, Status: status}, nil
}

func (e *executor) CreateToken(ctx context.Context, tokenURI string, price *big.Int) (*dto.TransactionResponse, error) {
	if e.market == nil {
		return nil, errMarketDisabled
	}
	result, err := e.market.CreateToken(ctx, tokenURI, price)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to create token")
	}
	return dto.MapTxResultToDTO(result), nil
}

func (e *executor) ExecuteSale(ctx context.Context, tokenID *big.Int, price *big.Int) (*dto.TransactionResponse, error) {
	if e.market == nil {
		return nil, errMarketDisabled
	}
	result, err := e.market.ExecuteSale(ctx, tokenID, price)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to execute sale")
	}
	return dto.MapTxResultToDTO(result), nil
}

func (e *executor) ResellToken(ctx context.Context, tokenID *big.Int, price *big.Int) (*dto.TransactionResponse, error) {
	if e.market == nil {
		return nil, errMarketDisabled
	}
	result, err := e.market.ResellToken(ctx, tokenID, price)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to resell token")
	}
	return dto.MapTxResultToDTO(result), nil
}

func (e *executor) SetApproval(ctx context.Context, operator string, approved bool) (*dto.TransactionResponse, error) {
	if e.market == nil {
		return nil, errMarketDisabled
	}
	result, err := e.market.SetApprovalForAll(ctx, operator, approved)
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to set approval")
	}
	return dto.MapTxResultToDTO(result), nil
}

var errMarketDisabled = apierrors.NewServiceUnavailableError("Marketplace writes are not configured")

// validationErrors are caller mistakes surfaced as 400
var validationErrors = []error{
	domain.ErrInvalidAddress,
	domain.ErrInvalidLocator,
	publish.ErrEmptyFile,
	publish.ErrMissingName,
	publish.ErrMissingImage,
	publish.ErrInvalidCategory,
	publish.ErrInvalidListPrice,
}

// toAPIError maps the domain error taxonomy onto API errors
func toAPIError(ctx context.Context, err error, message string) *apierrors.APIError {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return apierrors.NewValidationError(err.Error())
		}
	}

	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		return apierrors.NewNotFoundError("Token not found", err.Error())
	case errors.Is(err, domain.ErrChainQuery), errors.Is(err, domain.ErrPublish):
		logger.WarnCtx(ctx, message, zap.Error(err))
		return apierrors.NewServiceError(message, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		logger.WarnCtx(ctx, message, zap.Error(err))
		return apierrors.NewServiceError(message, "upstream timed out")
	default:
		logger.ErrorCtx(ctx, err, zap.String("operation", message))
		return apierrors.NewInternalError(message)
	}
}
