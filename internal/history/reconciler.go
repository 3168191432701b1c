package history

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/block"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metrics"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
)

// Reconciler rebuilds the ownership history of a token from its Transfer logs.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/history_reconciler.go -package=mocks -mock_names=Reconciler=MockHistoryReconciler
type Reconciler interface {
	// Fetch returns the deduplicated transfers of tokenID, newest first.
	// Transfers whose block cannot be resolved are dropped.
	Fetch(ctx context.Context, tokenID *big.Int) (*History, error)
}

// Config holds reconciler configuration
type Config struct {
	InitialDisplayCount int
	// MaxConcurrency bounds concurrent block lookups; 0 runs one lookup per transfer
	MaxConcurrency int
}

type reconciler struct {
	config   Config
	registry ethereum.Registry
	blocks   block.BlockProvider
}

// NewReconciler creates an ownership history reconciler
func NewReconciler(cfg Config, registry ethereum.Registry, blocks block.BlockProvider) Reconciler {
	return &reconciler{
		config:   cfg,
		registry: registry,
		blocks:   blocks,
	}
}

type resolved struct {
	event domain.TransferEvent
	ok    bool
}

func (r *reconciler) Fetch(ctx context.Context, tokenID *big.Int) (*History, error) {
	if tokenID == nil || tokenID.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid token id", domain.ErrTokenNotFound)
	}

	raw, err := r.registry.TransferLogs(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	events := Dedup(raw)
	if len(events) == 0 {
		return NewHistory(tokenID.String(), []domain.TransferEvent{}, r.config.InitialDisplayCount), nil
	}

	workers := len(events)
	if r.config.MaxConcurrency > 0 && r.config.MaxConcurrency < workers {
		workers = r.config.MaxConcurrency
	}

	pool := pond.NewResultPool[resolved](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, event := range events {
		group.Submit(func() resolved {
			return r.resolve(ctx, tokenID, event)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("history reconciliation aborted: %w", err)
	}

	out := make([]domain.TransferEvent, 0, len(results))
	for _, res := range results {
		if res.ok {
			out = append(out, res.event)
		}
	}
	SortNewestFirst(out)

	logger.DebugCtx(ctx, "Ownership history reconciled",
		zap.String("token_id", tokenID.String()),
		zap.Int("logs", len(raw)),
		zap.Int("transfers", len(out)),
	)

	return NewHistory(tokenID.String(), out, r.config.InitialDisplayCount), nil
}

// resolve attaches the block timestamp to an event; a failed lookup drops the event
func (r *reconciler) resolve(ctx context.Context, tokenID *big.Int, event domain.TransferEvent) resolved {
	ts, err := r.blocks.GetBlockTimestamp(ctx, event.BlockNumber)
	if err != nil {
		resErr := domain.NewBlockResolutionError(event.BlockNumber, event.TransactionHash, err)
		logger.WarnCtx(ctx, "Dropping transfer with unresolvable block",
			zap.String("token_id", tokenID.String()),
			zap.String("tx_hash", event.TransactionHash),
			zap.Uint64("block_number", event.BlockNumber),
			zap.Error(resErr),
		)
		metrics.DroppedTransfers.Inc()
		return resolved{}
	}

	event.Timestamp = ts
	return resolved{event: event, ok: true}
}

// Dedup removes events sharing a transaction hash and log index, keeping the first
func Dedup(events []domain.TransferEvent) []domain.TransferEvent {
	seen := make(map[domain.TransferKey]struct{}, len(events))
	out := make([]domain.TransferEvent, 0, len(events))
	for _, e := range events {
		key := e.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// SortNewestFirst orders events by block number, then log index, both descending
func SortNewestFirst(events []domain.TransferEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].BlockNumber != events[j].BlockNumber {
			return events[i].BlockNumber > events[j].BlockNumber
		}
		return events[i].LogIndex > events[j].LogIndex
	})
}
