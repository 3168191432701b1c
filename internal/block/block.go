package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// timestampEntry is a cached block timestamp
type timestampEntry struct {
	Timestamp time.Time
	CachedAt  time.Time
}

// BlockProvider resolves block timestamps, caching them in memory.
// Block timestamps are immutable once a block is final, so entries may live forever.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=BlockProvider=MockBlockProvider
type BlockProvider interface {
	// GetBlockTimestamp returns the timestamp for a given block number, potentially from cache
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// BlockFetcher fetches block information from the chain
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=BlockFetcher=MockBlockFetcher
type BlockFetcher interface {
	// FetchBlockTimestamp fetches the timestamp for a given block number
	FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config holds configuration for the BlockProvider
type Config struct {
	// TimestampTTL is how long to cache block timestamps; 0 caches forever
	TimestampTTL time.Duration

	// MaxEntries bounds the cache size; 0 means unbounded
	MaxEntries int
}

type blockProvider struct {
	fetcher BlockFetcher
	config  Config
	clock   adapter.Clock

	mu         sync.RWMutex
	timestamps map[uint64]*timestampEntry
}

// NewBlockProvider creates a new BlockProvider with caching
func NewBlockProvider(fetcher BlockFetcher, config Config, clock adapter.Clock) BlockProvider {
	return &blockProvider{
		fetcher:    fetcher,
		config:     config,
		clock:      clock,
		timestamps: make(map[uint64]*timestampEntry),
	}
}

// GetBlockTimestamp returns the timestamp for a given block number, using cache if valid
func (p *blockProvider) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	p.mu.RLock()
	cached := p.timestamps[blockNumber]
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && (p.config.TimestampTTL == 0 || now.Sub(cached.CachedAt) < p.config.TimestampTTL) {
		logger.DebugCtx(ctx, "Using cached block timestamp",
			zap.Uint64("block_number", blockNumber),
			zap.Time("timestamp", cached.Timestamp))
		return cached.Timestamp, nil
	}

	logger.DebugCtx(ctx, "Fetching block timestamp from chain", zap.Uint64("block_number", blockNumber))
	timestamp, err := p.fetcher.FetchBlockTimestamp(ctx, blockNumber)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch block timestamp for block %d: %w", blockNumber, err)
	}

	p.mu.Lock()
	if p.config.MaxEntries > 0 && len(p.timestamps) >= p.config.MaxEntries {
		p.evictOldest()
	}
	p.timestamps[blockNumber] = &timestampEntry{
		Timestamp: timestamp,
		CachedAt:  now,
	}
	p.mu.Unlock()

	return timestamp, nil
}

// evictOldest drops the entry cached first. Callers hold p.mu.
func (p *blockProvider) evictOldest() {
	var oldestBlock uint64
	var oldest *timestampEntry
	for number, entry := range p.timestamps {
		if oldest == nil || entry.CachedAt.Before(oldest.CachedAt) {
			oldestBlock, oldest = number, entry
		}
	}
	if oldest != nil {
		delete(p.timestamps, oldestBlock)
	}
}
