package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/metrics"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
	"github.com/feral-file/ff-catalog/internal/uri"
)

// Synchronizer builds the catalog by merging registry records with their off-chain metadata.
//
//go:generate mockgen -source=synchronizer.go -destination=../mocks/catalog_synchronizer.go -package=mocks -mock_names=Synchronizer=MockCatalogSynchronizer
type Synchronizer interface {
	// Sync returns one entry per well-formed registry token in registry order.
	// A registry failure is returned as *domain.ChainQueryError; metadata failures never fail the sync.
	Sync(ctx context.Context, scope Scope) ([]domain.CatalogEntry, error)
}

// Config holds synchronizer configuration
type Config struct {
	// MaxConcurrency bounds in-flight per-token pipelines; 0 runs one worker per token
	MaxConcurrency int
	// SyncTimeout bounds each token's metadata pipeline; 0 disables it.
	// A token that runs past it is emitted with placeholder metadata.
	SyncTimeout time.Duration
}

type synchronizer struct {
	config   Config
	registry ethereum.Registry
	fetcher  metadata.Fetcher
	resolver uri.Resolver
	policy   ListingPolicy
}

// NewSynchronizer creates a catalog synchronizer. The listing policy follows the registry shape.
func NewSynchronizer(cfg Config, registry ethereum.Registry, fetcher metadata.Fetcher, resolver uri.Resolver) (Synchronizer, error) {
	policy, err := PolicyFor(registry.Shape())
	if err != nil {
		return nil, err
	}

	return &synchronizer{
		config:   cfg,
		registry: registry,
		fetcher:  fetcher,
		resolver: resolver,
		policy:   policy,
	}, nil
}

func (s *synchronizer) Sync(ctx context.Context, scope Scope) (entries []domain.CatalogEntry, err error) {
	timer := prometheus.NewTimer(metrics.SyncDuration.WithLabelValues(scope.Label()))
	defer func() {
		timer.ObserveDuration()
		metrics.SyncTotal.WithLabelValues(scope.Label(), metrics.Result(err)).Inc()
	}()

	if err := scope.Validate(); err != nil {
		return nil, err
	}

	records, err := s.fetchRecords(ctx, scope)
	if err != nil {
		return nil, err
	}

	valid := s.dropMalformed(ctx, records)
	if len(valid) == 0 {
		return []domain.CatalogEntry{}, nil
	}

	workers := len(valid)
	if s.config.MaxConcurrency > 0 && s.config.MaxConcurrency < workers {
		workers = s.config.MaxConcurrency
	}

	pool := pond.NewResultPool[domain.CatalogEntry](workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, record := range valid {
		group.Submit(func() domain.CatalogEntry {
			return s.buildEntry(ctx, record)
		})
	}

	// group results keep submission order, which is registry order
	entries, err = group.Wait()
	if err != nil {
		return nil, fmt.Errorf("catalog sync aborted: %w", err)
	}

	logger.InfoCtx(ctx, "Catalog synchronized",
		zap.String("scope", scope.Label()),
		zap.Int("records", len(records)),
		zap.Int("entries", len(entries)),
	)

	return entries, nil
}

func (s *synchronizer) fetchRecords(ctx context.Context, scope Scope) ([]domain.TokenRecord, error) {
	if owner, ok := scope.Owner(); ok {
		return s.registry.TokensOfOwner(ctx, owner)
	}
	return s.registry.AllTokens(ctx)
}

func (s *synchronizer) dropMalformed(ctx context.Context, records []domain.TokenRecord) []domain.TokenRecord {
	valid := make([]domain.TokenRecord, 0, len(records))
	for i, record := range records {
		if !record.Valid() {
			logger.WarnCtx(ctx, "Dropping malformed registry record",
				zap.Int("position", i),
				zap.Any("token_id", record.TokenID),
			)
			metrics.DroppedRecords.Inc()
			continue
		}
		valid = append(valid, record)
	}
	return valid
}

// buildEntry runs the per-token pipeline: locator, metadata, merge
func (s *synchronizer) buildEntry(ctx context.Context, record domain.TokenRecord) domain.CatalogEntry {
	meta, available := s.loadMetadata(ctx, record)

	image := meta.Image
	if available {
		image = s.resolver.Resolve(meta.Image)
	}

	return domain.CatalogEntry{
		TokenID:           record.TokenID.String(),
		Price:             record.Price.String(),
		PriceDisplay:      domain.FormatEther(record.Price),
		Seller:            record.Seller,
		Owner:             record.Owner,
		Sold:              record.Sold,
		IsListed:          s.policy(record),
		Image:             image,
		Metadata:          meta,
		MetadataAvailable: available,
	}
}

func (s *synchronizer) loadMetadata(ctx context.Context, record domain.TokenRecord) (domain.MetadataRecord, bool) {
	if s.config.SyncTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.SyncTimeout)
		defer cancel()
	}

	tokenURI, err := s.registry.TokenURI(ctx, record.TokenID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to get token URI, using placeholder",
			zap.String("token_id", record.TokenID.String()),
			zap.Error(err),
		)
		metrics.MetadataUnavailable.Inc()
		return metadata.Placeholder(), false
	}

	meta, err := s.fetcher.Fetch(ctx, tokenURI)
	if err != nil {
		logger.WarnCtx(ctx, "Metadata unavailable, using placeholder",
			zap.String("token_id", record.TokenID.String()),
			zap.String("token_uri", tokenURI),
			zap.Error(err),
		)
		metrics.MetadataUnavailable.Inc()
		return metadata.Placeholder(), false
	}

	return *meta, true
}
