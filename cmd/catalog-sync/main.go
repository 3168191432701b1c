package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/api/shared/dto"
	"github.com/feral-file/ff-catalog/internal/block"
	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/config"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/history"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
	"github.com/feral-file/ff-catalog/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	owner      = flag.String("owner", "", "Only sync tokens owned or listed by this address")
	listedOnly = flag.Bool("listed", false, "Only output tokens currently listed for sale")
	highlights = flag.Int("highlights", 0, "Output the N most recent tokens only")
	tokenID    = flag.String("history", "", "Output the ownership history of this token id instead of the catalog")
	outPath    = flag.String("out", "", "Write JSON to this file instead of stdout")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadCatalogConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Logs go to stderr so stdout stays valid JSON
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "catalog-sync",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum", zap.Error(err))
	}
	defer ethClient.Close()

	registry, err := ethereum.NewRegistry(ethClient, ethereum.RegistryConfig{
		Address:   cfg.Ethereum.RegistryAddress,
		Shape:     cfg.Ethereum.RegistryShape,
		FromBlock: cfg.Ethereum.FromBlock,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create registry reader", zap.Error(err))
	}

	var output interface{}
	if *tokenID != "" {
		output, err = runHistory(ctx, cfg, registry, ethClient, clock)
	} else {
		output, err = runCatalog(ctx, cfg, registry, jsonAdapter)
	}
	if err != nil {
		logger.FatalCtx(ctx, "Catalog sync failed", zap.Error(err))
	}

	data, err := jsonAdapter.MarshalIndent(output, "", "  ")
	if err != nil {
		logger.FatalCtx(ctx, "Failed to encode output", zap.Error(err))
	}

	if *outPath == "" {
		_, _ = os.Stdout.Write(append(data, '\n'))
		return
	}

	if err := adapter.NewFileSystem().WriteFile(*outPath, data); err != nil {
		logger.FatalCtx(ctx, "Failed to write output", zap.Error(err), zap.String("path", *outPath))
	}
	logger.InfoCtx(ctx, "Wrote catalog", zap.String("path", *outPath))
}

func runCatalog(ctx context.Context, cfg *config.CatalogConfig, registry ethereum.Registry, jsonAdapter adapter.JSON) ([]domain.CatalogEntry, error) {
	resolver := uri.NewResolver(uri.ParseGateway(cfg.URI.DefaultGateway))
	fetcher := metadata.NewFetcher(resolver, adapter.NewHTTPClient(cfg.Metadata.HTTPTimeout, cfg.Metadata.MaxRetryElapsed), jsonAdapter)

	synchronizer, err := catalog.NewSynchronizer(catalog.Config{
		MaxConcurrency: cfg.Catalog.MaxConcurrency,
		SyncTimeout:    cfg.Catalog.SyncTimeout,
	}, registry, fetcher, resolver)
	if err != nil {
		return nil, err
	}

	scope := catalog.AllTokens()
	if *owner != "" {
		scope = catalog.OwnedBy(*owner)
	}

	entries, err := synchronizer.Sync(ctx, scope)
	if err != nil {
		return nil, err
	}
	if *listedOnly {
		entries = catalog.ListedOnly(entries)
	}
	if *highlights > 0 {
		entries = catalog.Highlights(entries, *highlights)
	}

	logger.InfoCtx(ctx, "Catalog synced", zap.String("scope", scope.Label()), zap.Int("entries", len(entries)))

	return entries, nil
}

func runHistory(ctx context.Context, cfg *config.CatalogConfig, registry ethereum.Registry, client adapter.EthClient, clock adapter.Clock) (*dto.HistoryResponse, error) {
	id, ok := new(big.Int).SetString(*tokenID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id %q", *tokenID)
	}

	blockProvider := block.NewBlockProvider(
		ethereum.NewEthereumBlockFetcher(client, clock),
		block.Config{
			TimestampTTL: cfg.Ethereum.BlockTimestampTTL,
			MaxEntries:   cfg.Ethereum.BlockCacheSize,
		},
		clock,
	)
	reconciler := history.NewReconciler(history.Config{
		InitialDisplayCount: cfg.History.InitialDisplayCount,
		MaxConcurrency:      cfg.History.MaxConcurrency,
	}, registry, blockProvider)

	h, err := reconciler.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.MapHistoryToDTO(h, true), nil
}
