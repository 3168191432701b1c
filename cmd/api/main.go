package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/api/middleware"
	"github.com/feral-file/ff-catalog/internal/api/server"
	"github.com/feral-file/ff-catalog/internal/api/shared/executor"
	"github.com/feral-file/ff-catalog/internal/block"
	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/config"
	"github.com/feral-file/ff-catalog/internal/history"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
	"github.com/feral-file/ff-catalog/internal/providers/pinata"
	"github.com/feral-file/ff-catalog/internal/publish"
	"github.com/feral-file/ff-catalog/internal/ratelimit"
	"github.com/feral-file/ff-catalog/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ff-catalog-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Catalog API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	// Connect to the read provider
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum", zap.Error(err))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum", zap.String("chain_id", string(cfg.Ethereum.ChainID)))

	registry, err := ethereum.NewRegistry(ethClient, ethereum.RegistryConfig{
		Address:   cfg.Ethereum.RegistryAddress,
		Shape:     cfg.Ethereum.RegistryShape,
		FromBlock: cfg.Ethereum.FromBlock,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create registry reader", zap.Error(err))
	}

	// Catalog and history
	resolver := uri.NewResolver(uri.ParseGateway(cfg.URI.DefaultGateway))
	metadataHTTP := adapter.NewHTTPClient(cfg.Metadata.HTTPTimeout, cfg.Metadata.MaxRetryElapsed)
	fetcher := metadata.NewFetcher(resolver, metadataHTTP, jsonAdapter)

	synchronizer, err := catalog.NewSynchronizer(catalog.Config{
		MaxConcurrency: cfg.Catalog.MaxConcurrency,
		SyncTimeout:    cfg.Catalog.SyncTimeout,
	}, registry, fetcher, resolver)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create catalog synchronizer", zap.Error(err))
	}

	blockProvider := block.NewBlockProvider(
		ethereum.NewEthereumBlockFetcher(ethClient, clock),
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

	// Publishing
	pinataHTTP := adapter.NewHTTPClient(cfg.Pinata.HTTPTimeout, 0)
	pinataClient := pinata.NewClient(pinata.Config{
		APIURL:       cfg.Pinata.APIURL,
		APIKey:       cfg.Pinata.APIKey,
		SecretAPIKey: cfg.Pinata.SecretAPIKey,
	}, pinataHTTP, jsonAdapter)

	uploadQueue := ratelimit.NewQueue(ratelimit.Config{
		Cooldown:  cfg.Upload.Cooldown,
		QueueSize: cfg.Upload.QueueSize,
	}, clock)
	defer func() {
		if err := uploadQueue.Close(); err != nil {
			logger.Warn("Failed to drain upload queue", zap.Error(err))
		}
	}()

	publisher := publish.NewService(pinataClient, uploadQueue, resolver, jsonAdapter, jcsAdapter, clock)

	// Marketplace writes are optional
	var market ethereum.Market
	if cfg.Ethereum.WalletRPCURL != "" {
		rpcClient, err := adapter.DialRPC(ctx, cfg.Ethereum.WalletRPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to wallet node", zap.Error(err))
		}
		defer rpcClient.Close()

		market, err = ethereum.NewMarket(registry, ethereum.NewRPCWallet(rpcClient), ethClient, cfg.Ethereum.RegistryAddress, ethereum.MarketConfig{
			ReceiptTimeout: cfg.Ethereum.ReceiptTimeout,
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create market", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Marketplace writes enabled")
	} else {
		logger.WarnCtx(ctx, "Wallet RPC URL not configured, marketplace writes are disabled")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, executor.NewExecutor(synchronizer, reconciler, publisher, market))

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Don't reuse the canceled ctx for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
