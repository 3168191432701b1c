package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// EthereumConfig holds Ethereum-specific configuration
type EthereumConfig struct {
	RPCURL            string               `mapstructure:"rpc_url"`
	WalletRPCURL      string               `mapstructure:"wallet_rpc_url"` // node holding the signing keys; empty disables market writes
	ChainID           domain.Chain         `mapstructure:"chain_id"`
	RegistryAddress   string               `mapstructure:"registry_address"`
	RegistryShape     domain.RegistryShape `mapstructure:"registry_shape"`
	FromBlock         uint64               `mapstructure:"from_block"`
	BlockTimestampTTL time.Duration        `mapstructure:"block_timestamp_ttl"` // 0 caches forever
	BlockCacheSize    int                  `mapstructure:"block_cache_size"`    // 0 is unbounded
	ReceiptTimeout    time.Duration        `mapstructure:"receipt_timeout"`
}

// URIConfig holds gateway resolver configuration
type URIConfig struct {
	DefaultGateway string `mapstructure:"default_gateway"`
}

// MetadataConfig holds metadata fetcher configuration
type MetadataConfig struct {
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	MaxRetryElapsed time.Duration `mapstructure:"max_retry_elapsed"`
}

// CatalogSyncConfig holds synchronizer configuration
type CatalogSyncConfig struct {
	MaxConcurrency int           `mapstructure:"max_concurrency"` // 0 fans out one worker per token
	SyncTimeout    time.Duration `mapstructure:"sync_timeout"`
}

// HistoryConfig holds ownership history configuration
type HistoryConfig struct {
	InitialDisplayCount int `mapstructure:"initial_display_count"`
	MaxConcurrency      int `mapstructure:"max_concurrency"`
}

// PinataConfig holds pinning service configuration
type PinataConfig struct {
	APIURL       string        `mapstructure:"api_url"`
	APIKey       string        `mapstructure:"api_key"`
	SecretAPIKey string        `mapstructure:"secret_api_key"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

// UploadConfig holds upload rate limiter configuration
type UploadConfig struct {
	Cooldown  time.Duration `mapstructure:"cooldown"`
	QueueSize int           `mapstructure:"queue_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins restricts browser origins; empty allows any
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// CatalogConfig holds configuration for catalog-sync
type CatalogConfig struct {
	BaseConfig `mapstructure:",squash"`
	Ethereum   EthereumConfig    `mapstructure:"ethereum"`
	URI        URIConfig         `mapstructure:"uri"`
	Metadata   MetadataConfig    `mapstructure:"metadata"`
	Catalog    CatalogSyncConfig `mapstructure:"catalog"`
	History    HistoryConfig     `mapstructure:"history"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	CatalogConfig `mapstructure:",squash"`
	Server        ServerConfig `mapstructure:"server"`
	Auth          AuthConfig   `mapstructure:"auth"`
	Pinata        PinataConfig `mapstructure:"pinata"`
	Upload        UploadConfig `mapstructure:"upload"`
}

// Validate checks the values viper cannot type-check
func (c *CatalogConfig) Validate() error {
	if !domain.IsValidChain(c.Ethereum.ChainID) {
		return fmt.Errorf("unsupported chain id: %s", c.Ethereum.ChainID)
	}
	if !c.Ethereum.RegistryShape.Valid() {
		return fmt.Errorf("unknown registry shape: %s", c.Ethereum.RegistryShape)
	}
	if c.Ethereum.RegistryAddress != "" && !common.IsHexAddress(c.Ethereum.RegistryAddress) {
		return fmt.Errorf("%w: registry address %s", domain.ErrInvalidAddress, c.Ethereum.RegistryAddress)
	}
	if c.Catalog.MaxConcurrency < 0 {
		return fmt.Errorf("catalog.max_concurrency must not be negative")
	}
	if c.Ethereum.BlockCacheSize < 0 {
		return fmt.Errorf("ethereum.block_cache_size must not be negative")
	}
	return nil
}

// LoadCatalogConfig loads configuration for catalog-sync
func LoadCatalogConfig(configFile string, envPath string) (*CatalogConfig, error) {
	v := configureViper("catalog-sync", configFile, envPath)
	setCatalogDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config CatalogConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)
	setCatalogDefaults(v)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 90)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("pinata.api_url", "https://api.pinata.cloud")
	v.SetDefault("pinata.http_timeout", 60*time.Second)
	v.SetDefault("upload.cooldown", time.Second)
	v.SetDefault("upload.queue_size", 256)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setCatalogDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("ethereum.chain_id", string(domain.ChainEthereumSepolia))
	v.SetDefault("ethereum.registry_shape", string(domain.RegistryShapeSoldFlag))
	v.SetDefault("ethereum.receipt_timeout", 2*time.Minute)
	v.SetDefault("ethereum.block_cache_size", 10000)
	v.SetDefault("uri.default_gateway", "pinata")
	v.SetDefault("metadata.http_timeout", 30*time.Second)
	v.SetDefault("metadata.max_retry_elapsed", 0)
	v.SetDefault("catalog.max_concurrency", 0)
	v.SetDefault("catalog.sync_timeout", 60*time.Second)
	v.SetDefault("history.initial_display_count", 3)
	v.SetDefault("history.max_concurrency", 8)
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper configures viper for a given service
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys viper already knows about
	bindAllEnvVars(v)
	return v
}

func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.wallet_rpc_url",
		"ethereum.chain_id",
		"ethereum.registry_address",
		"ethereum.registry_shape",
		"ethereum.from_block",
		"ethereum.block_timestamp_ttl",
		"ethereum.block_cache_size",
		"ethereum.receipt_timeout",
		// URI
		"uri.default_gateway",
		// Metadata
		"metadata.http_timeout",
		"metadata.max_retry_elapsed",
		// Catalog
		"catalog.max_concurrency",
		"catalog.sync_timeout",
		// History
		"history.initial_display_count",
		"history.max_concurrency",
		// Pinata
		"pinata.api_url",
		"pinata.api_key",
		"pinata.secret_api_key",
		"pinata.http_timeout",
		// Upload
		"upload.cooldown",
		"upload.queue_size",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// ChdirRepoRoot walks up from the working directory until it finds the config directory
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
