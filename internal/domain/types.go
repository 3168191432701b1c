package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is supported
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet || chain == ChainEthereumSepolia
}

// RegistryShape identifies which marketplace contract version the registry speaks.
// The two versions disagree on how "listed for sale" is signalled.
type RegistryShape string

const (
	// RegistryShapeSoldFlag is the later contract: token records carry an explicit sold flag
	RegistryShapeSoldFlag RegistryShape = "sold_flag"
	// RegistryShapeLegacy is the earlier contract: listed-ness is inferred from seller/owner
	RegistryShapeLegacy RegistryShape = "legacy"
)

// Valid checks if the registry shape is known
func (s RegistryShape) Valid() bool {
	return s == RegistryShapeSoldFlag || s == RegistryShapeLegacy
}

// EventType represents the kind of ownership change a transfer log records
type EventType string

const (
	EventTypeTransfer EventType = "transfer"
	EventTypeMint     EventType = "mint"
	EventTypeBurn     EventType = "burn"
)

// TransferEventType determines the event type based on from/to addresses
func TransferEventType(from, to string) EventType {
	if from == "" || strings.EqualFold(from, ETHEREUM_ZERO_ADDRESS) {
		return EventTypeMint
	}
	if to == "" || strings.EqualFold(to, ETHEREUM_ZERO_ADDRESS) {
		return EventTypeBurn
	}
	return EventTypeTransfer
}

// TokenRecord is the authoritative on-chain state of a marketplace token.
// Nil pointers and empty addresses mark fields the registry did not return.
type TokenRecord struct {
	TokenID *big.Int
	Price   *big.Int
	Seller  string
	Owner   string
	// Sold is nil when the registry has no sold flag (legacy shape)
	Sold *bool
}

// Valid reports whether every required on-chain field is present
func (t TokenRecord) Valid() bool {
	return t.TokenID != nil && t.TokenID.Sign() >= 0 &&
		t.Price != nil && t.Price.Sign() >= 0 &&
		t.Seller != "" &&
		t.Owner != ""
}

// Attribute is an OpenSea style trait
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// MetadataProperties carries the file-type specific preview fields of a token
type MetadataProperties struct {
	Size         int64  `json:"size,omitempty"`
	Type         string `json:"type,omitempty"`
	LastModified int64  `json:"lastModified,omitempty"`
	UploadedAt   string `json:"uploadedAt,omitempty"`
	OriginalHash string `json:"originalHash,omitempty"`
	WordCount    int    `json:"wordCount,omitempty"`
	LineCount    int    `json:"lineCount,omitempty"`
}

// MetadataRecord is the off-chain JSON description of a token
type MetadataRecord struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Category    string              `json:"category,omitempty"`
	FileType    string              `json:"fileType,omitempty"`
	Content     string              `json:"content,omitempty"`
	Attributes  []Attribute         `json:"attributes,omitempty"`
	Properties  *MetadataProperties `json:"properties,omitempty"`
}

// PlaceholderMetadata returns the sentinel record substituted for unavailable metadata
func PlaceholderMetadata() MetadataRecord {
	return MetadataRecord{
		Name:        PLACEHOLDER_NAME,
		Description: PLACEHOLDER_DESCRIPTION,
		Image:       PLACEHOLDER_IMAGE,
	}
}

// CatalogEntry is the merged, UI-ready view of one token
type CatalogEntry struct {
	TokenID           string         `json:"token_id"`
	Price             string         `json:"price"`
	PriceDisplay      string         `json:"price_display"`
	Seller            string         `json:"seller"`
	Owner             string         `json:"owner"`
	Sold              *bool          `json:"sold,omitempty"`
	IsListed          bool           `json:"is_listed"`
	Image             string         `json:"image"`
	Metadata          MetadataRecord `json:"metadata"`
	MetadataAvailable bool           `json:"metadata_available"`
}

// TransferKey uniquely identifies a transfer log
type TransferKey struct {
	TxHash   string
	LogIndex uint
}

// TransferEvent is one ownership change of a token
type TransferEvent struct {
	From            string    `json:"from"`
	To              string    `json:"to"`
	Kind            EventType `json:"kind"`
	Timestamp       time.Time `json:"timestamp"`
	TransactionHash string    `json:"transaction_hash"`
	LogIndex        uint      `json:"log_index"`
	BlockNumber     uint64    `json:"block_number"`
}

// Key returns the deduplication key of the event
func (e TransferEvent) Key() TransferKey {
	return TransferKey{TxHash: strings.ToLower(e.TransactionHash), LogIndex: e.LogIndex}
}

// IsMint reports whether the event created the token
func (e TransferEvent) IsMint() bool {
	return e.Kind == EventTypeMint
}

// FromLabel returns the display label of the sender: "Minted" for mints, a short address otherwise
func (e TransferEvent) FromLabel() string {
	if e.IsMint() {
		return "Minted"
	}
	return ShortAddress(e.From)
}

// ToLabel returns the display label of the recipient
func (e TransferEvent) ToLabel() string {
	if e.Kind == EventTypeBurn {
		return "Burned"
	}
	return ShortAddress(e.To)
}

// ShortAddress truncates an address to 0x1234...abcd
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}

// AddressEqual compares two addresses ignoring checksum casing
func AddressEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NormalizeAddress validates an Ethereum address and returns its checksummed form
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address).Hex(), nil
}
