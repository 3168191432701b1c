package domain

const (
	// Placeholder metadata used when a token's off-chain description cannot be loaded
	PLACEHOLDER_NAME        = "Metadata Unavailable"
	PLACEHOLDER_DESCRIPTION = "Could not load NFT metadata"
	PLACEHOLDER_IMAGE       = "default-image-url.jpg"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	ETHER_DECIMALS        = 18

	// Metadata categories accepted at publish time
	CategoryVisualArts = "visual-arts"
	CategoryPoems      = "poems"
)
