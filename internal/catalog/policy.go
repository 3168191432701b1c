package catalog

import (
	"fmt"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// ListingPolicy decides whether a token is currently for sale
type ListingPolicy func(record domain.TokenRecord) bool

// SoldFlagPolicy applies to registries that report an explicit sold flag:
// a token is listed when it is unsold and its seller is not the owner of record.
func SoldFlagPolicy(record domain.TokenRecord) bool {
	if record.Sold != nil && *record.Sold {
		return false
	}
	return !domain.AddressEqual(record.Seller, record.Owner)
}

// LegacyPolicy applies to registries without a sold flag
func LegacyPolicy(record domain.TokenRecord) bool {
	return !domain.AddressEqual(record.Seller, record.Owner)
}

// PolicyFor returns the listing policy of a registry shape
func PolicyFor(shape domain.RegistryShape) (ListingPolicy, error) {
	switch shape {
	case domain.RegistryShapeSoldFlag:
		return SoldFlagPolicy, nil
	case domain.RegistryShapeLegacy:
		return LegacyPolicy, nil
	default:
		return nil, fmt.Errorf("unsupported registry shape: %s", shape)
	}
}
