package dto

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/publish"
)

// PublishMetadataRequest is the body of POST /publish/metadata
type PublishMetadataRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// Validate validates the request
func (r *PublishMetadataRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Image) == "" {
		return fmt.Errorf("image is required")
	}
	switch r.Category {
	case "", domain.CategoryVisualArts, domain.CategoryPoems:
	default:
		return fmt.Errorf("category must be %s or %s", domain.CategoryVisualArts, domain.CategoryPoems)
	}
	if r.Price != "" {
		if _, err := domain.ParseEther(r.Price); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
	}
	return nil
}

// ToDraft converts the request to a publish draft
func (r *PublishMetadataRequest) ToDraft() publish.MetadataDraft {
	return publish.MetadataDraft{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Image:       strings.TrimSpace(r.Image),
		Category:    r.Category,
		Price:       r.Price,
	}
}

// CreateTokenRequest is the body of POST /market/tokens.
// Price is a decimal ether amount; conversion to wei happens here, at the edge.
type CreateTokenRequest struct {
	TokenURI string `json:"token_uri" binding:"required"`
	Price    string `json:"price" binding:"required"`
}

// Validate validates the request and returns the price in wei
func (r *CreateTokenRequest) Validate() (*big.Int, error) {
	if strings.TrimSpace(r.TokenURI) == "" {
		return nil, fmt.Errorf("token_uri is required")
	}
	return parsePrice(r.Price)
}

// PriceRequest is the body of sale and resell requests
type PriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// Validate validates the request and returns the price in wei
func (r *PriceRequest) Validate() (*big.Int, error) {
	return parsePrice(r.Price)
}

// SaleRequest is the body of a sale request; an empty price pays the listed price
type SaleRequest struct {
	Price string `json:"price"`
}

// Validate validates the request and returns the price in wei, or nil for the listed price
func (r *SaleRequest) Validate() (*big.Int, error) {
	if strings.TrimSpace(r.Price) == "" {
		return nil, nil
	}
	return parsePrice(r.Price)
}

// ApprovalRequest is the body of POST /market/approval
type ApprovalRequest struct {
	Operator string `json:"operator" binding:"required"`
	Approved *bool  `json:"approved" binding:"required"`
}

// Validate validates the request and returns the checksummed operator address
func (r *ApprovalRequest) Validate() (string, error) {
	return domain.NormalizeAddress(r.Operator)
}

func parsePrice(price string) (*big.Int, error) {
	wei, err := domain.ParseEther(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}
	if wei.Sign() == 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	return wei, nil
}
