package rest

import (
	"fmt"
	"math/big"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog/internal/domain"
)

const MAX_HIGHLIGHTS = 100

// CatalogQueryParams holds query parameters for GET /catalog
type CatalogQueryParams struct {
	Listed     bool `form:"listed,default=false"`
	Highlights int  `form:"highlights,default=0"`
}

// OwnerCatalogQueryParams holds query parameters for GET /owners/:address/catalog
type OwnerCatalogQueryParams struct {
	Listed bool `form:"listed,default=false"`
}

// HistoryQueryParams holds query parameters for GET /tokens/:id/history
type HistoryQueryParams struct {
	All bool `form:"all,default=false"`
}

// ParseCatalogQuery parses query parameters for GET /catalog
func ParseCatalogQuery(c *gin.Context) (*CatalogQueryParams, error) {
	var params CatalogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Highlights < 0 {
		return nil, fmt.Errorf("highlights must not be negative")
	}
	if params.Highlights > MAX_HIGHLIGHTS {
		params.Highlights = MAX_HIGHLIGHTS
	}

	return &params, nil
}

// ParseOwnerCatalogQuery parses query parameters for GET /owners/:address/catalog
func ParseOwnerCatalogQuery(c *gin.Context) (*OwnerCatalogQueryParams, error) {
	var params OwnerCatalogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseHistoryQuery parses query parameters for GET /tokens/:id/history
func ParseHistoryQuery(c *gin.Context) (*HistoryQueryParams, error) {
	var params HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// parseTokenID parses a non-negative decimal token id
func parseTokenID(raw string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(raw, 10)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid token id %q", domain.ErrTokenNotFound, raw)
	}
	return id, nil
}
