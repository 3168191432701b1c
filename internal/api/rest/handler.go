package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog/internal/api/shared/dto"
	"github.com/feral-file/ff-catalog/internal/api/shared/executor"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/publish"
)

// MaxUploadSize bounds the size of a published file
const MaxUploadSize = 50 << 20

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetCatalog returns the catalog of every registry token
	// GET /api/v1/catalog?listed=<bool>&highlights=<n>
	GetCatalog(c *gin.Context)

	// GetOwnerCatalog returns the catalog of tokens owned or listed by an address
	// GET /api/v1/owners/:address/catalog?listed=<bool>
	GetOwnerCatalog(c *gin.Context)

	// GetTokenHistory returns the ownership history of a token
	// GET /api/v1/tokens/:id/history?all=<bool>
	GetTokenHistory(c *gin.Context)

	// PublishFile pins an uploaded file (multipart field "file")
	// POST /api/v1/publish/file
	PublishFile(c *gin.Context)

	// PublishMetadata pins a token metadata document
	// POST /api/v1/publish/metadata
	PublishMetadata(c *gin.Context)

	// GetPinStatus returns the pin job status of a content hash
	// GET /api/v1/publish/status/:hash
	GetPinStatus(c *gin.Context)

	// CreateToken mints and lists a token
	// POST /api/v1/market/tokens
	CreateToken(c *gin.Context)

	// ExecuteSale buys a listed token, at the listed price unless the body names one
	// POST /api/v1/market/tokens/:id/sale
	ExecuteSale(c *gin.Context)

	// ResellToken relists an owned token
	// POST /api/v1/market/tokens/:id/resell
	ResellToken(c *gin.Context)

	// SetApproval grants or revokes operator rights over the wallet's tokens
	// POST /api/v1/market/approval
	SetApproval(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) GetCatalog(c *gin.Context) {
	queryParams, err := ParseCatalogQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetCatalog(c.Request.Context(), queryParams.Listed, queryParams.Highlights)
	if err != nil {
		respondError(c, err, "Failed to sync catalog")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetOwnerCatalog(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid owner address", err.Error())
		return
	}

	queryParams, err := ParseOwnerCatalogQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetOwnerCatalog(c.Request.Context(), address, queryParams.Listed)
	if err != nil {
		respondError(c, err, "Failed to sync owner catalog")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTokenHistory(c *gin.Context) {
	tokenID, err := parseTokenID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return
	}

	queryParams, err := ParseHistoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTokenHistory(c.Request.Context(), tokenID, queryParams.All)
	if err != nil {
		respondError(c, err, "Failed to fetch token history")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) PublishFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid file upload: %v", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Failed to open upload: %v", err))
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Failed to read upload: %v", err))
		return
	}

	upload := publish.FileUpload{
		Name:    fileHeader.Filename,
		Content: content,
	}
	if raw := c.PostForm("last_modified"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondValidationError(c, "last_modified must be a unix timestamp in milliseconds")
			return
		}
		upload.LastModified = time.UnixMilli(ms)
	}

	result, err := h.executor.PublishFile(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err, "Failed to publish file")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) PublishMetadata(c *gin.Context) {
	var req dto.PublishMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.executor.PublishMetadata(c.Request.Context(), req.ToDraft())
	if err != nil {
		respondError(c, err, "Failed to publish metadata")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) GetPinStatus(c *gin.Context) {
	hash := c.Param("hash")
	if hash == "" {
		respondBadRequest(c, "hash is required")
		return
	}

	response, err := h.executor.GetPinStatus(c.Request.Context(), hash)
	if err != nil {
		respondError(c, err, "Failed to get pin status")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CreateToken(c *gin.Context) {
	var req dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	price, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CreateToken(c.Request.Context(), req.TokenURI, price)
	if err != nil {
		respondError(c, err, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) ExecuteSale(c *gin.Context) {
	tokenID, err := parseTokenID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return
	}

	var req dto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	price, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ExecuteSale(c.Request.Context(), tokenID, price)
	if err != nil {
		respondError(c, err, "Failed to execute sale")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ResellToken(c *gin.Context) {
	tokenID, err := parseTokenID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return
	}

	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	price, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ResellToken(c.Request.Context(), tokenID, price)
	if err != nil {
		respondError(c, err, "Failed to resell token")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) SetApproval(c *gin.Context) {
	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	operator, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.SetApproval(c.Request.Context(), operator, *req.Approved)
	if err != nil {
		respondError(c, err, "Failed to set approval")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "ff-catalog-api",
	})
}
