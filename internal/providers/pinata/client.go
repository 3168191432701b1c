package pinata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
)

const (
	DefaultAPIURL = "https://api.pinata.cloud"

	pinFileEndpoint = "/pinning/pinFileToIPFS"
	pinJSONEndpoint = "/pinning/pinJSONToIPFS"
	pinJobsEndpoint = "/pinning/pinJobs"

	headerAPIKey       = "pinata_api_key"
	headerSecretAPIKey = "pinata_secret_api_key"

	// StatusUnknown is reported when the service has no pin job for a hash
	StatusUnknown = "unknown"
)

// ErrMissingCredentials is returned when the client has no API key pair
var ErrMissingCredentials = errors.New("pinata API keys not configured")

// PinResult is the pinning service response for a successful pin
type PinResult struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Locator returns the content-addressed locator of the pinned content
func (r *PinResult) Locator() string {
	return "ipfs://" + r.IpfsHash
}

// Client is the pinning service collaborator. Every failure is a *domain.PublishError.
//
//go:generate mockgen -source=client.go -destination=../../mocks/pinata_client.go -package=mocks -mock_names=Client=MockPinataClient
type Client interface {
	// PinFile publishes raw file content under name
	PinFile(ctx context.Context, name string, content []byte, keyvalues map[string]string) (*PinResult, error)

	// PinJSON publishes a JSON document under name
	PinJSON(ctx context.Context, name string, doc interface{}) (*PinResult, error)

	// PinStatus returns the status of the most recent pin job for hash
	PinStatus(ctx context.Context, hash string) (string, error)
}

// Config holds pinata client configuration
type Config struct {
	APIURL       string
	APIKey       string
	SecretAPIKey string
}

type client struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewClient creates a pinata client
func NewClient(cfg Config, httpClient adapter.HTTPClient, json adapter.JSON) Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &client{
		config:     cfg,
		httpClient: httpClient,
		json:       json,
	}
}

type pinataMetadata struct {
	Name      string            `json:"name"`
	KeyValues map[string]string `json:"keyvalues,omitempty"`
}

type pinJSONRequest struct {
	PinataContent  interface{}    `json:"pinataContent"`
	PinataMetadata pinataMetadata `json:"pinataMetadata"`
}

type pinJobsResponse struct {
	Count int `json:"count"`
	Rows  []struct {
		IpfsPinHash string `json:"ipfs_pin_hash"`
		Status      string `json:"status"`
	} `json:"rows"`
}

func (c *client) PinFile(ctx context.Context, name string, content []byte, keyvalues map[string]string) (*PinResult, error) {
	if name == "" {
		name = "Untitled"
	}
	if err := c.checkCredentials(name); err != nil {
		return nil, err
	}

	metadata, err := c.json.Marshal(pinataMetadata{Name: name, KeyValues: keyvalues})
	if err != nil {
		return nil, domain.NewPublishError(name, "", fmt.Errorf("failed to encode pin metadata: %w", err))
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, domain.NewPublishError(name, "", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, domain.NewPublishError(name, "", err)
	}
	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return nil, domain.NewPublishError(name, "", err)
	}
	if err := writer.Close(); err != nil {
		return nil, domain.NewPublishError(name, "", err)
	}

	headers := c.authHeaders()
	headers["Content-Type"] = writer.FormDataContentType()

	result, err := c.pin(ctx, name, pinFileEndpoint, headers, body.Bytes())
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Pinned file",
		zap.String("name", name),
		zap.String("ipfs_hash", result.IpfsHash),
		zap.Int("size", len(content)))

	return result, nil
}

func (c *client) PinJSON(ctx context.Context, name string, doc interface{}) (*PinResult, error) {
	if name == "" {
		name = "Untitled"
	}
	if err := c.checkCredentials(name); err != nil {
		return nil, err
	}

	body, err := c.json.Marshal(pinJSONRequest{
		PinataContent:  doc,
		PinataMetadata: pinataMetadata{Name: name},
	})
	if err != nil {
		return nil, domain.NewPublishError(name, "", fmt.Errorf("failed to encode document: %w", err))
	}

	headers := c.authHeaders()
	headers["Content-Type"] = "application/json"

	result, err := c.pin(ctx, name, pinJSONEndpoint, headers, body)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Pinned JSON document",
		zap.String("name", name),
		zap.String("ipfs_hash", result.IpfsHash))

	return result, nil
}

func (c *client) PinStatus(ctx context.Context, hash string) (string, error) {
	if err := c.checkCredentials(hash); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s%s?ipfs_pin_hash=%s", c.config.APIURL, pinJobsEndpoint, url.QueryEscape(hash))
	respBody, err := c.httpClient.GetBytes(ctx, endpoint, c.authHeaders())
	if err != nil {
		return "", c.publishError(hash, err)
	}

	var resp pinJobsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", domain.NewPublishError(hash, "", fmt.Errorf("failed to decode pin jobs: %w", err))
	}

	if len(resp.Rows) == 0 || resp.Rows[0].Status == "" {
		return StatusUnknown, nil
	}
	return resp.Rows[0].Status, nil
}

func (c *client) pin(ctx context.Context, name, endpoint string, headers map[string]string, body []byte) (*PinResult, error) {
	respBody, err := c.httpClient.Post(ctx, c.config.APIURL+endpoint, headers, body)
	if err != nil {
		return nil, c.publishError(name, err)
	}

	var result PinResult
	if err := c.json.Unmarshal(respBody, &result); err != nil {
		return nil, domain.NewPublishError(name, "", fmt.Errorf("failed to decode pin response: %w", err))
	}
	if result.IpfsHash == "" {
		return nil, domain.NewPublishError(name, "", errors.New("pin response has no IpfsHash"))
	}

	return &result, nil
}

func (c *client) checkCredentials(name string) error {
	if c.config.APIKey == "" || c.config.SecretAPIKey == "" {
		return domain.NewPublishError(name, "", ErrMissingCredentials)
	}
	return nil
}

func (c *client) authHeaders() map[string]string {
	return map[string]string{
		headerAPIKey:       c.config.APIKey,
		headerSecretAPIKey: c.config.SecretAPIKey,
	}
}

// publishError extracts the service's failure reason from a non-2xx response
func (c *client) publishError(name string, err error) error {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return domain.NewPublishError(name, c.failureReason(statusErr.Body), err)
	}
	return domain.NewPublishError(name, "", err)
}

// failureReason handles both {"error":"..."} and {"error":{"reason":"...","details":"..."}}
func (c *client) failureReason(body string) string {
	var nested struct {
		Error struct {
			Reason  string `json:"reason"`
			Details string `json:"details"`
		} `json:"error"`
	}
	if err := c.json.Unmarshal([]byte(body), &nested); err == nil && nested.Error.Reason != "" {
		if nested.Error.Details != "" {
			return nested.Error.Reason + ": " + nested.Error.Details
		}
		return nested.Error.Reason
	}

	var flat struct {
		Error string `json:"error"`
	}
	if err := c.json.Unmarshal([]byte(body), &flat); err == nil && flat.Error != "" {
		return flat.Error
	}

	return ""
}
