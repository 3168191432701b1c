package metadata

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/uri"
)

var (
	errEmptyURI       = errors.New("empty token uri")
	errNotJSONObject  = errors.New("response is not a json object")
	errMissingName    = errors.New("missing required field: name")
	errMissingImage   = errors.New("missing required field: image")
	errInvalidDataURI = errors.New("invalid data uri")
)

// Fetcher retrieves the off-chain JSON description of a token.
// Every failure is reported as *domain.MetadataUnavailableError; there is no cache and no dedup,
// each call re-fetches.
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	Fetch(ctx context.Context, tokenURI string) (*domain.MetadataRecord, error)
}

type fetcher struct {
	resolver   uri.Resolver
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewFetcher creates a metadata fetcher
func NewFetcher(resolver uri.Resolver, httpClient adapter.HTTPClient, json adapter.JSON) Fetcher {
	return &fetcher{
		resolver:   resolver,
		httpClient: httpClient,
		json:       json,
	}
}

func (f *fetcher) Fetch(ctx context.Context, tokenURI string) (*domain.MetadataRecord, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return nil, domain.NewMetadataUnavailableError(tokenURI, errEmptyURI)
	}

	var body []byte
	var err error
	if strings.HasPrefix(tokenURI, "data:") {
		body, err = parseDataURI(tokenURI)
	} else {
		fetchURL := f.resolver.Resolve(tokenURI)
		logger.DebugCtx(ctx, "fetching token metadata", zap.String("uri", tokenURI), zap.String("url", fetchURL))
		body, err = f.httpClient.GetBytes(ctx, fetchURL, nil)
	}
	if err != nil {
		return nil, domain.NewMetadataUnavailableError(tokenURI, err)
	}

	record, err := f.parse(body)
	if err != nil {
		return nil, domain.NewMetadataUnavailableError(tokenURI, err)
	}

	return record, nil
}

func (f *fetcher) parse(body []byte) (*domain.MetadataRecord, error) {
	if !f.json.Valid(body) {
		return nil, errNotJSONObject
	}

	// Reject arrays and scalars before decoding into the record
	var object map[string]interface{}
	if err := f.json.Unmarshal(body, &object); err != nil || object == nil {
		return nil, errNotJSONObject
	}

	var record domain.MetadataRecord
	if err := f.json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	record.Name = strings.TrimSpace(record.Name)
	record.Image = strings.TrimSpace(record.Image)
	if record.Name == "" {
		return nil, errMissingName
	}
	if record.Image == "" {
		return nil, errMissingImage
	}

	return &record, nil
}

// parseDataURI decodes data:application/json[;base64],<payload>
func parseDataURI(dataURI string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURI, "data:"), ",")
	if !ok {
		return nil, errInvalidDataURI
	}

	if strings.HasSuffix(header, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		return decoded, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDataURI, err)
	}
	return []byte(decoded), nil
}

// Placeholder returns the sentinel record substituted for unavailable metadata
func Placeholder() domain.MetadataRecord {
	return domain.PlaceholderMetadata()
}
