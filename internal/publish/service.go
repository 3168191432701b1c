package publish

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/providers/pinata"
	"github.com/feral-file/ff-catalog/internal/ratelimit"
	"github.com/feral-file/ff-catalog/internal/uri"
)

const (
	// PreviewLength is the number of characters of a text file kept in its metadata document
	PreviewLength = 1000

	defaultName = "Untitled"

	mimeTextPlain    = "text/plain"
	mimeTextMarkdown = "text/markdown"

	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

var (
	ErrEmptyFile        = errors.New("no file provided")
	ErrMissingName      = errors.New("name is required")
	ErrMissingImage     = errors.New("image is required")
	ErrInvalidCategory  = errors.New("category is invalid")
	ErrInvalidListPrice = errors.New("price is invalid")
)

// Service publishes creator content to the pinning service.
// PublishFile and PublishMetadata run one at a time through the upload queue.
//
//go:generate mockgen -source=service.go -destination=../mocks/publish_service.go -package=mocks -mock_names=Service=MockPublishService
type Service interface {
	// PublishFile pins a file; text files additionally get an enhanced metadata document
	PublishFile(ctx context.Context, file FileUpload) (*FileResult, error)

	// PublishMetadata pins the metadata document of a token and returns its ipfs:// locator
	PublishMetadata(ctx context.Context, draft MetadataDraft) (*MetadataResult, error)

	// PinStatus returns the pin job status of a content hash.
	// hash may also be an ipfs:// locator or a gateway URL; its root CID is used.
	PinStatus(ctx context.Context, hash string) (string, error)
}

type service struct {
	client   pinata.Client
	queue    ratelimit.Queue
	resolver uri.Resolver
	json     adapter.JSON
	jcs      adapter.JCS
	clock    adapter.Clock
}

// NewService creates a publish service
func NewService(
	client pinata.Client,
	queue ratelimit.Queue,
	resolver uri.Resolver,
	json adapter.JSON,
	jcs adapter.JCS,
	clock adapter.Clock,
) Service {
	return &service{
		client:   client,
		queue:    queue,
		resolver: resolver,
		json:     json,
		jcs:      jcs,
		clock:    clock,
	}
}

func (s *service) PublishFile(ctx context.Context, file FileUpload) (*FileResult, error) {
	if file.Name == "" {
		file.Name = defaultName
	}
	if len(file.Content) == 0 {
		return nil, domain.NewPublishError(file.Name, "", ErrEmptyFile)
	}

	return ratelimit.Enqueue(ctx, s.queue, func(ctx context.Context) (*FileResult, error) {
		return s.publishFile(ctx, file)
	})
}

func (s *service) publishFile(ctx context.Context, file FileUpload) (*FileResult, error) {
	contentType := DetectContentType(file.Name, file.Content)
	uploadedAt := s.clock.Now().UTC()

	keyvalues := map[string]string{
		"type":       contentType,
		"size":       strconv.Itoa(len(file.Content)),
		"uploadedAt": uploadedAt.Format(isoMillis),
	}
	if !file.LastModified.IsZero() {
		keyvalues["lastModified"] = strconv.FormatInt(file.LastModified.UnixMilli(), 10)
	}

	pinned, err := s.client.PinFile(ctx, file.Name, file.Content, keyvalues)
	if err != nil {
		return nil, err
	}

	result := &FileResult{
		Locator:     s.resolver.Resolve(pinned.Locator()),
		IpfsHash:    pinned.IpfsHash,
		FileHash:    pinned.IpfsHash,
		ContentType: contentType,
		Size:        int64(len(file.Content)),
		Timestamp:   uploadedAt,
	}

	if !IsText(file.Name, contentType) {
		return result, nil
	}

	doc := s.textDocument(file, contentType, pinned.IpfsHash, uploadedAt)
	docPin, err := s.client.PinJSON(ctx, file.Name, doc)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Published text file with metadata document",
		zap.String("name", file.Name),
		zap.String("file_hash", pinned.IpfsHash),
		zap.String("document_hash", docPin.IpfsHash),
	)

	result.Locator = docPin.Locator()
	result.IpfsHash = docPin.IpfsHash
	result.Preview = truncate(string(file.Content), 100)
	return result, nil
}

// textDocument builds the preview document pinned alongside a text file
func (s *service) textDocument(file FileUpload, contentType, fileHash string, uploadedAt time.Time) domain.MetadataRecord {
	text := string(file.Content)
	size := int64(len(file.Content))

	attributes := []domain.Attribute{
		{TraitType: "File Type", Value: contentType},
		{TraitType: "Size", Value: fmt.Sprintf("%.2f KB", float64(size)/1024)},
	}
	props := &domain.MetadataProperties{
		Size:         size,
		Type:         contentType,
		UploadedAt:   uploadedAt.Format(isoMillis),
		OriginalHash: fileHash,
		WordCount:    len(strings.Fields(text)),
		LineCount:    countLines(text),
	}
	if !file.LastModified.IsZero() {
		attributes = append(attributes, domain.Attribute{
			TraitType: "Last Modified",
			Value:     file.LastModified.UTC().Format(isoMillis),
		})
		props.LastModified = file.LastModified.UnixMilli()
	}

	return domain.MetadataRecord{
		Name:        file.Name,
		Description: "Text content from " + file.Name,
		Image:       s.resolver.Resolve(uri.IPFSScheme + fileHash),
		FileType:    contentType,
		Content:     truncate(text, PreviewLength),
		Attributes:  attributes,
		Properties:  props,
	}
}

func (s *service) PublishMetadata(ctx context.Context, draft MetadataDraft) (*MetadataResult, error) {
	if err := validateDraft(draft); err != nil {
		return nil, domain.NewPublishError(draft.Name, "", err)
	}

	now := s.clock.Now().UTC()
	doc := metadataDocument{
		Name:        draft.Name,
		Description: draft.Description,
		Image:       draft.Image,
		Category:    draft.Category,
		Price:       draft.Price,
		Attributes: []domain.Attribute{
			{TraitType: "Category", Value: CategoryLabel(draft.Category)},
			{TraitType: "Upload Date", Value: now.Format(isoMillis)},
		},
	}

	raw, err := s.json.Marshal(doc)
	if err != nil {
		return nil, domain.NewPublishError(draft.Name, "", fmt.Errorf("failed to encode metadata: %w", err))
	}
	digest, err := s.jcs.Digest(raw)
	if err != nil {
		return nil, domain.NewPublishError(draft.Name, "", err)
	}

	pinned, err := ratelimit.Enqueue(ctx, s.queue, func(ctx context.Context) (*pinata.PinResult, error) {
		return s.client.PinJSON(ctx, draft.Name, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Published metadata",
		zap.String("name", draft.Name),
		zap.String("ipfs_hash", pinned.IpfsHash),
		zap.String("digest", digest),
	)

	return &MetadataResult{
		Locator:   pinned.Locator(),
		IpfsHash:  pinned.IpfsHash,
		Digest:    digest,
		Timestamp: now,
	}, nil
}

func (s *service) PinStatus(ctx context.Context, hash string) (string, error) {
	root, ok := uri.CIDFromLocator(hash)
	if !ok {
		return "", uri.ValidateCID(hash)
	}
	return s.client.PinStatus(ctx, root)
}

func validateDraft(draft MetadataDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(draft.Image) == "" {
		return ErrMissingImage
	}
	if draft.Category != "" && draft.Category != domain.CategoryVisualArts && draft.Category != domain.CategoryPoems {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, draft.Category)
	}
	if draft.Price != "" {
		if _, err := domain.ParseEther(draft.Price); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidListPrice, err)
		}
	}
	return nil
}

// CategoryLabel returns the display label of a metadata category
func CategoryLabel(category string) string {
	if category == domain.CategoryVisualArts {
		return "Visual Arts"
	}
	return "Poems"
}

// DetectContentType sniffs the content type; markdown is only recognizable by its extension
func DetectContentType(name string, content []byte) string {
	if strings.EqualFold(filepath.Ext(name), ".md") {
		return mimeTextMarkdown
	}
	detected := mimetype.Detect(content).String()
	base, _, _ := strings.Cut(detected, ";")
	return strings.TrimSpace(base)
}

// IsText reports whether a file gets a text preview document
func IsText(name, contentType string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return true
	}
	return contentType == mimeTextPlain || contentType == mimeTextMarkdown
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

// truncate cuts s to at most n characters without splitting a rune
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
