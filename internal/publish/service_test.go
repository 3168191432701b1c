package publish_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/mocks"
	"github.com/feral-file/ff-catalog/internal/providers/pinata"
	"github.com/feral-file/ff-catalog/internal/publish"
	"github.com/feral-file/ff-catalog/internal/ratelimit"
	"github.com/feral-file/ff-catalog/internal/uri"
)

const (
	fileHash = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	docHash  = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type publishMocks struct {
	ctrl   *gomock.Controller
	client *mocks.MockPinataClient
	clock  *mocks.MockClock
	queue  ratelimit.Queue
}

var now = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*publishMocks, publish.Service) {
	ctrl := gomock.NewController(t)
	m := &publishMocks{
		ctrl:   ctrl,
		client: mocks.NewMockPinataClient(ctrl),
		clock:  mocks.NewMockClock(ctrl),
		queue:  ratelimit.NewQueue(ratelimit.Config{}, adapter.NewClock()),
	}
	t.Cleanup(func() { _ = m.queue.Close() })
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	svc := publish.NewService(m.client, m.queue, uri.NewResolver(uri.GatewayPinata), adapter.NewJSON(), adapter.NewJCS(), m.clock)
	return m, svc
}

func TestPublishFile_Binary(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	m.client.EXPECT().
		PinFile(gomock.Any(), "art.png", pngHeader, gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, content []byte, kv map[string]string) (*pinata.PinResult, error) {
			assert.Equal(t, "image/png", kv["type"])
			assert.Equal(t, "16", kv["size"])
			assert.Equal(t, "2024-03-01T12:30:00.000Z", kv["uploadedAt"])
			return &pinata.PinResult{IpfsHash: fileHash}, nil
		})

	result, err := svc.PublishFile(context.Background(), publish.FileUpload{Name: "art.png", Content: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/"+fileHash, result.Locator)
	assert.Equal(t, fileHash, result.IpfsHash)
	assert.Equal(t, "image/png", result.ContentType)
	assert.Empty(t, result.Preview)
}

func TestPublishFile_TextGetsDocument(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	content := "# Ode\n\n" + strings.Repeat("word ", 400)
	modified := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	m.client.EXPECT().PinFile(gomock.Any(), "ode.md", []byte(content), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, content []byte, kv map[string]string) (*pinata.PinResult, error) {
			assert.Equal(t, "text/markdown", kv["type"])
			assert.Equal(t, "1706745600000", kv["lastModified"])
			return &pinata.PinResult{IpfsHash: fileHash}, nil
		})
	m.client.EXPECT().PinJSON(gomock.Any(), "ode.md", gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, doc interface{}) (*pinata.PinResult, error) {
			record, ok := doc.(domain.MetadataRecord)
			require.True(t, ok)
			assert.Equal(t, "Text content from ode.md", record.Description)
			assert.Equal(t, "https://gateway.pinata.cloud/ipfs/"+fileHash, record.Image)
			assert.Equal(t, "text/markdown", record.FileType)
			assert.Len(t, record.Content, publish.PreviewLength)
			require.NotNil(t, record.Properties)
			assert.Equal(t, 402, record.Properties.WordCount)
			assert.Equal(t, 3, record.Properties.LineCount)
			assert.Equal(t, fileHash, record.Properties.OriginalHash)
			require.Len(t, record.Attributes, 3)
			assert.Equal(t, "1.96 KB", record.Attributes[1].Value)
			assert.Equal(t, "2024-02-01T00:00:00.000Z", record.Attributes[2].Value)
			return &pinata.PinResult{IpfsHash: docHash}, nil
		})

	result, err := svc.PublishFile(context.Background(), publish.FileUpload{Name: "ode.md", Content: []byte(content), LastModified: modified})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://"+docHash, result.Locator)
	assert.Equal(t, docHash, result.IpfsHash)
	assert.Equal(t, fileHash, result.FileHash)
	assert.Len(t, result.Preview, 100)
}

func TestPublishFile_Failures(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	_, err := svc.PublishFile(context.Background(), publish.FileUpload{Name: "empty.txt"})
	assert.ErrorIs(t, err, publish.ErrEmptyFile)
	assert.ErrorIs(t, err, domain.ErrPublish)

	pinErr := domain.NewPublishError("a.png", "INVALID_CREDENTIALS", errors.New("401"))
	m.client.EXPECT().PinFile(gomock.Any(), "a.png", gomock.Any(), gomock.Any()).Return(nil, pinErr)
	m.client.EXPECT().PinFile(gomock.Any(), "b.png", gomock.Any(), gomock.Any()).Return(&pinata.PinResult{IpfsHash: fileHash}, nil)

	_, err = svc.PublishFile(context.Background(), publish.FileUpload{Name: "a.png", Content: pngHeader})
	var publishErr *domain.PublishError
	require.ErrorAs(t, err, &publishErr)
	assert.Equal(t, "INVALID_CREDENTIALS", publishErr.Reason)

	// the queue keeps serving after a failed task
	result, err := svc.PublishFile(context.Background(), publish.FileUpload{Name: "b.png", Content: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, fileHash, result.IpfsHash)
}

func TestPublishMetadata(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	var pinned interface{}
	m.client.EXPECT().PinJSON(gomock.Any(), "Sunset", gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, doc interface{}) (*pinata.PinResult, error) {
			pinned = doc
			return &pinata.PinResult{IpfsHash: docHash}, nil
		})

	draft := publish.MetadataDraft{
		Name:        "Sunset",
		Description: "Orange sky",
		Image:       "https://gateway.pinata.cloud/ipfs/" + fileHash,
		Category:    domain.CategoryVisualArts,
		Price:       "0.5",
	}
	result, err := svc.PublishMetadata(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://"+docHash, result.Locator)
	assert.Len(t, result.Digest, 64)
	assert.Equal(t, now, result.Timestamp)

	raw, err := adapter.NewJSON().Marshal(pinned)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `{"trait_type":"Category","value":"Visual Arts"}`)
	assert.Contains(t, string(raw), `{"trait_type":"Upload Date","value":"2024-03-01T12:30:00.000Z"}`)

	digest, err := adapter.NewJCS().Digest(raw)
	require.NoError(t, err)
	assert.Equal(t, digest, result.Digest)
}

func TestPublishMetadata_Validation(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	tests := []struct {
		name  string
		draft publish.MetadataDraft
		want  error
	}{
		{"missing name", publish.MetadataDraft{Image: "ipfs://x"}, publish.ErrMissingName},
		{"missing image", publish.MetadataDraft{Name: "x"}, publish.ErrMissingImage},
		{"bad category", publish.MetadataDraft{Name: "x", Image: "ipfs://x", Category: "music"}, publish.ErrInvalidCategory},
		{"bad price", publish.MetadataDraft{Name: "x", Image: "ipfs://x", Price: "abc"}, publish.ErrInvalidListPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PublishMetadata(context.Background(), tt.draft)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrPublish)
		})
	}
}

func TestPinStatus(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	_, err := svc.PinStatus(context.Background(), "not-a-cid")
	assert.ErrorIs(t, err, domain.ErrInvalidLocator)

	m.client.EXPECT().PinStatus(gomock.Any(), fileHash).Return("pinned", nil)
	status, err := svc.PinStatus(context.Background(), fileHash)
	require.NoError(t, err)
	assert.Equal(t, "pinned", status)
}

func TestPinStatus_AcceptsLocators(t *testing.T) {
	m, svc := setup(t)
	defer m.ctrl.Finish()

	locators := []string{
		"ipfs://" + fileHash,
		"ipfs://ipfs/" + fileHash + "/metadata.json",
		"https://gateway.pinata.cloud/ipfs/" + fileHash,
		" " + fileHash + " ",
	}
	m.client.EXPECT().PinStatus(gomock.Any(), fileHash).Return("pinned", nil).Times(len(locators))

	for _, locator := range locators {
		status, err := svc.PinStatus(context.Background(), locator)
		require.NoError(t, err, locator)
		assert.Equal(t, "pinned", status)
	}

	_, err := svc.PinStatus(context.Background(), "https://example.com/ipfs/not-a-cid")
	assert.ErrorIs(t, err, domain.ErrInvalidLocator)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "Visual Arts", publish.CategoryLabel(domain.CategoryVisualArts))
	assert.Equal(t, "Poems", publish.CategoryLabel(domain.CategoryPoems))
	assert.Equal(t, "Poems", publish.CategoryLabel(""))

	assert.Equal(t, "text/plain", publish.DetectContentType("poem.txt", []byte("roses are red")))
	assert.Equal(t, "text/markdown", publish.DetectContentType("README.MD", []byte("# hi")))
	assert.Equal(t, "image/png", publish.DetectContentType("art", pngHeader))

	assert.True(t, publish.IsText("notes.txt", "application/octet-stream"))
	assert.True(t, publish.IsText("x", "text/plain"))
	assert.False(t, publish.IsText("art.png", "image/png"))
}
