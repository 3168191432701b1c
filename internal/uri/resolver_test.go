package uri_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/uri"
)

const (
	cidV0 = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	cidV1 = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		locator  string
		gateway  []uri.Gateway
		expected string
	}{
		{
			name:     "empty locator",
			locator:  "",
			expected: "",
		},
		{
			name:     "whitespace locator",
			locator:  "   ",
			expected: "",
		},
		{
			name:     "bare scheme",
			locator:  "ipfs://",
			expected: "",
		},
		{
			name:     "ipfs scheme default gateway",
			locator:  "ipfs://" + cidV0,
			expected: "https://gateway.pinata.cloud/ipfs/" + cidV0,
		},
		{
			name:     "ipfs scheme with path",
			locator:  "ipfs://" + cidV1 + "/metadata.json",
			expected: "https://gateway.pinata.cloud/ipfs/" + cidV1 + "/metadata.json",
		},
		{
			name:     "bare hash",
			locator:  cidV0,
			expected: "https://gateway.pinata.cloud/ipfs/" + cidV0,
		},
		{
			name:     "selected gateway",
			locator:  "ipfs://" + cidV0,
			gateway:  []uri.Gateway{uri.GatewayDweb},
			expected: "https://dweb.link/ipfs/" + cidV0,
		},
		{
			name:     "cloudflare gateway",
			locator:  "ipfs://" + cidV0,
			gateway:  []uri.Gateway{uri.GatewayCloudflare},
			expected: "https://cloudflare-ipfs.com/ipfs/" + cidV0,
		},
		{
			name:     "unknown gateway falls back to pinata",
			locator:  "ipfs://" + cidV0,
			gateway:  []uri.Gateway{uri.Gateway("nope")},
			expected: "https://gateway.pinata.cloud/ipfs/" + cidV0,
		},
		{
			name:     "already a known gateway url",
			locator:  "https://ipfs.io/ipfs/" + cidV0,
			gateway:  []uri.Gateway{uri.GatewayPinata},
			expected: "https://ipfs.io/ipfs/" + cidV0,
		},
		{
			name:     "known gateway host without scheme",
			locator:  "gateway.pinata.cloud/ipfs/" + cidV0,
			expected: "gateway.pinata.cloud/ipfs/" + cidV0,
		},
		{
			name:     "other http url is left alone",
			locator:  "https://example.com/token/1.json",
			expected: "https://example.com/token/1.json",
		},
		{
			name:     "malformed input is best effort",
			locator:  "ipfs://%%%",
			expected: "https://gateway.pinata.cloud/ipfs/%%%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uri.Resolve(tt.locator, tt.gateway...))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	locators := []string{
		"",
		"ipfs://" + cidV0,
		"ipfs://" + cidV1 + "/image.png",
		cidV0,
		"https://gateway.pinata.cloud/ipfs/" + cidV0,
		"https://dweb.link/ipfs/" + cidV1,
		"https://example.com/a.json",
	}

	for _, g := range []uri.Gateway{uri.GatewayPinata, uri.GatewayIPFS, uri.GatewayCloudflare, uri.GatewayDweb} {
		for _, locator := range locators {
			once := uri.Resolve(locator, g)
			assert.Equal(t, once, uri.Resolve(once, g), "gateway %s locator %q", g, locator)
		}
	}
}

func TestResolve_OffIPFSAndEmptyCID(t *testing.T) {
	for _, g := range []uri.Gateway{uri.GatewayPinata, uri.GatewayIPFS, uri.GatewayDweb} {
		assert.Equal(t, "https://example.com/1.json", uri.Resolve("https://example.com/1.json", g))
		assert.Equal(t, "HTTP://example.com/1.json", uri.Resolve("HTTP://example.com/1.json", g))
		assert.Equal(t, "https://example.com/1.json", uri.Resolve("ipfs://https://example.com/1.json", g))
		assert.Empty(t, uri.Resolve("ipfs://", g))
		assert.Empty(t, uri.Resolve("  ipfs://  ", g))
	}
}

func TestParseGateway(t *testing.T) {
	assert.Equal(t, uri.GatewayIPFS, uri.ParseGateway("ipfs"))
	assert.Equal(t, uri.GatewayDweb, uri.ParseGateway(" DWEB "))
	assert.Equal(t, uri.GatewayPinata, uri.ParseGateway(""))
	assert.Equal(t, uri.GatewayPinata, uri.ParseGateway("unknown"))
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/", uri.Gateway("unknown").BaseURL())
}

func TestResolver_UsesDefaultGateway(t *testing.T) {
	r := uri.NewResolver(uri.GatewayIPFS)
	assert.Equal(t, "https://ipfs.io/ipfs/"+cidV0, r.Resolve("ipfs://"+cidV0))
	assert.Equal(t, "", r.Resolve(""))
}

func TestValidateCID(t *testing.T) {
	require.NoError(t, uri.ValidateCID(cidV0))
	require.NoError(t, uri.ValidateCID(cidV1))

	for _, bad := range []string{"", "Qm123", "not-a-cid", cidV0 + "x"} {
		err := uri.ValidateCID(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidLocator, bad)
	}
}

func TestCIDFromLocator(t *testing.T) {
	tests := []struct {
		locator string
		cid     string
		ok      bool
	}{
		{"ipfs://" + cidV0, cidV0, true},
		{"ipfs://ipfs/" + cidV0, cidV0, true},
		{"ipfs://" + cidV1 + "/metadata.json", cidV1, true},
		{"https://gateway.pinata.cloud/ipfs/" + cidV0, cidV0, true},
		{"https://example.com/ipfs/" + cidV1 + "?filename=a.png", cidV1, true},
		{cidV0, cidV0, true},
		{"https://example.com/a.json", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			got, ok := uri.CIDFromLocator(tt.locator)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cid, got)
		})
	}
}
