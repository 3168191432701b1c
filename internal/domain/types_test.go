package domain_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestTokenRecord_Valid(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.TokenRecord
		expected bool
	}{
		{
			name:     "complete record",
			record:   domain.TokenRecord{TokenID: big.NewInt(1), Price: big.NewInt(0), Seller: "0xA", Owner: "0xB"},
			expected: true,
		},
		{
			name:     "complete record with sold flag",
			record:   domain.TokenRecord{TokenID: big.NewInt(1), Price: big.NewInt(10), Seller: "0xA", Owner: "0xB", Sold: boolPtr(true)},
			expected: true,
		},
		{
			name:     "missing token id",
			record:   domain.TokenRecord{Price: big.NewInt(1), Seller: "0xA", Owner: "0xB"},
			expected: false,
		},
		{
			name:     "missing price",
			record:   domain.TokenRecord{TokenID: big.NewInt(1), Seller: "0xA", Owner: "0xB"},
			expected: false,
		},
		{
			name:     "negative price",
			record:   domain.TokenRecord{TokenID: big.NewInt(1), Price: big.NewInt(-1), Seller: "0xA", Owner: "0xB"},
			expected: false,
		},
		{
			name:     "missing seller",
			record:   domain.TokenRecord{TokenID: big.NewInt(1), Price: big.NewInt(1), Owner: "0xB"},
			expected: false,
		},
		{
			name:     "missing owner",
			record:   domain.TokenRecord{TokenID: big.NewInt(1), Price: big.NewInt(1), Seller: "0xA"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Valid())
		})
	}
}

func TestTransferEventType(t *testing.T) {
	assert.Equal(t, domain.EventTypeMint, domain.TransferEventType(domain.ETHEREUM_ZERO_ADDRESS, "0xabc"))
	assert.Equal(t, domain.EventTypeMint, domain.TransferEventType("", "0xabc"))
	assert.Equal(t, domain.EventTypeBurn, domain.TransferEventType("0xabc", domain.ETHEREUM_ZERO_ADDRESS))
	assert.Equal(t, domain.EventTypeTransfer, domain.TransferEventType("0xabc", "0xdef"))
}

func TestTransferEvent_Labels(t *testing.T) {
	mint := domain.TransferEvent{
		From: domain.ETHEREUM_ZERO_ADDRESS,
		To:   "0x1234567890abcdef1234567890abcdef12345678",
		Kind: domain.EventTypeMint,
	}
	assert.True(t, mint.IsMint())
	assert.Equal(t, "Minted", mint.FromLabel())
	assert.Equal(t, "0x1234...5678", mint.ToLabel())

	transfer := domain.TransferEvent{
		From: "0xaaaa567890abcdef1234567890abcdef1234bbbb",
		To:   "0x1234567890abcdef1234567890abcdef12345678",
		Kind: domain.EventTypeTransfer,
	}
	assert.False(t, transfer.IsMint())
	assert.Equal(t, "0xaaaa...bbbb", transfer.FromLabel())
}

func TestTransferEvent_KeyIgnoresHashCase(t *testing.T) {
	a := domain.TransferEvent{TransactionHash: "0xABCDEF", LogIndex: 2}
	b := domain.TransferEvent{TransactionHash: "0xabcdef", LogIndex: 2}
	c := domain.TransferEvent{TransactionHash: "0xabcdef", LogIndex: 3}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestNormalizeAddress(t *testing.T) {
	addr, err := domain.NormalizeAddress("0x52908400098527886e0f7030069857d2e4169ee7")
	require.NoError(t, err)
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", addr)

	_, err = domain.NormalizeAddress("not-an-address")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		wei      string
		expected string
	}{
		{"1000000000000000000", "1.0"},
		{"2000000000000000000", "2.0"},
		{"1500000000000000", "0.0015"},
		{"0", "0.0"},
		{"1", "0.000000000000000001"},
		{"123456789000000000000", "123.456789"},
	}

	for _, tt := range tests {
		t.Run(tt.wei, func(t *testing.T) {
			wei, ok := new(big.Int).SetString(tt.wei, 10)
			require.True(t, ok)
			assert.Equal(t, tt.expected, domain.FormatEther(wei))
		})
	}

	assert.Equal(t, "", domain.FormatEther(nil))
}

func TestParseEther(t *testing.T) {
	wei, err := domain.ParseEther("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	wei, err = domain.ParseEther(".01")
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", wei.String())

	for _, bad := range []string{"", "abc", "-1", "1.0000000000000000001"} {
		_, err := domain.ParseEther(bad)
		assert.Error(t, err, bad)
	}
}

func TestTypedErrors(t *testing.T) {
	cause := errors.New("boom")

	chainErr := fmt.Errorf("wrapped: %w", domain.NewChainQueryError("getAllTokens", cause))
	assert.ErrorIs(t, chainErr, domain.ErrChainQuery)
	assert.ErrorIs(t, chainErr, cause)
	var cq *domain.ChainQueryError
	require.ErrorAs(t, chainErr, &cq)
	assert.Equal(t, "getAllTokens", cq.Op)

	assert.ErrorIs(t, domain.NewMetadataUnavailableError("ipfs://x", cause), domain.ErrMetadataUnavailable)
	assert.ErrorIs(t, domain.NewPublishError("file.png", "rate limited", cause), domain.ErrPublish)
	assert.ErrorIs(t, domain.NewBlockResolutionError(10, "0x1", cause), domain.ErrBlockResolution)
	assert.NotErrorIs(t, domain.NewPublishError("x", "", cause), domain.ErrChainQuery)
	assert.Contains(t, domain.NewPublishError("file.png", "rate limited", cause).Error(), "rate limited")
}
