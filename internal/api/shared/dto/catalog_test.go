package dto_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/api/shared/dto"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/history"
	"github.com/feral-file/ff-catalog/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestMapHistoryToDTO(t *testing.T) {
	const (
		addrA = "0x1111111111111111111111111111111111111111"
		addrB = "0x2222222222222222222222222222222222222222"
	)
	zero := "0x0000000000000000000000000000000000000000"
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []domain.TransferEvent{
		{From: addrA, To: addrB, Kind: domain.EventTypeTransfer, Timestamp: ts, TransactionHash: "0x03", LogIndex: 2, BlockNumber: 30},
		{From: addrB, To: addrA, Kind: domain.EventTypeTransfer, Timestamp: ts.Add(-time.Hour), TransactionHash: "0x02", BlockNumber: 20},
		{From: zero, To: addrB, Kind: domain.EventTypeMint, Timestamp: ts.Add(-2 * time.Hour), TransactionHash: "0x01", BlockNumber: 10},
	}
	h := history.NewHistory("9", events, 1)

	t.Run("all transfers", func(t *testing.T) {
		resp := dto.MapHistoryToDTO(h, true)
		assert.Equal(t, "9", resp.TokenID)
		assert.Equal(t, 3, resp.Total)
		assert.False(t, resp.HasMore)
		require.Len(t, resp.Items, 3)

		first := resp.Items[0]
		assert.Equal(t, addrA, first.From)
		assert.Equal(t, addrB, first.To)
		assert.Equal(t, events[0].FromLabel(), first.FromLabel)
		assert.Equal(t, events[0].ToLabel(), first.ToLabel)
		assert.Equal(t, uint(2), first.LogIndex)
		assert.Equal(t, uint64(30), first.BlockNumber)
		assert.Equal(t, ts, first.Timestamp)

		assert.Equal(t, "Minted", resp.Items[2].FromLabel)
		assert.Equal(t, domain.EventTypeMint, resp.Items[2].Kind)
	})

	t.Run("initial page", func(t *testing.T) {
		resp := dto.MapHistoryToDTO(h, false)
		assert.Equal(t, 3, resp.Total)
		assert.True(t, resp.HasMore)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "0x03", resp.Items[0].TransactionHash)
	})
}
