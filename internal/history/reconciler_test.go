package history_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/history"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/mocks"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func transfer(from, to, tx string, logIndex uint, blockNumber uint64) domain.TransferEvent {
	return domain.TransferEvent{
		From:            from,
		To:              to,
		Kind:            domain.TransferEventType(from, to),
		TransactionHash: tx,
		LogIndex:        logIndex,
		BlockNumber:     blockNumber,
	}
}

func blockTime(n uint64) time.Time {
	return time.Unix(1700000000+int64(n)*12, 0).UTC()
}

func TestReconciler_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := mocks.NewMockRegistry(ctrl)
	blocks := mocks.NewMockBlockProvider(ctrl)

	r := history.NewReconciler(history.Config{}, registry, blocks)

	registry.EXPECT().TransferLogs(gomock.Any(), big.NewInt(9)).Return([]domain.TransferEvent{
		transfer(domain.ETHEREUM_ZERO_ADDRESS, addrA, "0xaa", 0, 100),
		transfer(addrA, addrB, "0xbb", 3, 200),
		transfer(addrA, addrB, "0xBB", 3, 200),
		transfer(addrB, addrA, "0xcc", 1, 300),
		transfer(addrA, addrB, "0xdd", 5, 300),
	}, nil)
	blocks.EXPECT().GetBlockTimestamp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n uint64) (time.Time, error) {
			return blockTime(n), nil
		}).Times(4)

	h, err := r.Fetch(context.Background(), big.NewInt(9))
	require.NoError(t, err)
	assert.Equal(t, "9", h.TokenID)

	events := h.Events()
	require.Len(t, events, 4)
	assert.Equal(t, "0xdd", events[0].TransactionHash)
	assert.Equal(t, "0xcc", events[1].TransactionHash)
	assert.Equal(t, "0xbb", events[2].TransactionHash)
	assert.Equal(t, "0xaa", events[3].TransactionHash)
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i-1].BlockNumber, events[i].BlockNumber)
	}

	mint := events[3]
	assert.True(t, mint.IsMint())
	assert.Equal(t, "Minted", mint.FromLabel())
	assert.Equal(t, blockTime(100), mint.Timestamp)

	assert.True(t, h.HasMore())
	assert.Len(t, h.Page(false), history.DefaultInitialDisplayCount)
	assert.Len(t, h.Page(true), 4)
}

func TestReconciler_DropsUnresolvableBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := mocks.NewMockRegistry(ctrl)
	blocks := mocks.NewMockBlockProvider(ctrl)

	r := history.NewReconciler(history.Config{MaxConcurrency: 1}, registry, blocks)

	registry.EXPECT().TransferLogs(gomock.Any(), big.NewInt(1)).Return([]domain.TransferEvent{
		transfer(domain.ETHEREUM_ZERO_ADDRESS, addrA, "0x01", 0, 10),
		transfer(addrA, addrB, "0x02", 0, 20),
	}, nil)
	blocks.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(10)).Return(blockTime(10), nil)
	blocks.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(20)).Return(time.Time{}, errors.New("header not found"))

	h, err := r.Fetch(context.Background(), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())
	assert.Equal(t, "0x01", h.Events()[0].TransactionHash)
	assert.False(t, h.HasMore())
}

func TestReconciler_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := mocks.NewMockRegistry(ctrl)
	blocks := mocks.NewMockBlockProvider(ctrl)

	r := history.NewReconciler(history.Config{}, registry, blocks)

	_, err := r.Fetch(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	registry.EXPECT().TransferLogs(gomock.Any(), big.NewInt(2)).
		Return(nil, domain.NewChainQueryError("filterLogs", errors.New("timeout")))
	_, err = r.Fetch(context.Background(), big.NewInt(2))
	assert.ErrorIs(t, err, domain.ErrChainQuery)

	registry.EXPECT().TransferLogs(gomock.Any(), big.NewInt(3)).Return(nil, nil)
	h, err := r.Fetch(context.Background(), big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.NotNil(t, h.Page(false))
}

func TestDedupAndSort(t *testing.T) {
	events := history.Dedup([]domain.TransferEvent{
		transfer(addrA, addrB, "0x01", 1, 5),
		transfer(addrA, addrB, "0x01", 1, 5),
		transfer(addrA, addrB, "0x01", 2, 5),
		transfer(addrB, addrA, "0x02", 0, 7),
	})
	require.Len(t, events, 3)

	history.SortNewestFirst(events)
	assert.Equal(t, uint64(7), events[0].BlockNumber)
	assert.Equal(t, uint(2), events[1].LogIndex)
	assert.Equal(t, uint(1), events[2].LogIndex)
}

func TestHistory_Page(t *testing.T) {
	events := []domain.TransferEvent{
		transfer(addrA, addrB, "0x01", 0, 3),
		transfer(addrA, addrB, "0x02", 0, 2),
	}

	h := history.NewHistory("1", events, 0)
	assert.False(t, h.HasMore())
	assert.Len(t, h.Page(false), 2)

	h = history.NewHistory("1", events, 1)
	assert.True(t, h.HasMore())
	assert.Equal(t, "0x01", h.Page(false)[0].TransactionHash)
	assert.Len(t, h.Page(true), 2)
}
