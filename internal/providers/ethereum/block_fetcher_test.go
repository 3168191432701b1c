package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/mocks"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
)

func TestBlockFetcher_FetchBlockTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockEthClient(ctrl)

	fetcher := ethereum.NewEthereumBlockFetcher(client, adapter.NewClock())

	client.EXPECT().HeaderByNumber(gomock.Any(), big.NewInt(1234)).Return(&types.Header{Time: 1700000000}, nil)
	ts, err := fetcher.FetchBlockTimestamp(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), ts)

	client.EXPECT().HeaderByNumber(gomock.Any(), big.NewInt(99)).Return(nil, errors.New("not found"))
	_, err = fetcher.FetchBlockTimestamp(context.Background(), 99)
	assert.Error(t, err)
}
