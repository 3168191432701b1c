package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/mocks"
	"github.com/feral-file/ff-catalog/internal/providers/ethereum"
)

type marketMocks struct {
	ctrl     *gomock.Controller
	registry *mocks.MockRegistry
	wallet   *mocks.MockWallet
	client   *mocks.MockEthClient
	market   ethereum.Market
}

func setupMarket(t *testing.T) *marketMocks {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	wallet := mocks.NewMockWallet(ctrl)
	client := mocks.NewMockEthClient(ctrl)

	registry.EXPECT().Shape().Return(domain.RegistryShapeSoldFlag).AnyTimes()

	m, err := ethereum.NewMarket(registry, wallet, client, registryAddress, ethereum.MarketConfig{
		ReceiptTimeout: 5 * time.Second,
		PollInterval:   time.Millisecond,
	})
	require.NoError(t, err)

	return &marketMocks{ctrl: ctrl, registry: registry, wallet: wallet, client: client, market: m}
}

func TestMarket_CreateToken(t *testing.T) {
	mm := setupMarket(t)
	defer mm.ctrl.Finish()

	listingFee := big.NewInt(1e16)
	txHash := common.HexToHash("0x01")
	mintLog := transferLog(common.Address{}, addrA, 7, 55, "0x01", 0)

	mm.registry.EXPECT().ListingPrice(gomock.Any()).Return(listingFee, nil)
	mm.wallet.EXPECT().Account(gomock.Any()).Return(addrA, nil)
	mm.wallet.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx ethereum.TxRequest) (common.Hash, error) {
			assert.Equal(t, addrA, tx.From)
			assert.Equal(t, common.HexToAddress(registryAddress), tx.To)
			assert.Equal(t, listingFee, tx.Value)
			assert.Equal(t, methodID(t, domain.RegistryShapeSoldFlag, "createToken"), tx.Data[:4])
			return txHash, nil
		})
	gomock.InOrder(
		mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(nil, goethereum.NotFound),
		mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(55),
			Logs:        []*types.Log{&mintLog},
		}, nil),
	)

	result, err := mm.market.CreateToken(context.Background(), "ipfs://QmMeta", big.NewInt(2e18))
	require.NoError(t, err)
	assert.Equal(t, txHash.Hex(), result.TxHash)
	assert.Equal(t, uint64(55), result.BlockNumber)
	assert.Equal(t, addrA.Hex(), result.From)
	require.NotNil(t, result.TokenID)
	assert.Equal(t, int64(7), result.TokenID.Int64())
}

func TestMarket_ExecuteSale_PaysPrice(t *testing.T) {
	mm := setupMarket(t)
	defer mm.ctrl.Finish()

	price := big.NewInt(2e18)
	txHash := common.HexToHash("0x02")

	mm.wallet.EXPECT().Account(gomock.Any()).Return(addrB, nil)
	mm.wallet.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx ethereum.TxRequest) (common.Hash, error) {
			assert.Equal(t, price, tx.Value)
			assert.Equal(t, methodID(t, domain.RegistryShapeSoldFlag, "executeSale"), tx.Data[:4])
			return txHash, nil
		})
	mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(60),
	}, nil)

	result, err := mm.market.ExecuteSale(context.Background(), big.NewInt(2), price)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TokenID.Int64())
}

func TestMarket_ExecuteSale_PaysListedPrice(t *testing.T) {
	mm := setupMarket(t)
	defer mm.ctrl.Finish()

	listed := eth(3)
	txHash := common.HexToHash("0x06")

	mm.registry.EXPECT().ListedTokenForID(gomock.Any(), big.NewInt(5)).Return(&domain.TokenRecord{
		TokenID: big.NewInt(5),
		Price:   listed,
		Seller:  addrA.Hex(),
		Owner:   registryAddress,
	}, nil)
	mm.wallet.EXPECT().Account(gomock.Any()).Return(addrB, nil)
	mm.wallet.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx ethereum.TxRequest) (common.Hash, error) {
			assert.Equal(t, listed, tx.Value)
			return txHash, nil
		})
	mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	result, err := mm.market.ExecuteSale(context.Background(), big.NewInt(5), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.TokenID.Int64())
}

func TestMarket_ExecuteSale_NotListed(t *testing.T) {
	mm := setupMarket(t)
	defer mm.ctrl.Finish()

	mm.registry.EXPECT().ListedTokenForID(gomock.Any(), big.NewInt(9)).
		Return(nil, domain.ErrTokenNotFound)

	_, err := mm.market.ExecuteSale(context.Background(), big.NewInt(9), nil)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestMarket_ResellToken_PaysListingFee(t *testing.T) {
	mm := setupMarket(t)
	defer mm.ctrl.Finish()

	listingFee := big.NewInt(1e16)
	txHash := common.HexToHash("0x03")

	mm.registry.EXPECT().ListingPrice(gomock.Any()).Return(listingFee, nil)
	mm.wallet.EXPECT().Account(gomock.Any()).Return(addrA, nil)
	mm.wallet.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx ethereum.TxRequest) (common.Hash, error) {
			assert.Equal(t, listingFee, tx.Value)
			return txHash, nil
		})
	mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	_, err := mm.market.ResellToken(context.Background(), big.NewInt(4), big.NewInt(3e18))
	require.NoError(t, err)
}

func TestMarket_Failures(t *testing.T) {
	t.Run("wallet rejects", func(t *testing.T) {
		mm := setupMarket(t)
		defer mm.ctrl.Finish()

		mm.wallet.EXPECT().Account(gomock.Any()).Return(addrB, nil)
		mm.wallet.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(common.Hash{}, errors.New("user rejected transaction"))

		_, err := mm.market.ExecuteSale(context.Background(), big.NewInt(1), big.NewInt(1))
		require.ErrorIs(t, err, domain.ErrChainQuery)
		var chainErr *domain.ChainQueryError
		require.ErrorAs(t, err, &chainErr)
		assert.Equal(t, "executeSale", chainErr.Op)
	})

	t.Run("transaction reverted", func(t *testing.T) {
		mm := setupMarket(t)
		defer mm.ctrl.Finish()

		txHash := common.HexToHash("0x04")
		mm.wallet.EXPECT().Account(gomock.Any()).Return(addrB, nil)
		mm.wallet.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(txHash, nil)
		mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

		_, err := mm.market.ExecuteSale(context.Background(), big.NewInt(1), big.NewInt(1))
		assert.ErrorIs(t, err, domain.ErrChainQuery)
		assert.ErrorIs(t, err, ethereum.ErrTransactionReverted)
	})

	t.Run("listing price unavailable", func(t *testing.T) {
		mm := setupMarket(t)
		defer mm.ctrl.Finish()

		mm.registry.EXPECT().ListingPrice(gomock.Any()).
			Return(nil, domain.NewChainQueryError("getListingPrice", errors.New("down")))

		_, err := mm.market.CreateToken(context.Background(), "ipfs://x", big.NewInt(1))
		assert.ErrorIs(t, err, domain.ErrChainQuery)
	})

	t.Run("invalid operator", func(t *testing.T) {
		mm := setupMarket(t)
		defer mm.ctrl.Finish()

		_, err := mm.market.SetApprovalForAll(context.Background(), "nope", true)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})
}

func TestMarket_SetApprovalForAll(t *testing.T) {
	mm := setupMarket(t)
	defer mm.ctrl.Finish()

	txHash := common.HexToHash("0x05")
	mm.wallet.EXPECT().Account(gomock.Any()).Return(addrA, nil)
	mm.wallet.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx ethereum.TxRequest) (common.Hash, error) {
			assert.Nil(t, tx.Value)
			assert.Equal(t, methodID(t, domain.RegistryShapeSoldFlag, "setApprovalForAll"), tx.Data[:4])
			return txHash, nil
		})
	mm.client.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	result, err := mm.market.SetApprovalForAll(context.Background(), addrC.Hex(), true)
	require.NoError(t, err)
	assert.Equal(t, txHash.Hex(), result.TxHash)
}
