package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/api/middleware"
	"github.com/feral-file/ff-catalog/internal/api/rest"
	"github.com/feral-file/ff-catalog/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/mocks"
	"github.com/feral-file/ff-catalog/internal/publish"
)

const (
	testAPIKey = "test-key"
	ownerAddr  = "0x52908400098527886E0F7030069857D2E4169EE7"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) (*gomock.Controller, *mocks.MockAPIExecutor, *gin.Engine) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	return ctrl, exec, router
}

func do(router *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

var authHeader = map[string]string{"Authorization": "ApiKey " + testAPIKey}

func TestHealthCheck(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	w := do(router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetCatalog(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().GetCatalog(gomock.Any(), true, 3).Return(&dto.CatalogResponse{
		Items: []domain.CatalogEntry{{TokenID: "2", IsListed: true}},
		Total: 1,
	}, nil)

	w := do(router, http.MethodGet, "/api/v1/catalog?listed=true&highlights=3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "2", resp.Items[0].TokenID)
}

func TestGetCatalog_Errors(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	w := do(router, http.MethodGet, "/api/v1/catalog?highlights=-1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)

	exec.EXPECT().GetCatalog(gomock.Any(), false, 0).
		Return(nil, apierrors.NewServiceError("Failed to sync catalog", "getAllTokens: connection refused"))
	w = do(router, http.MethodGet, "/api/v1/catalog", nil, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, apierrors.ErrCodeServiceError, decodeError(t, w).Code)
}

func TestGetOwnerCatalog(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().GetOwnerCatalog(gomock.Any(), ownerAddr, false).Return(&dto.CatalogResponse{Items: []domain.CatalogEntry{}}, nil)

	w := do(router, http.MethodGet, "/api/v1/owners/0x52908400098527886e0f7030069857d2e4169ee7/catalog", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/owners/nobody/catalog", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTokenHistory(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().GetTokenHistory(gomock.Any(), big.NewInt(12), true).Return(&dto.HistoryResponse{
		TokenID: "12",
		Items:   []dto.TransferResponse{{FromLabel: "Minted", Kind: domain.EventTypeMint}},
		Total:   1,
	}, nil)

	w := do(router, http.MethodGet, "/api/v1/tokens/12/history?all=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"from_label":"Minted"`)

	w = do(router, http.MethodGet, "/api/v1/tokens/abc/history", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishFile(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "poem.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("roses are red"))
	require.NoError(t, writer.WriteField("last_modified", "1706745600000"))
	require.NoError(t, writer.Close())

	exec.EXPECT().PublishFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file publish.FileUpload) (*publish.FileResult, error) {
			assert.Equal(t, "poem.txt", file.Name)
			assert.Equal(t, "roses are red", string(file.Content))
			assert.Equal(t, time.UnixMilli(1706745600000), file.LastModified)
			return &publish.FileResult{Locator: "ipfs://QmDoc"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/publish/file", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"locator":"ipfs://QmDoc"`)
}

func TestPublishFile_RequiresAuth(t *testing.T) {
	ctrl, _, router := setupRouter(t)
	defer ctrl.Finish()

	w := do(router, http.MethodPost, "/api/v1/publish/file", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierrors.ErrCodeUnauthorized, decodeError(t, w).Code)

	w = do(router, http.MethodPost, "/api/v1/publish/file", nil, map[string]string{"Authorization": "ApiKey wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublishMetadata(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().PublishMetadata(gomock.Any(), publish.MetadataDraft{
		Name:     "Sunset",
		Image:    "ipfs://QmImage",
		Category: domain.CategoryVisualArts,
		Price:    "0.5",
	}).Return(&publish.MetadataResult{Locator: "ipfs://QmMeta"}, nil)

	body := []byte(`{"name":" Sunset ","image":"ipfs://QmImage","category":"visual-arts","price":"0.5"}`)
	w := do(router, http.MethodPost, "/api/v1/publish/metadata", body, authHeader)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ipfs://QmMeta")

	w = do(router, http.MethodPost, "/api/v1/publish/metadata", []byte(`{"name":"x","image":"y","category":"music"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/publish/metadata", []byte(`{"name":"x"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPinStatus(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().GetPinStatus(gomock.Any(), "QmHash").Return(&dto.PinStatusResponse{Hash: "QmHash", Status: "pinned"}, nil)
	w := do(router, http.MethodGet, "/api/v1/publish/status/QmHash", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pinned"`)

	exec.EXPECT().GetPinStatus(gomock.Any(), "bad").Return(nil, apierrors.NewValidationError("invalid locator"))
	w = do(router, http.MethodGet, "/api/v1/publish/status/bad", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarketRoutes(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	twoEther, _ := new(big.Int).SetString("2000000000000000000", 10)

	exec.EXPECT().CreateToken(gomock.Any(), "ipfs://QmMeta", twoEther).
		Return(&dto.TransactionResponse{TxHash: "0x01", TokenID: "7"}, nil)
	w := do(router, http.MethodPost, "/api/v1/market/tokens", []byte(`{"token_uri":"ipfs://QmMeta","price":"2"}`), authHeader)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token_id":"7"`)

	exec.EXPECT().ExecuteSale(gomock.Any(), big.NewInt(7), twoEther).
		Return(nil, apierrors.NewServiceError("Failed to execute sale", "user rejected transaction"))
	w = do(router, http.MethodPost, "/api/v1/market/tokens/7/sale", []byte(`{"price":"2.0"}`), authHeader)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decodeError(t, w).Details, "user rejected")

	exec.EXPECT().ResellToken(gomock.Any(), big.NewInt(7), twoEther).Return(&dto.TransactionResponse{TxHash: "0x02"}, nil)
	w = do(router, http.MethodPost, "/api/v1/market/tokens/7/resell", []byte(`{"price":"2"}`), authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPost, "/api/v1/market/tokens/7/resell", []byte(`{"price":"0"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/market/tokens", []byte(`{"token_uri":"ipfs://x","price":"2"}`), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExecuteSale_ListedPrice(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	exec.EXPECT().ExecuteSale(gomock.Any(), big.NewInt(7), gomock.Nil()).
		Return(&dto.TransactionResponse{TxHash: "0x03", TokenID: "7"}, nil).Times(2)

	w := do(router, http.MethodPost, "/api/v1/market/tokens/7/sale", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPost, "/api/v1/market/tokens/7/sale", []byte(`{}`), authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPost, "/api/v1/market/tokens/7/sale", []byte(`{"price":"-1"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetApproval(t *testing.T) {
	ctrl, exec, router := setupRouter(t)
	defer ctrl.Finish()

	operator := "0x52908400098527886E0F7030069857D2E4169EE7"
	exec.EXPECT().SetApproval(gomock.Any(), operator, false).Return(&dto.TransactionResponse{TxHash: "0x04"}, nil)
	w := do(router, http.MethodPost, "/api/v1/market/approval",
		[]byte(`{"operator":"0x52908400098527886e0f7030069857d2e4169ee7","approved":false}`), authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tx_hash":"0x04"`)

	w = do(router, http.MethodPost, "/api/v1/market/approval", []byte(`{"operator":"nope","approved":true}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/market/approval", []byte(`{"operator":"`+operator+`"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/market/approval", []byte(`{"operator":"`+operator+`","approved":true}`), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
