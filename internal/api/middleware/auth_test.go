package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/api/middleware"
	"github.com/feral-file/ff-catalog/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, subject string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_APIKey(t *testing.T) {
	a := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{" key-1 ", "", "key-2"}})

	principal, err := a.Authenticate("ApiKey key-1")
	require.NoError(t, err)
	assert.Equal(t, middleware.AuthTypeAPIKey, principal.AuthType)

	_, err = a.Authenticate("apikey key-2")
	assert.NoError(t, err)

	for _, header := range []string{"", "ApiKey", "ApiKey nope", "Basic abc", "Bearer token"} {
		_, err := a.Authenticate(header)
		assert.Error(t, err, header)
	}
}

func TestAuthenticate_NoAPIKeys(t *testing.T) {
	a := middleware.NewAuthenticator(middleware.AuthConfig{})
	_, err := a.Authenticate("ApiKey anything")
	assert.Error(t, err)
}

func TestAuthenticate_JWT(t *testing.T) {
	key, publicPEM := generateKey(t)
	a := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: publicPEM})

	principal, err := a.Authenticate("Bearer " + signToken(t, key, "artist-1", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, middleware.AuthTypeJWT, principal.AuthType)
	assert.Equal(t, "artist-1", principal.Subject)

	_, err = a.Authenticate("Bearer " + signToken(t, key, "artist-1", time.Now().Add(-time.Hour)))
	assert.Error(t, err, "expired token")

	other, _ := generateKey(t)
	_, err = a.Authenticate("Bearer " + signToken(t, other, "artist-1", time.Now().Add(time.Hour)))
	assert.Error(t, err, "foreign signer")

	hmac := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"})
	signed, err := hmac.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = a.Authenticate("Bearer " + signed)
	assert.Error(t, err, "wrong algorithm")
}

func TestAuthenticate_BadPublicKey(t *testing.T) {
	key, _ := generateKey(t)
	a := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: "not a pem"})

	_, err := a.Authenticate("Bearer " + signToken(t, key, "x", time.Now().Add(time.Hour)))
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/private", middleware.Auth(middleware.AuthConfig{APIKeys: []string{"secret"}}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.AUTH_TYPE_KEY))
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "ApiKey secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, middleware.AuthTypeAPIKey, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
}
