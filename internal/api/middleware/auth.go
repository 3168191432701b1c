package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/logger"
)

const (
	AUTH_TYPE_KEY    = "auth_type"
	AUTH_SUBJECT_KEY = "auth_subject"

	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

var (
	errMissingHeader    = errors.New("missing Authorization header")
	errMalformedHeader  = errors.New("invalid Authorization header format")
	errNoAPIKeys        = errors.New("no API keys configured")
	errInvalidAPIKey    = errors.New("invalid API key")
	errNoJWTKey         = errors.New("JWT public key not configured")
	errInvalidJWTSigner = errors.New("public key is not an RSA key")
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Principal is the authenticated caller
type Principal struct {
	AuthType string
	Subject  string
}

// Authenticator validates Authorization headers against a fixed configuration
type Authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	apiKeys   map[string]struct{}
}

// NewAuthenticator parses the configuration once. A bad public key only disables JWT auth.
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{apiKeys: make(map[string]struct{}, len(cfg.APIKeys))}
	for _, key := range cfg.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			a.apiKeys[key] = struct{}{}
		}
	}

	if cfg.JWTPublicKey == "" {
		a.keyErr = errNoJWTKey
	} else {
		a.publicKey, a.keyErr = parseRSAPublicKey(cfg.JWTPublicKey)
		if a.keyErr != nil {
			logger.Warn("JWT authentication disabled", zap.Error(a.keyErr))
		}
	}

	return a
}

// Authenticate validates "Bearer <jwt>" or "ApiKey <key>" credentials
func (a *Authenticator) Authenticate(authHeader string) (*Principal, error) {
	if authHeader == "" {
		return nil, errMissingHeader
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errMalformedHeader
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &Principal{AuthType: AuthTypeJWT, Subject: claims.Subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return nil, errNoAPIKeys
		}
		if _, ok := a.apiKeys[credentials]; !ok {
			return nil, errInvalidAPIKey
		}
		return &Principal{AuthType: AuthTypeAPIKey}, nil

	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth returns a gin middleware accepting JWT (Bearer) or API key credentials
func Auth(cfg AuthConfig) gin.HandlerFunc {
	authenticator := NewAuthenticator(cfg)

	return func(c *gin.Context) {
		principal, err := authenticator.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(apiErr.StatusCode(), apierrors.NewErrorResponse(apiErr))
			return
		}

		c.Set(AUTH_TYPE_KEY, principal.AuthType)
		if principal.Subject != "" {
			c.Set(AUTH_SUBJECT_KEY, principal.Subject)
		}

		logger.Debug("Authentication successful",
			zap.String("auth_type", principal.AuthType),
			zap.String("subject", principal.Subject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// validateJWT validates an RS256 token; jwt/v5 checks exp and nbf itself
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.keyErr != nil {
		return nil, a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format (PKIX or PKCS1)
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errInvalidJWTSigner
	}

	return rsaKey, nil
}
