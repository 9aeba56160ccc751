package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mbarbosa/recado-server/internal/config"
	"github.com/mbarbosa/recado-server/internal/model"
)

// Claims represents JWT claims with token type and the optional email
// claim carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	TokenType string `json:"typ"`
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC. Issuer and
// verifier share one secret and one claim schema.
type JWT struct {
	secret     string
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// NewJWT creates a new JWT token manager from the token configuration.
func NewJWT(cfg config.JWT) *JWT {
	return &JWT{
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

// GenerateAccessToken creates a short-lived access token carrying the
// user's email as an extra claim.
func (j *JWT) GenerateAccessToken(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		Email:     email,
		TokenType: typeAccess,
	})

	tokenString, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// GenerateRefreshToken creates a long-lived refresh token and returns its JTI.
func (j *JWT) GenerateRefreshToken(userID int64) (string, string, error) {
	now := time.Now()
	jti := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.refreshTTL)),
		},
		TokenType: typeRefresh,
	})

	tokenString, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, jti, nil
}

// ParseAccessToken validates an access token and returns its payload.
func (j *JWT) ParseAccessToken(tokenString string) (model.TokenPayload, error) {
	return j.parse(tokenString, typeAccess)
}

// ParseRefreshToken validates a refresh token and returns its payload.
func (j *JWT) ParseRefreshToken(tokenString string) (model.TokenPayload, error) {
	return j.parse(tokenString, typeRefresh)
}

func (j *JWT) parse(tokenString, wantType string) (model.TokenPayload, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secret), nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
	)
	if err != nil {
		return model.TokenPayload{}, translateParseError(err)
	}
	if !token.Valid {
		return model.TokenPayload{}, model.ErrTokenInvalid
	}
	if claims.TokenType != wantType {
		return model.TokenPayload{}, model.ErrTokenTypeMismatch
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return model.TokenPayload{}, model.ErrTokenInvalid
	}

	payload := model.TokenPayload{
		UserID: userID,
		Email:  claims.Email,
		JTI:    claims.ID,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}

	return payload, nil
}

func translateParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return model.ErrTokenIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return model.ErrTokenAudienceMismatch
	default:
		return model.ErrTokenInvalid
	}
}
