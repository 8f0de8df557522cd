package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
)

const scopeEmailVerification = "email_verification"

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret          []byte
	accessTTL       time.Duration
	verificationTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, accessTTLMinutes, verificationTTLMinutes int) *TokenManager {
	if accessTTLMinutes <= 0 {
		accessTTLMinutes = 30
	}
	if verificationTTLMinutes <= 0 {
		verificationTTLMinutes = 60
	}
	return &TokenManager{
		secret:          []byte(secret),
		accessTTL:       time.Duration(accessTTLMinutes) * time.Minute,
		verificationTTL: time.Duration(verificationTTLMinutes) * time.Minute,
	}
}

// Claims describes the JWT payload for both access and verification tokens.
type Claims struct {
	Role  domain.UserRole `json:"role,omitempty"`
	Scope string          `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken builds and signs an access JWT for the user.
func (tm *TokenManager) GenerateAccessToken(userID string, role domain.UserRole) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.accessTTL)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseAccessToken validates and returns claims.
func (tm *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims, err := tm.parse(tokenStr, true)
	if err != nil {
		return nil, err
	}
	if claims.Scope != "" {
		return nil, errors.New("not an access token")
	}
	return claims, nil
}

// GenerateVerificationToken builds a time-limited email verification token.
func (tm *TokenManager) GenerateVerificationToken(userID string) (string, error) {
	expiresAt := time.Now().Add(tm.verificationTTL)
	claims := &Claims{
		Scope: scopeEmailVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ParseVerificationToken validates a verification token and returns the user
// id. An expired token with a valid signature returns expired=true so the
// caller can reissue it.
func (tm *TokenManager) ParseVerificationToken(tokenStr string) (userID string, expired bool, err error) {
	claims, err := tm.parse(tokenStr, true)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			return "", false, err
		}
		claims, err = tm.parse(tokenStr, false)
		if err != nil {
			return "", false, err
		}
		expired = true
	}
	if claims.Scope != scopeEmailVerification {
		return "", false, errors.New("not a verification token")
	}
	return claims.Subject, expired, nil
}

func (tm *TokenManager) parse(tokenStr string, validateClaims bool) (*Claims, error) {
	opts := []jwt.ParserOption{}
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
