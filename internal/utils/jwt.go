package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWT helper errors. Verification failures wrap the jwt/v5 sentinels, so
// callers can still test for jwt.ErrTokenExpired with errors.Is.
var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrEmptySubject       = errors.New("empty subject in JWT token")
	ErrNoBearerToken      = errors.New("authorization header has no bearer token")
	ErrEmptyBearerToken   = errors.New("empty bearer token")
)

const bearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-job-tracker", userID, 168*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts the user ID.
//
// Validation includes:
//   - HS256 signature verification with tokenSignKey
//   - issuer (iss) equal to tokenIssuer
//   - expiration (exp) relative to now
//   - a non-empty subject (sub)
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "go-job-tracker", time.Now())
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the user to log in again
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: claims.Subject}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
//
// Returns [ErrNoBearerToken] when the header is empty or uses another scheme
// and [ErrEmptyBearerToken] when the scheme is present without a token.
func ParseBearerToken(authorizationHeader string) (string, error) {
	rest, found := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !found {
		return "", ErrNoBearerToken
	}

	token, _, _ := strings.Cut(strings.TrimSpace(rest), " ")
	if token == "" {
		return "", ErrEmptyBearerToken
	}

	return token, nil
}
