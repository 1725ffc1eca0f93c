package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

// tokenService signs HS256 tokens whose subject is the user id. Tokens are
// stateless and cannot be revoked before they expire.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time
}

func NewTokenService(cfg config.App, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      now,
	}
}

func (t *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.issuer, userID, t.duration, t.signKey, t.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, algorithm, issuer and expiry. Every failure other
// than expiry is reported as [ErrTokenMalformed].
func (t *tokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer, t.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	return token.UserID, nil
}
