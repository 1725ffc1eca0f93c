package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and token resolution
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokenService TokenService
	validator    validators.Validator
	ids          IDGenerator

	// hashCost is the bcrypt work factor applied at registration.
	hashCost int

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenService TokenService,
	validator validators.Validator,
	ids IDGenerator,
	cfg config.App,
	now func() time.Time,
	logger *logger.Logger,
) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		validator:      validator,
		ids:            ids,
		hashCost:       cfg.PasswordHashCost,
		now:            now,
		logger:         logger,
	}
}

// Register creates an account and returns a token for it.
//
// The password confirmation is checked first, then the request fields.
// Returns:
//   - ErrPasswordsDoNotMatch if the confirmation differs.
//   - a validators.FieldErrors if name, email or password is missing or the
//     email is malformed.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Password != req.ConfirmPassword {
		return models.Token{}, ErrPasswordsDoNotMatch
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = models.NormalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("registration data is invalid")
		return models.Token{}, err
	}

	hash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to hash password")
		return models.Token{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := timestamp(a.now)
	user := models.User{
		ID:           a.ids.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", registeredUser.ID).Msg("user registered")

	return a.tokenService.Issue(ctx, registeredUser.ID)
}

// Login checks email and password and returns a fresh token. An unknown
// email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "*authService.Login").Str("email", email).Msg("unknown email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("user_id", foundUser.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.tokenService.Issue(ctx, foundUser.ID)
}

// CurrentUser returns the stored profile of owner.
func (a *authService) CurrentUser(ctx context.Context, owner models.Identity) (models.User, error) {
	if owner.IsZero() {
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.FindUserByID(ctx, owner.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CurrentUser").Str("user_id", owner.UserID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// Authenticate verifies tokenString and resolves its subject.
//
// Returns ErrTokenExpired or ErrTokenMalformed from the token service,
// ErrUnknownTokenSubject if the user was deleted, or a wrapped store error.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	userID, err := a.tokenService.Verify(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Identity{}, ErrUnknownTokenSubject
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Str("user_id", userID).Msg("user lookup failed")
		return models.Identity{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Identity(), nil
}
