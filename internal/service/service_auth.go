package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// authService is the concrete implementation of AuthService.
// It seeds the default account, verifies credentials against bcrypt hashes
// kept by the UserRepository and issues HMAC-signed session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenParams controls signing, issuer and lifetime of session tokens.
	tokenParams utils.TokenParams

	passwordHashCost int

	defaultUsername string
	defaultPassword string

	// now is replaced in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewAddressBookValidator(),
		tokenParams: utils.TokenParams{
			Issuer:    cfg.TokenIssuer,
			Algorithm: cfg.TokenAlgorithm,
			Duration:  cfg.TokenDuration,
			SignKey:   cfg.TokenSignKey,
		},
		passwordHashCost: cfg.PasswordHashCost,
		defaultUsername:  cfg.DefaultUsername,
		defaultPassword:  cfg.DefaultPassword,
		now:              time.Now,
		logger:           logger,
	}
}

// SeedDefaultUser creates the default account unless a user with the
// default username already exists. Running it again, or from several
// processes at once, leaves the stored hash untouched.
func (a *authService) SeedDefaultUser(ctx context.Context) error {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(a.defaultPassword, a.passwordHashCost)
	if err != nil {
		return fmt.Errorf("error hashing default password: %w", err)
	}

	created, err := a.userRepository.CreateUserIfNotExists(ctx, models.User{
		Username:     a.defaultUsername,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("func", "authService.SeedDefaultUser").
			Str("username", a.defaultUsername).
			Msg("seeding default user failed")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if created {
		log.Info().Str("username", a.defaultUsername).Msg("default user created")
	} else {
		log.Debug().Str("username", a.defaultUsername).Msg("default user already exists")
	}

	return nil
}

// Login authenticates a user by username and password.
//
// Returns the stored user record or:
//   - ErrValidation if the username or password is empty.
//   - ErrUsernameNotFound if no user has that username.
//   - ErrIncorrectPassword if the password does not match the stored hash.
//   - ErrStorage if the lookup itself failed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("username", credentials.Username).Msg("login failed: username not found")
		return models.User{}, ErrUsernameNotFound
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err = utils.ComparePassword(foundUser.PasswordHash, credentials.Password); err != nil {
		log.Warn().Err(err).Str("username", foundUser.Username).Msg("login failed: incorrect password")
		return models.User{}, ErrIncorrectPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed session token whose subject is the username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenParams, user.Username, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (bad signature, wrong algorithm or issuer, expired,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenParams)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
