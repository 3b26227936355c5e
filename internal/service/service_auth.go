package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/internal/utils"
	"github.com/MKhiriev/readsync/models"
)

// authService registers accounts, checks their passwords and issues the
// JWTs the blob routes require.
type authService struct {
	userRepository store.UserRepository

	// hashCost is the bcrypt cost of newly stored password hashes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWTs. It never
	// leaves the server.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued JWT. Tokens from any
	// other issuer are rejected.
	tokenIssuer string

	// tokenDuration controls how long an issued JWT stays valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService returns an AuthService backed by userRepository and the
// token parameters of cfg. The service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.ServerConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser stores a new account with the bcrypt hash of its password.
// A taken account fails with store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateAccount(creds.Account); err != nil {
		return models.User{}, err
	}
	if creds.Password == "" {
		return models.User{}, fmt.Errorf("%w: empty password", ErrInvalidDataProvided)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Account:      creds.Account,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UnixMilli(),
	}
	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("account", creds.Account).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("account", creds.Account).Msg("user registered")
	return user, nil
}

// Login returns the stored user when creds match it. An unknown account
// fails with store.ErrNoUserWasFound and a wrong password with
// ErrWrongPassword.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateAccount(creds.Account); err != nil {
		return models.User{}, err
	}
	if creds.Password == "" {
		return models.User{}, fmt.Errorf("%w: empty password", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUser(ctx, creds.Account)
	if err != nil {
		log.Warn().Err(err).Str("account", creds.Account).Msg("user search by account failed")
		return models.User{}, fmt.Errorf("user search by account failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().Str("account", creds.Account).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// CreateToken issues a signed JWT whose subject is the user's account.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Account, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken delegates to utils.ValidateAndParseJWTToken and normalises
// every failure (expired, wrong issuer, wrong key, malformed, empty
// subject) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
