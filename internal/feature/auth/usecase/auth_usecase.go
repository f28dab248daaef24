package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tasktrack_backend/internal/feature/auth/domain/entity"
	"tasktrack_backend/internal/platform/password"
	"tasktrack_backend/internal/platform/token"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// bearerPrefix is the exact prefix required on the Authorization
	// header: case-sensitive, exactly one space.
	bearerPrefix = "Bearer "
)

// UserRepository abstracts the credential store.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. The store's uniqueness constraint is
	// the only duplicate check; it returns ErrEmailAlreadyExists when
	// the email is taken, so concurrent registrations cannot race past
	// a separate existence check.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenCodec issues and verifies the signed bearer tokens.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/token).
type TokenCodec interface {
	// Issue creates a signed token bound to the given user identity.
	Issue(userID uint, email string) (string, error)

	// Decode verifies a token and returns its claims.
	Decode(tokenStr string) (token.Claims, error)
}

// AuthContext is the request-scoped result of a successful authentication.
// It carries only the public projection of the verified user.
type AuthContext struct {
	User entity.PublicUser
}

// AuthUsecase implements registration, login, and request authentication.
type AuthUsecase struct {
	users UserRepository
	codec TokenCodec
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, codec TokenCodec) *AuthUsecase {
	return &AuthUsecase{
		users: users,
		codec: codec,
	}
}

// validateRegistration checks registration input before any store access.
func validateRegistration(email, pass, name string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(pass) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and issues a token for
// it. Returns ErrEmailAlreadyExists when the email is taken.
func (u *AuthUsecase) Register(ctx context.Context, email, pass, name string) (*entity.User, string, error) {
	if err := validateRegistration(email, pass, name); err != nil {
		return nil, "", err
	}

	hashed, err := password.Hash(pass)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, PasswordHash: hashed, Name: name}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tokenStr, err := u.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, tokenStr, nil
}

// Login authenticates a user and issues a fresh token on success. Each call
// issues an independent token; earlier tokens stay valid until they expire.
// Unknown email and wrong password return the same error.
func (u *AuthUsecase) Login(ctx context.Context, email, pass string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Always run the key derivation, against a dummy hash when the user
	// is unknown, so the response time does not reveal account existence.
	storedHash := password.DummyHash()
	if err == nil {
		storedHash = user.PasswordHash
	}
	ok := password.Verify(pass, storedHash)

	if err != nil || !ok {
		return nil, "", ErrInvalidCredentials
	}

	tokenStr, err := u.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, tokenStr, nil
}

// Authenticate resolves the caller behind an Authorization header value.
// Token decode failures propagate as-is so the transport layer can tell a
// configuration fault from a client fault.
func (u *AuthUsecase) Authenticate(ctx context.Context, authorizationHeader string) (*AuthContext, error) {
	tokenStr, found := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !found {
		return nil, ErrNoToken
	}
	// A header of exactly "Bearer " leaves an empty token, which is
	// handed to the codec and rejected there as a format error.

	claims, err := u.codec.Decode(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Email != claims.Email {
		return nil, ErrIdentityMismatch
	}

	return &AuthContext{User: user.Public()}, nil
}
