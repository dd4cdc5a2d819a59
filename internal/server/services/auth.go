// Package services contains the server-side identity flows: registration,
// password login, token verification and user administration.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/logging"
	"github.com/dmitrijs2005/lockify/internal/server/auth"
	"github.com/dmitrijs2005/lockify/internal/server/models"
)

// PasswordHasher produces and checks one-way salted digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, digest string) bool
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Issue(userID, email, role string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// UserStore is the registry the service works against.
type UserStore interface {
	Insert(ctx context.Context, u models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) []models.User
	DeleteByID(ctx context.Context, id string) (*models.User, error)
	DeleteByEmail(ctx context.Context, email string) (*models.User, error)
	Clear(ctx context.Context) int
}

// LoginResult is a session token plus the digest-free user it was issued to.
type LoginResult struct {
	Token string
	User  models.PublicUser
}

type AuthService struct {
	store  UserStore
	hasher PasswordHasher
	tokens TokenManager
	logger logging.Logger
}

func NewAuthService(store UserStore, hasher PasswordHasher, tokens TokenManager, logger logging.Logger) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// Register creates a user with role "user" and returns the stored record,
// digest included. Callers exposing it over the network decide what to strip.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return nil, common.ErrorInternal
	}

	u := models.User{Email: email, PasswordDigest: digest, Role: common.DefaultRole}

	id, err := s.store.Insert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	u.ID = id

	s.logger.Info(ctx, "user registered", "id", id, "email", email)
	return &u, nil
}

// Login checks the password of the first user registered under email and
// issues a session token. Unknown email and wrong password produce the same
// error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "login rejected", "email", email, "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Compare(password, user.PasswordDigest) {
		s.logger.Info(ctx, "login rejected", "email", email, "reason", "password mismatch")
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error(ctx, "error issuing token", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "login succeeded", "id", user.ID)
	return &LoginResult{Token: token, User: user.Public()}, nil
}

// VerifyToken decodes a session token. Bad signature, malformed input and
// expiry all match common.ErrInvalidToken.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", common.ErrorValidation)
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return nil, err
		}
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// GetUser resolves a user by id; the access gate uses it after verifying a token.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) []models.PublicUser {
	all := s.store.List(ctx)
	out := make([]models.PublicUser, 0, len(all))
	for _, u := range all {
		out = append(out, u.Public())
	}
	return out
}

func (s *AuthService) DeleteUser(ctx context.Context, id string) (*models.PublicUser, error) {
	u, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user deleted", "id", u.ID, "email", u.Email)
	p := u.Public()
	return &p, nil
}

// DeleteUserByEmail removes the first user registered under email.
func (s *AuthService) DeleteUserByEmail(ctx context.Context, email string) (*models.PublicUser, error) {
	u, err := s.store.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user deleted", "id", u.ID, "email", u.Email)
	p := u.Public()
	return &p, nil
}

// DeleteAllUsers empties the registry and returns how many users it held.
func (s *AuthService) DeleteAllUsers(ctx context.Context) int {
	n := s.store.Clear(ctx)
	s.logger.Warn(ctx, "all users deleted", "count", n)
	return n
}
