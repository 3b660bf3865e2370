package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mustafayildiz-m/iw-project/internal/audit"
	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already registered")
)

// AuthService handles registration, login and token introspection.
type AuthService struct {
	users    repository.UserRepository
	tokens   *jwt.Manager
	recorder *audit.Recorder
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, tokens *jwt.Manager, recorder *audit.Recorder) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		recorder: recorder,
	}
}

// Register creates a new account. The role is always "user" and the account
// starts active regardless of request contents.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrUsernameExists):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionRegister, user.ID, map[string]interface{}{
		log.FieldUsername: user.Username,
	})

	resp := user.ToResponse()
	return &resp, nil
}

// Login verifies credentials and issues a token. A disabled account fails
// even with the correct password, with a distinct error.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.recorder.Record(ctx, audit.ActionLoginFailed, 0, map[string]interface{}{
				"reason": "unknown_email",
			})
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recorder.Record(ctx, audit.ActionLoginFailed, user.ID, map[string]interface{}{
			"reason": "wrong_password",
		})
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.recorder.Record(ctx, audit.ActionLoginFailed, user.ID, map[string]interface{}{
			"reason": "account_disabled",
		})
		return nil, ErrAccountDisabled
	}

	token, _, err := s.tokens.Generate(user.ID, user.Email, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionLogin, user.ID, nil)

	return &domain.AuthResponse{
		AccessToken: token,
		User:        user.ToResponse(),
	}, nil
}

// Me resolves the current account from a token. The user is re-fetched by
// the token's email and the active flag is re-checked, so deactivation takes
// effect on the next call even for tokens issued earlier.
func (s *AuthService) Me(ctx context.Context, tokenString string) (*domain.MeResponse, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return &domain.MeResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		PhotoURL: user.PhotoURL,
	}, nil
}
