package service

import (
	"context"
	"errors"

	"github.com/dom/league-build-planner/internal/auth"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.Tokens
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.Tokens) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput carries the signup form. Enum fields hold case keys such as
// "ADCarry"; empty means not set.
type RegisterInput struct {
	Username string
	Password string
	Nick     string
	Gender   string
	Rank     string
	MainRole string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Nick == "" {
		return nil, domain.ErrMissingSignupFields
	}

	gender, err := domain.ParseGender(input.Gender)
	if err != nil {
		return nil, err
	}
	rank, err := domain.ParseRank(input.Rank)
	if err != nil {
		return nil, err
	}
	mainRole, err := domain.ParseLane(input.MainRole)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, domain.Internal("Couldn't create user", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hashed,
		Nick:         input.Nick,
		Gender:       gender,
		Rank:         rank,
		MainRole:     mainRole,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, domain.Internal("Couldn't create user", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, lookupErr(err, domain.ErrUserNotFound, "Couldn't log in")
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, domain.Internal("Couldn't issue token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// WhoAmI resolves the user a verified token was issued for
func (s *AuthService) WhoAmI(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, domain.ErrUserNotFound, "Couldn't load user")
	}
	return user, nil
}

// ValidateToken returns the user id a bearer token was issued for
func (s *AuthService) ValidateToken(token string) (uint, error) {
	return s.tokens.Verify(token)
}
