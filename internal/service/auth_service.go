package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
	"github.com/ignatzorin/review-platform/internal/store"
	"github.com/ignatzorin/review-platform/internal/validation"
)

// AuthService инкапсулирует регистрацию и проверку учётных данных.
// Успешный вход выдаёт подтверждённый идентификатор пользователя,
// который дальше используется как reporterID и authorID.
type AuthService struct {
	store        store.EntityStore
	tokenManager *TokenManager
}

// RegisterInput содержит данные пользователя при регистрации.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Role     string
}

// AuthResult возвращает итог регистрации или входа.
type AuthResult struct {
	User        *models.User
	AccessToken string
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(st store.EntityStore, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		store:        st,
		tokenManager: tokenManager,
	}
}

// Register создаёт нового пользователя.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, apperror.ErrEmailTaken
	} else if !errors.Is(err, apperror.ErrUserNotFound) {
		return nil, err
	}

	username := in.Username
	if username == "" {
		username = deriveUsername(in.Email)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleModerator {
		return nil, apperror.Validationf("роль должна быть %s или %s", models.RoleUser, models.RoleModerator)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(in.Email),
		Username:     username,
		PasswordHash: string(passHash),
		Role:         role,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	accessToken, _, err := s.tokenManager.GenerateAccess(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: accessToken}, nil
}

// Login проверяет учётные данные и возвращает токен.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, _, err := s.tokenManager.GenerateAccess(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: accessToken}, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// deriveUsername формирует username из email.
func deriveUsername(email string) string {
	name := strings.Split(email, "@")[0]
	name = strings.NewReplacer(".", "_", "+", "_").Replace(name)
	name = strings.ToLower(name)
	if len(name) < validation.MinUsernameLength {
		name = "user_" + uuid.NewString()[:6]
	}
	return name
}
