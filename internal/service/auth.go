package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/wellness-site/internal/auth"
	"github.com/octobees/wellness-site/internal/repository"
)

// ErrInvalidCredentials is returned for unknown editors and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates credential validation and token issuance.
type AuthService struct {
	editors repository.EditorsRepository
	jwt     *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(editors repository.EditorsRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{editors: editors, jwt: jwtManager}
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password must not be empty")
	}

	editor, err := s.editors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(editor.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(editor.ID.String(), editor.Email, editor.Role)
	if err != nil {
		return "", err
	}

	return token, nil
}

// TokenTTL reports how long issued tokens remain valid.
func (s *AuthService) TokenTTL() int64 {
	return int64(s.jwt.TTL().Seconds())
}
