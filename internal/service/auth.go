package service

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

// UserRepository is the storage capability contract for users.
type UserRepository interface {
	AddUser(user domain.RegisterUser) (domain.RegisteredUser, error)
	VerifyAvailableUsername(username string) error
	GetUserByUsername(username string) (domain.User, error)
}

// Jwt issues access tokens for authenticated users.
type Jwt interface {
	NewToken(user domain.User) (string, error)
}

// AuthService covers registration and login.
type AuthService struct {
	users UserRepository
	jwt   Jwt
}

func NewAuth(users UserRepository, jwt Jwt) *AuthService {
	return &AuthService{users, jwt}
}

// Register validates the payload, checks username availability, hashes the
// password and persists the user.
func (s *AuthService) Register(payload map[string]interface{}) (domain.RegisteredUser, error) {
	user, err := domain.NewRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := s.users.VerifyAvailableUsername(user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	user.Password = string(hashed)

	return s.users.AddUser(user)
}

// Login verifies the credentials and returns an access token.
func (s *AuthService) Login(payload map[string]interface{}) (string, error) {
	login, err := domain.NewUserLogin(payload)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetUserByUsername(login.Username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		return "", &internal_errors.ErrorWithStatusCode{Message: "kredensial yang Anda masukkan salah", StatusCode: http.StatusUnauthorized}
	}

	return s.jwt.NewToken(user)
}
