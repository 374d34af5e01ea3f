package pg

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// AddUser inserts a registered user. Password must already be hashed by the
// service layer.
func (s *Storage) AddUser(user domain.RegisterUser) (domain.RegisteredUser, error) {
	id := utils.GenerateID("user")

	var registered domain.RegisteredUser
	err := s.db.QueryRow(`
	INSERT INTO users (id, username, password, fullname)
	VALUES ($1, $2, $3, $4)
	RETURNING id, username, fullname`,
		id, user.Username, user.Password, user.Fullname).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	return registered, nil
}

// VerifyAvailableUsername fails when the username is already taken.
func (s *Storage) VerifyAvailableUsername(username string) error {
	var id string
	err := s.db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return &internal_errors.ErrorWithStatusCode{Message: "username tidak tersedia", StatusCode: http.StatusBadRequest}
}

// GetUserByUsername returns the stored user including the password hash.
func (s *Storage) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
	SELECT id, username, password, fullname FROM users WHERE username = $1`, username).
		Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "username tidak ditemukan", StatusCode: http.StatusBadRequest}
		}
		return domain.User{}, err
	}
	return user, nil
}
