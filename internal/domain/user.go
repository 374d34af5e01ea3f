package domain

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrRegisterUserMissingProperty    = errors.New("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrRegisterUserWrongType          = errors.New("REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrRegisterUserUsernameTooLong    = errors.New("REGISTER_USER.USERNAME_LIMIT_CHAR")
	ErrRegisterUserUsernameRestricted = errors.New("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	ErrUserLoginMissingProperty       = errors.New("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrUserLoginWrongType             = errors.New("USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

var (
	usernamePattern = regexp.MustCompile(`^\w+$`)
	validate        = validator.New(validator.WithRequiredStructEnabled())
)

// User is an authenticated identity as carried in the request context and
// read from storage. Password holds the bcrypt hash.
type User struct {
	Id       string
	Username string
	Password string
	Fullname string
}

// RegisterUser is the validated input for user registration.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

// NewRegisterUser validates a raw payload into a RegisterUser.
func NewRegisterUser(payload map[string]interface{}) (RegisterUser, error) {
	username, err := requireString(payload, "username", ErrRegisterUserMissingProperty, ErrRegisterUserWrongType)
	if err != nil {
		return RegisterUser{}, err
	}
	password, err := requireString(payload, "password", ErrRegisterUserMissingProperty, ErrRegisterUserWrongType)
	if err != nil {
		return RegisterUser{}, err
	}
	fullname, err := requireString(payload, "fullname", ErrRegisterUserMissingProperty, ErrRegisterUserWrongType)
	if err != nil {
		return RegisterUser{}, err
	}
	// max counts runes, so multibyte usernames measure as characters.
	if err := validate.Var(username, "max=50"); err != nil {
		return RegisterUser{}, ErrRegisterUserUsernameTooLong
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, ErrRegisterUserUsernameRestricted
	}
	return RegisterUser{Username: username, Password: password, Fullname: fullname}, nil
}

// RegisteredUser is the registration result returned to the client.
type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserLogin is the validated input for logging in.
type UserLogin struct {
	Username string
	Password string
}

// NewUserLogin validates a raw payload into a UserLogin.
func NewUserLogin(payload map[string]interface{}) (UserLogin, error) {
	username, err := requireString(payload, "username", ErrUserLoginMissingProperty, ErrUserLoginWrongType)
	if err != nil {
		return UserLogin{}, err
	}
	password, err := requireString(payload, "password", ErrUserLoginMissingProperty, ErrUserLoginWrongType)
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: username, Password: password}, nil
}
