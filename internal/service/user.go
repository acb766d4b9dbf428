package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/store"
)

// ErrInvalidCredentials is returned by Authenticate when the username is
// unknown or the password does not match. Handlers map it to 401.
var ErrInvalidCredentials = errors.New("no active account found with the given credentials")

// RegisterInput carries the registration payload. Required fields are
// pointers so that an absent key can be told apart from a blank one.
type RegisterInput struct {
	Username        *string
	Email           *string
	Password        *string
	ConfirmPassword *string
	FirstName       string
	LastName        string
	Roles           string
}

// UserService handles registration and credential checks.
type UserService struct {
	users store.UserStore
}

// NewUserService constructs a UserService over the given store.
func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register validates the payload, enforces username/email uniqueness, hashes
// the password with bcrypt, and stores the new account.
func (s *UserService) Register(in RegisterInput) (models.User, error) {
	fields := apperror.FieldErrors{}
	username := requireField(in.Username, "username", fields)
	email := requireField(in.Email, "email", fields)
	password := requireField(in.Password, "password", fields)
	confirm := requireField(in.ConfirmPassword, "confirm_password", fields)
	if len(fields) > 0 {
		return models.User{}, &apperror.ValidationError{Fields: fields}
	}

	if password != confirm {
		return models.User{}, apperror.Validation("password", apperror.MsgPasswordMatch)
	}

	taken, err := s.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, apperror.Validation("email", apperror.MsgEmailTaken)
	}

	taken, err = s.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, apperror.Validation("username", apperror.MsgUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Roles:        in.Roles,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies the username/password pair and returns the account.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// requireField records a required/blank violation for a string field and
// returns its trimmed value.
func requireField(v *string, name string, fields apperror.FieldErrors) string {
	if v == nil {
		fields[name] = []string{apperror.MsgRequired}
		return ""
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		fields[name] = []string{apperror.MsgBlank}
	}
	return trimmed
}
