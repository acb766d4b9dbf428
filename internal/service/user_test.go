package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/service"
	"snipboard/backend/internal/store"
)

type memUserStore struct {
	users  map[uint]models.User
	nextID uint
}

var _ store.UserStore = (*memUserStore)(nil)

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[uint]models.User{}}
}

func (m *memUserStore) Create(user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = *user
	return nil
}

func (m *memUserStore) FindByID(id uint) (models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return models.User{}, apperror.ErrNotFound
	}
	return user, nil
}

func (m *memUserStore) FindByUsername(username string) (models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, apperror.ErrNotFound
}

func (m *memUserStore) ExistsByUsername(username string) (bool, error) {
	_, err := m.FindByUsername(username)
	return err == nil, nil
}

func (m *memUserStore) ExistsByEmail(email string) (bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func registerInput() service.RegisterInput {
	return service.RegisterInput{
		Username:        strptr("alice"),
		Email:           strptr("alice@example.com"),
		Password:        strptr("s3cret-pass"),
		ConfirmPassword: strptr("s3cret-pass"),
		FirstName:       "Alice",
		LastName:        "Doe",
	}
}

func TestUserService_Register_OK(t *testing.T) {
	users := newMemUserStore()
	svc := service.NewUserService(users)

	user, err := svc.Register(registerInput())

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := service.NewUserService(newMemUserStore())

	_, err := svc.Register(service.RegisterInput{})

	verr, ok := err.(*apperror.ValidationError)
	require.True(t, ok)
	for _, field := range []string{"username", "email", "password", "confirm_password"} {
		assert.Equal(t, []string{apperror.MsgRequired}, verr.Fields[field], field)
	}
}

func TestUserService_Register_BlankUsername(t *testing.T) {
	svc := service.NewUserService(newMemUserStore())
	in := registerInput()
	in.Username = strptr("  ")

	_, err := svc.Register(in)

	assert.Equal(t, []string{apperror.MsgBlank}, fieldMessages(t, err, "username"))
}

func TestUserService_Register_PasswordMismatch(t *testing.T) {
	svc := service.NewUserService(newMemUserStore())
	in := registerInput()
	in.ConfirmPassword = strptr("different")

	_, err := svc.Register(in)

	assert.Equal(t, []string{apperror.MsgPasswordMatch}, fieldMessages(t, err, "password"))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	users := newMemUserStore()
	svc := service.NewUserService(users)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Username = strptr("someone-else")
	_, err = svc.Register(in)

	assert.Equal(t, []string{apperror.MsgEmailTaken}, fieldMessages(t, err, "email"))
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	users := newMemUserStore()
	svc := service.NewUserService(users)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Email = strptr("other@example.com")
	_, err = svc.Register(in)

	assert.Equal(t, []string{apperror.MsgUsernameTaken}, fieldMessages(t, err, "username"))
}

func TestUserService_Authenticate_OK(t *testing.T) {
	users := newMemUserStore()
	svc := service.NewUserService(users)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	user, err := svc.Authenticate("alice", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	users := newMemUserStore()
	svc := service.NewUserService(users)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, err = svc.Authenticate("alice", "wrong")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownUsername(t *testing.T) {
	svc := service.NewUserService(newMemUserStore())

	_, err := svc.Authenticate("ghost", "whatever")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
