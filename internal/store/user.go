package store

import (
	"errors"

	"gorm.io/gorm"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
)

// UserStore defines the persistence operations for user accounts.
type UserStore interface {
	// Create inserts a new user and populates its ID.
	Create(user *models.User) error

	// FindByID returns a user by primary key, or apperror.ErrNotFound.
	FindByID(id uint) (models.User, error)

	// FindByUsername returns a user by exact username, or apperror.ErrNotFound.
	FindByUsername(username string) (models.User, error)

	// ExistsByUsername reports whether any user has that username.
	ExistsByUsername(username string) (bool, error)

	// ExistsByEmail reports whether any user registered with that email.
	ExistsByEmail(email string) (bool, error)
}

type gormUserStore struct {
	db *gorm.DB
}

// NewUserStore constructs a UserStore backed by the provided gorm handle.
func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormUserStore) FindByID(id uint) (models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperror.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *gormUserStore) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperror.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *gormUserStore) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *gormUserStore) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
