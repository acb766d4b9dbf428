// Package store contains all database access for the API. Each resource has
// its own file with an interface and a gorm implementation. No business logic
// lives here — only queries and type mapping. Stores are constructed once in
// main and injected into services.
package store

import (
	"errors"

	"gorm.io/gorm"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
)

// TagStore defines the persistence operations for tags.
// Tag identity is derived from the title: GetOrCreate is the only creation
// path used by the snippet flow, so equal titles resolve to one row.
type TagStore interface {
	// FindByTitle returns the tag with exactly that title (case-sensitive).
	// If duplicate rows exist the lowest id wins. Returns apperror.ErrNotFound
	// if no row matches.
	FindByTitle(title string) (models.Tag, error)

	// Create inserts a new tag with the given title.
	Create(title string) (models.Tag, error)

	// GetOrCreate looks the title up and inserts it if absent. The lookup and
	// insert are not atomic: two concurrent callers can both observe "absent"
	// and both insert, and no uniqueness constraint closes that window.
	GetOrCreate(title string) (models.Tag, error)

	// FindByID returns a tag by primary key, or apperror.ErrNotFound.
	FindByID(id uint) (models.Tag, error)

	// List returns all tags, newest id first.
	List() ([]models.Tag, error)
}

type gormTagStore struct {
	db *gorm.DB
}

// NewTagStore constructs a TagStore backed by the provided gorm handle.
func NewTagStore(db *gorm.DB) TagStore {
	return &gormTagStore{db: db}
}

func (s *gormTagStore) FindByTitle(title string) (models.Tag, error) {
	var tag models.Tag
	err := s.db.Where("title = ?", title).Order("id").First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tag{}, apperror.ErrNotFound
		}
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *gormTagStore) Create(title string) (models.Tag, error) {
	tag := models.Tag{Title: title}
	if err := s.db.Create(&tag).Error; err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *gormTagStore) GetOrCreate(title string) (models.Tag, error) {
	tag, err := s.FindByTitle(title)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return models.Tag{}, err
	}
	return s.Create(title)
}

func (s *gormTagStore) FindByID(id uint) (models.Tag, error) {
	var tag models.Tag
	err := s.db.First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tag{}, apperror.ErrNotFound
		}
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *gormTagStore) List() ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := s.db.Order("id DESC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
