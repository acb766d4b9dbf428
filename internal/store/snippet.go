package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
)

// SnippetStore defines the persistence operations for snippets.
// All reads return snippets with Tag and Owner loaded, since every response
// shape needs at least the tag title and owner username.
type SnippetStore interface {
	// Create inserts a new snippet. Timestamp is set by the database layer.
	Create(tagID uint, content string, ownerID uint) (models.Snippet, error)

	// Get returns a snippet by primary key, or apperror.ErrNotFound.
	Get(id uint) (models.Snippet, error)

	// Save persists the mutable fields of an existing snippet and refreshes
	// Timestamp, on every save — partial updates included.
	Save(snippet models.Snippet) (models.Snippet, error)

	// Delete removes a snippet by id. Returns apperror.ErrNotFound if absent.
	Delete(id uint) error

	// List returns all snippets, newest id first.
	List() ([]models.Snippet, error)

	// FilterByTagTitle returns all snippets whose tag carries exactly that
	// title, newest id first. Matching is by title, not tag id, so duplicate
	// tag rows with the same title contribute their snippets together.
	FilterByTagTitle(title string) ([]models.Snippet, error)
}

type gormSnippetStore struct {
	db *gorm.DB
}

// NewSnippetStore constructs a SnippetStore backed by the provided gorm handle.
func NewSnippetStore(db *gorm.DB) SnippetStore {
	return &gormSnippetStore{db: db}
}

func (s *gormSnippetStore) Create(tagID uint, content string, ownerID uint) (models.Snippet, error) {
	snippet := models.Snippet{TagID: tagID, Content: content, OwnerID: ownerID}
	if err := s.db.Omit(clause.Associations).Create(&snippet).Error; err != nil {
		return models.Snippet{}, err
	}
	return s.Get(snippet.ID)
}

func (s *gormSnippetStore) Get(id uint) (models.Snippet, error) {
	var snippet models.Snippet
	err := s.db.Preload("Tag").Preload("Owner").First(&snippet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Snippet{}, apperror.ErrNotFound
		}
		return models.Snippet{}, err
	}
	return snippet, nil
}

// Save writes tag_id and content and lets gorm's autoUpdateTime refresh the
// timestamp. Associations are omitted so a stale preloaded Tag or Owner can
// never be written back.
func (s *gormSnippetStore) Save(snippet models.Snippet) (models.Snippet, error) {
	if err := s.db.Omit(clause.Associations).Save(&snippet).Error; err != nil {
		return models.Snippet{}, err
	}
	return s.Get(snippet.ID)
}

func (s *gormSnippetStore) Delete(id uint) error {
	result := s.db.Delete(&models.Snippet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *gormSnippetStore) List() ([]models.Snippet, error) {
	snippets := []models.Snippet{}
	err := s.db.Preload("Tag").Preload("Owner").Order("id DESC").Find(&snippets).Error
	if err != nil {
		return nil, err
	}
	return snippets, nil
}

func (s *gormSnippetStore) FilterByTagTitle(title string) ([]models.Snippet, error) {
	snippets := []models.Snippet{}
	err := s.db.
		Joins("JOIN tags ON tags.id = snippets.tag_id").
		Where("tags.title = ?", title).
		Preload("Tag").Preload("Owner").
		Order("snippets.id DESC").
		Find(&snippets).Error
	if err != nil {
		return nil, err
	}
	return snippets, nil
}
