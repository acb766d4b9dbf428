package service

import (
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/store"
)

// TagService implements the read-only tag surface. Tags are never created,
// updated, or deleted through it — the only tag creation path is the snippet
// write flow.
type TagService struct {
	tags     store.TagStore
	snippets store.SnippetStore
}

// NewTagService constructs a TagService over the given stores.
func NewTagService(tags store.TagStore, snippets store.SnippetStore) *TagService {
	return &TagService{tags: tags, snippets: snippets}
}

// List returns all tags, newest first.
func (s *TagService) List() ([]models.Tag, error) {
	return s.tags.List()
}

// Snippets resolves the tag by id and returns the snippets carrying its title,
// newest first. The "detail" of a tag is its members, not the tag itself.
func (s *TagService) Snippets(id uint) ([]models.Snippet, error) {
	tag, err := s.tags.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.snippets.FilterByTagTitle(tag.Title)
}
