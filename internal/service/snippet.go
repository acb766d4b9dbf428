// Package service contains the business logic for the snippet API. Services
// validate inputs, enforce the tag upsert-or-reuse contract, stamp ownership,
// and orchestrate store calls. No SQL and no HTTP types live here — services
// depend on store interfaces and return domain models plus apperror values.
package service

import (
	"strings"
	"unicode/utf8"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/store"
)

// MaxContentLength is the character cap on snippet content.
const MaxContentLength = 1000

// TagInput is the nested tag object of a snippet write payload.
// Title is a pointer so that an absent key can be told apart from a blank one.
type TagInput struct {
	Title *string
}

// SnippetInput carries the client-controllable fields of a snippet write.
// The owner is never part of the payload — it is stamped from the
// authenticated identity on create and preserved on update.
type SnippetInput struct {
	Tag     *TagInput
	Content *string
}

// SnippetService implements the snippet CRUD contract.
// Write operations deliberately carry no ownership check: any authenticated
// user may update or delete any snippet.
type SnippetService struct {
	snippets store.SnippetStore
	tags     store.TagStore
}

// NewSnippetService constructs a SnippetService over the given stores.
func NewSnippetService(snippets store.SnippetStore, tags store.TagStore) *SnippetService {
	return &SnippetService{snippets: snippets, tags: tags}
}

// Create validates the payload, resolves the tag via lookup-or-create, and
// persists a new snippet owned by the acting user.
func (s *SnippetService) Create(in SnippetInput, actingUserID uint) (models.Snippet, error) {
	title, content, _, _, verr := validateSnippetInput(in, false)
	if verr != nil {
		return models.Snippet{}, verr
	}

	tag, err := s.tags.GetOrCreate(title)
	if err != nil {
		return models.Snippet{}, err
	}

	return s.snippets.Create(tag.ID, content, actingUserID)
}

// FullUpdate replaces tag and content of an existing snippet. Both fields are
// required. The owner is preserved; the timestamp is refreshed.
func (s *SnippetService) FullUpdate(id uint, in SnippetInput, actingUserID uint) (models.Snippet, error) {
	snippet, err := s.snippets.Get(id)
	if err != nil {
		return models.Snippet{}, err
	}

	title, content, _, _, verr := validateSnippetInput(in, false)
	if verr != nil {
		return models.Snippet{}, verr
	}

	tag, err := s.tags.GetOrCreate(title)
	if err != nil {
		return models.Snippet{}, err
	}

	snippet.TagID = tag.ID
	snippet.Content = content
	return s.snippets.Save(snippet)
}

// PartialUpdate applies any subset of {tag, content}. Absent fields keep their
// prior value; the timestamp is refreshed on every save, even an empty one.
func (s *SnippetService) PartialUpdate(id uint, in SnippetInput, actingUserID uint) (models.Snippet, error) {
	snippet, err := s.snippets.Get(id)
	if err != nil {
		return models.Snippet{}, err
	}

	title, content, hasTag, hasContent, verr := validateSnippetInput(in, true)
	if verr != nil {
		return models.Snippet{}, verr
	}

	if hasTag {
		tag, err := s.tags.GetOrCreate(title)
		if err != nil {
			return models.Snippet{}, err
		}
		snippet.TagID = tag.ID
	}
	if hasContent {
		snippet.Content = content
	}

	return s.snippets.Save(snippet)
}

// Delete removes the snippet and returns the remaining list, newest first, as
// confirmation. No ownership check.
func (s *SnippetService) Delete(id uint, actingUserID uint) ([]models.Snippet, error) {
	if err := s.snippets.Delete(id); err != nil {
		return nil, err
	}
	return s.snippets.List()
}

// List returns all snippets across all owners, newest first.
func (s *SnippetService) List() ([]models.Snippet, error) {
	return s.snippets.List()
}

// Retrieve returns a single snippet, or apperror.ErrNotFound.
func (s *SnippetService) Retrieve(id uint) (models.Snippet, error) {
	return s.snippets.Get(id)
}

// validateSnippetInput checks the supplied fields against the write rules.
// With partial set, absent fields are skipped instead of required. All field
// errors are collected before returning so the response names every offender.
func validateSnippetInput(in SnippetInput, partial bool) (title, content string, hasTag, hasContent bool, verr *apperror.ValidationError) {
	fields := apperror.FieldErrors{}

	if in.Tag == nil {
		if !partial {
			fields["tag"] = []string{apperror.MsgRequired}
		}
	} else {
		hasTag = true
		switch {
		case in.Tag.Title == nil:
			fields["tag"] = apperror.FieldErrors{"title": []string{apperror.MsgRequired}}
		case strings.TrimSpace(*in.Tag.Title) == "":
			fields["tag"] = apperror.FieldErrors{"title": []string{apperror.MsgBlank}}
		default:
			title = strings.TrimSpace(*in.Tag.Title)
		}
	}

	if in.Content == nil {
		if !partial {
			fields["content"] = []string{apperror.MsgRequired}
		}
	} else {
		hasContent = true
		c := strings.TrimSpace(*in.Content)
		switch {
		case c == "":
			fields["content"] = []string{apperror.MsgBlank}
		case utf8.RuneCountInString(c) > MaxContentLength:
			fields["content"] = []string{apperror.MsgMaxLength(MaxContentLength)}
		default:
			content = c
		}
	}

	if len(fields) > 0 {
		verr = &apperror.ValidationError{Fields: fields}
	}
	return
}
