package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipboard/backend/internal/apperror"
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/service"
)

func TestSnippetList(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.ListFn = func() ([]models.Snippet, error) {
		return []models.Snippet{sampleSnippet()}, nil
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/snippet", "", bearer(t, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeArray(t, rec)
	require.Len(t, body, 1)
	item := body[0].(map[string]any)
	assert.EqualValues(t, 7, item["id"])
	assert.Equal(t, "work", item["tag"])
	assert.Equal(t, "hi", item["content"])
	assert.Equal(t, "alice", item["owner"])
}

func TestSnippetList_Empty(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.ListFn = func() ([]models.Snippet, error) {
		return []models.Snippet{}, nil
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/snippet", "", bearer(t, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSnippetRetrieve(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.RetrieveFn = func(id uint) (models.Snippet, error) {
		assert.EqualValues(t, 7, id)
		return sampleSnippet(), nil
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/snippet/7", "", bearer(t, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "work", decodeObject(t, rec)["tag"])
}

func TestSnippetRetrieve_NotFound(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.RetrieveFn = func(id uint) (models.Snippet, error) {
		return models.Snippet{}, apperror.ErrNotFound
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/snippet/99", "", bearer(t, 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"detail": "Not found."}, decodeObject(t, rec))
}

func TestSnippetRetrieve_NonNumericID(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.RetrieveFn = func(id uint) (models.Snippet, error) {
		t.Fatal("service must not be called for a non-numeric id")
		return models.Snippet{}, nil
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/snippet/abc", "", bearer(t, 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"detail": "Not found."}, decodeObject(t, rec))
}

func TestSnippetCreate(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.CreateFn = func(in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		require.NotNil(t, in.Tag)
		require.NotNil(t, in.Tag.Title)
		assert.Equal(t, "work", *in.Tag.Title)
		require.NotNil(t, in.Content)
		assert.Equal(t, "hi", *in.Content)
		assert.EqualValues(t, 42, actingUserID)
		return sampleSnippet(), nil
	}

	rec := doRequest(router, http.MethodPost, "/api/v1/snippet",
		`{"tag": {"title": "work"}, "content": "hi"}`, bearer(t, 42))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeObject(t, rec)
	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "work", body["tag"])
	assert.Equal(t, "alice", body["owner"])
}

func TestSnippetCreate_MissingTag(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.CreateFn = func(in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		return models.Snippet{}, apperror.Validation("tag", apperror.MsgRequired)
	}

	rec := doRequest(router, http.MethodPost, "/api/v1/snippet",
		`{"content": "hi"}`, bearer(t, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"tag": ["This field is required."]}`, rec.Body.String())
}

func TestSnippetCreate_MissingTagTitle(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.CreateFn = func(in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		return models.Snippet{}, apperror.Nested("tag", "title", apperror.MsgRequired)
	}

	rec := doRequest(router, http.MethodPost, "/api/v1/snippet",
		`{"tag": {}, "content": "hi"}`, bearer(t, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"tag": {"title": ["This field is required."]}}`, rec.Body.String())
}

func TestSnippetCreate_MalformedJSON(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.CreateFn = func(in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		t.Fatal("service must not be called for unparseable JSON")
		return models.Snippet{}, nil
	}

	rec := doRequest(router, http.MethodPost, "/api/v1/snippet", `{"tag":`, bearer(t, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"detail": "JSON parse error."}, decodeObject(t, rec))
}

func TestSnippetUpdate(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.FullUpdateFn = func(id uint, in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		assert.EqualValues(t, 7, id)
		assert.EqualValues(t, 2, actingUserID)
		return sampleSnippet(), nil
	}

	rec := doRequest(router, http.MethodPut, "/api/v1/snippet/7",
		`{"tag": {"title": "work"}, "content": "hi"}`, bearer(t, 2))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeObject(t, rec)["owner"])
}

func TestSnippetUpdate_NotFound(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.FullUpdateFn = func(id uint, in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		return models.Snippet{}, apperror.ErrNotFound
	}

	rec := doRequest(router, http.MethodPut, "/api/v1/snippet/99",
		`{"tag": {"title": "work"}, "content": "hi"}`, bearer(t, 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"detail": "Not found."}, decodeObject(t, rec))
}

func TestSnippetPartialUpdate(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.PartialUpdateFn = func(id uint, in service.SnippetInput, actingUserID uint) (models.Snippet, error) {
		assert.Nil(t, in.Tag)
		require.NotNil(t, in.Content)
		assert.Equal(t, "patched", *in.Content)
		return sampleSnippet(), nil
	}

	rec := doRequest(router, http.MethodPatch, "/api/v1/snippet/7",
		`{"content": "patched"}`, bearer(t, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSnippetDelete_ReturnsRemaining(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.DeleteFn = func(id uint, actingUserID uint) ([]models.Snippet, error) {
		assert.EqualValues(t, 7, id)
		return []models.Snippet{sampleSnippet()}, nil
	}

	rec := doRequest(router, http.MethodDelete, "/api/v1/snippet/7", "", bearer(t, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeArray(t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "hi", body[0].(map[string]any)["content"])
}

func TestSnippetDelete_NotFound(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.DeleteFn = func(id uint, actingUserID uint) ([]models.Snippet, error) {
		return nil, apperror.ErrNotFound
	}

	rec := doRequest(router, http.MethodDelete, "/api/v1/snippet/99", "", bearer(t, 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"detail": "Not found."}, decodeObject(t, rec))
}

func TestSnippetList_ServiceError(t *testing.T) {
	router, services := newTestRouter(t)
	services.snippets.ListFn = func() ([]models.Snippet, error) {
		return nil, assert.AnError
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/snippet", "", bearer(t, 1))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"detail": "A server error occurred."}, decodeObject(t, rec))
}
