// Package handler implements the HTTP layer of the snippet API. Handlers
// parse and bind request bodies, delegate to injected services, and shape
// responses; no business rules and no SQL live here.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snipboard/backend/internal/auth"
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/service"
)

// region --- DTOs ---

// TagPayload is the nested tag object of a snippet write body.
type TagPayload struct {
	Title *string `json:"title" example:"work"`
}

// SnippetPayload defines the client-controllable fields of a snippet write.
// An owner field in the body is silently ignored — ownership always comes
// from the authenticated identity.
type SnippetPayload struct {
	Tag     *TagPayload `json:"tag"`
	Content *string     `json:"content" example:"hi"`
}

// SnippetResponse is the flattened snippet representation: the tag collapses
// to its title and the owner to their username.
type SnippetResponse struct {
	ID        uint      `json:"id" example:"1"`
	Tag       string    `json:"tag" example:"work"`
	Content   string    `json:"content" example:"hi"`
	Timestamp time.Time `json:"timestamp"`
	Owner     string    `json:"owner" example:"alice"`
}

func newSnippetResponse(snippet models.Snippet) SnippetResponse {
	return SnippetResponse{
		ID:        snippet.ID,
		Tag:       snippet.Tag.Title,
		Content:   snippet.Content,
		Timestamp: snippet.Timestamp,
		Owner:     snippet.Owner.Username,
	}
}

func newSnippetListResponse(snippets []models.Snippet) []SnippetResponse {
	response := make([]SnippetResponse, len(snippets))
	for i, snippet := range snippets {
		response[i] = newSnippetResponse(snippet)
	}
	return response
}

func (p SnippetPayload) toInput() service.SnippetInput {
	in := service.SnippetInput{Content: p.Content}
	if p.Tag != nil {
		in.Tag = &service.TagInput{Title: p.Tag.Title}
	}
	return in
}

// endregion

// SnippetServicer defines the business operations the snippet handler
// depends on. Declared here, in the consumer package, so tests can inject a
// mock without touching the service or store layers.
type SnippetServicer interface {
	Create(in service.SnippetInput, actingUserID uint) (models.Snippet, error)
	FullUpdate(id uint, in service.SnippetInput, actingUserID uint) (models.Snippet, error)
	PartialUpdate(id uint, in service.SnippetInput, actingUserID uint) (models.Snippet, error)
	Delete(id uint, actingUserID uint) ([]models.Snippet, error)
	List() ([]models.Snippet, error)
	Retrieve(id uint) (models.Snippet, error)
}

// SnippetHandler serves the /snippet resource.
type SnippetHandler struct {
	snippets SnippetServicer
}

// NewSnippetHandler constructs a SnippetHandler with its service dependency.
func NewSnippetHandler(snippets SnippetServicer) *SnippetHandler {
	return &SnippetHandler{snippets: snippets}
}

// List godoc
// @Summary      List snippets
// @Description  Returns all snippets across all owners, newest first, flattened.
// @Tags         snippets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   SnippetResponse
// @Failure      401  {object}  DetailResponse
// @Router       /snippet [get]
func (h *SnippetHandler) List(c *gin.Context) {
	snippets, err := h.snippets.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnippetListResponse(snippets))
}

// Retrieve godoc
// @Summary      Get a snippet
// @Description  Returns a single snippet, flattened.
// @Tags         snippets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Snippet ID"
// @Success      200  {object}  SnippetResponse
// @Failure      401  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /snippet/{id} [get]
func (h *SnippetHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	snippet, err := h.snippets.Retrieve(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnippetResponse(snippet))
}

// Create godoc
// @Summary      Create a snippet
// @Description  Creates a snippet under the given tag title, creating the tag on first use. The owner is the authenticated user.
// @Tags         snippets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SnippetPayload true "Snippet"
// @Success      201  {object}  SnippetResponse
// @Failure      400  {object}  map[string][]string "Per-field errors"
// @Failure      401  {object}  DetailResponse
// @Router       /snippet [post]
func (h *SnippetHandler) Create(c *gin.Context) {
	var payload SnippetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, detailBody("JSON parse error."))
		return
	}

	snippet, err := h.snippets.Create(payload.toInput(), auth.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSnippetResponse(snippet))
}

// Update godoc
// @Summary      Replace a snippet
// @Description  Full update: tag and content are both required. The owner is preserved.
// @Tags         snippets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Snippet ID"
// @Param        input body      SnippetPayload true  "Snippet"
// @Success      200  {object}  SnippetResponse
// @Failure      400  {object}  map[string][]string "Per-field errors"
// @Failure      401  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /snippet/{id} [put]
func (h *SnippetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload SnippetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, detailBody("JSON parse error."))
		return
	}

	snippet, err := h.snippets.FullUpdate(id, payload.toInput(), auth.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnippetResponse(snippet))
}

// PartialUpdate godoc
// @Summary      Patch a snippet
// @Description  Partial update: any subset of tag and content. Absent fields keep their value; the timestamp refreshes on every save.
// @Tags         snippets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Snippet ID"
// @Param        input body      SnippetPayload true  "Fields to change"
// @Success      200  {object}  SnippetResponse
// @Failure      400  {object}  map[string][]string "Per-field errors"
// @Failure      401  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /snippet/{id} [patch]
func (h *SnippetHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload SnippetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, detailBody("JSON parse error."))
		return
	}

	snippet, err := h.snippets.PartialUpdate(id, payload.toInput(), auth.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnippetResponse(snippet))
}

// Delete godoc
// @Summary      Delete a snippet
// @Description  Deletes the snippet and returns the remaining list as confirmation, not an empty body.
// @Tags         snippets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Snippet ID"
// @Success      200  {array}   SnippetResponse
// @Failure      401  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /snippet/{id} [delete]
func (h *SnippetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	remaining, err := h.snippets.Delete(id, auth.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnippetListResponse(remaining))
}
