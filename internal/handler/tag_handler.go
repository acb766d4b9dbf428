package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snipboard/backend/internal/models"
)

// region --- DTOs ---

// TagResponse is the list representation of a tag.
type TagResponse struct {
	ID    uint   `json:"id" example:"1"`
	Title string `json:"title" example:"work"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Title: tag.Title,
	}
}

// endregion

// TagServicer defines the business operations the tag handler depends on.
type TagServicer interface {
	List() ([]models.Tag, error)
	Snippets(id uint) ([]models.Snippet, error)
}

// TagHandler serves the read-only /tag resource. Writes never reach it — the
// router answers them with 405.
type TagHandler struct {
	tags TagServicer
}

// NewTagHandler constructs a TagHandler with its service dependency.
func NewTagHandler(tags TagServicer) *TagHandler {
	return &TagHandler{tags: tags}
}

// List godoc
// @Summary      List tags
// @Description  Returns all tags, newest first.
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   TagResponse
// @Failure      401  {object}  DetailResponse
// @Router       /tag [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List()
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]TagResponse, len(tags))
	for i, tag := range tags {
		response[i] = newTagResponse(tag)
	}
	c.JSON(http.StatusOK, response)
}

// Detail godoc
// @Summary      List a tag's snippets
// @Description  The detail of a tag is its members: the flattened snippets carrying the tag's title, newest first.
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tag ID"
// @Success      200  {array}   SnippetResponse
// @Failure      401  {object}  DetailResponse
// @Failure      404  {object}  DetailResponse
// @Router       /tag/{id} [get]
func (h *TagHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	snippets, err := h.tags.Snippets(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSnippetListResponse(snippets))
}
