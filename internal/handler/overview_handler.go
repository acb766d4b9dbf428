package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snipboard/backend/internal/models"
)

// region --- DTOs ---

// OverviewItem is the overview projection of a snippet: a navigable URL in
// place of the id, and the raw nested tag instead of the flattened title.
type OverviewItem struct {
	URL       string      `json:"url" example:"http://localhost:8080/api/v1/snippet/1"`
	Content   string      `json:"content" example:"hi"`
	Timestamp time.Time   `json:"timestamp"`
	Owner     string      `json:"owner" example:"alice"`
	Tag       TagResponse `json:"tag"`
}

// OverviewResponse is the aggregate envelope.
type OverviewResponse struct {
	Count int            `json:"count" example:"1"`
	Data  []OverviewItem `json:"data"`
}

func newOverviewItem(snippet models.Snippet, baseURL string) OverviewItem {
	return OverviewItem{
		URL:       fmt.Sprintf("%s/api/v1/snippet/%d", baseURL, snippet.ID),
		Content:   snippet.Content,
		Timestamp: snippet.Timestamp,
		Owner:     snippet.Owner.Username,
		Tag:       newTagResponse(snippet.Tag),
	}
}

// endregion

// OverviewServicer defines the aggregate read the overview handler depends on.
type OverviewServicer interface {
	List() (int, []models.Snippet, error)
}

// OverviewHandler serves the read-only /overview projection. Writes never
// reach it — the router answers them with 405.
type OverviewHandler struct {
	overview OverviewServicer
}

// NewOverviewHandler constructs an OverviewHandler with its service dependency.
func NewOverviewHandler(overview OverviewServicer) *OverviewHandler {
	return &OverviewHandler{overview: overview}
}

// List godoc
// @Summary      Snippet overview
// @Description  Returns every snippet across all owners with a total count. Each item carries its resource URL and the nested tag representation.
// @Tags         overview
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  OverviewResponse
// @Failure      401  {object}  DetailResponse
// @Router       /overview [get]
func (h *OverviewHandler) List(c *gin.Context) {
	count, snippets, err := h.overview.List()
	if err != nil {
		writeError(c, err)
		return
	}

	baseURL := requestBaseURL(c)
	data := make([]OverviewItem, len(snippets))
	for i, snippet := range snippets {
		data[i] = newOverviewItem(snippet, baseURL)
	}
	c.JSON(http.StatusOK, OverviewResponse{Count: count, Data: data})
}

// requestBaseURL reconstructs the scheme and host the client used, so
// overview URLs are absolute and navigable from the caller's side.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
