package service

import (
	"snipboard/backend/internal/models"
	"snipboard/backend/internal/store"
)

// OverviewService produces the read-only aggregate projection: every snippet
// across all owners, with a total count. It shares the snippet store but no
// write path.
type OverviewService struct {
	snippets store.SnippetStore
}

// NewOverviewService constructs an OverviewService over the given store.
func NewOverviewService(snippets store.SnippetStore) *OverviewService {
	return &OverviewService{snippets: snippets}
}

// List returns the total snippet count and all snippets, newest first.
func (s *OverviewService) List() (int, []models.Snippet, error) {
	snippets, err := s.snippets.List()
	if err != nil {
		return 0, nil, err
	}
	return len(snippets), snippets, nil
}
