package services

import (
	"context"
	"fmt"

	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

// SearchService runs bounded predicate queries over the item tree. Results
// are never cached: a search reflects one snapshot and the predicate space
// is too wide to invalidate usefully.
type SearchService struct {
	repo repositories.SearchRepository
}

// NewSearchService returns a SearchService wired with the given repository.
func NewSearchService(repo repositories.SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search executes the query and returns one page of matches, each carrying
// its full subtree with combined features resolved. An empty query is
// rejected rather than enumerating the whole tree.
func (s *SearchService) Search(ctx context.Context, query repositories.SearchQuery, opts repositories.QueryOpts) (*repositories.Page, error) {
	page, err := s.repo.Search(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return page, nil
}
