package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

// SearchResponse is one page of search matches. Every match carries its full
// subtree with combined features resolved.
type SearchResponse struct {
	Items  []ItemPayload `json:"items"`
	Total  int           `json:"total" example:"3"`
	Limit  int           `json:"limit" example:"50"`
	Offset int           `json:"offset" example:"0"`
} // @name SearchResponse

// GetSearchHandler handles GET /search requests.
type GetSearchHandler struct {
	svc *appsvcs.Services
}

// NewGetSearchHandler returns a GetSearchHandler backed by the given services.
func NewGetSearchHandler(svc *appsvcs.Services) *GetSearchHandler {
	return &GetSearchHandler{svc: svc}
}

// Execute runs a bounded predicate search over the item tree. At least one
// predicate is required; feature may be repeated and uses name=value form
// evaluated against combined features.
//
//	@Summary		Search items
//	@Description	Finds items by code pattern, ancestor subtree and combined feature equality, sorted and paginated
//	@Tags			search
//	@Produce		json
//	@Param			code		query		string	false	"Code pattern with % and _ wildcards (case-insensitive)"
//	@Param			ancestor	query		string	false	"Restrict to the subtree of this code"
//	@Param			feature		query		string	false	"Feature filter name=value; repeatable"
//	@Param			sort		query		string	false	"Feature name to sort by"
//	@Param			order		query		string	false	"asc (default) or desc"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	SearchResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/search [get]
func (h *GetSearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	query, err := searchQueryParams(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	page, err := h.svc.Search.Search(r.Context(), query, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := SearchResponse{
		Items:  []ItemPayload{},
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, fromItem(item))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func searchQueryParams(r *http.Request) (repositories.SearchQuery, error) {
	q := r.URL.Query()
	query := repositories.SearchQuery{
		CodePattern:    q.Get("code"),
		SortFeature:    q.Get("sort"),
		SortDescending: strings.EqualFold(q.Get("order"), "desc"),
	}

	if ancestor := q.Get("ancestor"); ancestor != "" {
		code, err := models.NewItemCode(ancestor)
		if err != nil {
			return repositories.SearchQuery{}, fmt.Errorf("%w: ancestor: %w", invdomain.ErrValidation, err)
		}
		query.Ancestor = &code
	}

	for _, raw := range q["feature"] {
		name, value, ok := strings.Cut(raw, "=")
		if !ok || name == "" {
			return repositories.SearchQuery{}, fmt.Errorf("%w: feature filter %q is not name=value", invdomain.ErrValidation, raw)
		}
		query.Filters = append(query.Filters, models.Feature{Name: name, Value: value})
	}
	return query, nil
}
