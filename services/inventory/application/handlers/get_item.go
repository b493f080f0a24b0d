package handlers

import (
	"net/http"

	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// GetItemHandler handles GET /items/{code} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns the item with its full subtree and combined features.
//
//	@Summary		Get item
//	@Description	Returns the item, its nested contents and the combined feature view of every node
//	@Tags			items
//	@Produce		json
//	@Param			code	path		string	true	"Item code (case-insensitive)"
//	@Success		200		{object}	ItemPayload
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{code} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	code, ok := codeParam(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Get(r.Context(), code)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, fromItem(item))
}
