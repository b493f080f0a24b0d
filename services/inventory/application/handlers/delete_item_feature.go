package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventree/pkg/auth"
	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// DeleteItemFeatureHandler handles DELETE /items/{code}/features/{name} requests.
type DeleteItemFeatureHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemFeatureHandler returns a DeleteItemFeatureHandler backed by the given services.
func NewDeleteItemFeatureHandler(svc *appsvcs.Services) *DeleteItemFeatureHandler {
	return &DeleteItemFeatureHandler{svc: svc}
}

// Execute removes an own feature from the item. Removing a feature the item
// does not carry succeeds without effect.
//
//	@Summary		Remove item feature
//	@Description	Removes one own feature; the product default for the same name becomes visible again
//	@Tags			items
//	@Produce		json
//	@Param			code	path	string	true	"Item code (case-insensitive)"
//	@Param			name	path	string	true	"Feature name"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/items/{code}/features/{name} [delete]
func (h *DeleteItemFeatureHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	code, ok := codeParam(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")

	if err := h.svc.Item.RemoveFeature(r.Context(), code, name, actor); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
