package handlers

import (
	"net/http"

	"github.com/ghuser/inventree/pkg/auth"
	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// DeleteItemResponse reports how many nodes a subtree deletion removed.
type DeleteItemResponse struct {
	Removed int `json:"removed" example:"4"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /items/{code} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes the item and its whole subtree.
//
//	@Summary		Delete item subtree
//	@Description	Removes the item and every descendant in one transaction
//	@Tags			items
//	@Produce		json
//	@Param			code	path		string	true	"Item code (case-insensitive)"
//	@Success		200		{object}	DeleteItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{code} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	code, ok := codeParam(w, r)
	if !ok {
		return
	}

	removed, err := h.svc.Item.Delete(r.Context(), code, actor)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemResponse{Removed: removed})
}
