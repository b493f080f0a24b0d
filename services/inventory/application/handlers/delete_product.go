package handlers

import (
	"net/http"

	"github.com/ghuser/inventree/pkg/errhttp"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// DeleteProductHandler handles DELETE /products/{brand}/{model}[/{variant}] requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given services.
func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute removes a product from the catalog. Products still referenced by
// items cannot be deleted.
//
//	@Summary		Delete product
//	@Description	Removes the catalog entry; fails with 409 while any item references it
//	@Tags			products
//	@Produce		json
//	@Param			brand	path	string	true	"Brand"
//	@Param			model	path	string	true	"Model"
//	@Param			variant	path	string	false	"Variant"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/products/{brand}/{model}/{variant} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.Product.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
