package handlers

import (
	"net/http"

	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// ProductListResponse is one page of the product catalog.
type ProductListResponse struct {
	Products []*models.Product `json:"products"`
	Total    int               `json:"total" example:"7"`
} // @name ProductListResponse

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute lists the product catalog.
//
//	@Summary		List products
//	@Description	Returns a page of catalog products with their default features
//	@Tags			products
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ProductListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, total, err := h.svc.Product.List(r.Context(), queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if products == nil {
		products = []*models.Product{}
	}
	httpx.JSON(w, http.StatusOK, ProductListResponse{Products: products, Total: total})
}
