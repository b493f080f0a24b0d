package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// GetProductHandler handles GET /products/{brand}/{model} and
// GET /products/{brand}/{model}/{variant} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute returns one product by identity. The two-segment form addresses
// the product registered without a variant.
//
//	@Summary		Get product
//	@Description	Returns the product with its default features
//	@Tags			products
//	@Produce		json
//	@Param			brand	path		string	true	"Brand"
//	@Param			model	path		string	true	"Model"
//	@Param			variant	path		string	false	"Variant"
//	@Success		200		{object}	models.Product
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products/{brand}/{model}/{variant} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	product, err := h.svc.Product.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, product)
}

// productIDParam builds the product identity from URL parameters. The
// variant segment is optional; its absence addresses the no-variant product.
func productIDParam(r *http.Request) (models.ProductID, error) {
	id, err := models.NewProductID(
		chi.URLParam(r, "brand"),
		chi.URLParam(r, "model"),
		chi.URLParam(r, "variant"),
	)
	if err != nil {
		return models.ProductID{}, fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
	}
	return id, nil
}
