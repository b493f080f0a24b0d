package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventree/pkg/validator"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Brand    string            `json:"brand" validate:"required" example:"Samsung"`
	Model    string            `json:"model" validate:"required" example:"S667AB"`
	Variant  string            `json:"variant" example:"v2"`
	Features map[string]string `json:"features,omitempty"`
} // @name CreateProductRequest

// PostProductsHandler handles POST /products requests.
type PostProductsHandler struct {
	svc *appsvcs.Services
}

// NewPostProductsHandler returns a PostProductsHandler backed by the given services.
func NewPostProductsHandler(svc *appsvcs.Services) *PostProductsHandler {
	return &PostProductsHandler{svc: svc}
}

// Execute registers a new product in the catalog.
//
//	@Summary		Add product
//	@Description	Registers a product identity with its default features; the identity must be unused
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	id, err := models.NewProductID(req.Brand, req.Model, req.Variant)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", invdomain.ErrValidation, err))
		return
	}
	product := models.NewProduct(id)
	for name, value := range req.Features {
		product.WithFeature(name, value)
	}

	if err := h.svc.Product.Add(r.Context(), product); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, product)
}
