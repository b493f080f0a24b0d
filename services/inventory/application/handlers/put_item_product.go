package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/inventree/pkg/auth"
	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventree/pkg/validator"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// SetProductRequest is the request body for PUT /items/{code}/product.
// A nil product unlinks the item from its catalog entry.
type SetProductRequest struct {
	Product *ProductRef `json:"product"`
} // @name SetProductRequest

// PutItemProductHandler handles PUT /items/{code}/product requests.
type PutItemProductHandler struct {
	svc *appsvcs.Services
}

// NewPutItemProductHandler returns a PutItemProductHandler backed by the given services.
func NewPutItemProductHandler(svc *appsvcs.Services) *PutItemProductHandler {
	return &PutItemProductHandler{svc: svc}
}

// Execute links the item to a product, or unlinks it.
//
//	@Summary		Link item to product
//	@Description	Links the item to a catalog product by identity, or unlinks it when product is null
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			code	path	string				true	"Item code (case-insensitive)"
//	@Param			request	body	SetProductRequest	true	"Product identity or null"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/items/{code}/product [put]
func (h *PutItemProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	code, ok := codeParam(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SetProductRequest](w, r)
	if !ok {
		return
	}

	var id *models.ProductID
	if req.Product != nil {
		pid, err := models.NewProductID(req.Product.Brand, req.Product.Model, req.Product.Variant)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("%w: %w", invdomain.ErrValidation, err))
			return
		}
		id = &pid
	}

	if err := h.svc.Item.SetProduct(r.Context(), code, id, actor); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
