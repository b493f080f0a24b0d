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

// MoveItemRequest is the request body for PUT /items/{code}/parent.
// An empty parent moves the subtree to the top level.
type MoveItemRequest struct {
	Parent string `json:"parent" validate:"max=32" example:"Chernobyl"`
} // @name MoveItemRequest

// PutItemParentHandler handles PUT /items/{code}/parent requests.
type PutItemParentHandler struct {
	svc *appsvcs.Services
}

// NewPutItemParentHandler returns a PutItemParentHandler backed by the given services.
func NewPutItemParentHandler(svc *appsvcs.Services) *PutItemParentHandler {
	return &PutItemParentHandler{svc: svc}
}

// Execute reparents the item subtree.
//
//	@Summary		Move item subtree
//	@Description	Moves the item with its whole subtree under a new parent, or to the top level when parent is empty
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			code	path	string			true	"Item code (case-insensitive)"
//	@Param			request	body	MoveItemRequest	true	"New parent"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/items/{code}/parent [put]
func (h *PutItemParentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	code, ok := codeParam(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[MoveItemRequest](w, r)
	if !ok {
		return
	}

	var newParent *models.ItemCode
	if req.Parent != "" {
		parent, err := models.NewItemCode(req.Parent)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("%w: parent: %w", invdomain.ErrValidation, err))
			return
		}
		newParent = &parent
	}

	if err := h.svc.Item.Move(r.Context(), code, newParent, actor); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
