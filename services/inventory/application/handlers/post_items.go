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

// CreateItemResponse is returned on successful subtree creation.
type CreateItemResponse struct {
	Code  string `json:"code" example:"PC42"`
	Nodes int    `json:"nodes" example:"3"`
} // @name CreateItemResponse

// PostItemsHandler handles POST /items requests.
type PostItemsHandler struct {
	svc *appsvcs.Services
}

// NewPostItemsHandler returns a PostItemsHandler backed by the given services.
func NewPostItemsHandler(svc *appsvcs.Services) *PostItemsHandler {
	return &PostItemsHandler{svc: svc}
}

// Execute creates a new item subtree, optionally attached under a parent.
//
//	@Summary		Add item subtree
//	@Description	Creates an item with nested contents in one transaction, optionally under an existing parent
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemPayload	true	"Item subtree; parent is optional"
//	@Success		201		{object}	CreateItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ItemPayload](w, r)
	if !ok {
		return
	}

	root, err := req.toItem()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	var parent *models.ItemCode
	if req.Parent != "" {
		code, err := models.NewItemCode(req.Parent)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("%w: parent: %w", invdomain.ErrValidation, err))
			return
		}
		parent = &code
	}

	if err := h.svc.Item.Add(r.Context(), root, parent, actor); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateItemResponse{
		Code:  root.Code.String(),
		Nodes: root.Size(),
	})
}
