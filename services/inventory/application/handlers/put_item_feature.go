package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventree/pkg/auth"
	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventree/pkg/validator"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// SetFeatureRequest is the request body for PUT /items/{code}/features/{name}.
type SetFeatureRequest struct {
	Value string `json:"value" validate:"required,max=250" example:"grey"`
} // @name SetFeatureRequest

// PutItemFeatureHandler handles PUT /items/{code}/features/{name} requests.
type PutItemFeatureHandler struct {
	svc *appsvcs.Services
}

// NewPutItemFeatureHandler returns a PutItemFeatureHandler backed by the given services.
func NewPutItemFeatureHandler(svc *appsvcs.Services) *PutItemFeatureHandler {
	return &PutItemFeatureHandler{svc: svc}
}

// Execute sets an own feature on the item.
//
//	@Summary		Set item feature
//	@Description	Sets or replaces one own feature; the linked product's defaults are never modified
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			code	path	string				true	"Item code (case-insensitive)"
//	@Param			name	path	string				true	"Feature name"
//	@Param			request	body	SetFeatureRequest	true	"Feature value"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/items/{code}/features/{name} [put]
func (h *PutItemFeatureHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[SetFeatureRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.SetFeature(r.Context(), code, name, req.Value, actor); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
