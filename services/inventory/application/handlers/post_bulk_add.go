package handlers

import (
	"net/http"

	"github.com/ghuser/inventree/pkg/auth"
	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventree/pkg/validator"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
	invworkflows "github.com/ghuser/inventree/services/inventory/application/workflows"
)

// BulkAddRequest is the request body for POST /bulk/add.
type BulkAddRequest struct {
	Items []ItemPayload `json:"items" validate:"required,min=1,dive"`
} // @name BulkAddRequest

// BulkAddResponse identifies the started import workflow.
type BulkAddResponse struct {
	WorkflowID string `json:"workflow_id" example:"bulk-import-9f3a"`
	RunID      string `json:"run_id" example:"b1946ac9-..."`
	Entries    int    `json:"entries" example:"25"`
} // @name BulkAddResponse

// PostBulkAddHandler handles POST /bulk/add requests.
type PostBulkAddHandler struct {
	svc *appsvcs.Services
}

// NewPostBulkAddHandler returns a PostBulkAddHandler backed by the given services.
func NewPostBulkAddHandler(svc *appsvcs.Services) *PostBulkAddHandler {
	return &PostBulkAddHandler{svc: svc}
}

// Execute starts an asynchronous bulk import of item subtrees.
//
//	@Summary		Bulk add items
//	@Description	Starts a workflow importing each subtree independently; one rejected subtree does not abort the rest
//	@Tags			bulk
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BulkAddRequest	true	"Subtrees to import; each may name a parent"
//	@Success		202		{object}	BulkAddResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/bulk/add [post]
func (h *PostBulkAddHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BulkAddRequest](w, r)
	if !ok {
		return
	}

	input := invworkflows.BulkImportInput{Actor: actor}
	for _, payload := range req.Items {
		root, err := payload.toItem()
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		input.Entries = append(input.Entries, invworkflows.BulkEntry{
			Root:   root,
			Parent: payload.Parent,
		})
	}

	workflowID, runID, err := h.svc.Bulk.Start(r.Context(), input)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusAccepted, BulkAddResponse{
		WorkflowID: workflowID,
		RunID:      runID,
		Entries:    len(input.Entries),
	})
}
