package handlers

import (
	"net/http"

	"github.com/ghuser/inventree/pkg/errhttp"
	"github.com/ghuser/inventree/pkg/httpx"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// HistoryResponse is one page of audit entries, newest first.
type HistoryResponse struct {
	Entries []models.AuditEntry `json:"entries"`
	Total   int                 `json:"total" example:"12"`
} // @name HistoryResponse

// GetItemHistoryHandler handles GET /items/{code}/history requests.
type GetItemHistoryHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHistoryHandler returns a GetItemHistoryHandler backed by the given services.
func NewGetItemHistoryHandler(svc *appsvcs.Services) *GetItemHistoryHandler {
	return &GetItemHistoryHandler{svc: svc}
}

// Execute returns the audit trail of one item code. History survives item
// deletion, so entries may exist for codes no item currently uses.
//
//	@Summary		Item history
//	@Description	Returns the audit entries recorded for the item, newest first
//	@Tags			items
//	@Produce		json
//	@Param			code	path		string	true	"Item code (case-insensitive)"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	HistoryResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{code}/history [get]
func (h *GetItemHistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	code, ok := codeParam(w, r)
	if !ok {
		return
	}

	entries, total, err := h.svc.Item.History(r.Context(), code, queryOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if entries == nil {
		entries = []models.AuditEntry{}
	}
	httpx.JSON(w, http.StatusOK, HistoryResponse{Entries: entries, Total: total})
}
