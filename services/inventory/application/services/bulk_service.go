package services

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"

	pkgworkflows "github.com/ghuser/inventree/pkg/workflows"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	invworkflows "github.com/ghuser/inventree/services/inventory/application/workflows"
)

// BulkService starts bulk import workflows on Temporal. The API process only
// starts them; execution happens on the worker.
type BulkService struct {
	temporal *pkgworkflows.TemporalClient
}

// NewBulkService returns a BulkService. The Temporal client may be nil when
// the deployment runs without workflow support; Start then fails cleanly.
func NewBulkService(temporal *pkgworkflows.TemporalClient) *BulkService {
	return &BulkService{temporal: temporal}
}

// Start launches a bulk import workflow and returns its workflow and run IDs.
func (s *BulkService) Start(ctx context.Context, input invworkflows.BulkImportInput) (workflowID, runID string, err error) {
	if s.temporal == nil {
		return "", "", fmt.Errorf("%w: bulk import requires a workflow backend", invdomain.ErrStorage)
	}

	run, err := s.temporal.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		TaskQueue: invworkflows.TaskQueue,
	}, invworkflows.BulkImportWorkflow, input)
	if err != nil {
		return "", "", fmt.Errorf("start bulk import: %w", err)
	}
	return run.GetID(), run.GetRunID(), nil
}
