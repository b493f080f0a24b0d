// Package workflows defines the Temporal workflow for bulk item imports.
// Large imports run outside the request lifecycle: the API starts a
// workflow and returns immediately; a worker process executes the per-subtree
// activities with retries.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// TaskQueue is the Temporal task queue shared by the API (starter) and the
// worker (executor).
const TaskQueue = "inventory-bulk-import"

// BulkEntry is one subtree to import, optionally under an existing parent.
type BulkEntry struct {
	Root   *models.Item `json:"root"`
	Parent string       `json:"parent,omitempty"`
}

// BulkImportInput is the workflow argument.
type BulkImportInput struct {
	Actor   string      `json:"actor"`
	Entries []BulkEntry `json:"entries"`
}

// BulkFailure records one entry that could not be imported.
type BulkFailure struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// BulkImportResult is the workflow return value.
type BulkImportResult struct {
	Added    int           `json:"added"`
	Failures []BulkFailure `json:"failures,omitempty"`
}

// BulkImportWorkflow imports every entry as its own activity so one bad
// subtree never aborts the batch. Each activity is a single database
// transaction; domain rejections (duplicate code, unknown parent) are not
// retried, transient failures are.
func BulkImportWorkflow(ctx workflow.Context, input BulkImportInput) (BulkImportResult, error) {
	opts := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			MaximumInterval:        30 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{ErrTypeRejected},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, opts)

	var result BulkImportResult
	for _, entry := range input.Entries {
		err := workflow.ExecuteActivity(ctx, ActivityAddSubtree, entry, input.Actor).Get(ctx, nil)
		if err != nil {
			result.Failures = append(result.Failures, BulkFailure{
				Code:  entry.Root.Code.String(),
				Error: err.Error(),
			})
			continue
		}
		result.Added++
	}
	return result, nil
}

// ErrTypeRejected marks activity errors caused by the data itself. Retrying
// a duplicate code or a missing parent can never succeed.
const ErrTypeRejected = "BulkEntryRejected"

// ActivityAddSubtree is the registered name of the import activity.
const ActivityAddSubtree = "AddSubtree"

// ItemAdder is the slice of the item service the activity needs.
type ItemAdder interface {
	Add(ctx context.Context, root *models.Item, parent *models.ItemCode, actor string) error
}

// Activities bundles activity implementations with their dependencies.
// Register on the worker with worker.RegisterActivity.
type Activities struct {
	Items ItemAdder
}

// AddSubtree imports a single subtree. Domain rejections are returned as
// non-retryable application errors; anything else is left retryable.
func (a *Activities) AddSubtree(ctx context.Context, entry BulkEntry, actor string) error {
	var parent *models.ItemCode
	if entry.Parent != "" {
		code, err := models.NewItemCode(entry.Parent)
		if err != nil {
			return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeRejected, err)
		}
		parent = &code
	}

	if err := a.Items.Add(ctx, entry.Root, parent, actor); err != nil {
		if isRejection(err) {
			return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeRejected, err)
		}
		return err
	}
	return nil
}
