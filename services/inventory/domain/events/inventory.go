package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemMutated is the Watermill topic published for every item tree
// mutation (create, move, delete, feature edit, product link). The event is
// written in the same database transaction as the mutation and its audit
// rows, so a consumed event always refers to committed state.
const TopicItemMutated = "inventory.item.mutated"

// ItemMutatedEvent is published after an item tree mutation commits.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemMutated).
type ItemMutatedEvent struct {
	EventID      uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version      int       `json:"version"`  // Schema version; increment on breaking changes
	Action       string    `json:"action"`   // Audit action code: C, M, D, U, L, P
	ItemCode     string    `json:"item_code"`
	Path         []string  `json:"path,omitempty"`          // Ancestor codes after the mutation, root first
	PreviousPath []string  `json:"previous_path,omitempty"` // Ancestor codes before a move, root first
	Subtree      []string  `json:"subtree,omitempty"`       // Codes of every node in the affected subtree (deletes and moves)
	Actor        string    `json:"actor"`
	OccurredAt   time.Time `json:"occurred_at"`
}
