package services

import (
	"fmt"

	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// ValidateSubtree checks a fully-constructed subtree before it is persisted:
// every code is well-formed, no code repeats inside the subtree itself
// (case-insensitively), and every feature value satisfies the registry.
// Tree-wide code uniqueness against already stored items is the store's job.
func ValidateSubtree(root *models.Item, registry *models.Registry) error {
	if root == nil {
		return fmt.Errorf("item cannot be nil")
	}
	seen := make(map[string]models.ItemCode)

	var check func(node *models.Item) error
	check = func(node *models.Item) error {
		if _, err := models.NewItemCode(node.Code.String()); err != nil {
			return err
		}
		if prev, dup := seen[node.Code.Norm()]; dup {
			return fmt.Errorf("code %q repeats inside the subtree (already used as %q)", node.Code, prev)
		}
		seen[node.Code.Norm()] = node.Code

		for name, value := range node.OwnFeatures {
			if err := registry.Validate(name, value); err != nil {
				return fmt.Errorf("item %q: %w", node.Code, err)
			}
		}
		for _, child := range node.Children {
			if err := check(child); err != nil {
				return err
			}
		}
		return nil
	}
	return check(root)
}
