// Package services contains stateless domain services for the inventory
// bounded context. They operate purely on domain types and have zero
// dependencies beyond stdlib and the domain layer.
package services

import "github.com/ghuser/inventree/services/inventory/domain/models"

// Resolve merges an item's own features over its linked product's defaults.
// Every name present in either input appears in the result; on overlap the
// own value wins. Inputs are never mutated and the same inputs always
// produce the same output.
func Resolve(own, product models.Features) models.Features {
	combined := make(models.Features, len(own)+len(product))
	for name, value := range product {
		combined[name] = value
	}
	for name, value := range own {
		combined[name] = value
	}
	return combined
}

// Annotate fills the Combined view of every node in the subtree using the
// given catalog lookup (product identity → default features, nil when the
// node links no product or the product is unknown).
func Annotate(root *models.Item, defaults func(models.ProductID) models.Features) {
	root.Walk(func(node *models.Item) bool {
		var productFeatures models.Features
		if node.Product != nil && defaults != nil {
			productFeatures = defaults(*node.Product)
		}
		node.Combined = Resolve(node.OwnFeatures, productFeatures)
		return true
	})
}
