package models

import "fmt"

// NoVariant is the variant value of a product registered without one. It is
// a distinct identity: (brand, model, "") and (brand, model, "v2") are two
// different products.
const NoVariant = ""

// ProductID identifies a product by value: brand, model and variant compared
// field by field. Two separately constructed ProductIDs with equal fields
// resolve to the same catalog entry.
type ProductID struct {
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Variant string `json:"variant"`
}

// NewProductID validates the identity fields. Brand and model are required;
// variant may be NoVariant.
func NewProductID(brand, model, variant string) (ProductID, error) {
	if brand == "" {
		return ProductID{}, fmt.Errorf("product brand is required")
	}
	if model == "" {
		return ProductID{}, fmt.Errorf("product model is required")
	}
	return ProductID{Brand: brand, Model: model, Variant: variant}, nil
}

// String renders the identity for logs and error messages.
func (id ProductID) String() string {
	if id.Variant == NoVariant {
		return id.Brand + " " + id.Model
	}
	return id.Brand + " " + id.Model + " (" + id.Variant + ")"
}

// Product is a catalog entry: an identity plus the default feature set shared
// by every item instantiating it.
type Product struct {
	ID       ProductID `json:"id"`
	Features Features  `json:"features"`
}

// NewProduct constructs a Product with an empty feature set.
func NewProduct(id ProductID) *Product {
	return &Product{ID: id, Features: Features{}}
}

// WithFeature sets a default feature and returns the product for chaining.
func (p *Product) WithFeature(name, value string) *Product {
	if p.Features == nil {
		p.Features = Features{}
	}
	p.Features[name] = value
	return p
}
