package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventree/pkg/errhttp"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

// ItemPayload is the recursive wire shape of an item subtree, used both for
// creation requests and for read responses.
type ItemPayload struct {
	Code     string            `json:"code" validate:"required,min=1,max=32" example:"PC42"`
	Features map[string]string `json:"features,omitempty"`
	Product  *ProductRef       `json:"product,omitempty"`
	Parent   string            `json:"parent,omitempty" example:"Chernobyl"`
	Path     []string          `json:"path,omitempty"`
	Contents []ItemPayload     `json:"contents,omitempty"`
	Combined map[string]string `json:"combined_features,omitempty"`
} // @name ItemPayload

// ProductRef is the wire shape of a product identity.
type ProductRef struct {
	Brand   string `json:"brand" validate:"required" example:"Samsung"`
	Model   string `json:"model" validate:"required" example:"S667AB"`
	Variant string `json:"variant" example:"v2"`
} // @name ProductRef

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// toItem converts an inbound payload (creation request) into the domain
// model. Path and Combined are output-only and ignored here.
func (p ItemPayload) toItem() (*models.Item, error) {
	code, err := models.NewItemCode(p.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
	}
	item := models.NewItem(code)
	for name, value := range p.Features {
		item.WithFeature(name, value)
	}
	if p.Product != nil {
		id, err := models.NewProductID(p.Product.Brand, p.Product.Model, p.Product.Variant)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
		}
		item.WithProduct(id)
	}
	for _, child := range p.Contents {
		node, err := child.toItem()
		if err != nil {
			return nil, err
		}
		item.AddChild(node)
	}
	return item, nil
}

// fromItem converts a loaded domain item (with Combined resolved) into the
// wire shape.
func fromItem(item *models.Item) ItemPayload {
	p := ItemPayload{
		Code:     item.Code.String(),
		Features: item.OwnFeatures,
		Combined: item.Combined,
	}
	if item.Product != nil {
		p.Product = &ProductRef{
			Brand:   item.Product.Brand,
			Model:   item.Product.Model,
			Variant: item.Product.Variant,
		}
	}
	if item.Parent != nil {
		p.Parent = item.Parent.String()
	}
	for _, code := range item.Path {
		p.Path = append(p.Path, code.String())
	}
	for _, child := range item.Children {
		p.Contents = append(p.Contents, fromItem(child))
	}
	return p
}

// queryOpts reads limit/offset query parameters, leaving zero values for the
// repository layer to clamp.
func queryOpts(r *http.Request) repositories.QueryOpts {
	var opts repositories.QueryOpts
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		opts.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}

// codeParam extracts and validates the {code} URL parameter, writing a 422
// response on failure.
func codeParam(w http.ResponseWriter, r *http.Request) (models.ItemCode, bool) {
	code, err := models.NewItemCode(chi.URLParam(r, "code"))
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", invdomain.ErrValidation, err))
		return "", false
	}
	return code, true
}
