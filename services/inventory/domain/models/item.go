package models

import "time"

// Item is one node of the containment tree. Children carry the full nested
// subtree when the item was loaded with getItem or returned by a search;
// Path lists the ancestor codes from the tree root down to (excluding) this
// item and is derived from the parent chain, never stored independently.
//
// Combined is the read-time feature view: own features merged over the
// linked product's defaults, with the own value winning on overlap. It is
// recomputed on every read and never persisted.
type Item struct {
	Code        ItemCode   `json:"code"`
	OwnFeatures Features   `json:"features"`
	Product     *ProductID `json:"product,omitempty"`
	Parent      *ItemCode  `json:"parent,omitempty"`
	Path        []ItemCode `json:"path,omitempty"`
	Children    []*Item    `json:"contents,omitempty"`
	Combined    Features   `json:"combined_features,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewItem constructs an Item with an empty feature set and no children.
func NewItem(code ItemCode) *Item {
	return &Item{
		Code:        code,
		OwnFeatures: Features{},
		CreatedAt:   time.Now().UTC(),
	}
}

// WithFeature sets an own feature and returns the item for chaining.
func (i *Item) WithFeature(name, value string) *Item {
	if i.OwnFeatures == nil {
		i.OwnFeatures = Features{}
	}
	i.OwnFeatures[name] = value
	return i
}

// WithProduct links the item to a product identity and returns the item.
func (i *Item) WithProduct(id ProductID) *Item {
	i.Product = &id
	return i
}

// AddChild appends a nested child subtree and returns the item.
func (i *Item) AddChild(child *Item) *Item {
	i.Children = append(i.Children, child)
	return i
}

// Walk visits the item and every descendant depth-first, pre-order. The walk
// stops early when fn returns false.
func (i *Item) Walk(fn func(*Item) bool) bool {
	if !fn(i) {
		return false
	}
	for _, c := range i.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Size returns the number of nodes in the subtree rooted at this item,
// including the item itself.
func (i *Item) Size() int {
	n := 0
	i.Walk(func(*Item) bool { n++; return true })
	return n
}

// Find returns the node with the given code inside this subtree, or nil.
func (i *Item) Find(code ItemCode) *Item {
	var found *Item
	i.Walk(func(node *Item) bool {
		if node.Code.Equal(code) {
			found = node
			return false
		}
		return true
	})
	return found
}
