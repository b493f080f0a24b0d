package models

import "sort"

// Features is a feature-name → value mapping, as stored on one item or one
// product.
type Features map[string]string

// Clone returns an independent copy. A nil receiver clones to an empty map.
func (f Features) Clone() Features {
	out := make(Features, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Names returns the feature names in sorted order, for deterministic output.
func (f Features) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
