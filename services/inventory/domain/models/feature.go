package models

import (
	"fmt"
	"strconv"
)

// FeatureKind is the value domain of a registered feature.
type FeatureKind string

const (
	// KindString accepts any non-empty string.
	KindString FeatureKind = "string"
	// KindEnum accepts one value out of a fixed list.
	KindEnum FeatureKind = "enum"
	// KindInteger accepts a non-negative base-10 integer.
	KindInteger FeatureKind = "integer"
)

// FeatureDef describes one entry of the feature registry: the feature name,
// its value kind, and the allowed values when the kind is enum.
type FeatureDef struct {
	Name   string
	Kind   FeatureKind
	Values []string // enum kinds only
}

// Feature is one name/value pair, either set directly on an item or supplied
// by a product. Values are carried as strings; the registry kind decides how
// they are validated.
type Feature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

const maxFeatureValueLength = 250

// Registry is the closed set of known feature names and their validation
// rules. It is immutable after construction and safe for concurrent use.
type Registry struct {
	defs map[string]FeatureDef
}

// NewRegistry builds a registry from the given definitions.
func NewRegistry(defs []FeatureDef) *Registry {
	m := make(map[string]FeatureDef, len(defs))
	for _, d := range defs {
		m[d.Name] = d
	}
	return &Registry{defs: m}
}

// Lookup returns the definition for name, if registered.
func (r *Registry) Lookup(name string) (FeatureDef, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Validate checks that name is registered and value falls inside the
// registered domain. The returned error describes the violation; callers
// wrap it with the domain validation sentinel.
func (r *Registry) Validate(name, value string) error {
	def, ok := r.defs[name]
	if !ok {
		return fmt.Errorf("unknown feature %q", name)
	}
	if value == "" {
		return fmt.Errorf("feature %q must not be empty", name)
	}
	if len(value) > maxFeatureValueLength {
		return fmt.Errorf("feature %q value exceeds %d characters", name, maxFeatureValueLength)
	}
	switch def.Kind {
	case KindString:
		return nil
	case KindEnum:
		for _, v := range def.Values {
			if v == value {
				return nil
			}
		}
		return fmt.Errorf("feature %q does not allow value %q", name, value)
	case KindInteger:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("feature %q needs a non-negative integer, got %q", name, value)
		}
		return nil
	default:
		return fmt.Errorf("feature %q has unsupported kind %q", name, def.Kind)
	}
}

// DefaultRegistry returns the registry of the hardware inventory vocabulary:
// identity features, physical traits, and per-port counters.
func DefaultRegistry() *Registry {
	return NewRegistry([]FeatureDef{
		{Name: "brand", Kind: KindString},
		{Name: "model", Kind: KindString},
		{Name: "variant", Kind: KindString},
		{Name: "sn", Kind: KindString},
		{Name: "owner", Kind: KindString},
		{Name: "notes", Kind: KindString},
		{Name: "isa", Kind: KindString},
		{Name: "cpu-socket", Kind: KindString},
		{Name: "ram-type", Kind: KindString},
		{Name: "type", Kind: KindEnum, Values: []string{
			"case", "motherboard", "cpu", "ram", "hdd", "ssd", "odd",
			"psu", "graphics-card", "ethernet-card", "audio-card",
			"monitor", "keyboard", "mouse", "location",
		}},
		{Name: "working", Kind: KindEnum, Values: []string{"yes", "no", "maybe"}},
		{Name: "color", Kind: KindEnum, Values: []string{
			"black", "white", "grey", "silver", "red", "green", "blue",
			"yellow", "beige", "brown", "golden",
		}},
		{Name: "ram-form-factor", Kind: KindEnum, Values: []string{"simm", "dimm", "sodimm", "minidimm"}},
		{Name: "motherboard-form-factor", Kind: KindEnum, Values: []string{
			"atx", "miniatx", "microatx", "miniitx", "proprietary",
		}},
		{Name: "frequency-hertz", Kind: KindInteger},
		{Name: "capacity-byte", Kind: KindInteger},
		{Name: "usb-ports-n", Kind: KindInteger},
		{Name: "ps2-ports-n", Kind: KindInteger},
		{Name: "serial-ports-n", Kind: KindInteger},
		{Name: "parallel-ports-n", Kind: KindInteger},
		{Name: "sata-ports-n", Kind: KindInteger},
		{Name: "ethernet-ports-n", Kind: KindInteger},
	})
}
