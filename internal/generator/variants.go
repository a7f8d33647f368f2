package generator

import (
	"sort"
	"sync"

	"git.home.luguber.info/inful/siteforge/internal/document"
)

// Variant abstraction & registry to allow pluggable template variants without
// scattering conditionals. Built-in variants live in variant_*.go files and
// register via their own init().

// Variant defines one alternative composition generated from the same
// business record: its theme tokens plus small presentation choices.
type Variant interface {
	// Name is the stable identifier ("modern", "classic", ...).
	Name() string
	// DisplayName is the human label shown in template pickers.
	DisplayName() string
	// Order controls deterministic listing; lower comes first.
	Order() int
	// Theme returns the variant's styling tokens.
	Theme() document.ThemeSettings
	// HeroLayout selects the hero composition class ("center", "split").
	HeroLayout() string
}

var (
	variantMu  sync.RWMutex
	variantReg = map[string]Variant{}
)

// RegisterVariant registers a Variant implementation. Duplicate names are ignored.
func RegisterVariant(v Variant) {
	if v == nil {
		return
	}
	variantMu.Lock()
	defer variantMu.Unlock()
	if _, exists := variantReg[v.Name()]; exists {
		return
	}
	variantReg[v.Name()] = v
}

// GetVariant retrieves a variant by name, or nil.
func GetVariant(name string) Variant {
	variantMu.RLock()
	defer variantMu.RUnlock()
	return variantReg[name]
}

// Variants returns all registered variants in deterministic order.
func Variants() []Variant {
	variantMu.RLock()
	defer variantMu.RUnlock()
	out := make([]Variant, 0, len(variantReg))
	for _, v := range variantReg {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order() != out[j].Order() {
			return out[i].Order() < out[j].Order()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}
