// Package catalog holds the canonical chart-of-accounts definition set.
// The catalog is immutable and versioned by source-code change only; it is
// passed explicitly to the planner, never consulted as process-wide state.
package catalog

import (
	"fmt"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// Catalog is an immutable set of main-account definitions plus their default
// sub-accounts, indexed by parent code.
type Catalog struct {
	mains []domain.AccountDefinition
	subs  map[string][]domain.AccountDefinition
}

// New builds a catalog from definitions, validating referential consistency.
// A malformed catalog is a programming error in the definition data, so the
// validation failures here are meant to surface loudly at startup.
func New(mains []domain.AccountDefinition, subs []domain.AccountDefinition) (Catalog, error) {
	seen := make(map[string]struct{}, len(mains)+len(subs))
	byParent := make(map[string][]domain.AccountDefinition)

	for _, m := range mains {
		if !m.IsMain() {
			return Catalog{}, fmt.Errorf("main definition %q carries parent code %q", m.AccountCode, m.ParentAccountCode)
		}
		if _, dup := seen[m.AccountCode]; dup {
			return Catalog{}, fmt.Errorf("duplicate account code %q in catalog", m.AccountCode)
		}
		seen[m.AccountCode] = struct{}{}
	}

	mainCodes := make(map[string]struct{}, len(mains))
	for _, m := range mains {
		mainCodes[m.AccountCode] = struct{}{}
	}

	for _, s := range subs {
		if s.IsMain() {
			return Catalog{}, fmt.Errorf("sub-account definition %q has no parent code", s.AccountCode)
		}
		if _, ok := mainCodes[s.ParentAccountCode]; !ok {
			return Catalog{}, fmt.Errorf("sub-account %q references unknown parent %q", s.AccountCode, s.ParentAccountCode)
		}
		if _, dup := seen[s.AccountCode]; dup {
			return Catalog{}, fmt.Errorf("duplicate account code %q in catalog", s.AccountCode)
		}
		seen[s.AccountCode] = struct{}{}
		byParent[s.ParentAccountCode] = append(byParent[s.ParentAccountCode], s)
	}

	return Catalog{mains: mains, subs: byParent}, nil
}

// MainAccounts returns the main-account definitions in catalog order.
func (c Catalog) MainAccounts() []domain.AccountDefinition {
	out := make([]domain.AccountDefinition, len(c.mains))
	copy(out, c.mains)
	return out
}

// SubAccounts returns the default sub-account definitions under a parent
// code, in catalog order. The result is empty for unknown parents.
func (c Catalog) SubAccounts(parentCode string) []domain.AccountDefinition {
	defs := c.subs[parentCode]
	out := make([]domain.AccountDefinition, len(defs))
	copy(out, defs)
	return out
}

// ParentCodes returns the parent codes that have default sub-accounts,
// in main-account catalog order.
func (c Catalog) ParentCodes() []string {
	var out []string
	for _, m := range c.mains {
		if len(c.subs[m.AccountCode]) > 0 {
			out = append(out, m.AccountCode)
		}
	}
	return out
}

// ProtectedCodes returns the set of all main-account codes. Clearing
// operations that preserve main accounts must never delete these.
func (c Catalog) ProtectedCodes() map[string]struct{} {
	out := make(map[string]struct{}, len(c.mains))
	for _, m := range c.mains {
		out[m.AccountCode] = struct{}{}
	}
	return out
}

func mustNew(mains, subs []domain.AccountDefinition) Catalog {
	c, err := New(mains, subs)
	if err != nil {
		panic(err)
	}
	return c
}
