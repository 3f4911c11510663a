package services

import (
	"sort"
	"strings"

	"github.com/shopbooks/chartops/internal/catalog"
	"github.com/shopbooks/chartops/internal/core/domain"
)

// Planner computes the ordered mutation list that takes a shop's current
// account snapshot to a target state. It is a pure function over
// (snapshot, catalog, mode): it never touches the store, so every mode is
// testable in isolation.
type Planner struct {
	catalog catalog.Catalog
}

// NewPlanner creates a planner bound to an immutable catalog. The catalog is
// injected explicitly so tests can supply alternate definition sets.
func NewPlanner(c catalog.Catalog) *Planner {
	return &Planner{catalog: c}
}

// PlanEnsureComplete emits a create for every canonical main account absent
// from the snapshot, then a create for every default sub-account whose parent
// already exists in the snapshot. Parent gating is evaluated against the
// pre-execution snapshot: a main account created by this same plan does not
// unlock its sub-accounts until a later run. The mode never deletes or
// updates, so re-running it on a complete shop yields an empty plan.
func (p *Planner) PlanEnsureComplete(snapshot map[string]domain.Account) domain.Plan {
	plan := domain.Plan{Mode: domain.ModeEnsureComplete}

	for _, def := range p.catalog.MainAccounts() {
		if _, exists := snapshot[def.AccountCode]; exists {
			continue
		}
		plan.Mutations = append(plan.Mutations, domain.Mutation{Kind: domain.MutationCreate, Definition: def})
	}

	for _, parentCode := range p.catalog.ParentCodes() {
		if _, parentExists := snapshot[parentCode]; !parentExists {
			// Orphan sub-account definitions are silently excluded.
			continue
		}
		for _, def := range p.catalog.SubAccounts(parentCode) {
			if _, exists := snapshot[def.AccountCode]; exists {
				continue
			}
			plan.Mutations = append(plan.Mutations, domain.Mutation{Kind: domain.MutationCreate, Definition: def})
		}
	}

	return plan
}

// PlanClearAndReseed emits a delete for every account in the snapshot,
// protected or not, followed by a create for every canonical main account.
// Sub-accounts are not reseeded; a follow-up EnsureComplete run tops them up.
// Deletes precede creates in the plan and the orchestration commits them as
// separate executor runs so a reused code never races its own delete.
func (p *Planner) PlanClearAndReseed(snapshot map[string]domain.Account) domain.Plan {
	plan := domain.Plan{Mode: domain.ModeClearAndReseed}

	for _, acct := range accountsByCode(snapshot) {
		plan.Mutations = append(plan.Mutations, domain.Mutation{Kind: domain.MutationDelete, Target: acct})
	}

	for _, def := range p.catalog.MainAccounts() {
		plan.Mutations = append(plan.Mutations, domain.Mutation{Kind: domain.MutationCreate, Definition: def})
	}

	return plan
}

// PlanClearSubAccounts partitions the snapshot into the protected set (the
// canonical main-account codes) and the rest, and emits a delete for every
// account outside the protected set. Protected accounts are never part of a
// delete mutation. An empty removable set is a success no-op.
func (p *Planner) PlanClearSubAccounts(snapshot map[string]domain.Account) domain.Plan {
	plan := domain.Plan{Mode: domain.ModeClearSubAccountsOnly}
	protected := p.catalog.ProtectedCodes()

	for _, acct := range accountsByCode(snapshot) {
		if _, keep := protected[acct.AccountCode]; keep {
			plan.PreservedCount++
			continue
		}
		plan.Mutations = append(plan.Mutations, domain.Mutation{Kind: domain.MutationDelete, Target: acct})
	}

	return plan
}

// PlanRenameWithSuffix emits, for every account across all shops whose name
// does not already end with "-<shop name>", an update appending the suffix to
// the name and, when missing, to the account code. Already-suffixed accounts
// produce no mutation, so a second pass yields an empty plan. Accounts whose
// shop cannot be resolved are skipped with a warning, not an error.
func (p *Planner) PlanRenameWithSuffix(accounts []domain.Account, shopNames map[string]string) domain.Plan {
	plan := domain.Plan{Mode: domain.ModeRenameWithSuffix}

	ordered := make([]domain.Account, len(accounts))
	copy(ordered, accounts)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ShopID != ordered[j].ShopID {
			return ordered[i].ShopID < ordered[j].ShopID
		}
		return ordered[i].AccountCode < ordered[j].AccountCode
	})

	for _, acct := range ordered {
		shopName, ok := shopNames[acct.ShopID]
		if !ok || shopName == "" {
			plan.Skipped = append(plan.Skipped, domain.SkippedAccount{
				AccountCode: acct.AccountCode,
				ShopID:      acct.ShopID,
				Reason:      "shop not found",
			})
			continue
		}

		suffix := "-" + shopName
		if strings.HasSuffix(acct.Name, suffix) {
			continue
		}

		newCode := acct.AccountCode
		if !strings.HasSuffix(newCode, suffix) {
			newCode += suffix
		}

		plan.Mutations = append(plan.Mutations, domain.Mutation{
			Kind:           domain.MutationUpdate,
			Target:         acct,
			NewName:        acct.Name + suffix,
			NewAccountCode: newCode,
		})
	}

	return plan
}

// accountsByCode returns the snapshot's accounts ordered by account code so
// plans are deterministic regardless of map iteration order.
func accountsByCode(snapshot map[string]domain.Account) []domain.Account {
	codes := make([]string, 0, len(snapshot))
	for code := range snapshot {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]domain.Account, 0, len(codes))
	for _, code := range codes {
		out = append(out, snapshot[code])
	}
	return out
}
