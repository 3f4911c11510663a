package domain

// PlanMode selects the reconciliation behavior of the planner.
type PlanMode string

const (
	ModeEnsureComplete       PlanMode = "ENSURE_COMPLETE"
	ModeClearAndReseed       PlanMode = "CLEAR_AND_RESEED"
	ModeClearSubAccountsOnly PlanMode = "CLEAR_SUBACCOUNTS_ONLY"
	ModeRenameWithSuffix     PlanMode = "RENAME_WITH_SUFFIX"
)

// MutationKind discriminates the three store-level operations a plan can emit.
type MutationKind string

const (
	MutationCreate MutationKind = "CREATE"
	MutationUpdate MutationKind = "UPDATE"
	MutationDelete MutationKind = "DELETE"
)

// Mutation is one planned change to a shop's account set. The planner emits
// mutations only; it never touches the store itself.
type Mutation struct {
	Kind MutationKind

	// Definition is set for creates. It is materialized into a full account
	// (id, shopID, timestamps, opening balance) at execution time.
	Definition AccountDefinition

	// Target is the existing account an update or delete applies to, resolved
	// from the snapshot the plan was computed against. Zero for creates.
	Target Account

	// NewName and NewAccountCode carry the suffixed values for rename updates.
	NewName        string
	NewAccountCode string
}

// Code returns the account code the mutation refers to.
func (m Mutation) Code() string {
	if m.Kind == MutationCreate {
		return m.Definition.AccountCode
	}
	return m.Target.AccountCode
}

// SkippedAccount records an account the planner excluded from a plan,
// together with the reason. Skips are warnings, never errors.
type SkippedAccount struct {
	AccountCode string
	ShopID      string
	Reason      string
}

// Plan is the ordered mutation list the planner computed for one run.
type Plan struct {
	Mode           PlanMode
	Mutations      []Mutation
	Skipped        []SkippedAccount
	PreservedCount int // Accounts left untouched by a clearing plan
}

// Counts returns the number of planned creates, updates and deletes.
func (p Plan) Counts() (creates, updates, deletes int) {
	for _, m := range p.Mutations {
		switch m.Kind {
		case MutationCreate:
			creates++
		case MutationUpdate:
			updates++
		case MutationDelete:
			deletes++
		}
	}
	return creates, updates, deletes
}

// IsEmpty reports whether the plan contains no mutations.
func (p Plan) IsEmpty() bool {
	return len(p.Mutations) == 0
}
