package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
)

// reconcileService orchestrates snapshot, plan, execute, wait and verify for
// one shop at a time. Multi-shop sweeps are strictly sequential: one shop's
// batch sequence completes before the next shop starts.
type reconcileService struct {
	BaseService
	shops    portsrepo.ShopReader
	years    portsrepo.FinancialYearReader
	accounts portsrepo.AccountSnapshotReader
	planner  *Planner
	executor *ChunkedExecutor
	waiter   *ConsistencyWaiter
	verifier *Verifier
	now      func() time.Time
}

// NewReconcileService creates the reconciliation service with the provided
// dependencies.
func NewReconcileService(
	shops portsrepo.ShopReader,
	years portsrepo.FinancialYearReader,
	accounts portsrepo.AccountSnapshotReader,
	planner *Planner,
	executor *ChunkedExecutor,
	waiter *ConsistencyWaiter,
	verifier *Verifier,
) portssvc.ReconcilerSvc {
	return &reconcileService{
		shops:    shops,
		years:    years,
		accounts: accounts,
		planner:  planner,
		executor: executor,
		waiter:   waiter,
		verifier: verifier,
		now:      time.Now,
	}
}

// Ensure reconcileService implements the ReconcilerSvc interface
var _ portssvc.ReconcilerSvc = (*reconcileService)(nil)

func (s *reconcileService) EnsureComplete(ctx context.Context, shopID string) (*domain.RunSummary, error) {
	snapshot, err := s.accounts.SnapshotByShop(ctx, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts", slog.String("shop_id", shopID))
		return nil, err
	}

	plan := s.planner.PlanEnsureComplete(snapshot)
	summary := newRunSummary(shopID, plan)

	if plan.IsEmpty() {
		s.LogInfo(ctx, "Chart already complete, nothing to create", slog.String("shop_id", shopID))
		return summary, nil
	}

	openingStock := s.openingStockValue(ctx, shopID)

	ops := s.opsFromMutations(plan.Mutations, shopID, snapshot, openingStock)
	summary.Execution = s.executor.Apply(ctx, ops)
	if summary.Execution.Err != nil {
		return summary, summary.Execution.Err
	}

	s.LogInfo(ctx, "Chart topped up",
		slog.String("shop_id", shopID),
		slog.Int("created", summary.Execution.OpsCommitted))
	return summary, nil
}

func (s *reconcileService) EnsureCompleteAll(ctx context.Context) ([]domain.RunSummary, error) {
	shops, err := s.shops.ListShops(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shops")
		return nil, err
	}

	summaries := make([]domain.RunSummary, 0, len(shops))
	for _, shop := range shops {
		summary, err := s.EnsureComplete(ctx, shop.ShopID)
		if err != nil {
			// One shop's failure is reported; the sweep moves on. The
			// failure still has to reach the caller, so a shop that died
			// before producing a summary gets one carrying the error.
			s.LogError(ctx, err, "Ensure-complete failed for shop, continuing sweep",
				slog.String("shop_id", shop.ShopID))
			if summary == nil {
				summary = &domain.RunSummary{
					ShopID:    shop.ShopID,
					Mode:      domain.ModeEnsureComplete,
					Execution: domain.ExecutionReport{FailedChunk: -1, Err: err},
				}
			}
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *reconcileService) ClearAndReseed(ctx context.Context, shopID string) (*domain.RunSummary, error) {
	snapshot, err := s.accounts.SnapshotByShop(ctx, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts", slog.String("shop_id", shopID))
		return nil, err
	}

	plan := s.planner.PlanClearAndReseed(snapshot)
	summary := newRunSummary(shopID, plan)

	deletes, creates := splitByKind(plan.Mutations)

	// Deletes commit fully before any create is attempted, so a reseeded
	// code never races the deletion of its previous document.
	deleteReport := s.executor.Apply(ctx, s.opsFromMutations(deletes, shopID, snapshot, decimal.Zero))
	if deleteReport.Err != nil {
		summary.Execution = deleteReport
		return summary, deleteReport.Err
	}

	s.waiter.AwaitConsistency(ctx, deleteReport.OpsCommitted)

	createReport := s.executor.Apply(ctx, s.opsFromMutations(creates, shopID, snapshot, decimal.Zero))
	summary.Execution = combineReports(deleteReport, createReport)
	if summary.Execution.Err != nil {
		return summary, summary.Execution.Err
	}

	s.verifyClearing(ctx, summary, removedCodes(deletes, mutationCodes(creates)), mutationCodes(creates))

	s.LogInfo(ctx, "Shop chart reset",
		slog.String("shop_id", shopID),
		slog.Int("deleted", len(deletes)),
		slog.Int("reseeded", len(creates)))
	return summary, nil
}

func (s *reconcileService) ClearSubAccounts(ctx context.Context, shopID string) (*domain.RunSummary, error) {
	snapshot, err := s.accounts.SnapshotByShop(ctx, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts", slog.String("shop_id", shopID))
		return nil, err
	}

	plan := s.planner.PlanClearSubAccounts(snapshot)
	summary := newRunSummary(shopID, plan)

	if plan.IsEmpty() {
		s.LogInfo(ctx, "No removable accounts, nothing to clear",
			slog.String("shop_id", shopID),
			slog.Int("preserved", plan.PreservedCount))
		return summary, nil
	}

	deleted := mutationCodes(plan.Mutations)
	preserved := preservedCodes(snapshot, deleted)

	summary.Execution = s.executor.Apply(ctx, s.opsFromMutations(plan.Mutations, shopID, snapshot, decimal.Zero))
	if summary.Execution.Err != nil {
		return summary, summary.Execution.Err
	}

	s.waiter.AwaitConsistency(ctx, summary.Execution.OpsCommitted)
	s.verifyClearing(ctx, summary, deleted, preserved)

	s.LogInfo(ctx, "Sub-accounts cleared",
		slog.String("shop_id", shopID),
		slog.Int("deleted", len(deleted)),
		slog.Int("preserved", summary.PreservedCount))
	return summary, nil
}

func (s *reconcileService) RenameWithShopSuffix(ctx context.Context) (*domain.RunSummary, error) {
	shops, err := s.shops.ListShops(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shops")
		return nil, err
	}
	names := make(map[string]string, len(shops))
	for _, shop := range shops {
		names[shop.ShopID] = shop.Name
	}

	accounts, err := s.accounts.SnapshotAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts globally")
		return nil, err
	}

	plan := s.planner.PlanRenameWithSuffix(accounts, names)
	summary := newRunSummary("", plan)

	for _, skipped := range plan.Skipped {
		s.LogWarn(ctx, "Skipping account with unresolved shop reference",
			slog.String("account_code", skipped.AccountCode),
			slog.String("shop_id", skipped.ShopID))
	}

	if plan.IsEmpty() {
		s.LogInfo(ctx, "All account names already carry their shop suffix")
		return summary, nil
	}

	summary.Execution = s.executor.Apply(ctx, s.opsFromMutations(plan.Mutations, "", nil, decimal.Zero))
	if summary.Execution.Err != nil {
		return summary, summary.Execution.Err
	}

	s.LogInfo(ctx, "Accounts renamed with shop suffix",
		slog.Int("renamed", summary.Execution.OpsCommitted),
		slog.Int("skipped", len(plan.Skipped)))
	return summary, nil
}

// verifyClearing runs the post-wait verification read. A verification problem
// is reported, never escalated: the mutations already committed.
func (s *reconcileService) verifyClearing(ctx context.Context, summary *domain.RunSummary, expectedDeleted, expectedPreserved []string) {
	report, err := s.verifier.VerifyClear(ctx, summary.ShopID, expectedDeleted, expectedPreserved)
	if err != nil {
		s.LogWarn(ctx, "Verification read failed; committed state not confirmed",
			slog.String("shop_id", summary.ShopID),
			slog.String("error", err.Error()))
		return
	}
	summary.Verification = report
}

// openingStockValue resolves the opening stock value from the shop's open
// financial year; a shop without one seeds the opening-stock account at zero.
func (s *reconcileService) openingStockValue(ctx context.Context, shopID string) decimal.Decimal {
	fy, err := s.years.FindOpenFinancialYear(ctx, shopID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Could not resolve open financial year, seeding opening stock at zero",
				slog.String("shop_id", shopID),
				slog.String("error", err.Error()))
		}
		return decimal.Zero
	}
	return fy.OpeningStockValue
}

// opsFromMutations translates planned mutations into store-level batch ops.
// Creates are materialized here: id, shopID, activity flag, opening balance
// and timestamps are filled in, and the parent document id is resolved from
// the snapshot the plan was computed against.
func (s *reconcileService) opsFromMutations(muts []domain.Mutation, shopID string, snapshot map[string]domain.Account, openingStock decimal.Decimal) []portsrepo.BatchOp {
	ops := make([]portsrepo.BatchOp, 0, len(muts))
	for _, m := range muts {
		switch m.Kind {
		case domain.MutationCreate:
			opening := decimal.Zero
			if m.Definition.Type == domain.TypeOpeningStock {
				opening = openingStock
			}
			ops = append(ops, s.materializeCreate(m.Definition, shopID, snapshot, opening))
		case domain.MutationUpdate:
			ops = append(ops, portsrepo.BatchOp{
				Kind:       portsrepo.BatchOpUpdate,
				Collection: portsrepo.CollectionAccounts,
				DocID:      m.Target.AccountID,
				Updates: map[string]any{
					"name":        m.NewName,
					"accountCode": m.NewAccountCode,
					"updatedAt":   s.now(),
				},
			})
		case domain.MutationDelete:
			ops = append(ops, portsrepo.BatchOp{
				Kind:       portsrepo.BatchOpDelete,
				Collection: portsrepo.CollectionAccounts,
				DocID:      m.Target.AccountID,
			})
		}
	}
	return ops
}

func (s *reconcileService) materializeCreate(def domain.AccountDefinition, shopID string, snapshot map[string]domain.Account, openingBalance decimal.Decimal) portsrepo.BatchOp {
	now := s.now()
	parentID := ""
	if def.ParentAccountCode != "" {
		if parent, ok := snapshot[def.ParentAccountCode]; ok {
			parentID = parent.AccountID
		}
	}
	return portsrepo.BatchOp{
		Kind:       portsrepo.BatchOpCreate,
		Collection: portsrepo.CollectionAccounts,
		DocID:      uuid.NewString(),
		Data: map[string]any{
			"accountCode":       def.AccountCode,
			"name":              def.Name,
			"parentAccountCode": def.ParentAccountCode,
			"parentId":          parentID,
			"classification":    string(def.Classification),
			"nature":            string(def.Nature),
			"type":              string(def.Type),
			"shopId":            shopID,
			"isActive":          true,
			"openingBalance":    openingBalance.InexactFloat64(),
			"createdAt":         now,
			"updatedAt":         now,
		},
	}
}

func newRunSummary(shopID string, plan domain.Plan) *domain.RunSummary {
	creates, updates, deletes := plan.Counts()
	return &domain.RunSummary{
		ShopID:         shopID,
		Mode:           plan.Mode,
		Creates:        creates,
		Updates:        updates,
		Deletes:        deletes,
		PreservedCount: plan.PreservedCount,
		Skipped:        plan.Skipped,
		Execution:      domain.ExecutionReport{FailedChunk: -1},
	}
}

func splitByKind(muts []domain.Mutation) (deletes, creates []domain.Mutation) {
	for _, m := range muts {
		switch m.Kind {
		case domain.MutationDelete:
			deletes = append(deletes, m)
		case domain.MutationCreate:
			creates = append(creates, m)
		}
	}
	return deletes, creates
}

func mutationCodes(muts []domain.Mutation) []string {
	codes := make([]string, 0, len(muts))
	for _, m := range muts {
		codes = append(codes, m.Code())
	}
	return codes
}

// removedCodes returns the deleted codes that are not being recreated, i.e.
// the codes expected to be absent after a clear-and-reseed run.
func removedCodes(deletes []domain.Mutation, recreated []string) []string {
	back := make(map[string]struct{}, len(recreated))
	for _, code := range recreated {
		back[code] = struct{}{}
	}
	var out []string
	for _, m := range deletes {
		if _, ok := back[m.Code()]; !ok {
			out = append(out, m.Code())
		}
	}
	return out
}

func preservedCodes(snapshot map[string]domain.Account, deleted []string) []string {
	gone := make(map[string]struct{}, len(deleted))
	for _, code := range deleted {
		gone[code] = struct{}{}
	}
	var out []string
	for code := range snapshot {
		if _, ok := gone[code]; !ok {
			out = append(out, code)
		}
	}
	return out
}

func combineReports(first, second domain.ExecutionReport) domain.ExecutionReport {
	out := domain.ExecutionReport{
		ChunkSize:       first.ChunkSize,
		ChunksTotal:     first.ChunksTotal + second.ChunksTotal,
		ChunksCommitted: first.ChunksCommitted + second.ChunksCommitted,
		OpsCommitted:    first.OpsCommitted + second.OpsCommitted,
		FailedChunk:     -1,
	}
	if first.Err != nil {
		out.FailedChunk = first.FailedChunk
		out.Err = first.Err
	} else if second.Err != nil {
		out.FailedChunk = first.ChunksTotal + second.FailedChunk
		out.Err = second.Err
	}
	return out
}
