package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// Verifier re-reads post-mutation state and diffs it against the expected
// outcome of a clearing plan. Expected deletions that are still present are
// flagged as warnings attributable to eventual-consistency lag, never as
// hard failures.
type Verifier struct {
	BaseService
	accounts portsrepo.AccountSnapshotReader
}

// NewVerifier creates a verifier over the given snapshot reader.
func NewVerifier(accounts portsrepo.AccountSnapshotReader) *Verifier {
	return &Verifier{accounts: accounts}
}

// VerifyClear re-reads the shop's snapshot and reports which of the expected
// deletions landed, which protected accounts survived, and which accounts
// that should be gone are still present.
func (v *Verifier) VerifyClear(ctx context.Context, shopID string, expectedDeleted, expectedPreserved []string) (*domain.VerificationReport, error) {
	snapshot, err := v.accounts.SnapshotByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("verification re-read failed: %w", err)
	}

	report := &domain.VerificationReport{}

	for _, code := range sortedCopy(expectedPreserved) {
		if _, present := snapshot[code]; present {
			report.Preserved = append(report.Preserved, code)
		}
	}

	for _, code := range sortedCopy(expectedDeleted) {
		if _, present := snapshot[code]; present {
			report.UnexpectedRemaining = append(report.UnexpectedRemaining, code)
		} else {
			report.Deleted = append(report.Deleted, code)
		}
	}

	if len(report.UnexpectedRemaining) > 0 {
		v.LogWarn(ctx, "Residual accounts remain after clearing; likely eventual-consistency lag, re-verify after a longer wait",
			slog.String("shop_id", shopID),
			slog.Int("remaining", len(report.UnexpectedRemaining)),
			slog.Any("codes", report.UnexpectedRemaining))
	}

	return report, nil
}

func sortedCopy(codes []string) []string {
	out := make([]string, len(codes))
	copy(out, codes)
	sort.Strings(out)
	return out
}
