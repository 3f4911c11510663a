package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
)

// legacyDateLayout is the day-first format older transaction records carry.
const legacyDateLayout = "02-01-2006"

// dateFixService sweeps historical transactions and rewrites legacy
// "DD-MM-YYYY" date strings to RFC 3339. Already-normalized documents and
// documents without a parseable date produce no write.
type dateFixService struct {
	BaseService
	collections portsrepo.CollectionReader
	executor    *ChunkedExecutor
}

// NewDateFixService creates the date normalization service.
func NewDateFixService(collections portsrepo.CollectionReader, executor *ChunkedExecutor) portssvc.DateFixSvc {
	return &dateFixService{collections: collections, executor: executor}
}

var _ portssvc.DateFixSvc = (*dateFixService)(nil)

func (s *dateFixService) NormalizeTransactionDates(ctx context.Context) (*domain.DateFixSummary, error) {
	docs, err := s.collections.ListAllDocuments(ctx, portsrepo.CollectionTransactions)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	summary := &domain.DateFixSummary{Execution: domain.ExecutionReport{FailedChunk: -1}}
	var ops []portsrepo.BatchOp

	for _, doc := range docs {
		summary.Scanned++

		raw, ok := doc.Data["date"].(string)
		if !ok {
			summary.Unparseable++
			continue
		}

		if _, err := time.Parse(time.RFC3339, raw); err == nil {
			summary.AlreadyNormalized++
			continue
		}

		parsed, err := time.Parse(legacyDateLayout, raw)
		if err != nil {
			summary.Unparseable++
			s.LogWarn(ctx, "Transaction date not in a known format, leaving untouched",
				slog.String("transaction_id", doc.ID),
				slog.String("date", raw))
			continue
		}

		ops = append(ops, portsrepo.BatchOp{
			Kind:       portsrepo.BatchOpUpdate,
			Collection: portsrepo.CollectionTransactions,
			DocID:      doc.ID,
			Updates:    map[string]any{"date": parsed.UTC().Format(time.RFC3339)},
		})
	}

	if len(ops) > 0 {
		summary.Execution = s.executor.Apply(ctx, ops)
		summary.Updated = summary.Execution.OpsCommitted
		if summary.Execution.Err != nil {
			return summary, summary.Execution.Err
		}
	}

	s.LogInfo(ctx, "Transaction dates normalized",
		slog.Int("scanned", summary.Scanned),
		slog.Int("updated", summary.Updated),
		slog.Int("already_normalized", summary.AlreadyNormalized),
		slog.Int("unparseable", summary.Unparseable))
	return summary, nil
}
