package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
)

// backupService serializes every logical collection into a timestamped
// directory: one JSON file per collection, one combined file and a metadata
// summary. Export only; restore is out of scope.
type backupService struct {
	BaseService
	collections portsrepo.CollectionReader
	now         func() time.Time
}

// NewBackupService creates the backup service over the given reader.
func NewBackupService(collections portsrepo.CollectionReader) portssvc.BackupSvc {
	return &backupService{collections: collections, now: time.Now}
}

var _ portssvc.BackupSvc = (*backupService)(nil)

type backupMetadata struct {
	TakenAt     time.Time                 `json:"takenAt"`
	Timezone    string                    `json:"timezone"`
	Collections []domain.CollectionBackup `json:"collections"`
	Succeeded   bool                      `json:"succeeded"`
}

func (s *backupService) Export(ctx context.Context, baseDir string) (*domain.BackupSummary, error) {
	takenAt := s.now()
	zone, _ := takenAt.Zone()
	dir := filepath.Join(baseDir, "backup_"+takenAt.Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	summary := &domain.BackupSummary{Dir: dir, TakenAt: takenAt, Timezone: zone}
	combined := make(map[string][]map[string]any, len(portsrepo.BackupCollections))

	for _, collection := range portsrepo.BackupCollections {
		entry := domain.CollectionBackup{Name: collection}

		docs, err := s.collections.ListAllDocuments(ctx, collection)
		if err != nil {
			// One unreadable collection does not abandon the export; the
			// failure is recorded in the metadata summary.
			entry.Error = err.Error()
			summary.Collections = append(summary.Collections, entry)
			s.LogError(ctx, err, "Failed to read collection for backup", slog.String("collection", collection))
			continue
		}

		records := make([]map[string]any, 0, len(docs))
		for _, doc := range docs {
			record := make(map[string]any, len(doc.Data)+1)
			for k, v := range doc.Data {
				record[k] = v
			}
			record["id"] = doc.ID
			records = append(records, record)
		}

		if err := writeJSON(filepath.Join(dir, collection+".json"), records); err != nil {
			entry.Error = err.Error()
			summary.Collections = append(summary.Collections, entry)
			s.LogError(ctx, err, "Failed to write collection file", slog.String("collection", collection))
			continue
		}

		entry.Count = len(records)
		entry.Succeeded = true
		summary.Collections = append(summary.Collections, entry)
		combined[collection] = records
		s.LogInfo(ctx, "Collection exported",
			slog.String("collection", collection),
			slog.Int("documents", len(records)))
	}

	if err := writeJSON(filepath.Join(dir, "combined.json"), combined); err != nil {
		return summary, fmt.Errorf("writing combined file: %w", err)
	}

	metadata := backupMetadata{
		TakenAt:     takenAt,
		Timezone:    zone,
		Collections: summary.Collections,
		Succeeded:   summary.Succeeded(),
	}
	if err := writeJSON(filepath.Join(dir, "metadata.json"), metadata); err != nil {
		return summary, fmt.Errorf("writing metadata file: %w", err)
	}

	s.LogInfo(ctx, "Backup export finished",
		slog.String("dir", dir),
		slog.Bool("succeeded", summary.Succeeded()))
	return summary, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
