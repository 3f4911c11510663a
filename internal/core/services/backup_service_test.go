package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	"github.com/shopbooks/chartops/internal/core/services"
)

func TestBackupService_ExportsEveryCollection(t *testing.T) {
	collections := new(MockCollectionReader)
	collections.On("ListAllDocuments", mock.Anything, portsrepo.CollectionAccounts).
		Return([]portsrepo.Document{
			{ID: "acc-1", Data: map[string]any{"accountCode": "1100", "shopId": "shop-a"}},
			{ID: "acc-2", Data: map[string]any{"accountCode": "1200", "shopId": "shop-a"}},
		}, nil)
	collections.On("ListAllDocuments", mock.Anything, mock.Anything).
		Return([]portsrepo.Document{}, nil)

	svc := services.NewBackupService(collections)
	baseDir := t.TempDir()

	summary, err := svc.Export(context.Background(), baseDir)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.True(t, summary.Succeeded())
	assert.Len(t, summary.Collections, len(portsrepo.BackupCollections))

	// One file per collection, plus combined and metadata.
	for _, collection := range portsrepo.BackupCollections {
		assert.FileExists(t, filepath.Join(summary.Dir, collection+".json"))
	}
	assert.FileExists(t, filepath.Join(summary.Dir, "combined.json"))
	assert.FileExists(t, filepath.Join(summary.Dir, "metadata.json"))

	// The document id is injected into each exported record.
	raw, err := os.ReadFile(filepath.Join(summary.Dir, portsrepo.CollectionAccounts+".json"))
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "acc-1", records[0]["id"])
	assert.Equal(t, "1100", records[0]["accountCode"])
}

func TestBackupService_FailedCollectionIsRecordedNotFatal(t *testing.T) {
	collections := new(MockCollectionReader)
	collections.On("ListAllDocuments", mock.Anything, portsrepo.CollectionLogs).
		Return(nil, errors.New("permission denied"))
	collections.On("ListAllDocuments", mock.Anything, mock.Anything).
		Return([]portsrepo.Document{}, nil)

	svc := services.NewBackupService(collections)

	summary, err := svc.Export(context.Background(), t.TempDir())

	require.NoError(t, err, "a single failed collection does not abandon the export")
	assert.False(t, summary.Succeeded())

	var failed []string
	for _, c := range summary.Collections {
		if !c.Succeeded {
			failed = append(failed, c.Name)
			assert.Contains(t, c.Error, "permission denied")
		}
	}
	assert.Equal(t, []string{portsrepo.CollectionLogs}, failed)

	// The failure is visible in the metadata summary on disk.
	raw, err := os.ReadFile(filepath.Join(summary.Dir, "metadata.json"))
	require.NoError(t, err)
	var metadata struct {
		Succeeded bool `json:"succeeded"`
	}
	require.NoError(t, json.Unmarshal(raw, &metadata))
	assert.False(t, metadata.Succeeded)
}

func TestBackupService_DirectoryNameCarriesTimestamp(t *testing.T) {
	collections := new(MockCollectionReader)
	collections.On("ListAllDocuments", mock.Anything, mock.Anything).
		Return([]portsrepo.Document{}, nil)

	svc := services.NewBackupService(collections)
	baseDir := t.TempDir()

	summary, err := svc.Export(context.Background(), baseDir)

	require.NoError(t, err)
	assert.Equal(t, baseDir, filepath.Dir(summary.Dir))
	assert.Regexp(t, `^backup_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}$`, filepath.Base(summary.Dir))
}
