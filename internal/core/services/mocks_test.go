package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// MockShopReader is a mock type for the ShopReader interface
type MockShopReader struct {
	mock.Mock
}

func (m *MockShopReader) ListShops(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopReader) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

// MockFinancialYearReader is a mock type for the FinancialYearReader interface
type MockFinancialYearReader struct {
	mock.Mock
}

func (m *MockFinancialYearReader) FindOpenFinancialYear(ctx context.Context, shopID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

// MockAccountSnapshotReader is a mock type for the AccountSnapshotReader interface
type MockAccountSnapshotReader struct {
	mock.Mock
}

func (m *MockAccountSnapshotReader) SnapshotByShop(ctx context.Context, shopID string) (map[string]domain.Account, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountSnapshotReader) SnapshotAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockBatchCommitter is a mock type for the BatchCommitter interface.
// It additionally records every committed chunk so tests can assert on
// chunk sizes and ordering.
type MockBatchCommitter struct {
	mock.Mock
	Chunks [][]portsrepo.BatchOp
}

func (m *MockBatchCommitter) CommitBatch(ctx context.Context, ops []portsrepo.BatchOp) error {
	args := m.Called(ctx, ops)
	err := args.Error(0)
	if err == nil {
		m.Chunks = append(m.Chunks, ops)
	}
	return err
}

// MockCollectionReader is a mock type for the CollectionReader interface
type MockCollectionReader struct {
	mock.Mock
}

func (m *MockCollectionReader) ListAllDocuments(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.Document), args.Error(1)
}

func (m *MockCollectionReader) ListDocumentsByShop(ctx context.Context, collection, shopID string) ([]portsrepo.Document, error) {
	args := m.Called(ctx, collection, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.Document), args.Error(1)
}
