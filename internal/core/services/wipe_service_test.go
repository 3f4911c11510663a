package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
	"github.com/shopbooks/chartops/internal/core/services"
)

type WipeServiceTestSuite struct {
	suite.Suite
	shops       *MockShopReader
	collections *MockCollectionReader
	committer   *MockBatchCommitter
	svc         portssvc.WipeSvc
}

func (suite *WipeServiceTestSuite) SetupTest() {
	suite.shops = new(MockShopReader)
	suite.collections = new(MockCollectionReader)
	suite.committer = new(MockBatchCommitter)

	executor := services.NewChunkedExecutor(suite.committer, 450, 0)
	waiter := services.NewConsistencyWaiterWithSleep(0, nil)
	suite.svc = services.NewWipeService(suite.shops, suite.collections, executor, waiter)
}

func docs(ids ...string) []portsrepo.Document {
	out := make([]portsrepo.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, portsrepo.Document{ID: id, Data: map[string]any{"shopId": "shop-a"}})
	}
	return out
}

func (suite *WipeServiceTestSuite) TestWipeShop_CascadesAndUnlinks() {
	suite.shops.On("FindShopByID", mock.Anything, "shop-a").
		Return(&domain.Shop{ShopID: "shop-a", Name: "Corner Store"}, nil)

	for _, collection := range portsrepo.ShopOwnedCollections {
		var d []portsrepo.Document
		switch collection {
		case portsrepo.CollectionTransactions:
			d = docs("txn-1", "txn-2")
		case portsrepo.CollectionAccounts:
			d = docs("acc-1")
		default:
			d = docs()
		}
		suite.collections.On("ListDocumentsByShop", mock.Anything, collection, "shop-a").Return(d, nil)
	}
	suite.collections.On("ListDocumentsByShop", mock.Anything, portsrepo.CollectionUsers, "shop-a").
		Return(docs("user-1"), nil)
	suite.committer.On("CommitBatch", mock.Anything, mock.Anything).Return(nil)

	summary, err := suite.svc.WipeShop(context.Background(), "shop-a")

	require.NoError(suite.T(), err)
	suite.Equal("shop-a", summary.ShopID)
	suite.Equal(2, summary.DeletedByCollection[portsrepo.CollectionTransactions])
	suite.Equal(1, summary.DeletedByCollection[portsrepo.CollectionAccounts])
	suite.Equal(0, summary.DeletedByCollection[portsrepo.CollectionLogs])
	suite.Equal(1, summary.UsersUnlinked)
	suite.True(summary.ShopDeleted)

	// Users are updated, never deleted; the shop document goes last.
	var sawUserUpdate, sawShopDelete bool
	for _, chunk := range suite.committer.Chunks {
		for _, op := range chunk {
			switch op.Collection {
			case portsrepo.CollectionUsers:
				suite.Equal(portsrepo.BatchOpUpdate, op.Kind)
				suite.Equal("", op.Updates["shopId"])
				sawUserUpdate = true
			case portsrepo.CollectionShops:
				suite.Equal(portsrepo.BatchOpDelete, op.Kind)
				suite.Equal("shop-a", op.DocID)
				sawShopDelete = true
			default:
				suite.Equal(portsrepo.BatchOpDelete, op.Kind)
			}
		}
	}
	suite.True(sawUserUpdate)
	suite.True(sawShopDelete)

	lastChunk := suite.committer.Chunks[len(suite.committer.Chunks)-1]
	suite.Equal(portsrepo.CollectionShops, lastChunk[0].Collection,
		"shop document deletion is the final operation")
}

func (suite *WipeServiceTestSuite) TestWipeShop_UnknownShopDestroysNothing() {
	suite.shops.On("FindShopByID", mock.Anything, "shop-gone").
		Return(nil, apperrors.ErrNotFound)

	summary, err := suite.svc.WipeShop(context.Background(), "shop-gone")

	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.committer.AssertNotCalled(suite.T(), "CommitBatch", mock.Anything, mock.Anything)
}

func (suite *WipeServiceTestSuite) TestWipeShop_ListFailureStopsCascade() {
	suite.shops.On("FindShopByID", mock.Anything, "shop-a").
		Return(&domain.Shop{ShopID: "shop-a"}, nil)
	suite.collections.On("ListDocumentsByShop", mock.Anything, portsrepo.CollectionTransactions, "shop-a").
		Return(nil, errors.New("unavailable"))

	summary, err := suite.svc.WipeShop(context.Background(), "shop-a")

	require.Error(suite.T(), err)
	require.NotNil(suite.T(), summary)
	suite.False(summary.ShopDeleted)
	suite.committer.AssertNotCalled(suite.T(), "CommitBatch", mock.Anything, mock.Anything)
}

func (suite *WipeServiceTestSuite) TestWipeShop_DeleteFailureKeepsShopDocument() {
	suite.shops.On("FindShopByID", mock.Anything, "shop-a").
		Return(&domain.Shop{ShopID: "shop-a"}, nil)
	suite.collections.On("ListDocumentsByShop", mock.Anything, portsrepo.CollectionTransactions, "shop-a").
		Return(docs("txn-1"), nil)
	suite.committer.On("CommitBatch", mock.Anything, mock.Anything).
		Return(errors.New("unavailable"))

	summary, err := suite.svc.WipeShop(context.Background(), "shop-a")

	require.Error(suite.T(), err)
	suite.ErrorIs(err, apperrors.ErrBatchCommitFailed)
	suite.False(summary.ShopDeleted)
	suite.committer.AssertNumberOfCalls(suite.T(), "CommitBatch", 1)
}

func TestWipeService(t *testing.T) {
	suite.Run(t, new(WipeServiceTestSuite))
}
