package commands

import (
	"context"
	"errors"
	"testing"

	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestDeleteItemHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockPlaylistRepo := new(MockPlaylistRepository)
	mockTransactions := new(MockMenuTransactions)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	item := menu.Item{ID: "a", TenantID: "tenant-1", Title: "Burger", Category: "Food", Subcategory: "Mains"}

	ord := menu.NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"a", "b"}

	mockItemRepo.On("GetByID", ctx, "tenant-1", "a").Return(item, nil)
	mockOrderingRepo.On("Get", ctx, "tenant-1").Return(ord, nil)
	// Item removal and ordering rewrite land in one transaction.
	mockTransactions.On("DeleteItemAndOrdering", ctx, "tenant-1", "a", mock.MatchedBy(func(out menu.Ordering) bool {
		got := out.ItemOrder["food::mains"]
		return len(got) == 1 && got[0] == "b"
	})).Return(nil)
	mockPlaylistRepo.On("Get", ctx, "tenant-1").Return(menu.Playlist{TenantID: "tenant-1", ItemIDs: []string{"a", "x"}}, nil)
	mockPlaylistRepo.On("Put", ctx, mock.MatchedBy(func(p menu.Playlist) bool {
		return len(p.ItemIDs) == 1 && p.ItemIDs[0] == "x"
	})).Return(nil)
	mockCache.On("Delete", ctx, "menu:tenant-1").Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewDeleteItemHandler(mockItemRepo, mockOrderingRepo, mockPlaylistRepo, mockTransactions, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, DeleteItemCommand{TenantID: "tenant-1", ItemID: "a"})

	// Assert
	assert.NoError(t, err)
	mockTransactions.AssertExpectations(t)
	mockPlaylistRepo.AssertExpectations(t)
	mockEventBus.AssertExpectations(t)
}

func TestDeleteItemHandler_Handle_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockPlaylistRepo := new(MockPlaylistRepository)
	mockTransactions := new(MockMenuTransactions)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	mockItemRepo.On("GetByID", ctx, "tenant-1", "missing").
		Return(menu.Item{}, pkgerrors.NewNotFoundError("item"))

	handler := NewDeleteItemHandler(mockItemRepo, mockOrderingRepo, mockPlaylistRepo, mockTransactions, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, DeleteItemCommand{TenantID: "tenant-1", ItemID: "missing"})

	// Assert
	assert.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	mockTransactions.AssertNotCalled(t, "DeleteItemAndOrdering", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteItemHandler_Handle_PlaylistPruneFailureIsNonFatal(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockPlaylistRepo := new(MockPlaylistRepository)
	mockTransactions := new(MockMenuTransactions)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	item := menu.Item{ID: "a", TenantID: "tenant-1", Title: "Burger", Category: "Food"}

	mockItemRepo.On("GetByID", ctx, "tenant-1", "a").Return(item, nil)
	mockOrderingRepo.On("Get", ctx, "tenant-1").Return(menu.NewOrdering(), nil)
	mockTransactions.On("DeleteItemAndOrdering", ctx, "tenant-1", "a", mock.Anything).Return(nil)
	mockPlaylistRepo.On("Get", ctx, "tenant-1").Return(menu.Playlist{}, errors.New("playlist store down"))
	mockCache.On("Delete", ctx, "menu:tenant-1").Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewDeleteItemHandler(mockItemRepo, mockOrderingRepo, mockPlaylistRepo, mockTransactions, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, DeleteItemCommand{TenantID: "tenant-1", ItemID: "a"})

	// Assert: the next playlist read normalizes anyway.
	assert.NoError(t, err)
	mockTransactions.AssertExpectations(t)
}
