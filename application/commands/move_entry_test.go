package commands

import (
	"context"
	"testing"

	"mentra-backend/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMoveEntryHandler_Handle_CategoryReorder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockTransactions := new(MockMenuTransactions)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	ord := menu.NewOrdering()
	ord.CategoryOrder = []string{"drinks", "food"}

	mockOrderingRepo.On("Get", ctx, "tenant-1").Return(ord, nil)
	mockOrderingRepo.On("Put", ctx, "tenant-1", mock.MatchedBy(func(out menu.Ordering) bool {
		return len(out.CategoryOrder) == 2 && out.CategoryOrder[0] == "food"
	})).Return(nil)
	mockCache.On("Delete", ctx, "menu:tenant-1").Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewMoveEntryHandler(mockItemRepo, mockOrderingRepo, mockTransactions, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, MoveEntryCommand{
		TenantID: "tenant-1",
		Level:    menu.MoveCategory,
		ID:       "food",
		Index:    0,
	})

	// Assert
	assert.NoError(t, err)
	mockOrderingRepo.AssertExpectations(t)
	// A same-bucket gesture never touches the item store.
	mockItemRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	mockTransactions.AssertNotCalled(t, "SaveItemAndOrdering", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveEntryHandler_Handle_CrossBucketItemMove(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockTransactions := new(MockMenuTransactions)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	item := menu.Item{ID: "i1", TenantID: "tenant-1", Title: "Lemonade", Category: "Food", Subcategory: "Mains"}

	ord := menu.NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	mockOrderingRepo.On("Get", ctx, "tenant-1").Return(ord, nil)
	mockItemRepo.On("GetByID", ctx, "tenant-1", "i1").Return(item, nil)
	// The item's own fields and the ordering rewrite land atomically.
	mockTransactions.On("SaveItemAndOrdering", ctx, mock.MatchedBy(func(it menu.Item) bool {
		return it.Category == "Drinks" && it.Subcategory == "Cold"
	}), mock.MatchedBy(func(out menu.Ordering) bool {
		moved := out.ItemOrder["drinks::cold"]
		return len(out.ItemOrder["food::mains"]) == 0 && len(moved) == 1 && moved[0] == "i1"
	})).Return(nil)
	mockCache.On("Delete", ctx, "menu:tenant-1").Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewMoveEntryHandler(mockItemRepo, mockOrderingRepo, mockTransactions, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, MoveEntryCommand{
		TenantID:        "tenant-1",
		Level:           menu.MoveItem,
		ID:              "i1",
		CategorySlug:    "food",
		SubcategorySlug: "mains",
		ToCategory:      "Drinks",
		ToSubcategory:   "Cold",
		Index:           0,
	})

	// Assert
	assert.NoError(t, err)
	mockTransactions.AssertExpectations(t)
	mockOrderingRepo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveEntryHandler_Handle_SubcategoryMoveKeepsCategoryLabel(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockTransactions := new(MockMenuTransactions)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	item := menu.Item{ID: "i1", TenantID: "tenant-1", Title: "Fries", Category: "Food", Subcategory: "Mains"}

	ord := menu.NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains", "sides"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	mockOrderingRepo.On("Get", ctx, "tenant-1").Return(ord, nil)
	mockItemRepo.On("GetByID", ctx, "tenant-1", "i1").Return(item, nil)
	mockTransactions.On("SaveItemAndOrdering", ctx, mock.MatchedBy(func(it menu.Item) bool {
		// Destination category label blank means unchanged.
		return it.Category == "Food" && it.Subcategory == "Sides"
	}), mock.Anything).Return(nil)
	mockCache.On("Delete", ctx, "menu:tenant-1").Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewMoveEntryHandler(mockItemRepo, mockOrderingRepo, mockTransactions, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, MoveEntryCommand{
		TenantID:        "tenant-1",
		Level:           menu.MoveItem,
		ID:              "i1",
		CategorySlug:    "food",
		SubcategorySlug: "mains",
		ToSubcategory:   "Sides",
		Index:           0,
	})

	// Assert
	assert.NoError(t, err)
	mockTransactions.AssertExpectations(t)
}

func TestMoveEntryCommand_Validate(t *testing.T) {
	assert.Error(t, MoveEntryCommand{Level: menu.MoveCategory, ID: "food"}.Validate())
	assert.Error(t, MoveEntryCommand{TenantID: "t", Level: menu.MoveSubcategory, ID: "sides"}.Validate())
	assert.Error(t, MoveEntryCommand{TenantID: "t", Level: "bogus", ID: "x"}.Validate())
	assert.NoError(t, MoveEntryCommand{TenantID: "t", Level: menu.MoveCategory, ID: "food"}.Validate())
}
