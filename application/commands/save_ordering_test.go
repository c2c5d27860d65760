package commands

import (
	"context"
	"testing"

	"mentra-backend/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSaveOrderingHandler_Handle_RepairsBeforeStoring(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockOrderingRepo := new(MockOrderingRepository)
	mockEventBus := new(MockEventBus)
	mockCache := new(MockCache)
	logger := zap.NewNop()

	items := []menu.Item{
		{ID: "i1", TenantID: "tenant-1", Title: "Burger", Category: "Food", Subcategory: "Mains"},
	}

	// The client submits references to a category that no longer exists.
	submitted := menu.NewOrdering()
	submitted.CategoryOrder = []string{"drinks", "food"}
	submitted.SubcategoryOrder["food"] = []string{"mains"}
	submitted.ItemOrder["food::mains"] = []string{"i1", "ghost"}

	mockItemRepo.On("ListByTenant", ctx, "tenant-1").Return(items, nil)
	mockOrderingRepo.On("Put", ctx, "tenant-1", mock.MatchedBy(func(out menu.Ordering) bool {
		return len(out.CategoryOrder) == 1 && out.CategoryOrder[0] == "food" &&
			len(out.ItemOrder["food::mains"]) == 1 && out.ItemOrder["food::mains"][0] == "i1"
	})).Return(nil)
	mockCache.On("Delete", ctx, "menu:tenant-1").Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewSaveOrderingHandler(mockItemRepo, mockOrderingRepo, mockEventBus, mockCache, logger)

	// Act
	err := handler.Handle(ctx, SaveOrderingCommand{TenantID: "tenant-1", Ordering: submitted})

	// Assert
	assert.NoError(t, err)
	mockOrderingRepo.AssertExpectations(t)
}

func TestUpdatePlaylistHandler_Handle_DropsStaleIDs(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockPlaylistRepo := new(MockPlaylistRepository)
	mockEventBus := new(MockEventBus)
	logger := zap.NewNop()

	items := []menu.Item{
		{ID: "i1", TenantID: "tenant-1", Title: "Burger", Category: "Food"},
		{ID: "i2", TenantID: "tenant-1", Title: "Fries", Category: "Food"},
	}

	mockItemRepo.On("ListByTenant", ctx, "tenant-1").Return(items, nil)
	mockPlaylistRepo.On("Put", ctx, mock.MatchedBy(func(p menu.Playlist) bool {
		return len(p.ItemIDs) == 2 && p.ItemIDs[0] == "i2" && p.ItemIDs[1] == "i1"
	})).Return(nil)
	mockEventBus.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewUpdatePlaylistHandler(mockItemRepo, mockPlaylistRepo, mockEventBus, logger)

	// Act
	err := handler.Handle(ctx, UpdatePlaylistCommand{
		TenantID: "tenant-1",
		ItemIDs:  []string{"i2", "dead", "i1", "i2"},
	})

	// Assert
	assert.NoError(t, err)
	mockPlaylistRepo.AssertExpectations(t)
}

func TestSaveProgressHandler_Handle_PrunesDeadReferences(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockItemRepo := new(MockItemRepository)
	mockProgressRepo := new(MockProgressRepository)
	logger := zap.NewNop()

	items := []menu.Item{
		{ID: "i1", TenantID: "tenant-1", Title: "Burger", Category: "Food"},
	}

	mockItemRepo.On("ListByTenant", ctx, "tenant-1").Return(items, nil)
	mockProgressRepo.On("Put", ctx, mock.MatchedBy(func(p menu.Progress) bool {
		_, hasDead := p.StepPosition["dead"]
		return len(p.CompletedIDs) == 1 && p.CompletedIDs[0] == "i1" && !hasDead
	})).Return(nil)

	handler := NewSaveProgressHandler(mockItemRepo, mockProgressRepo, logger)

	// Act
	err := handler.Handle(ctx, SaveProgressCommand{
		TenantID:     "tenant-1",
		UserID:       "u1",
		CompletedIDs: []string{"i1", "dead"},
		StepPosition: map[string]int{"dead": 2},
	})

	// Assert
	assert.NoError(t, err)
	mockProgressRepo.AssertExpectations(t)
}

func TestSaveProgressCommand_Validate(t *testing.T) {
	assert.Error(t, SaveProgressCommand{UserID: "u1"}.Validate())
	assert.Error(t, SaveProgressCommand{TenantID: "t"}.Validate())
	assert.Error(t, SaveProgressCommand{TenantID: "t", UserID: "u1", StepPosition: map[string]int{"i1": -1}}.Validate())
	assert.NoError(t, SaveProgressCommand{TenantID: "t", UserID: "u1"}.Validate())
}
