package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"seacoff/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Menu, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *model.Menu) (bool, error) {
	args := m.Called(ctx, menu)
	return args.Bool(0), args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestMenuService_GetAll_ClampsPagination(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name           string
		limit, offset  int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "Defaults applied", limit: 0, offset: -5, expectedLimit: 50, expectedOffset: 0},
		{name: "Limit capped", limit: 500, offset: 10, expectedLimit: 100, expectedOffset: 10},
		{name: "Passed through", limit: 20, offset: 40, expectedLimit: 20, expectedOffset: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuRepository)
			mockRepo.On("GetAll", ctx, tt.expectedLimit, tt.expectedOffset).Return([]model.Menu{}, nil)

			service := NewMenuService(mockRepo, logger)

			_, err := service.GetAll(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	menu := &model.Menu{ID: uuid.New(), Name: "Americano", Price: 15000, Category: "coffee"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("GetByID", ctx, menu.ID).Return(menu, nil)

		service := NewMenuService(mockRepo, logger)

		got, err := service.GetByID(ctx, menu.ID)
		require.NoError(t, err)
		assert.Equal(t, menu, got)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("GetByID", ctx, menu.ID).Return(nil, nil)

		service := NewMenuService(mockRepo, logger)

		got, err := service.GetByID(ctx, menu.ID)
		assert.Equal(t, model.ErrMenuNotFound, err)
		assert.Nil(t, got)
	})
}

func TestMenuService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Menu")).Return(nil)

		service := NewMenuService(mockRepo, logger)

		menu, err := service.Create(ctx, &model.MenuRequest{
			Name:     "Americano",
			Price:    15000,
			Category: "coffee",
		})

		require.NoError(t, err)
		require.NotNil(t, menu)
		assert.NotEqual(t, uuid.Nil, menu.ID)
		assert.Equal(t, "Americano", menu.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Validation errors", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		for _, req := range []*model.MenuRequest{
			nil,
			{Name: "  ", Price: 15000},
			{Name: "Americano", Price: -1},
		} {
			menu, err := service.Create(ctx, req)
			require.Error(t, err)
			assert.Nil(t, menu)
		}

		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestMenuService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Menu{
		ID:        uuid.New(),
		Name:      "Americano",
		Price:     15000,
		Category:  "coffee",
		CreatedAt: time.Now().Add(-time.Hour),
	}

	t.Run("Success keeps creation time", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Menu")).Return(true, nil)

		service := NewMenuService(mockRepo, logger)

		menu, err := service.Update(ctx, existing.ID, &model.MenuRequest{
			Name:     "Long Black",
			Price:    17000,
			Category: "coffee",
		})

		require.NoError(t, err)
		assert.Equal(t, "Long Black", menu.Name)
		assert.Equal(t, existing.CreatedAt, menu.CreatedAt)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("GetByID", ctx, existing.ID).Return(nil, nil)

		service := NewMenuService(mockRepo, logger)

		menu, err := service.Update(ctx, existing.ID, &model.MenuRequest{Name: "Long Black", Price: 17000})
		assert.Equal(t, model.ErrMenuNotFound, err)
		assert.Nil(t, menu)
	})
}

func TestMenuService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Delete", ctx, id).Return(true, nil)

		service := NewMenuService(mockRepo, logger)
		require.NoError(t, service.Delete(ctx, id))
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Delete", ctx, id).Return(false, nil)

		service := NewMenuService(mockRepo, logger)
		assert.Equal(t, model.ErrMenuNotFound, service.Delete(ctx, id))
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("Delete", ctx, id).Return(false, errors.New("database error"))

		service := NewMenuService(mockRepo, logger)
		assert.Error(t, service.Delete(ctx, id))
	})
}
