package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adityatriand/catering-app/internal/domain"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

func TestCreateCategory_Success(t *testing.T) {
	repo := new(mockCategoryRepository)
	svc := NewCategoryService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).Return(nil)

	category, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "spicy"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.Equal(t, "spicy", category.Name)
	repo.AssertExpectations(t)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo := new(mockCategoryRepository)
	svc := NewCategoryService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).
		Return(apperrors.AlreadyExists("category", "name", "spicy"))

	category, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "spicy"})
	assert.Nil(t, category)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	repo.AssertExpectations(t)
}

func TestUpdateCategory_Success(t *testing.T) {
	repo := new(mockCategoryRepository)
	svc := NewCategoryService(repo, newTestLogger())
	ctx := context.Background()

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(&domain.Category{ID: id, Name: "spicy"}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Category")).Return(nil)

	category, err := svc.UpdateCategory(ctx, id, domain.UpdateCategoryRequest{Name: "extra spicy"})
	require.NoError(t, err)
	assert.Equal(t, "extra spicy", category.Name)
	repo.AssertExpectations(t)
}

func TestListCategories_Success(t *testing.T) {
	repo := new(mockCategoryRepository)
	svc := NewCategoryService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.Category{{Name: "beef"}, {Name: "spicy"}}, nil)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	repo.AssertExpectations(t)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	repo := new(mockCategoryRepository)
	svc := NewCategoryService(repo, newTestLogger())
	ctx := context.Background()

	id := uuid.New()
	repo.On("Delete", ctx, id).Return(apperrors.NotFound("category", id.String()))

	err := svc.DeleteCategory(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}
