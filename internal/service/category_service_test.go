package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizbank/internal/domain/entity"
	apperrors "github.com/yourusername/quizbank/internal/pkg/errors"
)

func TestBuildCategoryIndex(t *testing.T) {
	// Arrange
	categories := []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}

	// Act
	index := BuildCategoryIndex(categories)

	// Assert
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, index)
}

func TestBuildCategoryIndex_Empty(t *testing.T) {
	index := BuildCategoryIndex(nil)
	assert.Empty(t, index)
	assert.NotNil(t, index, "индекс всегда инициализирован, даже пустой")
}

func TestCategoryService_GetCategoryIndex(t *testing.T) {
	// Arrange
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAll").Return([]entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}, nil)
	svc := NewCategoryService(categoryRepo)

	// Act
	index, err := svc.GetCategoryIndex()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, index)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_GetCategoryIndex_NoCategories(t *testing.T) {
	// Arrange: хранилище без единой категории
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAll").Return([]entity.Category{}, nil)
	svc := NewCategoryService(categoryRepo)

	// Act
	index, err := svc.GetCategoryIndex()

	// Assert: пустой набор отличим от непустого — это ErrNotFound
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "пустой набор категорий должен давать ErrNotFound")
	assert.Nil(t, index)
}

func TestCategoryService_GetCategoryIndex_RepoFailure(t *testing.T) {
	// Arrange
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAll").Return(nil, errors.New("connection refused"))
	svc := NewCategoryService(categoryRepo)

	// Act
	_, err := svc.GetCategoryIndex()

	// Assert: ошибка хранилища не превращается в ErrNotFound
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}
