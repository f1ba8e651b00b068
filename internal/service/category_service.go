package service

import (
	"fmt"

	"github.com/yourusername/quizbank/internal/domain/entity"
	"github.com/yourusername/quizbank/internal/domain/repository"
	apperrors "github.com/yourusername/quizbank/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// BuildCategoryIndex строит отображение id -> название по списку категорий.
// ID категорий уникальны на уровне хранилища, коллизии ключей невозможны.
func BuildCategoryIndex(categories []entity.Category) map[uint]string {
	index := make(map[uint]string, len(categories))
	for _, category := range categories {
		index[category.ID] = category.Type
	}
	return index
}

// GetCategoryIndex возвращает индекс всех категорий.
// Пустой набор категорий отличим от непустого: возвращается ErrNotFound.
func (s *CategoryService) GetCategoryIndex() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories exist", apperrors.ErrNotFound)
	}

	return BuildCategoryIndex(categories), nil
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(id uint) (*entity.Category, error) {
	return s.categoryRepo.GetByID(id)
}
