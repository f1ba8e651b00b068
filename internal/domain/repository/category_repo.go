package repository

import (
	"github.com/yourusername/quizbank/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории доступны только для чтения: набор задается миграцией-сидом.
type CategoryRepository interface {
	// GetAll возвращает все категории, отсортированные по названию
	GetAll() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}
