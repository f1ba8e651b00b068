package repository

import (
	"github.com/yourusername/quizbank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Хранилище отдает упорядоченные снимки данных; пагинация, поиск и отбор
// для викторины выполняются сервисным слоем поверх загруженных строк.
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// GetAll возвращает все вопросы в порядке возрастания ID
	GetAll() ([]entity.Question, error)
	Delete(id uint) error
	Count() (int64, error)
}
